package rosbridge

import (
	"context"
	"errors"
	"net"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/dizzyi/inovo-go/internal/testutil/testlog"
)

// fakeController answers rosbridge envelopes the way the real sequencer
// services do. Each websocket connection carries one request.
type fakeController struct {
	mu         sync.Mutex
	services   []string
	procedures []string
	refuse     map[string]int
	states     []int
}

func (f *fakeController) handle(conn *websocket.Conn) {
	defer conn.Close()

	var req map[string]any
	if err := websocket.JSON.Receive(conn, &req); err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch req["op"] {
	case "call_service":
		service, _ := req["service"].(string)
		f.services = append(f.services, service)
		if args, ok := req["args"].(map[string]any); ok {
			if name, ok := args["procedure_name"].(string); ok {
				f.procedures = append(f.procedures, name)
			}
		}
		if f.refuse[service] > 0 {
			f.refuse[service]--
			_ = websocket.JSON.Send(conn, map[string]any{
				"op":     "service_response",
				"values": map[string]any{"success": false, "message": "runtime busy"},
			})
			return
		}
		_ = websocket.JSON.Send(conn, map[string]any{
			"op":     "service_response",
			"values": map[string]any{"success": true},
		})
	case "subscribe":
		state := 0
		if len(f.states) > 0 {
			state = f.states[0]
			if len(f.states) > 1 {
				f.states = f.states[1:]
			}
		}
		_ = websocket.JSON.Send(conn, map[string]any{
			"op":    "publish",
			"topic": req["topic"],
			"msg":   map[string]any{"state": state},
		})
	}
}

func (f *fakeController) seenServices() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.services...)
}

func (f *fakeController) seenProcedures() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.procedures...)
}

func newTestBridge(t *testing.T, f *fakeController, cfg Config) *Bridge {
	t.Helper()
	testlog.Start(t)

	srv := httptest.NewServer(websocket.Handler(f.handle))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split server host: %v", err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		t.Fatalf("parse server port: %v", err)
	}
	cfg.Port = uint16(port)
	return New(host, cfg, zerolog.Nop())
}

func TestStartSequenceCallsService(t *testing.T) {
	f := &fakeController{}
	b := newTestBridge(t, f, Config{})

	if err := b.StartSequence(context.Background(), "iva"); err != nil {
		t.Fatalf("StartSequence: %v", err)
	}
	services := f.seenServices()
	if len(services) != 1 || services[0] != "/sequence/start" {
		t.Fatalf("services = %v", services)
	}
	procedures := f.seenProcedures()
	if len(procedures) != 1 || procedures[0] != "iva" {
		t.Fatalf("procedures = %v", procedures)
	}
}

func TestStartSequenceRefused(t *testing.T) {
	f := &fakeController{refuse: map[string]int{"/sequence/start": 1}}
	b := newTestBridge(t, f, Config{})

	err := b.StartSequence(context.Background(), "iva")
	if !errors.Is(err, ErrServiceRefused) {
		t.Fatalf("error = %v, want ErrServiceRefused", err)
	}
}

func TestRunSequenceStopsBusyRuntime(t *testing.T) {
	f := &fakeController{refuse: map[string]int{"/sequence/start": 1}}
	b := newTestBridge(t, f, Config{})

	if err := b.RunSequence(context.Background(), "iva"); err != nil {
		t.Fatalf("RunSequence: %v", err)
	}
	want := []string{"/sequence/start", "/sequence/stop", "/sequence/start"}
	services := f.seenServices()
	if len(services) != len(want) {
		t.Fatalf("services = %v, want %v", services, want)
	}
	for i := range want {
		if services[i] != want[i] {
			t.Fatalf("services = %v, want %v", services, want)
		}
	}
}

func TestRunSequenceSurfacesStopFailure(t *testing.T) {
	f := &fakeController{refuse: map[string]int{
		"/sequence/start": 1,
		"/sequence/stop":  1,
	}}
	b := newTestBridge(t, f, Config{})

	err := b.RunSequence(context.Background(), "iva")
	if !errors.Is(err, ErrServiceRefused) {
		t.Fatalf("error = %v, want ErrServiceRefused", err)
	}
	services := f.seenServices()
	if len(services) != 2 {
		t.Fatalf("services = %v, want start then stop only", services)
	}
}

func TestStateReadsRuntimePublication(t *testing.T) {
	f := &fakeController{states: []int{1}}
	b := newTestBridge(t, f, Config{})

	state, err := b.State(context.Background())
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if state != StateRunning {
		t.Fatalf("state = %v, want running", state)
	}
}

func TestStateRejectsUnknownValue(t *testing.T) {
	f := &fakeController{states: []int{9}}
	b := newTestBridge(t, f, Config{})

	_, err := b.State(context.Background())
	if !errors.Is(err, ErrUnexpectedReply) {
		t.Fatalf("error = %v, want ErrUnexpectedReply", err)
	}
}

func TestWaitUntilStoppedPollsThroughStates(t *testing.T) {
	f := &fakeController{states: []int{1, 2, 0}}
	b := newTestBridge(t, f, Config{PollInterval: 5 * time.Millisecond})

	if err := b.WaitUntilStopped(context.Background()); err != nil {
		t.Fatalf("WaitUntilStopped: %v", err)
	}
}

func TestWaitUntilStoppedHonorsCancel(t *testing.T) {
	f := &fakeController{states: []int{1}}
	b := newTestBridge(t, f, Config{PollInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(15*time.Millisecond, cancel)
	defer timer.Stop()

	err := b.WaitUntilStopped(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestDialFailureSurfaces(t *testing.T) {
	testlog.Start(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := uint16(ln.Addr().(*net.TCPAddr).Port)
	_ = ln.Close()

	b := New("127.0.0.1", Config{Port: port, CallTimeout: time.Second}, zerolog.Nop())
	if err := b.StopSequence(context.Background()); err == nil {
		t.Fatal("StopSequence succeeded against closed port")
	}
}
