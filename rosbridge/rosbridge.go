package rosbridge

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"
)

// RuntimeState is the controller runtime's execution state.
type RuntimeState int

const (
	StateStopped RuntimeState = iota
	StateRunning
	StatePaused
	StateDisabled
)

func (s RuntimeState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// serviceCall is the rosbridge call_service envelope.
type serviceCall struct {
	Op      string `json:"op"`
	Service string `json:"service"`
	ID      string `json:"id"`
	Type    string `json:"type"`
	Args    any    `json:"args"`
}

// subscribe is the rosbridge topic subscription envelope.
type subscribe struct {
	Op    string `json:"op"`
	Topic string `json:"topic"`
	Type  string `json:"type"`
}

type startArgs struct {
	ProcedureName string `json:"procedure_name"`
}

// reply covers both envelope shapes the controller answers with: service
// results carry values, topic publications carry msg.
type reply struct {
	Op     string `json:"op"`
	Values struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	} `json:"values"`
	Msg struct {
		State *int `json:"state"`
	} `json:"msg"`
}

// Bridge issues sequence control calls against one controller.
type Bridge struct {
	host string
	cfg  Config
	log  zerolog.Logger
}

// New binds a bridge to the controller at host.
func New(host string, cfg Config, log zerolog.Logger) *Bridge {
	cfg = cfg.WithDefaults()
	return &Bridge{
		host: host,
		cfg:  cfg,
		log:  log.With().Str("bridge", host).Logger(),
	}
}

// request opens a connection, sends payload, and decodes the first reply.
func (b *Bridge) request(ctx context.Context, payload any, out *reply) error {
	url := fmt.Sprintf("ws://%s:%d/", b.host, b.cfg.Port)

	deadline := time.Now().Add(b.cfg.CallTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	wsCfg, err := websocket.NewConfig(url, fmt.Sprintf("http://%s/", b.host))
	if err != nil {
		return fmt.Errorf("rosbridge: endpoint %s: %w", url, err)
	}
	wsCfg.Dialer = &net.Dialer{Deadline: deadline}

	conn, err := websocket.DialConfig(wsCfg)
	if err != nil {
		return fmt.Errorf("rosbridge: dial %s: %w", url, err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(deadline)

	b.log.Debug().Interface("payload", payload).Msg("rosbridge >>>")
	if err := websocket.JSON.Send(conn, payload); err != nil {
		return fmt.Errorf("rosbridge: send: %w", err)
	}
	if err := websocket.JSON.Receive(conn, out); err != nil {
		return fmt.Errorf("rosbridge: receive: %w", err)
	}
	b.log.Debug().Interface("reply", out).Msg("rosbridge <<<")
	return nil
}

func (b *Bridge) callService(ctx context.Context, call serviceCall) error {
	var out reply
	if err := b.request(ctx, call, &out); err != nil {
		return err
	}
	if !out.Values.Success {
		if out.Values.Message != "" {
			return fmt.Errorf("%w: %s: %s", ErrServiceRefused, call.Service, out.Values.Message)
		}
		return fmt.Errorf("%w: %s", ErrServiceRefused, call.Service)
	}
	return nil
}

// StartSequence starts the named sequence. The controller refuses the
// call unless the runtime is stopped.
func (b *Bridge) StartSequence(ctx context.Context, name string) error {
	return b.callService(ctx, serviceCall{
		Op:      "call_service",
		Service: "/sequence/start",
		ID:      "call_service:/sequence/start",
		Type:    "sequencer/RunSequence",
		Args:    startArgs{ProcedureName: name},
	})
}

// StopSequence stops the runtime.
func (b *Bridge) StopSequence(ctx context.Context) error {
	return b.callService(ctx, serviceCall{
		Op:      "call_service",
		Service: "/sequence/stop",
		ID:      "call_service:/sequence/stop",
		Type:    "std_srvs/Trigger",
		Args:    struct{}{},
	})
}

// RunSequence starts the named sequence, stopping the runtime first if it
// refuses the initial start.
func (b *Bridge) RunSequence(ctx context.Context, name string) error {
	err := b.StartSequence(ctx, name)
	if err == nil {
		return nil
	}
	b.log.Debug().Err(err).Str("sequence", name).Msg("rosbridge.RunSequence stopping runtime first")
	if err := b.StopSequence(ctx); err != nil {
		return err
	}
	return b.StartSequence(ctx, name)
}

// State reads the runtime's execution state. The read subscribes to the
// state topic and takes the first publication; closing the connection
// drops the subscription again.
func (b *Bridge) State(ctx context.Context) (RuntimeState, error) {
	var out reply
	err := b.request(ctx, subscribe{
		Op:    "subscribe",
		Topic: "/sequence/runtime_state",
		Type:  "commander_msgs/RuntimeState",
	}, &out)
	if err != nil {
		return StateStopped, err
	}
	if out.Msg.State == nil {
		return StateStopped, fmt.Errorf("%w: no runtime state", ErrUnexpectedReply)
	}
	state := RuntimeState(*out.Msg.State)
	switch state {
	case StateStopped, StateRunning, StatePaused, StateDisabled:
		return state, nil
	default:
		return StateStopped, fmt.Errorf("%w: runtime state %d", ErrUnexpectedReply, *out.Msg.State)
	}
}

// WaitUntilStopped polls the runtime state until it reports stopped. A
// paused or disabled runtime keeps it waiting.
func (b *Bridge) WaitUntilStopped(ctx context.Context) error {
	for {
		state, err := b.State(ctx)
		if err != nil {
			return err
		}
		if state == StateStopped {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.cfg.PollInterval):
		}
	}
}

// RunSequenceAndWait starts the named sequence and blocks until the
// runtime stops again.
func (b *Bridge) RunSequenceAndWait(ctx context.Context, name string) error {
	if err := b.RunSequence(ctx, name); err != nil {
		return err
	}
	return b.WaitUntilStopped(ctx)
}
