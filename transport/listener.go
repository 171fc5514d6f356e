package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
)

// Listener accepts the runtime's connect-back after the control sequence
// starts on the robot.
type Listener struct {
	ln  *net.TCPListener
	cfg Config
	log zerolog.Logger
}

// Listen binds a TCP listener on the given port; port 0 picks a free one.
func Listen(port uint16, cfg Config, log zerolog.Logger) (*Listener, error) {
	cfg = cfg.WithDefaults()
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("transport: bind port %d: %w", port, err)
	}
	tl := ln.(*net.TCPListener)
	log = log.With().Str("addr", ln.Addr().String()).Logger()
	log.Info().Msg("transport.Listen bound")
	return &Listener{ln: tl, cfg: cfg, log: log}, nil
}

// Accept waits for one inbound connection, bounded by AcceptTimeout and
// the context. The deadline is polled in short ticks so cancellation is
// honored promptly.
func (l *Listener) Accept(ctx context.Context) (*Stream, error) {
	deadline := time.Now().Add(l.cfg.AcceptTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		tick := time.Now().Add(time.Second)
		if tick.After(deadline) {
			tick = deadline
		}
		if err := l.ln.SetDeadline(tick); err != nil {
			return nil, err
		}
		conn, err := l.ln.Accept()
		if err == nil {
			l.log.Info().Str("peer", conn.RemoteAddr().String()).Msg("transport.Accept connected")
			return NewStream(conn, l.cfg, l.log), nil
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			if time.Now().Before(deadline) {
				continue
			}
			return nil, ErrAcceptTimeout
		}
		return nil, err
	}
}

// Port reports the bound port.
func (l *Listener) Port() uint16 {
	return uint16(l.ln.Addr().(*net.TCPAddr).Port)
}

func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

func (l *Listener) Close() error { return l.ln.Close() }
