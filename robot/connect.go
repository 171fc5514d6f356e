package robot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dizzyi/inovo-go/rosbridge"
	"github.com/dizzyi/inovo-go/transport"
)

// Connect performs the full connect-back bootstrap: bind the listen port,
// start the runtime sequence on the controller through rosbridge, then
// wait for the runtime to dial back. The returned Robot owns the accepted
// connection.
//
// The runtime sequence is configured on the controller with the address
// it dials back to; Connect logs the local address operators should point
// it at.
func Connect(ctx context.Context, cfg Config, log zerolog.Logger) (*Robot, error) {
	cfg = cfg.WithDefaults()

	ln, err := transport.Listen(cfg.ListenPort, cfg.Transport, log)
	if err != nil {
		return nil, fmt.Errorf("robot: connect %s: %w", cfg.Name, err)
	}
	defer ln.Close()

	if callback, ipErr := transport.PreferredLocalIP(cfg.Host); ipErr == nil {
		log.Info().
			Str("robot", cfg.Name).
			Str("callback", fmt.Sprintf("%s:%d", callback, ln.Port())).
			Msg("robot.Connect waiting for runtime")
	}

	if !cfg.SkipLaunch {
		bridge := rosbridge.New(cfg.Host, cfg.Bridge, log)
		if err := bridge.RunSequence(ctx, cfg.Sequence); err != nil {
			return nil, fmt.Errorf("robot: connect %s: launch %q: %w", cfg.Name, cfg.Sequence, err)
		}
	}

	stream, err := ln.Accept(ctx)
	if err != nil {
		return nil, fmt.Errorf("robot: connect %s: %w", cfg.Name, err)
	}

	r := New(stream, cfg, log)
	r.log.Info().Str("peer", stream.PeerAddr().String()).Msg("robot.Connect session established")
	return r, nil
}
