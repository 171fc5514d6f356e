package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Stream is one line-oriented connection. Writes terminate with CRLF;
// reads return one LF-terminated line with surrounding whitespace trimmed.
// A Stream is not safe for concurrent use.
type Stream struct {
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
	cfg    Config
	log    zerolog.Logger
}

// NewStream wraps an established connection.
func NewStream(conn net.Conn, cfg Config, log zerolog.Logger) *Stream {
	return &Stream{
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
		cfg:    cfg.WithDefaults(),
		log:    log.With().Str("peer", conn.RemoteAddr().String()).Logger(),
	}
}

// Dial connects to a listening peer.
func Dial(ctx context.Context, addr string, cfg Config, log zerolog.Logger) (*Stream, error) {
	cfg = cfg.WithDefaults()
	dialer := net.Dialer{Timeout: cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}
	return NewStream(conn, cfg, log), nil
}

// WriteLine sends one message.
func (s *Stream) WriteLine(msg string) error {
	s.log.Debug().Msgf(">>> %s", msg)
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
		return err
	}
	if _, err := s.writer.WriteString(msg); err != nil {
		return err
	}
	if _, err := s.writer.WriteString("\r\n"); err != nil {
		return err
	}
	return s.writer.Flush()
}

// ReadLine receives one message.
func (s *Stream) ReadLine() (string, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
		return "", err
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrDisconnected
		}
		return "", err
	}
	msg := strings.TrimSpace(line)
	s.log.Debug().Msgf("<<< %s", msg)
	return msg, nil
}

func (s *Stream) LocalAddr() net.Addr { return s.conn.LocalAddr() }

func (s *Stream) PeerAddr() net.Addr { return s.conn.RemoteAddr() }

func (s *Stream) Close() error { return s.conn.Close() }

// PreferredLocalIP reports the local address the host would use to reach
// target. The robot dials this address back, so it must be routable from
// the robot's network, not a loopback or wildcard bind.
func PreferredLocalIP(target string) (string, error) {
	conn, err := net.Dial("udp", net.JoinHostPort(target, "9"))
	if err != nil {
		return "", fmt.Errorf("transport: discover local ip: %w", err)
	}
	defer conn.Close()
	host, _, err := net.SplitHostPort(conn.LocalAddr().String())
	if err != nil {
		return "", err
	}
	return host, nil
}
