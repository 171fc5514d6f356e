package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/dizzyi/inovo-go/robot"
)

// ivactl config.toml key mapping to robot session settings.
type fileConfig struct {
	Host          string `toml:"host"`
	Name          string `toml:"name"`
	ListenPort    int    `toml:"listen_port"`
	Sequence      string `toml:"sequence"`
	SkipLaunch    bool   `toml:"skip_launch"`
	BridgePort    int    `toml:"bridge_port"`
	AcceptTimeout string `toml:"accept_timeout"`
	ReadTimeout   string `toml:"read_timeout"`
	WriteTimeout  string `toml:"write_timeout"`
}

// loadFileConfig overlays the keys present in the TOML file onto base.
func loadFileConfig(path string, base robot.Config) (robot.Config, error) {
	cfg := base

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return robot.Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("listen_port") {
		if raw.ListenPort <= 0 || raw.ListenPort > 65535 {
			return robot.Config{}, fmt.Errorf("load config: listen_port %d out of range", raw.ListenPort)
		}
		cfg.ListenPort = uint16(raw.ListenPort)
	}
	if meta.IsDefined("sequence") {
		cfg.Sequence = strings.TrimSpace(raw.Sequence)
	}
	if meta.IsDefined("skip_launch") {
		cfg.SkipLaunch = raw.SkipLaunch
	}
	if meta.IsDefined("bridge_port") {
		if raw.BridgePort <= 0 || raw.BridgePort > 65535 {
			return robot.Config{}, fmt.Errorf("load config: bridge_port %d out of range", raw.BridgePort)
		}
		cfg.Bridge.Port = uint16(raw.BridgePort)
	}
	if meta.IsDefined("accept_timeout") {
		d, err := parseTimeout("accept_timeout", raw.AcceptTimeout)
		if err != nil {
			return robot.Config{}, err
		}
		cfg.Transport.AcceptTimeout = d
	}
	if meta.IsDefined("read_timeout") {
		d, err := parseTimeout("read_timeout", raw.ReadTimeout)
		if err != nil {
			return robot.Config{}, err
		}
		cfg.Transport.ReadTimeout = d
	}
	if meta.IsDefined("write_timeout") {
		d, err := parseTimeout("write_timeout", raw.WriteTimeout)
		if err != nil {
			return robot.Config{}, err
		}
		cfg.Transport.WriteTimeout = d
	}

	return cfg, nil
}

func parseTimeout(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("load config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("load config: %s must be positive", key)
	}
	return d, nil
}
