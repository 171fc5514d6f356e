package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "INOVO_LOG_LEVEL"
	EnvLogTimestamp = "INOVO_LOG_TIMESTAMP"
	EnvLogNoColor   = "INOVO_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the global logger once. Later calls are no-ops, so
// tests and binaries can both call it unconditionally.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultSettings(profile)
		applyEnvOverrides(&cfg)
		apply(cfg)
	})
}

// New derives a component logger from the global configuration.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

type settings struct {
	level     zerolog.Level
	timestamp bool
	noColor   bool
}

type envOverrides struct {
	Level     string `env:"INOVO_LOG_LEVEL"`
	Timestamp *bool  `env:"INOVO_LOG_TIMESTAMP"`
	NoColor   *bool  `env:"INOVO_LOG_NOCOLOR"`
}

func defaultSettings(profile Profile) settings {
	switch profile {
	case ProfileTest:
		return settings{level: zerolog.DebugLevel, timestamp: false}
	default:
		return settings{level: zerolog.InfoLevel, timestamp: true}
	}
}

func applyEnvOverrides(cfg *settings) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return
	}
	if lvl, ok := parseLevel(o.Level); ok {
		cfg.level = lvl
	}
	if o.Timestamp != nil {
		cfg.timestamp = *o.Timestamp
	}
	if o.NoColor != nil {
		cfg.noColor = *o.NoColor
	}
}

func apply(cfg settings) {
	zerolog.SetGlobalLevel(cfg.level)
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.noColor,
	}
	logger := zerolog.New(out)
	if cfg.timestamp {
		logger = logger.With().Timestamp().Logger()
	}
	log.Logger = logger
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
