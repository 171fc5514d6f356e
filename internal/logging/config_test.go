package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevelAliases(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"diagnostics", zerolog.TraceLevel, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := parseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseLevel(%q): got %v/%v want %v/%v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	cfg := defaultSettings(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.level != zerolog.ErrorLevel {
		t.Fatalf("level: got %v", cfg.level)
	}
	if cfg.timestamp {
		t.Fatalf("timestamp not overridden")
	}
	if !cfg.noColor {
		t.Fatalf("nocolor not overridden")
	}
}

func TestEnvOverridesIgnoreUnset(t *testing.T) {
	cfg := defaultSettings(ProfileTest)
	applyEnvOverrides(&cfg)
	if cfg.level != zerolog.DebugLevel || cfg.timestamp {
		t.Fatalf("test profile defaults changed: %+v", cfg)
	}
}
