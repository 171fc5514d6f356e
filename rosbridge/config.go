package rosbridge

import "time"

// Config carries the websocket endpoint settings.
type Config struct {
	// Port is the rosbridge websocket port on the controller.
	Port uint16

	// CallTimeout bounds one service call, dial included.
	CallTimeout time.Duration

	// PollInterval is the cadence WaitUntilStopped re-reads the runtime
	// state at.
	PollInterval time.Duration
}

// DefaultConfig returns the settings used when the caller specifies none.
func DefaultConfig() Config {
	return Config{
		Port:         9090,
		CallTimeout:  10 * time.Second,
		PollInterval: 500 * time.Millisecond,
	}
}

// WithDefaults fills any zero-valued field from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.CallTimeout == 0 {
		c.CallTimeout = def.CallTimeout
	}
	if c.PollInterval == 0 {
		c.PollInterval = def.PollInterval
	}
	return c
}
