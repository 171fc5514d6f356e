package robot

import (
	"github.com/dizzyi/inovo-go/iva"
	"github.com/dizzyi/inovo-go/rosbridge"
	"github.com/dizzyi/inovo-go/transport"
)

// Config carries the settings for one robot session.
type Config struct {
	// Name identifies the robot in logs and metrics.
	Name string

	// Host is the controller address the rosbridge launcher dials.
	Host string

	// ListenPort is the local port the runtime dials back on.
	ListenPort uint16

	// Sequence is the runtime sequence started on the controller.
	Sequence string

	// SkipLaunch leaves the controller alone during Connect. The runtime
	// sequence must already be running and pointed at ListenPort.
	SkipLaunch bool

	// DefaultParam is the motion parameter set contexts restore to when
	// the parameter stack drains.
	DefaultParam iva.MotionParam

	Transport transport.Config
	Bridge    rosbridge.Config
}

// DefaultConfig returns the settings used when the caller specifies none.
func DefaultConfig() Config {
	return Config{
		Name:         "inovo",
		ListenPort:   50003,
		Sequence:     "iva",
		DefaultParam: iva.DefaultParam(),
		Transport:    transport.DefaultConfig(),
		Bridge:       rosbridge.DefaultConfig(),
	}
}

// WithDefaults fills any zero-valued field from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Name == "" {
		c.Name = def.Name
	}
	if c.ListenPort == 0 {
		c.ListenPort = def.ListenPort
	}
	if c.Sequence == "" {
		c.Sequence = def.Sequence
	}
	if c.DefaultParam == (iva.MotionParam{}) {
		c.DefaultParam = def.DefaultParam
	}
	c.Transport = c.Transport.WithDefaults()
	c.Bridge = c.Bridge.WithDefaults()
	return c
}
