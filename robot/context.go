package robot

import (
	"github.com/dizzyi/inovo-go/geometry"
	"github.com/dizzyi/inovo-go/iva"
)

// ParamStack holds the motion parameter sets currently in force, newest
// last. Parameter contexts seed it with the machine default on first use
// so unwinding always has something to restore to.
type ParamStack struct {
	items []iva.MotionParam
}

func (s *ParamStack) Push(param iva.MotionParam) {
	s.items = append(s.items, param)
}

func (s *ParamStack) Pop() (iva.MotionParam, bool) {
	if len(s.items) == 0 {
		return iva.MotionParam{}, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *ParamStack) Top() (iva.MotionParam, bool) {
	if len(s.items) == 0 {
		return iva.MotionParam{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *ParamStack) Len() int { return len(s.items) }

func (s *ParamStack) Empty() bool { return len(s.items) == 0 }

// MotionContext moves the machine to a target on enter and moves it back
// on exit. For absolute modes the current pose is snapshotted before the
// move and restored afterwards; for relative modes the exit replays the
// negated delta under the same mode. Both legs run through SendCommand,
// so queued variants behave identically.
type MotionContext struct {
	mode    iva.MotionMode
	target  geometry.Pose
	restore geometry.Pose
}

// NewMotionContext builds a reversible move to target under mode.
func NewMotionContext(mode iva.MotionMode, target geometry.Pose) *MotionContext {
	return &MotionContext{mode: mode, target: target}
}

func (c *MotionContext) Enter(m Machine) error {
	if c.mode.Relative() {
		if err := m.SendCommand(iva.Motion(c.mode, c.target)); err != nil {
			return err
		}
		c.restore = c.target.Negate()
		return nil
	}
	snapshot, err := m.CurrentPose(c.target.Kind())
	if err != nil {
		return err
	}
	if err := m.SendCommand(iva.Motion(c.mode, c.target)); err != nil {
		return err
	}
	c.restore = snapshot
	return nil
}

func (c *MotionContext) Exit(m Machine) error {
	return m.SendCommand(iva.Motion(c.mode, c.restore))
}

func (c *MotionContext) Label() string { return "motion:" + string(c.mode) }

// ParamContext applies a motion parameter set on enter and restores the
// previous one on exit. The machine's ParamStack is seeded with its
// default set the first time a context enters, so fully unwinding always
// lands back on the default.
type ParamContext struct {
	param iva.MotionParam
}

// NewParamContext builds a reversible parameter change.
func NewParamContext(param iva.MotionParam) *ParamContext {
	return &ParamContext{param: param}
}

func (c *ParamContext) Enter(m Machine) error {
	if err := m.SendCommand(iva.SetParameter(c.param)); err != nil {
		return err
	}
	if m.Params().Empty() {
		m.Params().Push(m.DefaultParam())
	}
	m.Params().Push(c.param)
	return nil
}

func (c *ParamContext) Exit(m Machine) error {
	m.Params().Pop()
	restore := m.DefaultParam()
	if top, ok := m.Params().Top(); ok {
		restore = top
	}
	return m.SendCommand(iva.SetParameter(restore))
}

func (c *ParamContext) Label() string { return "param" }

// WithMotion enters a motion context and returns its guard.
func (r *Robot) WithMotion(mode iva.MotionMode, target geometry.Pose) (*Guard, error) {
	return r.Scoped(NewMotionContext(mode, target))
}

// WithLinear moves to target linearly and returns a guard that moves back.
func (r *Robot) WithLinear(target geometry.Transform) (*Guard, error) {
	return r.WithMotion(iva.ModeLinear, target)
}

// WithLinearRelative applies a cartesian offset and returns a guard that
// replays it negated.
func (r *Robot) WithLinearRelative(target geometry.Transform) (*Guard, error) {
	return r.WithMotion(iva.ModeLinearRelative, target)
}

// WithJoint moves to target in joint space and returns a guard that moves
// back.
func (r *Robot) WithJoint(target geometry.Pose) (*Guard, error) {
	return r.WithMotion(iva.ModeJoint, target)
}

// WithJointRelative applies a joint offset and returns a guard that
// replays it negated.
func (r *Robot) WithJointRelative(target geometry.Pose) (*Guard, error) {
	return r.WithMotion(iva.ModeJointRelative, target)
}

// WithParam applies param and returns a guard that restores the previous
// parameter set.
func (r *Robot) WithParam(param iva.MotionParam) (*Guard, error) {
	return r.Scoped(NewParamContext(param))
}
