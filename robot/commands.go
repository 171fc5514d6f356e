package robot

import (
	"github.com/dizzyi/inovo-go/geometry"
	"github.com/dizzyi/inovo-go/iva"
)

// Execute runs one command immediately. Alias of SendCommand.
func (r *Robot) Execute(cmd iva.RobotCommand) error {
	return r.SendCommand(cmd)
}

// Synchronize blocks until queued motion on the runtime has settled.
func (r *Robot) Synchronize() error {
	return r.SendCommand(iva.Synchronize())
}

// Sleep pauses the runtime for the given number of seconds.
func (r *Robot) Sleep(seconds float64) error {
	return r.SendCommand(iva.Sleep(seconds))
}

// SetParam applies a motion parameter set to subsequent motion. It does
// not touch the parameter stack; use WithParam for a reversible change.
func (r *Robot) SetParam(param iva.MotionParam) error {
	return r.SendCommand(iva.SetParameter(param))
}

// Motion moves to target under the given mode.
func (r *Robot) Motion(mode iva.MotionMode, target geometry.Pose) error {
	return r.SendCommand(iva.Motion(mode, target))
}

// Linear moves the tool to target along a straight line.
func (r *Robot) Linear(target geometry.Transform) error {
	return r.SendCommand(iva.Linear(target))
}

// LinearRelative offsets the tool by target along a straight line.
func (r *Robot) LinearRelative(target geometry.Transform) error {
	return r.SendCommand(iva.LinearRelative(target))
}

// Joint moves to target in joint space. A cartesian target is solved by
// the controller's inverse kinematics.
func (r *Robot) Joint(target geometry.Pose) error {
	return r.SendCommand(iva.Joint(target))
}

// JointRelative offsets the arm by target in joint space.
func (r *Robot) JointRelative(target geometry.Pose) error {
	return r.SendCommand(iva.JointRelative(target))
}

// CurrentTransform reads the live cartesian pose.
func (r *Robot) CurrentTransform() (geometry.Transform, error) {
	pose, err := r.CurrentPose(geometry.PoseCartesian)
	if err != nil {
		return geometry.Transform{}, err
	}
	return pose.(geometry.Transform), nil
}

// CurrentJoints reads the live joint coordinate.
func (r *Robot) CurrentJoints() (geometry.JointCoord, error) {
	pose, err := r.CurrentPose(geometry.PoseJoint)
	if err != nil {
		return geometry.JointCoord{}, err
	}
	return pose.(geometry.JointCoord), nil
}

// Data reads a runtime data value by key and decodes it as a T.
func Data[T bool | int64 | float64 | string](r *Robot, key string) (T, error) {
	return instructionScalar[T](r, iva.Get(iva.QueryData(key)))
}

// GripperActivate initializes the gripper after power-on.
func (r *Robot) GripperActivate() error {
	return r.SendInstruction(iva.Gripper(iva.GripperActivate()))
}

// GripperSet moves the gripper to a named width preset.
func (r *Robot) GripperSet(label string) error {
	return r.SendInstruction(iva.Gripper(iva.GripperSet(label)))
}

// GripperWidth reads the gripper opening as a fraction of full travel.
func (r *Robot) GripperWidth() (float64, error) {
	return instructionScalar[float64](r, iva.Gripper(iva.GripperGet()))
}

// IOSet writes one digital output port.
func (r *Robot) IOSet(target iva.IOTarget, port uint16, state bool) error {
	return r.SendInstruction(iva.IOSet(target, port, state))
}

// IOGet reads one digital input port.
func (r *Robot) IOGet(target iva.IOTarget, port uint16) (bool, error) {
	return instructionScalar[bool](r, iva.IOGet(target, port))
}

// BeckhoffSet writes a port on the Beckhoff IO bank.
func (r *Robot) BeckhoffSet(port uint16, state bool) error {
	return r.IOSet(iva.IOBeckhoff, port, state)
}

// BeckhoffGet reads a port on the Beckhoff IO bank.
func (r *Robot) BeckhoffGet(port uint16) (bool, error) {
	return r.IOGet(iva.IOBeckhoff, port)
}

// WristSet writes a port on the wrist IO bank.
func (r *Robot) WristSet(port uint16, state bool) error {
	return r.IOSet(iva.IOWrist, port, state)
}

// WristGet reads a port on the wrist IO bank.
func (r *Robot) WristGet(port uint16) (bool, error) {
	return r.IOGet(iva.IOWrist, port)
}

// Custom sends an application-defined command and returns the raw reply.
func (r *Robot) Custom(cmd iva.CustomCommand) (string, error) {
	return r.Instruction(iva.Custom(cmd))
}

// CustomOK sends an application-defined command and requires an ack.
func (r *Robot) CustomOK(cmd iva.CustomCommand) error {
	return r.SendInstruction(iva.Custom(cmd))
}
