package iva

import "github.com/dizzyi/inovo-go/geometry"

// MotionMode selects how the controller interprets a motion target.
type MotionMode string

const (
	ModeLinear         MotionMode = "linear"
	ModeLinearRelative MotionMode = "linear_relative"
	ModeJoint          MotionMode = "joint"
	ModeJointRelative  MotionMode = "joint_relative"
)

// Relative reports whether the mode moves by a delta from the current pose.
func (m MotionMode) Relative() bool {
	return m == ModeLinearRelative || m == ModeJointRelative
}

type cmdAction string

const (
	actionSynchronize  cmdAction = "synchronize"
	actionSleep        cmdAction = "sleep"
	actionSetParameter cmdAction = "set_parameter"
	actionMotion       cmdAction = "motion"
)

// RobotCommand is one unit of work the runtime can execute or enqueue.
// Build values with the constructors below.
type RobotCommand struct {
	action  cmdAction
	seconds float64
	param   MotionParam
	mode    MotionMode
	target  geometry.Pose
}

// Synchronize blocks the runtime until all queued motion has settled.
func Synchronize() RobotCommand {
	return RobotCommand{action: actionSynchronize}
}

// Sleep pauses the runtime for the given number of seconds.
func Sleep(seconds float64) RobotCommand {
	return RobotCommand{action: actionSleep, seconds: seconds}
}

// SetParameter applies a motion parameter set to subsequent motion.
func SetParameter(param MotionParam) RobotCommand {
	return RobotCommand{action: actionSetParameter, param: param}
}

// Motion moves to target under the given mode.
func Motion(mode MotionMode, target geometry.Pose) RobotCommand {
	return RobotCommand{action: actionMotion, mode: mode, target: target}
}

func Linear(target geometry.Transform) RobotCommand {
	return Motion(ModeLinear, target)
}

func LinearRelative(target geometry.Transform) RobotCommand {
	return Motion(ModeLinearRelative, target)
}

// Joint accepts either pose kind; a cartesian target is solved by the
// controller's inverse kinematics.
func Joint(target geometry.Pose) RobotCommand {
	return Motion(ModeJoint, target)
}

func JointRelative(target geometry.Pose) RobotCommand {
	return Motion(ModeJointRelative, target)
}

// Action reports the command's wire action discriminator.
func (c RobotCommand) Action() string { return string(c.action) }

// Mode reports the motion mode; empty for non-motion commands.
func (c RobotCommand) Mode() MotionMode { return c.mode }

// Target reports the motion target; nil for non-motion commands.
func (c RobotCommand) Target() geometry.Pose { return c.target }

// GripperCommand drives the tool flange gripper.
type GripperCommand struct {
	action string
	label  string
}

// GripperActivate initializes the gripper after power-on.
func GripperActivate() GripperCommand { return GripperCommand{action: "activate"} }

// GripperGet reads the current gripper width fraction.
func GripperGet() GripperCommand { return GripperCommand{action: "get"} }

// GripperSet moves the gripper to a named width preset.
func GripperSet(label string) GripperCommand {
	return GripperCommand{action: "set", label: label}
}

// IOTarget names a digital IO bank on the controller.
type IOTarget string

const (
	IOBeckhoff IOTarget = "beckhoff"
	IOWrist    IOTarget = "wrist"
)

type ioAction struct {
	set   bool
	state bool
}

// QueryTarget names a piece of robot state to read back.
type QueryTarget struct {
	target string
	key    string
}

// QueryTransform reads the current cartesian pose.
func QueryTransform() QueryTarget { return QueryTarget{target: "transform"} }

// QueryJointCoord reads the current joint coordinate.
func QueryJointCoord() QueryTarget { return QueryTarget{target: "joint_coord"} }

// QueryData reads a runtime data value by key.
func QueryData(key string) QueryTarget { return QueryTarget{target: "data", key: key} }

type opCode string

const (
	opExecute opCode = "execute"
	opEnqueue opCode = "enqueue"
	opDequeue opCode = "dequeue"
	opPop     opCode = "pop"
	opGripper opCode = "gripper"
	opIO      opCode = "io"
	opGet     opCode = "get"
	opCustom  opCode = "custom"
)

// Instruction is one request line to the runtime. Every instruction is
// answered by exactly one reply line.
type Instruction struct {
	op      opCode
	command RobotCommand
	push    bool
	gripper GripperCommand
	ioTgt   IOTarget
	ioPort  uint16
	io      ioAction
	query   QueryTarget
	custom  CustomCommand
}

// Exec runs one command immediately.
func Exec(command RobotCommand) Instruction {
	return Instruction{op: opExecute, command: command}
}

// Enqueue appends one command to the runtime's pending queue.
func Enqueue(command RobotCommand) Instruction {
	return Instruction{op: opEnqueue, command: command}
}

// Dequeue runs every pending queued command and clears the queue.
func Dequeue() Instruction {
	return Instruction{op: opDequeue}
}

// DequeuePush runs the pending queue and keeps it on the runtime's queue
// stack so a later Pop can discard it.
func DequeuePush() Instruction {
	return Instruction{op: opDequeue, push: true}
}

// Pop discards the top retained queue on the runtime's queue stack.
func Pop() Instruction {
	return Instruction{op: opPop}
}

// Gripper wraps a gripper command.
func Gripper(command GripperCommand) Instruction {
	return Instruction{op: opGripper, gripper: command}
}

// IOGet reads one digital input port.
func IOGet(target IOTarget, port uint16) Instruction {
	return Instruction{op: opIO, ioTgt: target, ioPort: port}
}

// IOSet writes one digital output port.
func IOSet(target IOTarget, port uint16, state bool) Instruction {
	return Instruction{op: opIO, ioTgt: target, ioPort: port, io: ioAction{set: true, state: state}}
}

// Get reads robot state named by the query target.
func Get(query QueryTarget) Instruction {
	return Instruction{op: opGet, query: query}
}

// Custom sends an application-defined key/value command.
func Custom(command CustomCommand) Instruction {
	return Instruction{op: opCustom, custom: command}
}

// OpCode reports the instruction's wire discriminator.
func (in Instruction) OpCode() string { return string(in.op) }
