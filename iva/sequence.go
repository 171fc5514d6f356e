package iva

import "github.com/dizzyi/inovo-go/geometry"

// CommandSequence is an append-only batch of robot commands, built fluently
// and submitted to the runtime queue as one unit. Each Then* returns a new
// value; forks never alias.
type CommandSequence struct {
	commands []RobotCommand
}

// NewSequence builds a sequence from zero or more commands.
func NewSequence(commands ...RobotCommand) CommandSequence {
	return CommandSequence{commands: append([]RobotCommand(nil), commands...)}
}

// Then appends one command.
func (s CommandSequence) Then(command RobotCommand) CommandSequence {
	return CommandSequence{commands: append(s.commands[:len(s.commands):len(s.commands)], command)}
}

func (s CommandSequence) ThenLinear(target geometry.Transform) CommandSequence {
	return s.Then(Linear(target))
}

func (s CommandSequence) ThenLinearRelative(target geometry.Transform) CommandSequence {
	return s.Then(LinearRelative(target))
}

func (s CommandSequence) ThenJoint(target geometry.Pose) CommandSequence {
	return s.Then(Joint(target))
}

func (s CommandSequence) ThenJointRelative(target geometry.Pose) CommandSequence {
	return s.Then(JointRelative(target))
}

func (s CommandSequence) ThenSleep(seconds float64) CommandSequence {
	return s.Then(Sleep(seconds))
}

func (s CommandSequence) ThenSync() CommandSequence {
	return s.Then(Synchronize())
}

func (s CommandSequence) ThenSetParam(param MotionParam) CommandSequence {
	return s.Then(SetParameter(param))
}

// Commands reports the batch in append order.
func (s CommandSequence) Commands() []RobotCommand {
	return append([]RobotCommand(nil), s.commands...)
}

// Len reports the number of commands in the batch.
func (s CommandSequence) Len() int { return len(s.commands) }
