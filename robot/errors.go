package robot

import "errors"

var (
	// ErrSequenceAborted reports that a command sequence stopped at the
	// first instruction the runtime did not acknowledge. Commands already
	// queued remain queued.
	ErrSequenceAborted = errors.New("robot: command sequence aborted")

	// ErrUnknownPoseKind reports a pose query for a kind the runtime
	// cannot answer.
	ErrUnknownPoseKind = errors.New("robot: unknown pose kind")
)
