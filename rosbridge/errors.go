package rosbridge

import "errors"

var (
	// ErrServiceRefused reports a service call the controller answered
	// with success=false, usually because the runtime is in the wrong
	// state for it.
	ErrServiceRefused = errors.New("rosbridge: service call refused")

	// ErrUnexpectedReply reports a reply that does not carry the field
	// the call expects.
	ErrUnexpectedReply = errors.New("rosbridge: unexpected reply")
)
