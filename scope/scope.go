// Package scope owns the reversible-operation stack: operations enter a
// machine into some state and are unwound strictly last-in first-out.
package scope

import "errors"

var ErrNoContext = errors.New("scope: no context to exit")

// Operation is a reversible action on a machine. Enter moves the machine
// into the operation's state; Exit undoes it. Label names the operation
// for introspection and logs.
type Operation[M any] interface {
	Enter(machine M) error
	Exit(machine M) error
	Label() string
}

// Stack tracks the operations a machine is currently under. An operation
// is recorded only after its Enter succeeds, and Exit always unwinds the
// most recent entry first.
type Stack[M any] struct {
	machine M
	entries []Operation[M]
}

// NewStack binds a stack to its machine.
func NewStack[M any](machine M) *Stack[M] {
	return &Stack[M]{machine: machine}
}

// Enter runs op.Enter and records op on success. On failure nothing is
// recorded and the error is returned.
func (s *Stack[M]) Enter(op Operation[M]) error {
	if err := op.Enter(s.machine); err != nil {
		return err
	}
	s.entries = append(s.entries, op)
	return nil
}

// Exit unwinds the most recent operation. The entry is removed before its
// Exit runs, so a failing teardown never leaves a zombie on the stack; the
// teardown error is still returned. Exit on an empty stack reports
// ErrNoContext.
func (s *Stack[M]) Exit() error {
	if len(s.entries) == 0 {
		return ErrNoContext
	}
	op := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return op.Exit(s.machine)
}

// Scoped enters op and returns a guard that exits it exactly once. Guards
// follow defer discipline: close them in reverse order of creation.
func (s *Stack[M]) Scoped(op Operation[M]) (*Guard[M], error) {
	if err := s.Enter(op); err != nil {
		return nil, err
	}
	return &Guard[M]{stack: s}, nil
}

// Depth reports how many operations are currently entered.
func (s *Stack[M]) Depth() int { return len(s.entries) }

// Labels reports the labels of entered operations, oldest first.
func (s *Stack[M]) Labels() []string {
	out := make([]string, len(s.entries))
	for i, op := range s.entries {
		out[i] = op.Label()
	}
	return out
}

// Guard unwinds one scoped operation. Close is idempotent; calls after the
// first return nil.
type Guard[M any] struct {
	stack  *Stack[M]
	closed bool
}

func (g *Guard[M]) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	return g.stack.Exit()
}
