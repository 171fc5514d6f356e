package robot

import (
	"fmt"

	"github.com/dizzyi/inovo-go/iva"
)

// enqueueAll queues every command in seq, requiring an ack for each, then
// sends final to run the batch. The first refused instruction aborts the
// submission; commands already queued stay queued on the runtime.
func enqueueAll(m Machine, seq iva.CommandSequence, final iva.Instruction) error {
	cmds := seq.Commands()
	for i, cmd := range cmds {
		if err := m.SendInstruction(iva.Enqueue(cmd)); err != nil {
			return fmt.Errorf("%w: enqueue %d/%d: %w", ErrSequenceAborted, i+1, len(cmds), err)
		}
	}
	if err := m.SendInstruction(final); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSequenceAborted, final.OpCode(), err)
	}
	return nil
}

// Sequence queues every command in seq and runs the batch with a single
// dequeue. Failures wrap ErrSequenceAborted and leave already queued
// commands on the runtime; a later dequeue would still run them.
func (r *Robot) Sequence(seq iva.CommandSequence) error {
	r.log.Debug().Int("commands", seq.Len()).Msg("robot.Sequence")
	return enqueueAll(r, seq, iva.Dequeue())
}

// sequenceContext runs a batch and keeps it on the runtime's queue stack
// until exit pops it.
type sequenceContext struct {
	seq iva.CommandSequence
}

func (c *sequenceContext) Enter(m Machine) error {
	return enqueueAll(m, c.seq, iva.DequeuePush())
}

func (c *sequenceContext) Exit(m Machine) error {
	return m.SendInstruction(iva.Pop())
}

func (c *sequenceContext) Label() string { return "sequence" }

// WithSequence runs seq with the batch retained on the runtime's queue
// stack and returns a guard that pops it.
func (r *Robot) WithSequence(seq iva.CommandSequence) (*Guard, error) {
	r.log.Debug().Int("commands", seq.Len()).Msg("robot.WithSequence")
	return r.Scoped(&sequenceContext{seq: seq})
}
