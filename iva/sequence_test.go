package iva

import (
	"testing"

	"github.com/dizzyi/inovo-go/geometry"
)

func TestSequenceBuildsInOrder(t *testing.T) {
	seq := NewSequence().
		ThenSetParam(DefaultParam()).
		ThenLinear(geometry.Transform{X: 100}).
		ThenSleep(0.5).
		ThenJoint(geometry.JointCoord{J1: 45}).
		ThenSync()
	want := []string{"set_parameter", "motion", "sleep", "motion", "synchronize"}
	cmds := seq.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len: got %d want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Action() != want[i] {
			t.Fatalf("command %d: got %s want %s", i, cmd.Action(), want[i])
		}
	}
}

func TestSequenceForksDoNotAlias(t *testing.T) {
	base := NewSequence(Sleep(1))
	a := base.ThenSync()
	b := base.ThenSleep(2)
	if a.Len() != 2 || b.Len() != 2 {
		t.Fatalf("lens: %d %d", a.Len(), b.Len())
	}
	if got := a.Commands()[1].Action(); got != "synchronize" {
		t.Fatalf("fork a overwritten: %s", got)
	}
	if got := b.Commands()[1].Action(); got != "sleep" {
		t.Fatalf("fork b overwritten: %s", got)
	}
}

func TestSequenceFromSliceCopies(t *testing.T) {
	cmds := []RobotCommand{Synchronize(), Sleep(1)}
	seq := NewSequence(cmds...)
	cmds[0] = Sleep(9)
	if got := seq.Commands()[0].Action(); got != "synchronize" {
		t.Fatalf("backing slice shared: %s", got)
	}
}
