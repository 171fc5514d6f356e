package robot

import (
	"errors"
	"testing"

	"github.com/dizzyi/inovo-go/geometry"
	"github.com/dizzyi/inovo-go/iva"
)

func TestMotionContextAbsoluteRestoresSnapshot(t *testing.T) {
	conn := newFake(
		reply{line: "{x: 0.05, y: 0.00, z: 0.30, rx: 0, ry: 0, rz: 0}"},
		okReply, // move to target
		okReply, // move back
	)
	r := newTestRobot(t, conn)

	guard, err := r.WithLinear(geometry.Transform{X: 100})
	if err != nil {
		t.Fatalf("WithLinear: %v", err)
	}
	if r.ContextDepth() != 1 {
		t.Fatalf("depth = %d, want 1", r.ContextDepth())
	}
	wantSent(t, conn, 0, `"op_code":"get"`, `"target":"transform"`)
	wantSent(t, conn, 1, `"motion_mode":"linear"`, `"x":100.00`)

	if err := guard.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wantSent(t, conn, 2, `"motion_mode":"linear"`, `"x":50.00`, `"z":300.00`)
	if r.ContextDepth() != 0 {
		t.Fatalf("depth = %d, want 0", r.ContextDepth())
	}
}

func TestMotionContextRelativeReplaysNegatedDelta(t *testing.T) {
	conn := newFake(okReply, okReply)
	r := newTestRobot(t, conn)

	guard, err := r.WithLinearRelative(geometry.Transform{X: 25, RZ: 90})
	if err != nil {
		t.Fatalf("WithLinearRelative: %v", err)
	}
	wantSent(t, conn, 0, `"motion_mode":"linear_relative"`, `"x":25.00`, `"rz":90.00`)

	if err := guard.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wantSent(t, conn, 1, `"motion_mode":"linear_relative"`, `"x":-25.00`, `"rz":-90.00`)
	if len(conn.sent) != 2 {
		t.Fatalf("sent %d lines, want 2 (no pose snapshot for relative)", len(conn.sent))
	}
}

func TestMotionContextJointRelative(t *testing.T) {
	conn := newFake(okReply, okReply)
	r := newTestRobot(t, conn)

	guard, err := r.WithJointRelative(geometry.JointCoord{J1: 30})
	if err != nil {
		t.Fatalf("WithJointRelative: %v", err)
	}
	wantSent(t, conn, 0, `"motion_mode":"joint_relative"`, `"target":"joint_coord"`, `"j1":30.00`)

	if err := guard.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wantSent(t, conn, 1, `"j1":-30.00`)
}

func TestMotionContextJointModeSnapshotsTargetKind(t *testing.T) {
	conn := newFake(
		reply{line: "{x: 0.10, y: 0, z: 0, rx: 0, ry: 0, rz: 0}"},
		okReply,
	)
	r := newTestRobot(t, conn)

	// A cartesian target under joint mode snapshots the cartesian pose.
	if _, err := r.WithJoint(geometry.Transform{X: 200}); err != nil {
		t.Fatalf("WithJoint: %v", err)
	}
	wantSent(t, conn, 0, `"target":"transform"`)
	wantSent(t, conn, 1, `"motion_mode":"joint"`, `"target":"transform"`, `"x":200.00`)
}

func TestMotionContextSnapshotFailureSendsNoMotion(t *testing.T) {
	conn := newFake(reply{err: errors.New("link lost")})
	r := newTestRobot(t, conn)

	_, err := r.WithLinear(geometry.Transform{X: 100})
	if err == nil {
		t.Fatal("enter succeeded with failed snapshot")
	}
	if len(conn.sent) != 1 {
		t.Fatalf("sent %d lines, want only the pose query", len(conn.sent))
	}
	if r.ContextDepth() != 0 {
		t.Fatalf("depth = %d after failed enter, want 0", r.ContextDepth())
	}
}

func TestMotionContextMoveFailureLeavesNoContext(t *testing.T) {
	conn := newFake(
		reply{line: "{x: 0, y: 0, z: 0, rx: 0, ry: 0, rz: 0}"},
		reply{line: "Error: out of reach"},
	)
	r := newTestRobot(t, conn)

	_, err := r.WithLinear(geometry.Transform{X: 9000})
	if !errors.Is(err, iva.ErrUnexpectedResponse) {
		t.Fatalf("enter error = %v, want ErrUnexpectedResponse", err)
	}
	if r.ContextDepth() != 0 {
		t.Fatalf("depth = %d after failed enter, want 0", r.ContextDepth())
	}
	if len(conn.sent) != 2 {
		t.Fatalf("sent %d lines, want 2 (no restore motion)", len(conn.sent))
	}
}

func TestParamContextSeedsDefaultOnFirstEnter(t *testing.T) {
	conn := newFake(okReply)
	r := newTestRobot(t, conn)

	if _, err := r.WithParam(iva.MotionParam{}.WithSpeed(50)); err != nil {
		t.Fatalf("WithParam: %v", err)
	}
	wantSent(t, conn, 0, `"action":"set_parameter"`, `"speed":0.50000`)
	if r.Params().Len() != 2 {
		t.Fatalf("param stack len = %d, want default + new", r.Params().Len())
	}
}

func TestParamContextNestingRestoresInOrder(t *testing.T) {
	conn := newFake(okReply, okReply, okReply, okReply)
	r := newTestRobot(t, conn)

	outer, err := r.WithParam(iva.MotionParam{}.WithSpeed(50))
	if err != nil {
		t.Fatalf("outer: %v", err)
	}
	inner, err := r.WithParam(iva.MotionParam{}.WithSpeed(25))
	if err != nil {
		t.Fatalf("inner: %v", err)
	}
	wantSent(t, conn, 1, `"speed":0.25000`)

	if err := inner.Close(); err != nil {
		t.Fatalf("inner close: %v", err)
	}
	wantSent(t, conn, 2, `"speed":0.50000`)

	if err := outer.Close(); err != nil {
		t.Fatalf("outer close: %v", err)
	}
	wantSent(t, conn, 3, `"speed":1.00000`)
	if r.Params().Len() != 1 {
		t.Fatalf("param stack len = %d, want seeded default only", r.Params().Len())
	}
}

func TestParamContextEnterFailureLeavesStackUntouched(t *testing.T) {
	conn := newFake(reply{line: "Error: estop"})
	r := newTestRobot(t, conn)

	if _, err := r.WithParam(iva.MotionParam{}.WithSpeed(10)); err == nil {
		t.Fatal("enter succeeded on refused set_parameter")
	}
	if r.Params().Len() != 0 {
		t.Fatalf("param stack len = %d after failed enter, want 0", r.Params().Len())
	}
	if r.ContextDepth() != 0 {
		t.Fatalf("depth = %d after failed enter, want 0", r.ContextDepth())
	}
}

func TestNestedContextsUnwindLIFO(t *testing.T) {
	conn := newFake(
		okReply, // param enter
		okReply, // relative move enter
		okReply, // relative move exit
		okReply, // param exit
	)
	r := newTestRobot(t, conn)

	if err := r.Enter(NewParamContext(iva.MotionParam{}.WithSpeed(50))); err != nil {
		t.Fatalf("enter param: %v", err)
	}
	if err := r.Enter(NewMotionContext(iva.ModeLinearRelative, geometry.Transform{Z: -40})); err != nil {
		t.Fatalf("enter motion: %v", err)
	}

	labels := r.ContextLabels()
	if len(labels) != 2 || labels[0] != "param" || labels[1] != "motion:linear_relative" {
		t.Fatalf("labels = %v", labels)
	}

	if err := r.Exit(); err != nil {
		t.Fatalf("exit motion: %v", err)
	}
	wantSent(t, conn, 2, `"motion_mode":"linear_relative"`, `"z":40.00`)

	if err := r.Exit(); err != nil {
		t.Fatalf("exit param: %v", err)
	}
	wantSent(t, conn, 3, `"action":"set_parameter"`, `"speed":1.00000`)
}

func TestGuardCloseIsIdempotent(t *testing.T) {
	conn := newFake(okReply, okReply)
	r := newTestRobot(t, conn)

	guard, err := r.WithLinearRelative(geometry.Transform{Y: 10})
	if err != nil {
		t.Fatalf("WithLinearRelative: %v", err)
	}
	if err := guard.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := guard.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if len(conn.sent) != 2 {
		t.Fatalf("sent %d lines, want 2", len(conn.sent))
	}
}

func TestExitFailureStillUnwinds(t *testing.T) {
	conn := newFake(
		okReply,                     // enter
		reply{line: "Error: estop"}, // exit refused
	)
	r := newTestRobot(t, conn)

	guard, err := r.WithLinearRelative(geometry.Transform{X: 5})
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if err := guard.Close(); !errors.Is(err, iva.ErrUnexpectedResponse) {
		t.Fatalf("close error = %v, want ErrUnexpectedResponse", err)
	}
	if r.ContextDepth() != 0 {
		t.Fatalf("depth = %d after failed exit, want 0", r.ContextDepth())
	}
}
