package iva

import (
	"errors"
	"math"
	"testing"

	"github.com/dizzyi/inovo-go/geometry"
)

func wantLine(t *testing.T, in Instruction, want string) {
	t.Helper()
	got, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != want {
		t.Fatalf("encode mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestEncodeExecuteSynchronize(t *testing.T) {
	wantLine(t, Exec(Synchronize()),
		`{"op_code":"execute","action":"synchronize","enter_context":0}`)
}

func TestEncodeExecuteSleep(t *testing.T) {
	wantLine(t, Exec(Sleep(1.5)),
		`{"op_code":"execute","action":"sleep","second":1.500,"enter_context":0}`)
}

func TestEncodeEnqueueLinearMotion(t *testing.T) {
	wantLine(t, Enqueue(Linear(geometry.Transform{X: 100.5, RZ: 90})),
		`{"op_code":"enqueue","action":"motion","motion_mode":"linear","target":"transform",`+
			`"x":100.50,"y":0.00,"z":0.00,"rx":0.00,"ry":0.00,"rz":90.00}`)
}

func TestEncodeExecuteJointMotion(t *testing.T) {
	wantLine(t, Exec(Joint(geometry.JointCoord{J1: 10})),
		`{"op_code":"execute","action":"motion","motion_mode":"joint","target":"joint_coord",`+
			`"j1":10.00,"j2":0.00,"j3":0.00,"j4":0.00,"j5":0.00,"j6":0.00,"enter_context":0}`)
}

func TestEncodeSetParameterDefaults(t *testing.T) {
	wantLine(t, Exec(SetParameter(DefaultParam())),
		`{"op_code":"execute","action":"set_parameter","speed":1.00000,"accel":1.00000,`+
			`"blend_linear":0.00100,"blend_angular":0.01745,"tcp_speed_linear":1.00000,`+
			`"tcp_speed_angular":12.56637,"enter_context":0}`)
}

func TestEncodeQueueInstructions(t *testing.T) {
	wantLine(t, Dequeue(), `{"op_code":"dequeue","enter_context":0}`)
	wantLine(t, DequeuePush(), `{"op_code":"dequeue","enter_context":1}`)
	wantLine(t, Pop(), `{"op_code":"pop"}`)
}

func TestEncodeGripper(t *testing.T) {
	wantLine(t, Gripper(GripperActivate()), `{"op_code":"gripper","action":"activate"}`)
	wantLine(t, Gripper(GripperGet()), `{"op_code":"gripper","action":"get"}`)
	wantLine(t, Gripper(GripperSet("wide")), `{"op_code":"gripper","action":"set","label":"wide"}`)
}

func TestEncodeDigitalIO(t *testing.T) {
	wantLine(t, IOSet(IOBeckhoff, 3, true),
		`{"op_code":"io","target":"beckhoff","port":3,"action":"set","state":1}`)
	wantLine(t, IOSet(IOBeckhoff, 3, false),
		`{"op_code":"io","target":"beckhoff","port":3,"action":"set","state":0}`)
	wantLine(t, IOGet(IOWrist, 0),
		`{"op_code":"io","target":"wrist","port":0,"action":"get"}`)
}

func TestEncodeQuery(t *testing.T) {
	wantLine(t, Get(QueryTransform()), `{"op_code":"get","target":"transform"}`)
	wantLine(t, Get(QueryJointCoord()), `{"op_code":"get","target":"joint_coord"}`)
	wantLine(t, Get(QueryData("count")), `{"op_code":"get","target":"data","key":"count"}`)
}

func TestEncodeCustomSortsKeys(t *testing.T) {
	cmd := NewCustom().AddString("keyword", "LIQUID").AddFloat("amount", 69.42)
	wantLine(t, Custom(cmd), `{"op_code":"custom","amount":69.42,"keyword":"LIQUID"}`)
}

func TestEncodeCustomReplacesKey(t *testing.T) {
	cmd := NewCustom().AddString("k", "a").AddString("k", "b")
	if cmd.Len() != 1 {
		t.Fatalf("len: got %d", cmd.Len())
	}
	wantLine(t, Custom(cmd), `{"op_code":"custom","k":"b"}`)
}

func TestEncodeIsDeterministic(t *testing.T) {
	in := Exec(Linear(geometry.Transform{X: 1, Y: 2, Z: 3, RX: 4, RY: 5, RZ: 6}))
	first, err := Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 0; i < 16; i++ {
		again, err := Encode(in)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if again != first {
			t.Fatalf("nondeterministic encode: %s vs %s", again, first)
		}
	}
}

func TestEncodeRejectsInvalidInstructions(t *testing.T) {
	cases := []Instruction{
		{},
		Exec(RobotCommand{}),
		Exec(Motion(ModeLinear, nil)),
		Custom(NewCustom().AddFloat("nan", math.NaN())),
	}
	for i, in := range cases {
		if _, err := Encode(in); !errors.Is(err, ErrInvalidInstruction) {
			t.Fatalf("case %d: expected ErrInvalidInstruction, got %v", i, err)
		}
	}
}
