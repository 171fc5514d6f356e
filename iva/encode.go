package iva

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dizzyi/inovo-go/geometry"
)

// Numeric precision on the wire, in decimal places.
const (
	precGeometry = 2
	precSeconds  = 3
	precParam    = 5
)

var (
	cartesianKeys = [6]string{"x", "y", "z", "rx", "ry", "rz"}
	jointKeys     = [6]string{"j1", "j2", "j3", "j4", "j5", "j6"}
)

// Encode renders one instruction as a single JSON line, without the line
// terminator. Field order and numeric precision are fixed, so equal
// instructions always encode to equal lines.
func Encode(in Instruction) (string, error) {
	w := &fieldWriter{}
	w.addString("op_code", string(in.op))
	switch in.op {
	case opExecute:
		if err := writeCommand(w, in.command); err != nil {
			return "", err
		}
		w.addInt("enter_context", btoi(in.push))
	case opEnqueue:
		if err := writeCommand(w, in.command); err != nil {
			return "", err
		}
	case opDequeue:
		w.addInt("enter_context", btoi(in.push))
	case opPop:
	case opGripper:
		w.addString("action", in.gripper.action)
		if in.gripper.action == "set" {
			w.addString("label", in.gripper.label)
		}
	case opIO:
		w.addString("target", string(in.ioTgt))
		w.addInt("port", int(in.ioPort))
		if in.io.set {
			w.addString("action", "set")
			w.addInt("state", btoi(in.io.state))
		} else {
			w.addString("action", "get")
		}
	case opGet:
		w.addString("target", in.query.target)
		if in.query.target == "data" {
			w.addString("key", in.query.key)
		}
	case opCustom:
		if err := writeCustom(w, in.custom); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: empty instruction", ErrInvalidInstruction)
	}
	return w.object(), nil
}

func writeCommand(w *fieldWriter, c RobotCommand) error {
	w.addString("action", string(c.action))
	switch c.action {
	case actionSynchronize:
	case actionSleep:
		w.addNumber("second", c.seconds, precSeconds)
	case actionSetParameter:
		w.addNumber("speed", c.param.speed, precParam)
		w.addNumber("accel", c.param.accel, precParam)
		w.addNumber("blend_linear", c.param.blendLinear, precParam)
		w.addNumber("blend_angular", c.param.blendAngular, precParam)
		w.addNumber("tcp_speed_linear", c.param.tcpSpeedLinear, precParam)
		w.addNumber("tcp_speed_angular", c.param.tcpSpeedAngular, precParam)
	case actionMotion:
		w.addString("motion_mode", string(c.mode))
		return writeTarget(w, c.target)
	default:
		return fmt.Errorf("%w: empty robot command", ErrInvalidInstruction)
	}
	return nil
}

func writeTarget(w *fieldWriter, pose geometry.Pose) error {
	if pose == nil {
		return fmt.Errorf("%w: motion without target", ErrInvalidInstruction)
	}
	q := pose.Components()
	var keys [6]string
	switch pose.Kind() {
	case geometry.PoseCartesian:
		w.addString("target", "transform")
		keys = cartesianKeys
	case geometry.PoseJoint:
		w.addString("target", "joint_coord")
		keys = jointKeys
	default:
		return fmt.Errorf("%w: unknown pose kind %d", ErrInvalidInstruction, pose.Kind())
	}
	for i, k := range keys {
		w.addNumber(k, q[i], precGeometry)
	}
	return nil
}

func writeCustom(w *fieldWriter, c CustomCommand) error {
	args := append([]customArg(nil), c.args...)
	sort.Slice(args, func(i, j int) bool { return args[i].key < args[j].key })
	for _, a := range args {
		if !a.isFloat {
			w.addString(a.key, a.str)
			continue
		}
		if math.IsNaN(a.num) || math.IsInf(a.num, 0) {
			return fmt.Errorf("%w: custom arg %q is not finite", ErrInvalidInstruction, a.key)
		}
		w.addFloat(a.key, a.num)
	}
	return nil
}

// fieldWriter assembles one JSON object with caller-controlled field order
// and fixed numeric precision.
type fieldWriter struct {
	b strings.Builder
	n int
}

func (w *fieldWriter) addKey(k string) {
	if w.n == 0 {
		w.b.WriteByte('{')
	} else {
		w.b.WriteByte(',')
	}
	w.n++
	kb, _ := json.Marshal(k)
	w.b.Write(kb)
	w.b.WriteByte(':')
}

func (w *fieldWriter) addString(k, v string) {
	w.addKey(k)
	vb, _ := json.Marshal(v)
	w.b.Write(vb)
}

func (w *fieldWriter) addNumber(k string, v float64, prec int) {
	w.addKey(k)
	w.b.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
}

func (w *fieldWriter) addFloat(k string, v float64) {
	w.addKey(k)
	w.b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

func (w *fieldWriter) addInt(k string, v int) {
	w.addKey(k)
	w.b.WriteString(strconv.Itoa(v))
}

func (w *fieldWriter) object() string {
	if w.n == 0 {
		return "{}"
	}
	w.b.WriteByte('}')
	return w.b.String()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
