package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// wireInstruction is the permissive decode shape for one request line.
// Pose fields are pointers so absent and zero stay distinguishable.
type wireInstruction struct {
	OpCode       string  `json:"op_code"`
	Action       string  `json:"action"`
	EnterContext int     `json:"enter_context"`
	MotionMode   string  `json:"motion_mode"`
	Target       string  `json:"target"`
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Port         int     `json:"port"`
	State        int     `json:"state"`
	Second       float64 `json:"second"`

	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
	Z  *float64 `json:"z"`
	RX *float64 `json:"rx"`
	RY *float64 `json:"ry"`
	RZ *float64 `json:"rz"`

	J1 *float64 `json:"j1"`
	J2 *float64 `json:"j2"`
	J3 *float64 `json:"j3"`
	J4 *float64 `json:"j4"`
	J5 *float64 `json:"j5"`
	J6 *float64 `json:"j6"`
}

// simulator answers instructions against an imagined arm. The cartesian
// and joint poses are tracked independently; there is no kinematic model
// tying them together.
type simulator struct {
	transform [6]float64 // x, y, z in meters; rx, ry, rz in radians
	joints    [6]float64 // degrees

	queue    []wireInstruction
	retained [][]wireInstruction

	io      map[string]map[int]bool
	gripper float64
	data    map[string]string

	sleep func(time.Duration)
	log   zerolog.Logger
}

func newSimulator(data map[string]string, log zerolog.Logger) *simulator {
	if data == nil {
		data = make(map[string]string)
	}
	return &simulator{
		transform: [6]float64{0.3, 0, 0.4, 0, 0, 0},
		joints:    [6]float64{0, -45, 90, 0, 45, 0},
		io: map[string]map[int]bool{
			"beckhoff": {},
			"wrist":    {},
		},
		gripper: 1,
		data:    data,
		sleep:   time.Sleep,
		log:     log,
	}
}

// handleLine answers one request line.
func (s *simulator) handleLine(line string) string {
	var in wireInstruction
	if err := json.Unmarshal([]byte(line), &in); err != nil {
		return "Error: bad instruction"
	}

	switch in.OpCode {
	case "execute":
		return s.execute(in)
	case "enqueue":
		s.queue = append(s.queue, in)
		return "OK"
	case "dequeue":
		batch := s.queue
		s.queue = nil
		for _, cmd := range batch {
			if reply := s.execute(cmd); reply != "OK" {
				return reply
			}
		}
		if in.EnterContext == 1 {
			s.retained = append(s.retained, batch)
		}
		return "OK"
	case "pop":
		if len(s.retained) == 0 {
			return "Error: nothing to pop"
		}
		s.retained = s.retained[:len(s.retained)-1]
		return "OK"
	case "gripper":
		return s.gripperOp(in)
	case "io":
		return s.ioOp(in)
	case "get":
		return s.get(in)
	case "custom":
		return s.custom(line)
	default:
		return fmt.Sprintf("Error: unknown op %q", in.OpCode)
	}
}

func (s *simulator) execute(in wireInstruction) string {
	switch in.Action {
	case "synchronize":
		return "OK"
	case "sleep":
		s.sleep(time.Duration(in.Second * float64(time.Second)))
		return "OK"
	case "set_parameter":
		return "OK"
	case "motion":
		return s.motion(in)
	default:
		return fmt.Sprintf("Error: unknown action %q", in.Action)
	}
}

func (s *simulator) motion(in wireInstruction) string {
	relative := in.MotionMode == "linear_relative" || in.MotionMode == "joint_relative"
	switch in.Target {
	case "transform":
		target := [6]float64{
			fieldOr(in.X, 0) / 1000,
			fieldOr(in.Y, 0) / 1000,
			fieldOr(in.Z, 0) / 1000,
			fieldOr(in.RX, 0) * math.Pi / 180,
			fieldOr(in.RY, 0) * math.Pi / 180,
			fieldOr(in.RZ, 0) * math.Pi / 180,
		}
		if relative {
			for i := range s.transform {
				s.transform[i] += target[i]
			}
		} else {
			s.transform = target
		}
	case "joint_coord":
		target := [6]float64{
			fieldOr(in.J1, 0), fieldOr(in.J2, 0), fieldOr(in.J3, 0),
			fieldOr(in.J4, 0), fieldOr(in.J5, 0), fieldOr(in.J6, 0),
		}
		if relative {
			for i := range s.joints {
				s.joints[i] += target[i]
			}
		} else {
			s.joints = target
		}
	default:
		return fmt.Sprintf("Error: unknown motion target %q", in.Target)
	}
	s.log.Debug().Str("mode", in.MotionMode).Msg("sim motion")
	return "OK"
}

func (s *simulator) gripperOp(in wireInstruction) string {
	switch in.Action {
	case "activate":
		s.gripper = 1
		return "OK"
	case "get":
		return strconv.FormatFloat(s.gripper, 'g', -1, 64)
	case "set":
		switch in.Label {
		case "open":
			s.gripper = 1
		case "close", "closed":
			s.gripper = 0
		default:
			s.gripper = 0.5
		}
		return "OK"
	default:
		return fmt.Sprintf("Error: unknown gripper action %q", in.Action)
	}
}

func (s *simulator) ioOp(in wireInstruction) string {
	bank, ok := s.io[in.Target]
	if !ok {
		return fmt.Sprintf("Error: unknown io target %q", in.Target)
	}
	switch in.Action {
	case "get":
		if bank[in.Port] {
			return "True"
		}
		return "False"
	case "set":
		bank[in.Port] = in.State == 1
		return "OK"
	default:
		return fmt.Sprintf("Error: unknown io action %q", in.Action)
	}
}

func (s *simulator) get(in wireInstruction) string {
	switch in.Target {
	case "transform":
		return fmt.Sprintf("{x: %.6f, y: %.6f, z: %.6f, rx: %.6f, ry: %.6f, rz: %.6f}",
			s.transform[0], s.transform[1], s.transform[2],
			s.transform[3], s.transform[4], s.transform[5])
	case "joint_coord":
		return fmt.Sprintf("{j1: %.4f, j2: %.4f, j3: %.4f, j4: %.4f, j5: %.4f, j6: %.4f}",
			s.joints[0], s.joints[1], s.joints[2],
			s.joints[3], s.joints[4], s.joints[5])
	case "data":
		value, ok := s.data[in.Key]
		if !ok {
			return fmt.Sprintf("Error: no data %q", in.Key)
		}
		return value
	default:
		return fmt.Sprintf("Error: unknown get target %q", in.Target)
	}
}

// custom echoes the value of an "echo" argument when present, otherwise
// acknowledges the command.
func (s *simulator) custom(line string) string {
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return "Error: bad instruction"
	}
	if value, ok := payload["echo"]; ok {
		switch v := value.(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return "OK"
}

func fieldOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
