package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/geometry"
	"github.com/dizzyi/inovo-go/iva"
)

var seqCmd = &cobra.Command{
	Use:   "seq <file.toml>",
	Short: "Run a command sequence from a TOML file",
	Long: `Queue every step of the file on the runtime, then run the batch with
one dequeue. Steps are [[step]] tables with an action of linear,
linear_relative, joint, joint_relative, sleep, sync or set_param.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := loadSequence(args[0])
		if err != nil {
			return err
		}

		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Sequence(seq)
	},
}

type sequenceFile struct {
	Step []sequenceStep `toml:"step"`
}

type sequenceStep struct {
	Action  string   `toml:"action"`
	Seconds *float64 `toml:"seconds"`

	X  *float64 `toml:"x"`
	Y  *float64 `toml:"y"`
	Z  *float64 `toml:"z"`
	RX *float64 `toml:"rx"`
	RY *float64 `toml:"ry"`
	RZ *float64 `toml:"rz"`

	J1 *float64 `toml:"j1"`
	J2 *float64 `toml:"j2"`
	J3 *float64 `toml:"j3"`
	J4 *float64 `toml:"j4"`
	J5 *float64 `toml:"j5"`
	J6 *float64 `toml:"j6"`

	Speed           *float64 `toml:"speed"`
	Accel           *float64 `toml:"accel"`
	BlendLinear     *float64 `toml:"blend_linear"`
	BlendAngular    *float64 `toml:"blend_angular"`
	TCPSpeedLinear  *float64 `toml:"tcp_speed_linear"`
	TCPSpeedAngular *float64 `toml:"tcp_speed_angular"`
}

func loadSequence(path string) (iva.CommandSequence, error) {
	var file sequenceFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return iva.CommandSequence{}, fmt.Errorf("load sequence: %w", err)
	}
	if len(file.Step) == 0 {
		return iva.CommandSequence{}, fmt.Errorf("load sequence: %s has no steps", path)
	}

	seq := iva.NewSequence()
	for i, step := range file.Step {
		command, err := step.command()
		if err != nil {
			return iva.CommandSequence{}, fmt.Errorf("load sequence: step %d: %w", i+1, err)
		}
		seq = seq.Then(command)
	}
	return seq, nil
}

func (s sequenceStep) command() (iva.RobotCommand, error) {
	switch s.Action {
	case "linear", "linear_relative", "joint", "joint_relative":
		mode, err := modeFromString(s.Action)
		if err != nil {
			return iva.RobotCommand{}, err
		}
		target, err := s.target(mode)
		if err != nil {
			return iva.RobotCommand{}, err
		}
		return iva.Motion(mode, target), nil
	case "sleep":
		if s.Seconds == nil || *s.Seconds < 0 {
			return iva.RobotCommand{}, fmt.Errorf("sleep needs a non-negative seconds value")
		}
		return iva.Sleep(*s.Seconds), nil
	case "sync":
		return iva.Synchronize(), nil
	case "set_param":
		return iva.SetParameter(s.param()), nil
	case "":
		return iva.RobotCommand{}, fmt.Errorf("missing action")
	default:
		return iva.RobotCommand{}, fmt.Errorf("unknown action %q", s.Action)
	}
}

func (s sequenceStep) target(mode iva.MotionMode) (geometry.Pose, error) {
	anyCart := s.X != nil || s.Y != nil || s.Z != nil || s.RX != nil || s.RY != nil || s.RZ != nil
	anyJoint := s.J1 != nil || s.J2 != nil || s.J3 != nil || s.J4 != nil || s.J5 != nil || s.J6 != nil
	switch {
	case anyCart && anyJoint:
		return nil, fmt.Errorf("cartesian and joint fields cannot be mixed")
	case !anyCart && !anyJoint:
		return nil, fmt.Errorf("a target pose is required")
	case anyJoint && (mode == iva.ModeLinear || mode == iva.ModeLinearRelative):
		return nil, fmt.Errorf("%s requires a cartesian target", mode)
	}
	if anyJoint {
		return geometry.JointCoord{
			J1: deref(s.J1), J2: deref(s.J2), J3: deref(s.J3),
			J4: deref(s.J4), J5: deref(s.J5), J6: deref(s.J6),
		}, nil
	}
	return geometry.Transform{
		X: deref(s.X), Y: deref(s.Y), Z: deref(s.Z),
		RX: deref(s.RX), RY: deref(s.RY), RZ: deref(s.RZ),
	}, nil
}

func (s sequenceStep) param() iva.MotionParam {
	param := iva.DefaultParam()
	if s.Speed != nil {
		param = param.WithSpeed(*s.Speed)
	}
	if s.Accel != nil {
		param = param.WithAccel(*s.Accel)
	}
	if s.BlendLinear != nil {
		param = param.WithBlendLinear(*s.BlendLinear)
	}
	if s.BlendAngular != nil {
		param = param.WithBlendAngular(*s.BlendAngular)
	}
	if s.TCPSpeedLinear != nil {
		param = param.WithTCPSpeedLinear(*s.TCPSpeedLinear)
	}
	if s.TCPSpeedAngular != nil {
		param = param.WithTCPSpeedAngular(*s.TCPSpeedAngular)
	}
	return param
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func init() {
	rootCmd.AddCommand(seqCmd)
}
