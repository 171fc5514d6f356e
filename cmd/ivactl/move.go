package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/geometry"
	"github.com/dizzyi/inovo-go/iva"
)

var cartesianFlags = []string{"x", "y", "z", "rx", "ry", "rz"}
var jointFlags = []string{"j1", "j2", "j3", "j4", "j5", "j6"}

var moveCmd = &cobra.Command{
	Use:   "move <linear|linear_relative|joint|joint_relative>",
	Short: "Move the arm to a target pose",
	Long: `Move the arm under the given motion mode. Cartesian targets use
--x/--y/--z in millimeters and --rx/--ry/--rz in degrees; joint targets
use --j1..--j6 in degrees. Joint modes accept either target kind.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeFromString(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		anyCart := anyChanged(cmd, cartesianFlags)
		anyJoint := anyChanged(cmd, jointFlags)
		switch {
		case anyCart && anyJoint:
			return fmt.Errorf("move: cartesian and joint flags cannot be mixed")
		case !anyCart && !anyJoint:
			return fmt.Errorf("move: a target pose is required")
		case anyJoint && (mode == iva.ModeLinear || mode == iva.ModeLinearRelative):
			return fmt.Errorf("move: %s requires a cartesian target", mode)
		}

		var target geometry.Pose
		if anyJoint {
			target = geometry.JointCoord{
				J1: floatFlag(flags, "j1"), J2: floatFlag(flags, "j2"), J3: floatFlag(flags, "j3"),
				J4: floatFlag(flags, "j4"), J5: floatFlag(flags, "j5"), J6: floatFlag(flags, "j6"),
			}
		} else {
			target = geometry.Transform{
				X: floatFlag(flags, "x"), Y: floatFlag(flags, "y"), Z: floatFlag(flags, "z"),
				RX: floatFlag(flags, "rx"), RY: floatFlag(flags, "ry"), RZ: floatFlag(flags, "rz"),
			}
		}

		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Motion(mode, target)
	},
}

func init() {
	f := moveCmd.Flags()
	f.Float64("x", 0, "x target in millimeters")
	f.Float64("y", 0, "y target in millimeters")
	f.Float64("z", 0, "z target in millimeters")
	f.Float64("rx", 0, "rotation about x in degrees")
	f.Float64("ry", 0, "rotation about y in degrees")
	f.Float64("rz", 0, "rotation about z in degrees")
	f.Float64("j1", 0, "joint 1 in degrees")
	f.Float64("j2", 0, "joint 2 in degrees")
	f.Float64("j3", 0, "joint 3 in degrees")
	f.Float64("j4", 0, "joint 4 in degrees")
	f.Float64("j5", 0, "joint 5 in degrees")
	f.Float64("j6", 0, "joint 6 in degrees")
	rootCmd.AddCommand(moveCmd)
}
