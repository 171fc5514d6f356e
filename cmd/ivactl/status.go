package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read the robot's current pose",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()

		tf, err := r.CurrentTransform()
		if err != nil {
			return err
		}
		joints, err := r.CurrentJoints()
		if err != nil {
			return err
		}

		fmt.Printf("transform  x=%.2f y=%.2f z=%.2f mm  rx=%.2f ry=%.2f rz=%.2f deg\n",
			tf.X, tf.Y, tf.Z, tf.RX, tf.RY, tf.RZ)
		fmt.Printf("joints     j1=%.2f j2=%.2f j3=%.2f j4=%.2f j5=%.2f j6=%.2f deg\n",
			joints.J1, joints.J2, joints.J3, joints.J4, joints.J5, joints.J6)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
