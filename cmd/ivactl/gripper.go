package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gripperCmd = &cobra.Command{
	Use:   "gripper <activate|get|set> [label]",
	Short: "Drive the tool flange gripper",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		action := args[0]
		switch action {
		case "activate", "get":
			if len(args) != 1 {
				return fmt.Errorf("gripper %s takes no label", action)
			}
		case "set":
			if len(args) != 2 {
				return fmt.Errorf("gripper set needs a width label")
			}
		default:
			return fmt.Errorf("unknown gripper action %q", action)
		}

		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()

		switch action {
		case "activate":
			return r.GripperActivate()
		case "get":
			width, err := r.GripperWidth()
			if err != nil {
				return err
			}
			fmt.Printf("%g\n", width)
			return nil
		default:
			return r.GripperSet(args[1])
		}
	},
}

func init() {
	rootCmd.AddCommand(gripperCmd)
}
