package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep <seconds>",
	Short: "Pause the runtime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.ParseFloat(args[0], 64)
		if err != nil || seconds < 0 {
			return fmt.Errorf("invalid duration %q", args[0])
		}

		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Sleep(seconds)
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
}
