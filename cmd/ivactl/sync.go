package main

import (
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Wait for queued motion to settle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Synchronize()
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
