package main

import (
	"fmt"

	"github.com/spf13/cobra"

	inovo "github.com/dizzyi/inovo-go"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ivactl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ivactl version %s\n", inovo.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
