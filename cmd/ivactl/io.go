package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/iva"
)

var ioCmd = &cobra.Command{
	Use:   "io <get|set>",
	Short: "Read or write a digital IO port",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		var target iva.IOTarget
		switch name, _ := flags.GetString("target"); name {
		case "beckhoff":
			target = iva.IOBeckhoff
		case "wrist":
			target = iva.IOWrist
		default:
			return fmt.Errorf("unknown io target %q (want beckhoff or wrist)", name)
		}
		port, _ := flags.GetUint16("port")

		switch args[0] {
		case "get":
			r, err := dialRobot(cmd)
			if err != nil {
				return err
			}
			defer r.Close()
			state, err := r.IOGet(target, port)
			if err != nil {
				return err
			}
			if state {
				fmt.Println("on")
			} else {
				fmt.Println("off")
			}
			return nil
		case "set":
			if !flags.Changed("state") {
				return fmt.Errorf("io set needs --state")
			}
			raw, _ := flags.GetString("state")
			state, err := parseOnOff(raw)
			if err != nil {
				return err
			}
			r, err := dialRobot(cmd)
			if err != nil {
				return err
			}
			defer r.Close()
			return r.IOSet(target, port, state)
		default:
			return fmt.Errorf("unknown io action %q", args[0])
		}
	},
}

func init() {
	f := ioCmd.Flags()
	f.String("target", "beckhoff", "io bank: beckhoff or wrist")
	f.Uint16("port", 0, "port number on the bank")
	f.String("state", "", "state to write: on or off")
	rootCmd.AddCommand(ioCmd)
}
