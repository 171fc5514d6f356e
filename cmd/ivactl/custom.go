package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/iva"
)

var customCmd = &cobra.Command{
	Use:   "custom <key=value | key:=number>...",
	Short: "Send an application-defined command",
	Long: `Send a custom key/value command to the runtime sequence and print its
reply. key=value sends a string argument, key:=value a number.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := buildCustom(args)
		if err != nil {
			return err
		}

		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()

		reply, err := r.Custom(payload)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	},
}

func buildCustom(args []string) (iva.CustomCommand, error) {
	payload := iva.NewCustom()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return iva.CustomCommand{}, fmt.Errorf("argument %q is not key=value", arg)
		}
		if numKey, isNum := strings.CutSuffix(key, ":"); isNum {
			if numKey == "" {
				return iva.CustomCommand{}, fmt.Errorf("argument %q is not key=value", arg)
			}
			num, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return iva.CustomCommand{}, fmt.Errorf("argument %q: %q is not a number", arg, value)
			}
			payload = payload.AddFloat(numKey, num)
			continue
		}
		payload = payload.AddString(key, value)
	}
	return payload, nil
}

func init() {
	rootCmd.AddCommand(customCmd)
}
