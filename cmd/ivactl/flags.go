package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dizzyi/inovo-go/iva"
)

func modeFromString(raw string) (iva.MotionMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "linear":
		return iva.ModeLinear, nil
	case "linear_relative":
		return iva.ModeLinearRelative, nil
	case "joint":
		return iva.ModeJoint, nil
	case "joint_relative":
		return iva.ModeJointRelative, nil
	default:
		return "", fmt.Errorf("unknown motion mode %q", raw)
	}
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func floatFlag(flags *pflag.FlagSet, name string) float64 {
	v, _ := flags.GetFloat64(name)
	return v
}

func parseOnOff(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "high":
		return true, nil
	case "off", "false", "0", "low":
		return false, nil
	default:
		return false, fmt.Errorf("unknown state %q (want on or off)", raw)
	}
}
