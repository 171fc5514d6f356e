package main

import (
	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/iva"
)

var paramCmd = &cobra.Command{
	Use:   "param",
	Short: "Apply a motion parameter set",
	Long: `Apply motion tuning to subsequent moves. Flags not given keep their
default value; inputs outside the valid range are clamped to it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		param := iva.DefaultParam()
		if flags.Changed("speed") {
			param = param.WithSpeed(floatFlag(flags, "speed"))
		}
		if flags.Changed("accel") {
			param = param.WithAccel(floatFlag(flags, "accel"))
		}
		if flags.Changed("blend-linear") {
			param = param.WithBlendLinear(floatFlag(flags, "blend-linear"))
		}
		if flags.Changed("blend-angular") {
			param = param.WithBlendAngular(floatFlag(flags, "blend-angular"))
		}
		if flags.Changed("tcp-speed-linear") {
			param = param.WithTCPSpeedLinear(floatFlag(flags, "tcp-speed-linear"))
		}
		if flags.Changed("tcp-speed-angular") {
			param = param.WithTCPSpeedAngular(floatFlag(flags, "tcp-speed-angular"))
		}

		r, err := dialRobot(cmd)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.SetParam(param)
	},
}

func init() {
	f := paramCmd.Flags()
	f.Float64("speed", 100, "speed as a percentage of full scale")
	f.Float64("accel", 100, "acceleration as a percentage of full scale")
	f.Float64("blend-linear", 1, "linear blend radius in millimeters")
	f.Float64("blend-angular", 1, "angular blend radius in degrees")
	f.Float64("tcp-speed-linear", 1000, "tool speed cap in mm per second")
	f.Float64("tcp-speed-angular", 720, "tool speed cap in degrees per second")
	rootCmd.AddCommand(paramCmd)
}
