package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/internal/logging"
	"github.com/dizzyi/inovo-go/robot"
)

var rootCmd = &cobra.Command{
	Use:   "ivactl",
	Short: "ivactl drives an Inovo robot arm from the command line",
	Long: `ivactl connects to an Inovo controller, launches the runtime sequence,
and issues instructions over the connect-back channel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ivactl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to a TOML config file")
	pf.String("host", "", "controller hostname or IP")
	pf.String("name", "", "robot name for logs and metrics")
	pf.Uint16("port", 0, "local connect-back port")
	pf.String("sequence", "", "runtime sequence to launch")
	pf.Bool("skip-launch", false, "assume the runtime sequence is already running")
}

// resolveConfig layers command line flags over the optional config file
// over built-in defaults.
func resolveConfig(cmd *cobra.Command) (robot.Config, error) {
	cfg := robot.DefaultConfig()

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := loadFileConfig(path, cfg)
		if err != nil {
			return robot.Config{}, err
		}
		cfg = loaded
	}
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("name") {
		cfg.Name, _ = flags.GetString("name")
	}
	if flags.Changed("port") {
		cfg.ListenPort, _ = flags.GetUint16("port")
	}
	if flags.Changed("sequence") {
		cfg.Sequence, _ = flags.GetString("sequence")
	}
	if flags.Changed("skip-launch") {
		cfg.SkipLaunch, _ = flags.GetBool("skip-launch")
	}

	if cfg.Host == "" {
		return robot.Config{}, fmt.Errorf("controller host is required (--host or config file)")
	}
	return cfg, nil
}

// dialRobot runs the full connect-back bootstrap for one verb invocation.
func dialRobot(cmd *cobra.Command) (*robot.Robot, error) {
	logging.ConfigureRuntime()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return robot.Connect(cmd.Context(), cfg, logging.New("ivactl"))
}
