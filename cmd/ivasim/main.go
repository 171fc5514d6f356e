package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dizzyi/inovo-go/internal/logging"
	"github.com/dizzyi/inovo-go/transport"
)

var rootCmd = &cobra.Command{
	Use:   "ivasim",
	Short: "ivasim emulates the arm runtime for local development",
	Long: `ivasim dials the controlling program the way the real runtime does and
answers its instructions against a simulated arm. Point ivactl at a
dummy host with --skip-launch and run ivasim against its listen port.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime()
		log := logging.New("ivasim")

		flags := cmd.Flags()
		addr, _ := flags.GetString("connect")
		pairs, _ := flags.GetStringArray("data")

		data := make(map[string]string)
		for _, pair := range pairs {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("data %q is not key=value", pair)
			}
			data[key] = value
		}

		stream, err := transport.Dial(cmd.Context(), addr, transport.Config{}, log)
		if err != nil {
			return err
		}
		defer stream.Close()
		log.Info().Str("addr", addr).Msg("ivasim serving")

		sim := newSimulator(data, log)
		for {
			line, err := stream.ReadLine()
			if errors.Is(err, transport.ErrDisconnected) {
				log.Info().Msg("ivasim peer disconnected")
				return nil
			}
			if err != nil {
				return err
			}
			if err := stream.WriteLine(sim.handleLine(line)); err != nil {
				return err
			}
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ivasim: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.String("connect", "127.0.0.1:50003", "address the controlling program listens on")
	f.StringArray("data", nil, "seed a data key as key=value (repeatable)")
}
