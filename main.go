// Command marsrover drives rover missions from the terminal or over HTTP.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/robalobadob/marsrover/internal/config"
	mlog "github.com/robalobadob/marsrover/internal/log"
)

// errMissionFailed marks a run that ended in the Failed state. The report
// already carries the reason, so main only sets the exit code.
var errMissionFailed = errors.New("mission failed")

// app carries settings resolved before any subcommand runs.
type app struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "marsrover",
		Short:         "Drive a rover across a wrapping planet grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			mlog.Configure(mlog.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (defaults to $ROVER_CONFIG)")

	root.AddCommand(newRunCmd(a), newServeCmd(a), newTokenCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errMissionFailed) {
			fmt.Fprintln(os.Stderr, "marsrover:", err)
		}
		os.Exit(1)
	}
}
