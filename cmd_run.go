package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/marsrover/internal/adapters"
	"github.com/robalobadob/marsrover/internal/mission"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		planet   string
		rover    string
		commands string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one mission from planet and rover files",
		Long: "Run one mission. The planet file holds the grid size and an optional obstacle line, " +
			"the rover file its position and heading. Commands come from --commands or one line of stdin. " +
			"The final position is printed as x:y:H, or O:x:y:H when an obstacle stopped the rover.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cc mission.CommandsChannel = adapters.ReaderCommands{In: cmd.InOrStdin(), Prompt: cmd.ErrOrStderr()}
			if cmd.Flags().Changed("commands") {
				cc = adapters.StaticCommands(commands)
			}
			in := &mission.Interpreter{
				Source:   adapters.FileSource{},
				Commands: cc,
				Report:   adapters.WriterReport{Out: cmd.OutOrStdout()},
				Timeout:  a.cfg.InterpretTimeout,
			}

			final, err := mission.Run(cmd.Context(), mission.Mission{PlanetRef: planet, RoverRef: rover}, in)
			if err != nil {
				return fmt.Errorf("mission aborted: %w", err)
			}
			if _, failed := final.(mission.Failed); failed {
				return errMissionFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&planet, "planet", "", "planet file")
	cmd.Flags().StringVar(&rover, "rover", "", "rover file")
	cmd.Flags().StringVar(&commands, "commands", "", "commands such as RFFLB (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("planet")
	_ = cmd.MarkFlagRequired("rover")
	return cmd
}
