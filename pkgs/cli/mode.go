package cli

import (
	"github.com/spf13/cobra"

	"github.com/keskad/dsgo/pkgs/app"
)

func NewModeCommand(app *app.DSApp) *cobra.Command {
	var team uint16

	command := &cobra.Command{
		Use:   "mode [teleop|auto|test]",
		Short: "Set the robot's operating mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SetModeAction(team, args[0])
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")
	return command
}

func NewAllianceCommand(app *app.DSApp) *cobra.Command {
	var team uint16

	command := &cobra.Command{
		Use:   "alliance [red1|red2|red3|blue1|blue2|blue3]",
		Short: "Set the robot's field-position slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SetAllianceAction(team, args[0])
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")
	return command
}
