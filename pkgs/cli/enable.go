package cli

import (
	"github.com/spf13/cobra"

	"github.com/keskad/dsgo/pkgs/app"
)

func NewEnableCommand(app *app.DSApp) *cobra.Command {
	var team uint16

	command := &cobra.Command{
		Use:   "enable",
		Short: "Enable the robot",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SetEnabledAction(team, true)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")

	command.AddCommand(newDisableCommand(app))
	command.AddCommand(newEstopCommand(app))
	return command
}

func newDisableCommand(app *app.DSApp) *cobra.Command {
	var team uint16

	command := &cobra.Command{
		Use:   "disable",
		Short: "Disable the robot",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SetEnabledAction(team, false)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")
	return command
}

func newEstopCommand(app *app.DSApp) *cobra.Command {
	var team uint16
	var clear bool

	command := &cobra.Command{
		Use:   "estop",
		Short: "Latch the emergency stop, or clear it with --clear",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SetEstoppedAction(team, !clear)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")
	command.Flags().BoolVarP(&clear, "clear", "", false, "Clear a previously latched e-stop")
	return command
}
