package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/keskad/dsgo/pkgs/app"
)

func NewWatchCommand(app *app.DSApp) *cobra.Command {
	var team uint16
	var seconds uint32

	command := &cobra.Command{
		Use:   "watch",
		Short: "Print the robot's status on every poll interval",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.WatchAction(team, time.Duration(seconds)*time.Second)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")
	command.Flags().Uint32VarP(&seconds, "seconds", "s", 10, "How long to watch before disconnecting; 0 runs until killed")
	return command
}

func NewUsageReportCommand(app *app.DSApp) *cobra.Command {
	var team uint16

	command := &cobra.Command{
		Use:   "usage-report",
		Short: "Print the robot's decoded usage-report entries",
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.UsageReportAction(team)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&team, "team", "t", 0, "Team number")
	return command
}
