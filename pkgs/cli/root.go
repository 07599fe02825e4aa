package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/keskad/dsgo/pkgs/app"
)

func NewRootCommand(app *app.DSApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "dsctl",
		Short: "Driver station link CLI for the FRC UDP/TCP robot protocol",
		RunE: func(command *cobra.Command, args []string) error {
			return errors.New("please select a command")
		},
	}

	command.AddCommand(NewEnableCommand(app))
	command.AddCommand(NewModeCommand(app))
	command.AddCommand(NewAllianceCommand(app))
	command.AddCommand(NewWatchCommand(app))
	command.AddCommand(NewUsageReportCommand(app))

	return command
}
