package main

import (
	"os"

	"github.com/keskad/dsgo/pkgs/app"
	"github.com/keskad/dsgo/pkgs/cli"
	"github.com/keskad/dsgo/pkgs/output"
)

func main() {
	dsApp := app.DSApp{P: output.ConsolePrinter{}}
	cmd := cli.NewRootCommand(&dsApp)
	args := os.Args
	if args != nil {
		args = args[1:]
		cmd.SetArgs(args)
	}
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
