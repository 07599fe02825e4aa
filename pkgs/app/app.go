package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/keskad/dsgo"
	"github.com/keskad/dsgo/pkgs/config"
	"github.com/keskad/dsgo/pkgs/output"
)

//
// Actions - a controller level
// prints are allowed only via Printer interface
//
// The controller level is intended to provide a layer of performing actions - everything needed to perform a single action e.g. watching a connection or sending one command
//

// DSApp wires configuration, the ds.Robot handle and CLI-facing output
// together, the way the teacher's LocoApp wires a command station.
type DSApp struct {
	Config *config.Configuration
	robot  *ds.Robot

	// runtime parameters
	Debug bool
	P     output.Printer
}

// Initialize is run after parsing the arguments, so we know how to configure the app.
func (app *DSApp) Initialize() error {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig()
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %s", cfgErr)
	}
	return nil
}

// Robot returns the active handle, connecting it first if this is the
// first call.
func (app *DSApp) Robot(team uint16) *ds.Robot {
	if app.robot == nil {
		logrus.Debugf("Connecting to team %d", team)
		app.robot = ds.New(team)
	}
	return app.robot
}

// CleanUp releases the robot handle, if one was opened.
func (app *DSApp) CleanUp() {
	if app.robot != nil {
		app.robot.Close()
		app.robot = nil
	}
}
