package app

import (
	"fmt"
	"time"

	"github.com/keskad/dsgo/internal/protocol"
)

// settleDelay is how long an action waits after sending a command
// before reporting back the robot's confirmed state, giving a few
// heartbeats time to round-trip.
const settleDelay = 200 * time.Millisecond

func (app *DSApp) SetEnabledAction(team uint16, enabled bool) error {
	robot := app.Robot(team)
	defer app.CleanUp()

	robot.SetEnabled(enabled)
	time.Sleep(settleDelay)

	app.P.Printf("enabled=%v connected=%v\n", robot.Enabled(), robot.Connected())
	return nil
}

func (app *DSApp) SetEstoppedAction(team uint16, estopped bool) error {
	robot := app.Robot(team)
	defer app.CleanUp()

	robot.SetEstopped(estopped)
	time.Sleep(settleDelay)

	app.P.Printf("estopped=%v connected=%v\n", robot.Estopped(), robot.Connected())
	return nil
}

func (app *DSApp) SetModeAction(team uint16, modeName string) error {
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	robot := app.Robot(team)
	defer app.CleanUp()

	robot.SetMode(mode)
	time.Sleep(settleDelay)

	app.P.Printf("mode=%s connected=%v\n", robot.Mode(), robot.Connected())
	return nil
}

func (app *DSApp) SetAllianceAction(team uint16, allianceName string) error {
	alliance, err := parseAlliance(allianceName)
	if err != nil {
		return err
	}

	robot := app.Robot(team)
	defer app.CleanUp()

	robot.SetAlliance(alliance)
	time.Sleep(settleDelay)

	app.P.Printf("alliance=%s connected=%v\n", robot.Alliance(), robot.Connected())
	return nil
}

func parseMode(name string) (protocol.Mode, error) {
	switch name {
	case "teleop":
		return protocol.ModeTeleop, nil
	case "auto":
		return protocol.ModeAuto, nil
	case "test":
		return protocol.ModeTest, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: must be teleop, auto or test", name)
	}
}

func parseAlliance(name string) (protocol.Alliance, error) {
	switch name {
	case "red1":
		return protocol.Red1, nil
	case "red2":
		return protocol.Red2, nil
	case "red3":
		return protocol.Red3, nil
	case "blue1":
		return protocol.Blue1, nil
	case "blue2":
		return protocol.Blue2, nil
	case "blue3":
		return protocol.Blue3, nil
	default:
		return 0, fmt.Errorf("unknown alliance %q: must be one of red1, red2, red3, blue1, blue2, blue3", name)
	}
}
