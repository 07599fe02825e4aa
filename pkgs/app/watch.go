package app

import "time"

// pollInterval is how often WatchAction reprints the robot's status.
const pollInterval = 500 * time.Millisecond

// WatchAction connects to the given team and prints its status once
// per pollInterval for duration, then disconnects. duration <= 0 means
// run until the caller's context is otherwise torn down by the process
// exiting.
func (app *DSApp) WatchAction(team uint16, duration time.Duration) error {
	robot := app.Robot(team)
	defer app.CleanUp()

	deadline := time.Now().Add(duration)
	for duration <= 0 || time.Now().Before(deadline) {
		app.P.Printf(
			"connected=%v enabled=%v estopped=%v mode=%s alliance=%s battery=%.2f code=%s seq=%d\n",
			robot.Connected(), robot.Enabled(), robot.Estopped(), robot.Mode(), robot.Alliance(),
			robot.Battery(), robot.CodeStatus(), robot.Sequence(),
		)
		time.Sleep(pollInterval)
	}

	return nil
}
