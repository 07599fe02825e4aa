package app

import "time"

// usageReportWait bounds how long UsageReportAction waits for the TCP
// loop to decode at least one usage-report entry before giving up.
const usageReportWait = 5 * time.Second

func (app *DSApp) UsageReportAction(team uint16) error {
	robot := app.Robot(team)
	defer app.CleanUp()

	deadline := time.Now().Add(usageReportWait)
	for time.Now().Before(deadline) {
		if entries := robot.UsageReport(); len(entries) > 0 {
			for _, e := range entries {
				app.P.Printf("kind=%d instance=%d context=%d operand=%d channel=%d reversable=%v\n",
					e.Kind, e.Instance, e.Context, e.Operand, e.Channel, e.Reversable)
			}
			return nil
		}
		time.Sleep(pollInterval)
	}

	app.P.Printf("no usage report received within %s\n", usageReportWait)
	return nil
}
