package rest

import (
	"context"
	"log"
	"time"
)

// RunAlarmSweeper periodically deletes alarms past the retention window.
// Runs until the context is cancelled; meant to be started from main as a
// goroutine alongside the server.
func (api *API) RunAlarmSweeper(ctx context.Context) {
	interval := api.Config.AlarmSweepInterval
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			swept, err := api.SweepOldAlarms(ctx)
			if err != nil {
				log.Println("alarm sweep failed", err)
				continue
			}
			if swept > 0 {
				log.Printf("alarm sweep removed %d alarms", swept)
			}
		}
	}
}
