package cli

import (
	"context"
	"fmt"
)

// Dashboard shows the activity summary. The stats load is deferred inside
// the service; cancelling ctx while it is pending aborts the command.
func (a *App) Dashboard(ctx context.Context) error {
	printlnFn("Loading dashboard...")

	stats, err := a.stats.Dashboard(ctx)
	if err != nil {
		reportErr(err)
		return err
	}

	checkedIn, err := a.profile.AssessmentStatus(ctx)
	if err != nil {
		reportErr(err)
		return err
	}

	printlnFn("Daily check-ins:", stats.DailyCheckins)
	printlnFn("Streak:         ", fmt.Sprintf("%d days", stats.Streak))
	printlnFn("Completed goals:", stats.CompletedGoals)
	if checkedIn {
		printlnFn("Lifestyle check-in: done")
	} else {
		printlnFn("Lifestyle check-in: not yet, run 'checkin'")
	}
	return nil
}
