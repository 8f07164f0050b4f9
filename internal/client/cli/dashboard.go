package cli

import (
	"context"
	"fmt"

	"github.com/Priyanshu7318/SHIELD/internal/client/dashboard"
	"github.com/Priyanshu7318/SHIELD/internal/client/services"
)

// Dashboard prints the analytics overview. When it cannot be loaded the
// default (empty) figures are shown and the error is returned.
func (a *App) Dashboard(ctx context.Context) error {
	ov, err := a.dashboard.Load(ctx)
	if err != nil {
		stats := dashboard.DefaultStats()
		renderOverview(a.out, &services.Overview{
			Stats:     stats,
			Breakdown: dashboard.Breakdown(nil),
			Pie:       dashboard.Pie(stats),
		})
		return err
	}
	renderOverview(a.out, ov)
	return nil
}

// Week prints the seven-day trend. An optional argument restricts it to one
// media type.
func (a *App) Week(ctx context.Context, args []string) error {
	mediaType := "All"
	if len(args) > 0 {
		mediaType = args[0]
	}

	days, err := a.dashboard.Week(ctx, mediaType)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Detection trends, last %d days (%s)\n", dashboard.WindowDays, mediaType)
	renderWeek(a.out, days)
	return nil
}
