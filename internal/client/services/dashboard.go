package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/dashboard"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Overview is everything the dashboard shows apart from the trend chart.
type Overview struct {
	Stats     models.Stats
	Logs      []models.LogEntry // newest first
	Breakdown []dashboard.TypeStat
	Pie       []dashboard.Slice
}

// DashboardService assembles the analytics view. Every call re-fetches.
type DashboardService interface {
	Load(ctx context.Context) (*Overview, error)
	Week(ctx context.Context, mediaType string) ([]dashboard.Day, error)
}

type dashboardService struct {
	client client.Client
	log    logging.Logger
	now    func() time.Time
}

func NewDashboardService(c client.Client, log logging.Logger) DashboardService {
	return &dashboardService{client: c, log: log, now: time.Now}
}

// Load fetches logs and stats concurrently and derives the aggregates once
// both have arrived. If either fetch fails nothing is returned.
func (s *dashboardService) Load(ctx context.Context) (*Overview, error) {
	var (
		logs  []models.LogEntry
		stats *models.Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = s.client.Logs(gctx)
		if err != nil {
			return fmt.Errorf("fetch logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = s.client.Stats(gctx)
		if err != nil {
			return fmt.Errorf("fetch stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warn(ctx, "dashboard load failed", "error", err)
		return nil, err
	}

	st := dashboard.DefaultStats()
	if stats != nil {
		st = *stats
	}
	sorted := dashboard.SortLogs(logs)

	s.log.Debug(ctx, "dashboard loaded", "logs", len(sorted), "total", st.Total)
	return &Overview{
		Stats:     st,
		Logs:      sorted,
		Breakdown: dashboard.Breakdown(sorted),
		Pie:       dashboard.Pie(st),
	}, nil
}

// Week returns the seven-day trend for mediaType ("" or "All" for every type).
func (s *dashboardService) Week(ctx context.Context, mediaType string) ([]dashboard.Day, error) {
	buckets, err := s.client.ChartData(ctx, mediaType)
	if err != nil {
		s.log.Warn(ctx, "chart data failed", "type", mediaType, "error", err)
		return nil, fmt.Errorf("fetch chart data: %w", err)
	}
	return dashboard.MergeWeek(buckets, s.now()), nil
}
