package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Priyanshu7318/SHIELD/internal/client/apitest"
	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/dashboard"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardLoad_FetchesConcurrently(t *testing.T) {
	fc := newFakeClient(nil)

	// Each fetch waits until the other one has started.
	var arrived sync.WaitGroup
	arrived.Add(2)
	both := make(chan struct{})
	go func() {
		arrived.Wait()
		close(both)
	}()
	wait := func(ctx context.Context) error {
		arrived.Done()
		select {
		case <-both:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			t.Error("fetches did not run concurrently")
			return context.DeadlineExceeded
		}
	}

	fc.logsFn = func(ctx context.Context) ([]models.LogEntry, error) {
		if err := wait(ctx); err != nil {
			return nil, err
		}
		return []models.LogEntry{
			{ID: "1", RequestType: models.MediaImage, Result: "Fake (Deepfake Image)", Timestamp: "2026-10-14T10:00:00"},
			{ID: "2", RequestType: models.MediaText, Result: "Real (Human Written)", Timestamp: "2026-10-16T10:00:00"},
		}, nil
	}
	fc.statsFn = func(ctx context.Context) (*models.Stats, error) {
		if err := wait(ctx); err != nil {
			return nil, err
		}
		return &models.Stats{Total: 2, Fake: 1, Real: 1, SafetyScore: 50}, nil
	}

	s := NewDashboardService(fc, logging.Nop())
	ov, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.Stats{Total: 2, Fake: 1, Real: 1, SafetyScore: 50}, ov.Stats)
	require.Len(t, ov.Logs, 2)
	assert.Equal(t, "2", ov.Logs[0].ID, "newest first")
	assert.Equal(t, []dashboard.Slice{{Name: "Fake / AI", Value: 1}, {Name: "Real", Value: 1}}, ov.Pie)
	require.Len(t, ov.Breakdown, 4)
	assert.Equal(t, dashboard.TypeStat{Type: models.MediaImage, Name: "Image", Total: 1, Fake: 1}, ov.Breakdown[3])
}

func TestDashboardLoad_FailureReturnsError(t *testing.T) {
	fc := newFakeClient(nil)
	fc.logsFn = func(context.Context) ([]models.LogEntry, error) { return nil, nil }
	fc.statsFn = func(context.Context) (*models.Stats, error) {
		return nil, remoteErr(http.StatusInternalServerError, "db down")
	}

	s := NewDashboardService(fc, logging.Nop())
	ov, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, ov)
	assert.Equal(t, "db down", client.MessageFor(err))
}

func TestDashboardWeek(t *testing.T) {
	fc := newFakeClient(nil)
	var gotType string
	fc.chartFn = func(_ context.Context, mediaType string) ([]models.ChartBucket, error) {
		gotType = mediaType
		return []models.ChartBucket{
			{Name: "2026-10-11", Total: 2, Fake: 1, Real: 1},
			{Name: "2026-10-15", Total: 4, Fake: 3, Real: 1},
		}, nil
	}
	s := NewDashboardService(fc, logging.Nop()).(*dashboardService)
	s.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

	days, err := s.Week(context.Background(), "audio")
	require.NoError(t, err)
	assert.Equal(t, "audio", gotType)
	require.Len(t, days, 7)

	empty := 0
	for _, d := range days {
		if d.Total == 0 && d.Fake == 0 && d.Real == 0 {
			empty++
		}
	}
	assert.Equal(t, 5, empty)
	assert.Equal(t, dashboard.Day{Date: "2026-10-15", Label: "Thu", Total: 4, Fake: 3, Real: 1}, days[5])
}

func TestDashboard_AgainstAPI(t *testing.T) {
	srv := apitest.New(t)
	srv.AddUser("alice", "a@x.com", "pw")
	srv.SetVerdict(models.MediaText, "Fake (AI Generated)", 0.93)

	cred := &client.Credential{}
	cred.Set(srv.TokenFor("alice"))
	c, err := client.NewHTTPClient(srv.URL, cred)
	require.NoError(t, err)

	det := NewDetectionService(c, logging.Nop())
	_, err = det.CheckText(context.Background(), "generated essay")
	require.NoError(t, err)
	_, err = det.CheckFile(context.Background(), models.MediaImage, writeTemp(t, "me.png", "png"))
	require.NoError(t, err)

	ov, err := NewDashboardService(c, logging.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Total: 2, Fake: 1, Real: 1, SafetyScore: 50}, ov.Stats)
	assert.Len(t, ov.Logs, 2)

	report, err := det.RiskScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "High", report.RiskLevel)
}
