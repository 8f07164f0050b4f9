package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Priyanshu7318/SHIELD/internal/client/config"
	"github.com/Priyanshu7318/SHIELD/internal/client/services"
	"github.com/Priyanshu7318/SHIELD/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single liveness check of the status watcher.
const pingTimeout = 3 * time.Second

type App struct {
	config    *config.Config
	session   services.SessionService
	detection services.DetectionService
	dashboard services.DashboardService
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu   sync.RWMutex
	mode Mode
}

func NewApp(
	cfg *config.Config,
	session services.SessionService,
	detection services.DetectionService,
	dashboard services.DashboardService,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		config:    cfg,
		session:   session,
		detection: detection,
		dashboard: dashboard,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
		mode:      ModeOffline,
	}
}

// Run restores the previous session, starts the status watcher and serves
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SHIELD CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartStatusWatcher(watchCtx, a.config.StatusCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	user, err := a.session.Bootstrap(ctx)
	if err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
		return
	}
	if user != nil {
		a.setMode(ModeOnline)
		fmt.Fprintf(a.out, "Welcome back, %s\n", user.Username)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.CurrentUser(); u != nil {
		s = u.Username + " "
	}
	s += string(a.Mode())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartStatusWatcher pings the API every interval and flips the mode between
// online and offline. It returns when ctx is done. A non-positive interval
// disables the periodic checks after the first one.
func (a *App) StartStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkStatus(ctx)
	if interval <= 0 {
		a.log.Warn(ctx, "status watcher disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkStatus(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkStatus(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.session.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
