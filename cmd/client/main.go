package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Priyanshu7318/SHIELD/internal/buildinfo"
	"github.com/Priyanshu7318/SHIELD/internal/client/cli"
	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/config"
	"github.com/Priyanshu7318/SHIELD/internal/client/repositories/credentials"
	"github.com/Priyanshu7318/SHIELD/internal/client/services"
	"github.com/Priyanshu7318/SHIELD/internal/logging"
	"github.com/google/uuid"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel).With("run_id", uuid.NewString())

	db, err := credentials.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	cred := &client.Credential{}
	apiClient, err := client.NewHTTPClient(cfg.ServerURL, cred)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(cfg,
		services.NewSessionService(apiClient, cred, credentials.NewSQLiteRepository(db), logger),
		services.NewDetectionService(apiClient, logger),
		services.NewDashboardService(apiClient, logger),
		logger,
		os.Stdin,
		os.Stdout,
	)

	logger.Info(ctx, "starting", "server", cfg.ServerURL, "database", cfg.DatabasePath)
	app.Run(ctx)

}
