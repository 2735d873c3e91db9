package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"hyperlocal/cmd"
	"hyperlocal/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(configs.LogLevel, configs.LogFormat)

	db, err := cmd.OpenDatabase(configs, logger)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer cmd.CloseDatabase(db, logger)

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if configs.SeedOnStart {
		if _, err := app.CreateSeeder().Seed(ctx); err != nil {
			log.Fatalf("seed database: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("build router: %v", err)
	}
	startWebServer(ctx, e, configs)
}

func startWebServer(ctx context.Context, e *echo.Echo, configs cmd.Config) {
	e.Server.ReadTimeout = configs.ReadTimeout
	e.Server.WriteTimeout = configs.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		e.Logger.Infof("listening on :%s", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server: %v", err)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
