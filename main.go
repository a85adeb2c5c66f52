// main.go - Entry point and dependency injection
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/sstent/sportlog-go/internal/backup"
	"github.com/sstent/sportlog-go/internal/config"
	"github.com/sstent/sportlog-go/internal/database"
	"github.com/sstent/sportlog-go/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

type App struct {
	cfg      *config.Config
	store    *database.SQLiteStore
	cron     *cron.Cron
	server   *http.Server
	log      zerolog.Logger
	shutdown chan os.Signal
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, using system environment variables")
	}

	app := &App{
		log:      logger,
		shutdown: make(chan os.Signal, 1),
	}

	if err := app.init(); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize app")
	}

	app.start()

	signal.Notify(app.shutdown, os.Interrupt, syscall.SIGTERM)
	<-app.shutdown

	app.stop()
}

func (app *App) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app.cfg = cfg

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}

	app.store, err = database.Open(cfg.DBPath)
	if err != nil {
		return err
	}

	app.cron = cron.New()
	if cfg.BackupCron != "" {
		svc := backup.NewService(app.store, filepath.Join(cfg.DataDir, "backups"), app.log)
		if _, err := app.cron.AddFunc(cfg.BackupCron, func() {
			if err := svc.Run(context.Background()); err != nil {
				app.log.Error().Err(err).Msg("scheduled backup failed")
			}
		}); err != nil {
			return err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := web.NewHandler(app.store, app.log)
	handler.RegisterRoutes(router)

	app.server = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	return nil
}

func (app *App) start() {
	app.cron.Start()

	go func() {
		app.log.Info().Str("addr", app.cfg.ListenAddr).Msg("server starting")
		if err := app.server.ListenAndServe(); err != http.ErrServerClosed {
			app.log.Error().Err(err).Msg("server error")
		}
	}()
}

func (app *App) stop() {
	app.log.Info().Msg("shutting down")

	app.cron.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.log.Error().Err(err).Msg("server shutdown error")
	}

	if app.store != nil {
		app.store.Close()
	}

	app.log.Info().Msg("shutdown complete")
}
