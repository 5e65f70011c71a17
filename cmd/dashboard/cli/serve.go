package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"numberwise-dashboard/internal/repository/postgres"
	"numberwise-dashboard/internal/service/dashboard"
	"numberwise-dashboard/internal/service/scheduler"
	"numberwise-dashboard/internal/transport/api"
	"numberwise-dashboard/internal/transport/web"
	"numberwise-dashboard/internal/web/templates"
	"numberwise-dashboard/migrations"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Initialize the database and start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	startedAt := time.Now()
	ctx := cmd.Context()

	// Подключаемся к БД. Недоступная база не останавливает сервер.
	db, err := openDB(ctx, cfg)
	if err != nil && db == nil {
		return err
	}
	defer db.Close()

	if err != nil {
		log.Error().Err(err).Msg("database initialization skipped, serving anyway")
	} else {
		initErr := postgres.Bootstrap(ctx, db, postgres.NewSeeder(db, nil), postgres.BootstrapOptions{
			Migrations: migrations.FS,
			SeedDemo:   cfg.SeedDemoData,
			Seed:       postgres.SeedOptions{AdminPassword: cfg.DemoAdminPassword},
		})
		if initErr != nil {
			log.Error().Err(initErr).Msg("database initialization failed, serving anyway")
		}
	}

	// Инициализируем сервисы
	repo := postgres.NewDashboardRepository(db)
	svc := dashboard.NewService(repo)

	var sched *scheduler.Scheduler
	if cfg.DuplicateCheckSchedule != "" {
		sched, err = scheduler.New(cfg.DuplicateCheckSchedule, svc)
		if err != nil {
			return err
		}
		sched.Start()
	}

	e := api.NewRouter(svc, api.RouterOptions{
		Version:      Version,
		Environment:  cfg.Env,
		AllowOrigins: cfg.CORSAllowOrigins,
		StartedAt:    startedAt,
	})
	web.SetupRoutes(e, svc, templates.NewRenderer())

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Numberwise Dashboard API started")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	return e.Shutdown(shutdownCtx)
}
