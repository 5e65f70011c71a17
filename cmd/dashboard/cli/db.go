package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"numberwise-dashboard/config"
)

// openDB создает пул соединений. Пул принадлежит вызывающему и закрывается им.
func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		// Пул оставляем открытым: база может подняться позже
		log.Warn().Err(err).Msg("database is not reachable yet")
		return db, err
	}

	log.Info().Bool("tls", cfg.IsProduction()).Msg("connected to PostgreSQL database")
	return db, nil
}
