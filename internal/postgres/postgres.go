package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/config"
	"github.com/SergeyBogomolovv/ride-dispatch/pkg/utils"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var connectRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     5 * time.Second,
}

func New(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	var db *sqlx.DB
	// база может подниматься дольше сервиса
	err := utils.Retry(ctx, connectRetry, func() error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", dsn)
		return err
	}, context.Canceled, context.DeadlineExceeded)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}
