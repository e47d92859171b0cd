package rdb

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/config"
	"github.com/SergeyBogomolovv/ride-dispatch/pkg/utils"
	"github.com/redis/go-redis/v9"
)

var pingRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     5 * time.Second,
}

func New(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := utils.Retry(ctx, pingRetry, func() error {
		return client.Ping(ctx).Err()
	}, context.Canceled, context.DeadlineExceeded)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
