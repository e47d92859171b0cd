package rdb

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNew_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := New(ctx, config.Redis{Addr: "127.0.0.1:1"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), pingRetry.InitialDelay)
}
