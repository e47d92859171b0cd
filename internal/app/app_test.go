package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name  string
	calls *[]string
	err   error
}

func (r recorder) Start(ctx context.Context) error {
	*r.calls = append(*r.calls, "start "+r.name)
	return r.err
}

func (r recorder) Stop(ctx context.Context) error {
	*r.calls = append(*r.calls, "stop "+r.name)
	return r.err
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp()

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestApplication_Lifecycle(t *testing.T) {
	var calls []string
	a := newTestApp()
	a.SetStarters(recorder{name: "a", calls: &calls}, recorder{name: "b", calls: &calls})
	a.SetStoppers(recorder{name: "a", calls: &calls}, recorder{name: "b", calls: &calls})

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Stop())

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, calls)
}

func TestApplication_StarterError(t *testing.T) {
	var calls []string
	a := newTestApp()
	a.SetStarters(recorder{name: "a", calls: &calls, err: errors.New("boom")}, recorder{name: "b", calls: &calls})

	err := a.Start(context.Background())

	require.Error(t, err)
	assert.Equal(t, []string{"start a"}, calls)
}

func TestApplication_StopperErrorsAreJoined(t *testing.T) {
	var calls []string
	errA, errB := errors.New("a"), errors.New("b")
	a := newTestApp()
	a.SetStoppers(recorder{name: "a", calls: &calls, err: errA}, recorder{name: "b", calls: &calls, err: errB})

	err := a.Stop()

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}
