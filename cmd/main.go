package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/SergeyBogomolovv/ride-dispatch/docs"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/app"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/config"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/handler"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/postgres"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/rdb"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/repo"
	"github.com/SergeyBogomolovv/ride-dispatch/internal/service"
	"github.com/SergeyBogomolovv/ride-dispatch/pkg/cache"
	"github.com/SergeyBogomolovv/ride-dispatch/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Ride Dispatch API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env, conf.LogLevel)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)

	customerDocs, driverDocs := newProfileDocuments(ctx, logger, conf, application)

	dispatchService := service.NewDispatchService(logger, repo.NewLedger(), repo.NewInterestRegistry(), customerDocs, driverDocs)

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	application.SetHTTPHandlers(handler.NewHTTPHandler(logger, dispatchService))
	if conf.ViewsDir != "" {
		application.SetHTTPHandlers(handler.NewPagesHandler(conf.ViewsDir))
	}

	application.SetStarters(dispatchService)
	application.SetStoppers(dispatchService)

	if conf.KafkaEnabled() {
		seen := cache.NewLRUCache[int](conf.Dedup.Capacity, conf.Dedup.TTL)
		application.SetStarters(seen)
		application.SetStoppers(seen)
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, dispatchService, seen))
		logger.Info("kafka intake enabled", slog.String("topic", conf.Kafka.Topic))
	}

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

type stopperFunc func(ctx context.Context) error

func (f stopperFunc) Stop(ctx context.Context) error {
	return f(ctx)
}

func newProfileDocuments(
	ctx context.Context,
	logger *slog.Logger,
	conf config.Config,
	application interface{ SetStoppers(...app.Stopper) },
) (service.Documents[entities.CustomerProfile], service.Documents[entities.DriverProfile]) {
	switch conf.Profiles.Backend {
	case config.BackendPostgres:
		db, err := postgres.New(ctx, conf.Postgres)
		panicIfErr("failed to connect to db", err)
		logger.Info("postgres connected")
		application.SetStoppers(stopperFunc(func(context.Context) error { return db.Close() }))

		txManager := trm.NewManager(db)
		return repo.NewPostgresDocuments[entities.CustomerProfile](db, txManager, service.KindCustomer),
			repo.NewPostgresDocuments[entities.DriverProfile](db, txManager, service.KindDriver)

	case config.BackendRedis:
		client, err := rdb.New(ctx, conf.Redis)
		panicIfErr("failed to connect to redis", err)
		logger.Info("redis connected")
		application.SetStoppers(stopperFunc(func(context.Context) error { return client.Close() }))

		return repo.NewRedisDocuments[entities.CustomerProfile](client, service.KindCustomer),
			repo.NewRedisDocuments[entities.DriverProfile](client, service.KindDriver)

	default:
		return repo.NewFileDocuments[entities.CustomerProfile](filepath.Join(conf.Profiles.Dir, "customerProfiles.json")),
			repo.NewFileDocuments[entities.DriverProfile](filepath.Join(conf.Profiles.Dir, "driverProfiles.json"))
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
