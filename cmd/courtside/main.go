package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/notify"
	"github.com/fortuna/courtside/internal/pipeline"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "courtside: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()

	window, err := store.ParseWindow(cfg.Schedule.Window)
	if err != nil {
		return err
	}

	db, err := store.NewDatabase(cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	client := nba.NewClient(cfg.Source.BaseURL, cfg.Source.Timeout, logger)
	fetcher := nba.NewFetcher(client, nba.FetcherConfig{
		Passes:       cfg.Source.Passes,
		RequestDelay: cfg.Source.RequestDelay,
		PassCooldown: cfg.Source.PassCooldown,
	}, logger)

	schedule := store.NewScheduleRepository(db)
	master := repository.NewPlayerMasterRepository(db)
	sink := repository.NewEntityStore(repository.NewExecutor(db, logger))
	runner := pipeline.NewRunner(schedule, fetcher, master, sink, logger)

	var notifier pipeline.Notifier
	if cfg.Redis.URL != "" {
		streamNotifier, err := notify.NewRedisStreamNotifier(cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer streamNotifier.Close()
		notifier = streamNotifier
		logger.Info("run notifications enabled")
	}

	svc := pipeline.NewService(runner, notifier, logger)

	cron, err := startDailyRun(svc, window, cfg.Schedule.DailyAt, logger)
	if err != nil {
		return err
	}
	defer func() { _ = cron.Shutdown() }()

	server := rest.NewServer(cfg.Server.Port, db, svc, window, logger)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		return errors.Wrap(err, "rest server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// startDailyRun schedules one ingest per day at the configured wall-clock
// time.
func startDailyRun(svc *pipeline.Service, window store.Window, dailyAt string, logger *zap.Logger) (gocron.Scheduler, error) {
	hour, minute, err := parseClock(dailyAt)
	if err != nil {
		return nil, err
	}

	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, errors.Wrap(err, "creating scheduler")
	}

	_, err = cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			if err := svc.TriggerAsync(window); err != nil {
				logger.Warn("scheduled run skipped", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "scheduling daily run")
	}

	cron.Start()
	logger.Info("daily run scheduled",
		zap.String("at", dailyAt),
		zap.String("window", string(window)))
	return cron, nil
}

func parseClock(s string) (uint, uint, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Newf("invalid clock time %q, want HH:MM", s)
	}
	hour, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || hour > 23 {
		return 0, 0, errors.Newf("invalid hour in %q", s)
	}
	minute, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || minute > 59 {
		return 0, 0, errors.Newf("invalid minute in %q", s)
	}
	return uint(hour), uint(minute), nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", level)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
