package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant-pos/config"
	httpapi "restaurant-pos/pos-svc/internal/api/http"
	"restaurant-pos/pos-svc/internal/logging"
	"restaurant-pos/pos-svc/internal/seed"
	"restaurant-pos/pos-svc/internal/service"
	"restaurant-pos/pos-svc/internal/storage"
)

type app struct {
	handler http.Handler
	closers []func() error
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// newApp opens the stores, seeds them and assembles the HTTP handler.
func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	a := &app{}

	db, err := config.OpenDatabase(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)

	dialect, err := storage.DialectFor(cfg.DB.Driver)
	if err != nil {
		a.Close()
		return nil, err
	}
	gw := storage.NewGateway(db, dialect)

	report, err := seed.NewLoader(gw, seed.Fixtures(), log).Run(ctx, cfg.SeedMode)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("prepare schema: %w", err)
	}
	if err := report.Err(); err != nil {
		log.WarnContext(ctx, "seed finished with errors", "error", err)
	}

	var cache service.IdempotencyCache
	redisClient, err := config.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, err
	}
	if redisClient != nil {
		a.closers = append(a.closers, redisClient.Close)
		cache = storage.NewRedisIdempotencyCache(redisClient, cfg.Redis.IdempotencyTTL)
	} else {
		log.InfoContext(ctx, "redis not configured, idempotency keys disabled")
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		a.closers = append(a.closers, writer.Close)
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.InfoContext(ctx, "kafka not configured, order events disabled")
	}

	repo := storage.NewRepository(gw)
	handler := httpapi.NewHandler(
		cfg.ServiceName,
		service.NewMenuService(repo),
		service.NewCustomerService(repo),
		service.NewOrderService(repo, cache, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, log),
		service.NewOpeningHoursService(repo),
		repo,
		log,
	)
	a.handler = httpapi.NewRouter(handler, cfg.CORSOrigins)
	return a, nil
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return httpapi.Serve(ctx, httpapi.NewServer(cfg.HTTPAddr, a.handler), cfg.ShutdownTimeout, log)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service stopped", "error", err)
		os.Exit(1)
	}
}
