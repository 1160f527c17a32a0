package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	httpapi "restaurant-bookkeeping/bookkeeping-svc/internal/api/http"
	"restaurant-bookkeeping/bookkeeping-svc/internal/console"
	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"
	"restaurant-bookkeeping/bookkeeping-svc/internal/logger"
	"restaurant-bookkeeping/bookkeeping-svc/internal/service"
	"restaurant-bookkeeping/bookkeeping-svc/internal/storage"
	"restaurant-bookkeeping/config"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const serviceName = "bookkeeping-svc"

func main() {
	mode := flag.String("mode", "", "Run mode (cli, http, aggregator); overrides MODE")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := logger.New(serviceName, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if cfg.Mode == config.ModeCLI {
		// keep JSON logs out of the interactive transcript
		log = logger.NewNop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("service starting", "action", "service_started", "config", cfg.String())
	if err := run(ctx, cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Errorw("service failed", "action", "service_failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Infow("service stopped", "action", "service_stopped")
}

func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, in io.Reader, out io.Writer) error {
	if cfg.Mode == config.ModeAggregator {
		return runAggregator(ctx, cfg, log)
	}

	sinks, cleanup, err := openSinks(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	restaurant := domain.NewRestaurant()
	if cfg.SeedDemo {
		seed(restaurant)
	}
	bookkeeper := service.NewBookkeeper(restaurant, sinks, log)

	switch cfg.Mode {
	case config.ModeHTTP:
		handler := httpapi.NewHandler(bookkeeper, log)
		return httpapi.StartServer(ctx, fmt.Sprintf(":%d", cfg.HTTPPort), httpapi.NewRouter(handler), log)
	default:
		return console.New(bookkeeper, in, out).Run(ctx)
	}
}

// seed preloads the demo tables and dishes.
func seed(restaurant *domain.Restaurant) {
	restaurant.AddTable(domain.NewTable(1, 4))
	restaurant.AddTable(domain.NewTable(2, 2))
	restaurant.AddMenuItem(domain.NewMenuItem("Burger", decimal.RequireFromString("10.99")))
	restaurant.AddMenuItem(domain.NewMenuItem("Pasta", decimal.RequireFromString("12.99")))
}

func openSinks(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (service.Sinks, func(), error) {
	sinks := service.Sinks{QR: service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL}}
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Warnw("failed to close resource", "action", "cleanup", "error", err)
			}
		}
	}

	if cfg.DatabaseEnabled() {
		db, err := config.OpenPostgres(ctx, cfg)
		if err != nil {
			return sinks, cleanup, err
		}
		closers = append(closers, db.Close)

		journal := storage.NewPostgresJournal(db)
		if err := journal.EnsureSchema(ctx); err != nil {
			cleanup()
			return sinks, func() {}, err
		}
		sinks.Journal = journal
		log.Infow("connected to PostgreSQL", "action", "db_connected")
	}

	if cfg.RedisEnabled() {
		client, err := config.OpenRedis(ctx, cfg)
		if err != nil {
			cleanup()
			return sinks, func() {}, err
		}
		closers = append(closers, client.Close)
		sinks.Stats = storage.NewRedisStats(client)
		log.Infow("connected to Redis", "action", "redis_connected")
	}

	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		closers = append(closers, writer.Close)
		sinks.Publisher = storage.NewKafkaPublisher(writer)
		log.Infow("publishing events", "action", "kafka_writer", "topic", cfg.Kafka.Topic)
	}

	return sinks, cleanup, nil
}

func runAggregator(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	client, err := config.OpenRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewRedisStats(client), log)
	return consumer.Start(ctx)
}
