package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"menagerie/internal/audit"
	auditkafka "menagerie/internal/audit/kafka"
	httpapi "menagerie/internal/http"
	jwttoken "menagerie/internal/jwt_token"
	"menagerie/internal/platform/config"
	"menagerie/internal/platform/httpserver"
	"menagerie/internal/platform/kafka"
	"menagerie/internal/platform/logger"
	"menagerie/internal/platform/metrics"
	"menagerie/internal/platform/middleware"
	"menagerie/internal/platform/postgres"
	"menagerie/internal/platform/redis"
	"menagerie/internal/platform/tracing"
	"menagerie/internal/zoo"
	zoometrics "menagerie/internal/zoo/metrics"
	"menagerie/internal/zoo/service"
	creaturestore "menagerie/internal/zoo/store/creature"
	zonestore "menagerie/internal/zoo/store/zone"
)

const serviceName = "menagerie"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	checks := map[string]httpapi.HealthChecker{}

	stores, closeStores, err := buildStores(ctx, cfg, log, checks)
	if err != nil {
		return err
	}
	defer closeStores()

	primarySink, closeKafka, err := buildAuditSink(ctx, cfg, log, checks)
	if err != nil {
		return err
	}
	defer closeKafka()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	publisher := audit.NewPublisher()
	worker := audit.NewWorker(primarySink, audit.NewLogSink(log), publisher.Inbox(), log)

	zones, creatures := zoo.NewServices(stores,
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(zoometrics.New(reg)),
	)

	var keepers middleware.KeeperValidator
	if cfg.KeeperKey != "" {
		keepers = jwttoken.NewJWTService(cfg.KeeperKey, serviceName)
	} else {
		log.Warn("ZOO_KEEPER_SIGNING_KEY not set; mutating routes are unauthenticated")
	}

	router := httpapi.NewRouter(
		httpapi.Deps{Logger: log, Metrics: metrics.New(reg, reg), Checks: checks},
		zoo.NewHandler(zones, creatures, log, keepers),
	)
	srv := httpserver.New(cfg, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting server", "addr", cfg.Addr, "store", cfg.Store)
		return httpserver.Serve(gctx, srv, cfg.ShutdownTimeout, log)
	})
	return g.Wait()
}

// buildStores selects the persistence backend named by ZOO_STORE.
func buildStores(ctx context.Context, cfg config.Server, log *slog.Logger, checks map[string]httpapi.HealthChecker) (zoo.Stores, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return zoo.Stores{}, nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return zoo.Stores{}, nil, err
		}
		log.Info("using postgres store", "driver", cfg.Database.Driver)
		checks["postgres"] = httpapi.HealthFunc(db.PingContext)
		return zoo.Stores{
			Zones:     zonestore.NewPostgres(db),
			Creatures: creaturestore.NewPostgres(db),
		}, func() { _ = db.Close() }, nil

	case config.StoreRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return zoo.Stores{}, nil, err
		}
		zones := zonestore.NewRedis(client.Client)
		log.Info("using redis store")
		checks["redis"] = client
		return zoo.Stores{
			Zones:     zones,
			Creatures: creaturestore.NewRedis(client.Client, zones),
		}, func() { _ = client.Close() }, nil

	default:
		log.Info("using in-memory store")
		return zoo.NewInMemoryStores(), func() {}, nil
	}
}

// buildAuditSink returns the Kafka sink when brokers are configured and the
// log sink otherwise.
func buildAuditSink(ctx context.Context, cfg config.Server, log *slog.Logger, checks map[string]httpapi.HealthChecker) (audit.Sink, func(), error) {
	client, err := kafka.New(ctx, cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return audit.NewLogSink(log), func() {}, nil
	}
	if err := client.EnsureTopic(ctx, cfg.Kafka.AuditTopic, 1, 1); err != nil {
		client.Close()
		return nil, nil, err
	}
	log.Info("publishing audit events to kafka", "topic", cfg.Kafka.AuditTopic)
	checks["kafka"] = client
	return auditkafka.NewSink(client, cfg.Kafka.AuditTopic), client.Close, nil
}
