package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/app"
	"github.com/KirkDiggler/roshambo/internal/common/logger"
	"github.com/KirkDiggler/roshambo/internal/config"
	"github.com/KirkDiggler/roshambo/internal/handlers/api"
	archiveRepo "github.com/KirkDiggler/roshambo/internal/repositories/archive"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
	"github.com/KirkDiggler/roshambo/internal/transport"
	"github.com/KirkDiggler/roshambo/internal/transport/kafka"
	"github.com/KirkDiggler/roshambo/internal/transport/memory"
	redisTransport "github.com/KirkDiggler/roshambo/internal/transport/redis"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("node exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	defer func() { _ = redisClient.Close() }()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	tr, err := newTransport(ctx, cfg, redisClient, zapLogger)
	if err != nil {
		return err
	}

	var archive archiveRepo.Repository
	if cfg.Postgres.Enabled {
		pool, err := archiveRepo.Connect(ctx, cfg.Postgres.ConnectionString(), cfg.Postgres.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pool.Close()

		pg, err := archiveRepo.NewPostgres(&archiveRepo.Config{DB: pool})
		if err != nil {
			return err
		}
		if err := pg.RunMigrations(ctx); err != nil {
			return fmt.Errorf("failed to migrate archive: %w", err)
		}
		archive = pg
	}

	a, err := app.New(&app.Config{
		NodeID:          cfg.Node.ID,
		Keys:            keys.Space(cfg.Node.KeyPrefix),
		RedisClient:     redisClient,
		Transport:       tr,
		Archive:         archive,
		LeaderboardSize: cfg.Leaderboard.Size,
		DedupTTL:        cfg.Inbox.DedupTTL,
		Buffer:          cfg.Inbox.Buffer,
		Logger:          zapLogger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	handler, err := api.New(&api.Config{
		Executor: a.Node,
		Query:    a.Query,
		Logger:   zapLogger,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		zapLogger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	zapLogger.Info("node running",
		zap.String("node_id", cfg.Node.ID),
		zap.String("transport", cfg.Transport.Kind),
	)
	runErr := a.Run(ctx)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Warn("http server shutdown", zap.Error(err))
	}

	zapLogger.Info("node has been shut down")
	return runErr
}

func newTransport(ctx context.Context, cfg *config.Config, client *redis.Client, zapLogger *zap.Logger) (transport.Transport, error) {
	switch cfg.Transport.Kind {
	case config.TransportMemory:
		return memory.NewBus().Endpoint(cfg.Node.ID)
	case config.TransportKafka:
		return kafka.Dial(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupPrefix+cfg.Node.ID, cfg.Node.ID, zapLogger)
	default:
		return redisTransport.New(ctx, &redisTransport.Config{
			RedisClient: client,
			NodeID:      cfg.Node.ID,
			PollTimeout: cfg.Transport.PollTimeout,
			Logger:      zapLogger,
		})
	}
}
