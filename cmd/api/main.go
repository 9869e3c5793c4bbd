// Command api serves the commerce HTTP API.
//
// @title                       Commerce API
// @version                     1.0
// @description                 Mock commerce backend: products, users, carts, orders and customers.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/commerce-api/internal/api"
	"github.com/99minutos/commerce-api/internal/api/handler"
	"github.com/99minutos/commerce-api/internal/core/ports"
	"github.com/99minutos/commerce-api/internal/core/service"
	"github.com/99minutos/commerce-api/internal/infrastructure/db/file"
	"github.com/99minutos/commerce-api/internal/infrastructure/db/memory"
	mongostore "github.com/99minutos/commerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/99minutos/commerce-api/internal/infrastructure/db/redis"
	"github.com/99minutos/commerce-api/internal/infrastructure/queue"
	"github.com/99minutos/commerce-api/internal/pkg/config"
	"github.com/99minutos/commerce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "commerce-api",
	})
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("persist_mode", cfg.Persist.Mode).
		Str("seed_source", cfg.Persist.Seed).
		Msg("service starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	health := map[string]handler.Pinger{}

	// --- Optional Mongo ---
	var mongoClient *mongo.Client
	var snapshots *mongostore.SnapshotRepository
	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}
		mongoClient = client
		snapshots = mongostore.NewSnapshotRepository(db)
		if err := snapshots.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure snapshot indexes")
		}
		health["mongodb"] = mongostore.Pinger{Client: client}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")
	}

	// --- Optional Redis ---
	var rdb *goredis.Client
	var guard service.IdempotencyGuard
	if cfg.Redis.Addr != "" {
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			Timeout: cfg.Redis.Timeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		rdb = client
		guard = redisstore.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL)
		health["redis"] = redisstore.Pinger{Client: client}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	// --- Collections ---
	files := file.NewStore(cfg.DataDir)
	var seed ports.SeedSource = files
	if cfg.Persist.Seed == config.SeedMongo {
		seed = snapshots
	}

	db := memory.New()
	if err := db.Seed(ctx, seed); err != nil {
		log.Fatal().Err(err).Msg("failed to seed collections")
	}
	log.Info().Str("source", cfg.Persist.Seed).Msg("collections seeded")

	// --- Write-behind persistence ---
	persistCtx, stopPersist := context.WithCancel(context.Background())
	var dispatcher *queue.Dispatcher
	if writer := snapshotWriter(cfg, files, snapshots); writer != nil {
		dispatcher = queue.NewDispatcher(cfg.Persist.Workers, writer, logger.Component("persistence"))
		dispatcher.Start(persistCtx)
		db.OnChange(dispatcher.Enqueue)
	}

	// --- Services ---
	authService := service.NewAuthService(db.Users(), cfg.SessionTTL, logger.Component("auth"))

	e := api.NewRouter(api.Dependencies{
		Auth:      authService,
		Products:  service.NewProductService(db.Products(), logger.Component("products")),
		Users:     service.NewUserService(db.Users(), logger.Component("users")),
		Carts:     service.NewCartService(db.Carts(), db.Orders(), guard, logger.Component("carts")),
		Orders:    service.NewOrderService(db.Orders()),
		Customers: service.NewCustomerService(db.Customers()),
		Health:    health,
		Log:       logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	// Writes have stopped; let the workers flush what is pending.
	stopPersist()
	if dispatcher != nil {
		dispatcher.Wait()
	}

	closeStores(shutdownCtx, log, mongoClient, rdb)
	log.Info().Msg("service stopped")
}

// snapshotWriter picks the sink for PERSIST_MODE, or nil when persistence is
// off.
func snapshotWriter(cfg *config.Config, files *file.Store, snapshots *mongostore.SnapshotRepository) ports.SnapshotWriter {
	switch cfg.Persist.Mode {
	case config.PersistFile:
		return files
	case config.PersistMongo:
		return snapshots
	default:
		return nil
	}
}

func closeStores(ctx context.Context, log zerolog.Logger, mc *mongo.Client, rdb *goredis.Client) {
	if mc != nil {
		if err := mc.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}
}
