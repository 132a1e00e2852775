// Command storefront serves the Shopverse storefront API.
//
// @title                       Shopverse Storefront API
// @version                     1.0
// @description                 Catalog, session cart, mock authentication, checkout and admin dashboard of the Shopverse storefront.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shopverse/storefront/docs"
	"github.com/shopverse/storefront/internal/api"
	"github.com/shopverse/storefront/internal/core/ports"
	"github.com/shopverse/storefront/internal/core/service"
	"github.com/shopverse/storefront/internal/infrastructure/db/memory"
	"github.com/shopverse/storefront/internal/infrastructure/db/mongo"
	"github.com/shopverse/storefront/internal/infrastructure/db/redis"
	"github.com/shopverse/storefront/internal/infrastructure/seed"
	"github.com/shopverse/storefront/internal/pkg/config"
	"github.com/shopverse/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// backends are the storage choices resolved from configuration.
type backends struct {
	kv       ports.KeyValueStore
	guard    service.IdempotencyGuard
	products ports.CatalogRepository
	orders   ports.OrderRepository

	mongo *gomongo.Database
	redis *goredis.Client

	close func()
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage backends")
	}
	defer b.close()

	sessions := service.NewSessionManager(b.kv, service.SessionOptions{
		Auth: service.AuthOptions{
			AdminEmail: cfg.Auth.AdminEmail,
			Delay:      cfg.Auth.Delay,
		},
		IdleTTL: cfg.Session.IdleTTL,
	}, log.With().Str("component", "sessions").Logger())
	sessions.Start(ctx)

	catalogService := service.NewCatalogService(b.products, b.orders, log.With().Str("component", "catalog").Logger())
	checkoutService := service.NewCheckoutService(b.orders, b.guard, service.CheckoutOptions{
		Delay: cfg.Checkout.Delay,
	}, log.With().Str("component", "checkout").Logger())

	e := api.NewRouter(api.Dependencies{
		Sessions:  sessions,
		Catalog:   catalogService,
		Checkout:  checkoutService,
		Tokens:    service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		JWTSecret: cfg.JWTSecret,
		PageSize:  cfg.Catalog.PageSize,
		Mongo:     b.mongo,
		Redis:     b.redis,
		Log:       log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("session_store", cfg.Session.Store).
			Str("catalog_store", cfg.Catalog.Store).
			Msg("storefront listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openBackends connects the configured session and catalog stores. The
// catalog is seeded from the embedded product list when it is empty.
func openBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	products, err := seed.Products()
	if err != nil {
		return nil, err
	}

	b := &backends{}
	var closers []func()
	b.close = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Session.Store {
	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		b.redis = client
		b.kv = redis.NewKeyValueStore(client, cfg.Session.TTL)
		b.guard = redis.NewIdempotencyGuard(client, cfg.Checkout.IdempotencyTTL)
	default:
		b.kv = memory.NewKeyValueStore()
		b.guard = memory.NewIdempotencyGuard(cfg.Checkout.IdempotencyTTL)
	}

	switch cfg.Catalog.Store {
	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			b.close()
			return nil, err
		}
		closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
		b.mongo = db

		catalogRepo := mongo.NewCatalogRepository(db)
		orderRepo := mongo.NewOrderRepository(db)
		if err := catalogRepo.EnsureIndexes(ctx); err != nil {
			b.close()
			return nil, err
		}
		if err := orderRepo.EnsureIndexes(ctx); err != nil {
			b.close()
			return nil, err
		}
		seeded, err := catalogRepo.EnsureSeed(ctx, products)
		if err != nil {
			b.close()
			return nil, err
		}
		if seeded {
			log.Info().Int("products", len(products)).Msg("catalog seeded")
		}
		b.products, b.orders = catalogRepo, orderRepo
	default:
		b.products = memory.NewCatalogRepository(products)
		b.orders = memory.NewOrderRepository()
	}

	return b, nil
}
