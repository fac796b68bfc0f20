package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tireshop/pos-system/internal/api"
	"github.com/tireshop/pos-system/internal/infrastructure/config"
	mongodb "github.com/tireshop/pos-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tireshop/pos-system/internal/infrastructure/db/redis"
	"github.com/tireshop/pos-system/internal/infrastructure/notify"
	"github.com/tireshop/pos-system/internal/infrastructure/queue"
	"github.com/tireshop/pos-system/pkg/logger"
)

// @title        Tire Shop POS API
// @version      1.0
// @description  Point-of-sale backend for a tire retail shop: inventory, billing, invoices, and reports.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{
		mongodb.NewAuthRepository(db),
		mongodb.NewInventoryRepository(db),
		mongodb.NewSalesRepository(db),
		mongodb.NewPurchaseRepository(db),
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Invoice delivery pipeline ---
	notifier := notify.NewWhatsAppNotifier(notify.Config{
		AccountSID: cfg.WhatsApp.AccountSID,
		AuthToken:  cfg.WhatsApp.AuthToken,
		From:       cfg.WhatsApp.From,
	}, logger.Component("whatsapp"))
	dispatcher := queue.NewDispatcher(cfg.DeliveryWorkers, notifier, logger.Component("delivery"))
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, dispatcher)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
