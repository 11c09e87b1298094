package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/service"
	"storefront/internal/store"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	ctx := context.Background()

	documents, err := store.Open(ctx, cfg)
	if err != nil {
		zlog.Fatal("store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer documents.Close()

	result, err := service.NewSeeder(documents, zlog).Seed(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		zlog.Fatal("seed document", zap.Error(err))
	}

	zlog.Info("seed completed",
		zap.String("driver", cfg.StoreDriver),
		zap.Bool("admin_created", result.AdminCreated),
		zap.Int("products_seeded", result.ProductsSeeded),
	)
}
