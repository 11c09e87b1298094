package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/logger"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/store"
)

// @title Storefront API
// @version 1.0
// @description Catalog and order API with admin-only product management.
// @host localhost:4000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if cfg.EnvFileErr != nil {
		zlog.Debug("no .env file loaded, using process environment", zap.Error(cfg.EnvFileErr))
	}
	if cfg.InsecureSecret() {
		zlog.Warn("JWT_SECRET is not set, tokens are signed with the development default; set JWT_SECRET in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	documents, err := store.Open(ctx, cfg)
	if err != nil {
		zlog.Fatal("store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer documents.Close()

	if _, err := service.NewSeeder(documents, zlog).Seed(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zlog.Fatal("seed document", zap.Error(err))
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	gate := auth.NewGate(jwtService)

	// Initialize services
	credentials := service.NewCredentialStore(documents)
	authService := service.NewAuthService(credentials, jwtService)
	catalogService := service.NewCatalogService(documents, zlog)
	orderService := service.NewOrderService(documents, zlog)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, zlog, gate, authHandler, productHandler, orderHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		zlog.Info("server listening", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("server start", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}
