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

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/localspot/discovery-api/internal/config"
	"github.com/localspot/discovery-api/internal/database"
	"github.com/localspot/discovery-api/internal/handler"
	middlewarepkg "github.com/localspot/discovery-api/internal/middleware"
	"github.com/localspot/discovery-api/internal/repository"
	"github.com/localspot/discovery-api/internal/router"
	"github.com/localspot/discovery-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	businessesRepo := repository.NewPGXBusinessesRepository(pool)
	lookupRepo := repository.NewPGXLookupRepository(pool)

	businessesService := service.NewBusinessesService(businessesRepo, cfg.IncludeInactive, cfg.DefaultLimit, cfg.PhoneRegion)
	lookupService := service.NewLookupService(lookupRepo)

	// seed is idempotent; a failure is tolerable because the interests read
	// path degrades to the static seed set
	if err := lookupService.EnsureInterestsSeeded(ctx); err != nil {
		log.Printf("interests seed failed: %v", err)
	}

	businessesHandler := handler.NewBusinessesHandler(businessesService)
	lookupHandler := handler.NewLookupHandler(lookupService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	router.Register(e, cfg, router.Handlers{
		Businesses: businessesHandler,
		Lookups:    lookupHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
