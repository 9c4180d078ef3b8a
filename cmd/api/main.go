package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/flicky/eatsy-store/internal/config"
	"github.com/flicky/eatsy-store/internal/handler"
	"github.com/flicky/eatsy-store/internal/metrics"
	"github.com/flicky/eatsy-store/internal/payment"
	"github.com/flicky/eatsy-store/internal/repository"
	"github.com/flicky/eatsy-store/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("load config", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	clk := clock.New()
	now := clk.Now()
	m := metrics.New()

	// Store
	s, err := store.New(
		cfg.Store,
		repository.NewUserRepository(repository.MockUsers(now)),
		repository.NewMockSeed(now),
		payment.NewSimulated(clk, cfg.Store.PaymentDelay),
		m,
		clk,
		log,
	)
	if err != nil {
		log.Error("create store", "error", err)
		os.Exit(1)
	}
	defer s.Close()
	log.Info("store ready", "products", len(s.Products()), "orders", len(s.Orders()))

	// Router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(m.Middleware())

	router.GET("/healthz", handler.Healthz)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	handler.Register(router.Group("/api/v1"), s, cfg.Server.AllowedOrigins, log)

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
