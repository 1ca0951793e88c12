// Package server собирает HTTP сервер журнала сделок: маршруты,
// middleware цепочку и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tradeify/tradeify/internal/server/config"
	"github.com/tradeify/tradeify/internal/server/handlers"
	"github.com/tradeify/tradeify/internal/server/middleware"
	"github.com/tradeify/tradeify/internal/server/storage"
)

// shutdownTimeout - сколько ждем завершения активных запросов при остановке
const shutdownTimeout = 10 * time.Second

// Storage объединяет все, что нужно серверу от хранилища
type Storage interface {
	storage.UserStorage
	storage.TradeStorage
	handlers.Pinger
}

// Server - HTTP сервер приложения
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	storage    Storage
	httpServer *http.Server
}

// New создает сервер с собранным роутером и middleware цепочкой
func New(cfg *config.Config, logger *slog.Logger, store Storage, version string) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		storage: store,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.buildHandler(version),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// buildHandler собирает роутер и оборачивает его в middleware.
// Цепочка снаружи внутрь: recovery -> logging -> mux.
// Auth middleware навешивается только на маршруты сделок.
func (s *Server) buildHandler(version string) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(s.config.JWTSecret),
		AccessTokenTTL: s.config.AccessTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(s.logger, s.storage, jwtConfig)
	tradesHandler := handlers.NewTradesHandler(s.logger, s.storage)
	healthHandler := handlers.NewHealthHandler(s.logger, s.storage, version)

	auth := middleware.AuthMiddleware(s.logger, jwtConfig, s.storage)

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Маршруты сделок требуют валидный токен
	mux.Handle("GET /api/v1/trades", auth(http.HandlerFunc(tradesHandler.List)))
	mux.Handle("POST /api/v1/trades", auth(http.HandlerFunc(tradesHandler.Create)))
	mux.Handle("PUT /api/v1/trades/{id}", auth(http.HandlerFunc(tradesHandler.Update)))
	mux.Handle("DELETE /api/v1/trades/{id}", auth(http.HandlerFunc(tradesHandler.Delete)))
	mux.Handle("POST /api/v1/trades/import", auth(http.HandlerFunc(tradesHandler.Import)))
	mux.Handle("GET /api/v1/trades/stats", auth(http.HandlerFunc(tradesHandler.Stats)))

	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(s.logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(s.logger)(handler)

	return handler
}

// Run запускает сервер и блокируется до отмены контекста или ошибки.
// При отмене контекста выполняется graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server", slog.String("addr", s.config.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
