package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcore/internal/auth"
	"github.com/nikolayk812/shopcore/internal/config"
	"github.com/nikolayk812/shopcore/internal/db"
	"github.com/nikolayk812/shopcore/internal/events"
	httpapi "github.com/nikolayk812/shopcore/internal/http"
	"github.com/nikolayk812/shopcore/internal/port"
	"github.com/nikolayk812/shopcore/internal/repository"
	"github.com/nikolayk812/shopcore/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(os.Stdout).Level(cfg.Level).With().Timestamp().Str("service", "shopcore").Logger()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return fmt.Errorf("db.RunMigrations: %w", err)
		}
	}

	publisher, closePublisher, err := newPublisher(cfg.AMQPURL, logger)
	if err != nil {
		return fmt.Errorf("newPublisher: %w", err)
	}
	defer closePublisher()

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return fmt.Errorf("auth.NewTokens: %w", err)
	}

	passwords, err := auth.NewPasswords(cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.NewPasswords: %w", err)
	}

	orderService, err := service.NewOrderService(
		repository.NewCheckout(pool),
		repository.NewOrder(pool),
		publisher,
		cfg.Currency,
		logger,
	)
	if err != nil {
		return fmt.Errorf("service.NewOrderService: %w", err)
	}

	h, err := httpapi.NewHandler(
		service.NewAuthService(repository.NewUser(pool), tokens, passwords),
		service.NewCatalogService(repository.NewProduct(pool), repository.NewCategory(pool)),
		orderService,
		repository.NewCart(pool),
		pool,
	)
	if err != nil {
		return fmt.Errorf("httpapi.NewHandler: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(h, tokens, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server.ListenAndServe: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	logger.Info().Msg("shutdown complete")
	return nil
}

// newPublisher connects to RabbitMQ, or logs events locally when amqpURL is empty.
func newPublisher(amqpURL string, logger zerolog.Logger) (port.EventPublisher, func(), error) {
	if amqpURL == "" {
		logger.Warn().Msg("AMQP_URL is empty, order events are not published")
		return events.NewNoopPublisher(logger), func() {}, nil
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, nil, fmt.Errorf("amqp.Dial: %w", err)
	}

	publisher, err := events.NewPublisher(conn, logger)
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("events.NewPublisher: %w", err)
	}

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("publisher.Close")
		}
		if err := conn.Close(); err != nil {
			logger.Error().Err(err).Msg("conn.Close")
		}
	}, nil
}
