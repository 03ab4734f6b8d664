package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/pvieira/go-moneytransfer/internal/api"
	"github.com/pvieira/go-moneytransfer/internal/app"
	"github.com/pvieira/go-moneytransfer/internal/config"
	"github.com/pvieira/go-moneytransfer/internal/domain"
	"github.com/pvieira/go-moneytransfer/internal/lock"
	"github.com/pvieira/go-moneytransfer/internal/notification"
	"github.com/pvieira/go-moneytransfer/internal/storage"
	"github.com/pvieira/go-moneytransfer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error"})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.PrettyLogs,
	})

	// DB connection
	pool, err := storage.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	accounts := storage.NewAccountRepository(pool)
	locks := lock.NewManager()

	notifier := notification.New(cfg.WebhookURL, log)
	notifier.Start()
	defer notifier.Stop()

	windowLength := time.Duration(cfg.BaselineWindowDays) * 24 * time.Hour
	sendMoney := app.NewSendMoneyService(
		accounts, accounts, locks, notifier,
		domain.NewMoney(cfg.TransferThreshold), windowLength, log)
	movements := app.NewMoneyMovementService(accounts, accounts, locks, windowLength, log)

	// Initialize a new Fiber app and the API routes
	fiberApp := fiber.New()
	api.InitializeRoutes(fiberApp, api.Deps{
		Accounts:  accounts,
		SendMoney: sendMoney,
		Movements: movements,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := fiberApp.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal, then shut down cleanly
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := fiberApp.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}
