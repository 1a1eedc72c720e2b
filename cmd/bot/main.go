package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logCloser, err := logger.Init(cfg)
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not initialise logging: %v", err)
	}
	defer logCloser.Close()

	mainLogger := logger.WithComponent("main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Retry period: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.RetryPeriod)

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL, cfg.RequestTimeout)
	if err != nil {
		mainLogger.Fatalf("FATAL: %v", err)
	}
	sender := telegram.NewTelebotAdapter(bot)
	mainLogger.Info("Telegram sender initialized.")

	client := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.RequestTimeout, logger.WithComponent("practicum"))
	sleeper := scheduler.NewIntervalSleeper(cfg.RetryPeriod, logger.WithComponent("scheduler"))

	poller := app.NewPollerService(cfg, client, sender, sleeper, logger.WithComponent("poller"), time.Now().Unix())

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = poller.Run(ctx)
	if errors.Is(err, context.Canceled) {
		mainLogger.Info("Application shut down gracefully.")
		return
	}
	mainLogger.Errorf("FATAL: Polling stopped: %v", err)
	logCloser.Close()
	os.Exit(1)
}
