package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/monitoring"
	"github.com/evpulse/oem-sentiment-bot/internal/notifications"
	"github.com/evpulse/oem-sentiment-bot/internal/scheduler"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/storage"
	"github.com/evpulse/oem-sentiment-bot/internal/temporal"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting EV OEM Sentiment Bot")

	lex, err := lexicon.LoadFile(cfg.LexiconFile)
	if err != nil {
		logrus.Fatalf("Failed to load lexicon: %v", err)
	}

	classifier, err := sentiment.NewClassifier(lex, cfg.Sentiment())
	if err != nil {
		logrus.Fatalf("Failed to build classifier: %v", err)
	}
	aggregator := temporal.NewAggregator(lex)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storageClient, err := newStorage(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	notificationService := notifications.NewService(cfg)
	monitoringService := monitoring.NewService(cfg, storageClient, notificationService, classifier, aggregator)

	schedulerService, err := scheduler.NewService(cfg, monitoringService)
	if err != nil {
		logrus.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      newRouter(monitoringService, classifier),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

// newStorage uses blob storage when an account is configured and the local disk otherwise
func newStorage(ctx context.Context, cfg *config.Config) (storage.StorageInterface, error) {
	if cfg.StorageAccount != "" {
		azure, err := storage.NewAzureStorage(ctx, cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			return nil, err
		}
		return azure, nil
	}

	logrus.Warnf("AZURE_STORAGE_ACCOUNT not set, archiving to %s", cfg.LocalStorageDir)
	local, err := storage.NewFileStorage(cfg.LocalStorageDir)
	if err != nil {
		return nil, err
	}
	return local, nil
}
