package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/monitoring"
	"github.com/evpulse/oem-sentiment-bot/internal/notifications"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/storage"
	"github.com/evpulse/oem-sentiment-bot/internal/temporal"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Runs one full monitoring pass against the live sources, archiving to the
// local disk and printing the report instead of sending it.
func main() {
	fmt.Println("EV OEM Sentiment Bot - Local Integration Test")
	fmt.Println("=============================================")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cfg.YouTubeAPIKey == "" && cfg.RedditClientID == "" {
		fmt.Println("No source credentials configured; set YOUTUBE_API_KEY or REDDIT_CLIENT_ID/SECRET")
		os.Exit(1)
	}

	lex, err := lexicon.LoadFile(cfg.LexiconFile)
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}
	classifier, err := sentiment.NewClassifier(lex, cfg.Sentiment())
	if err != nil {
		log.Fatalf("Failed to build classifier: %v", err)
	}

	store, err := storage.NewFileStorage(cfg.LocalStorageDir)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", cfg.LocalStorageDir, err)
	}
	console := notifications.NewConsole(os.Stdout, "")

	service := monitoring.NewService(cfg, store, console, classifier, temporal.NewAggregator(lex))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	if err := service.RunMonitoring(ctx); err != nil {
		fmt.Printf("Monitoring run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nRun finished in %v. Archive written to %s\n", time.Since(start).Round(time.Second), cfg.LocalStorageDir)
	fmt.Println("Metrics:")
	fmt.Println(service.GetMetrics())
}
