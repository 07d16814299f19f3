package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/sources"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("EV OEM Sentiment Bot - API Connectivity Test")
	fmt.Println("============================================")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lex, err := lexicon.LoadFile(cfg.LexiconFile)
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}
	classifier, err := sentiment.NewClassifier(lex, cfg.Sentiment())
	if err != nil {
		log.Fatalf("Failed to build classifier: %v", err)
	}

	brand := "Ather"
	if len(cfg.Brands) > 0 {
		brand = classifier.ResolveBrand(cfg.Brands[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("\nTesting comment sources for %s...\n", brand)
	fmt.Println(strings.Repeat("-", 40))

	testSource(ctx, "YouTube", sources.NewYouTubeSource(cfg.YouTubeAPIKey, min(cfg.YouTubeMaxVideos, 2)), classifier, brand)
	testSource(ctx, "Reddit", sources.NewRedditSource(cfg.RedditClientID, cfg.RedditClientSecret), classifier, brand)

	fmt.Println("\nAPI connectivity test completed!")
	fmt.Println("   Configure missing API keys in the .env file, then run the bot with: go run ./cmd/bot")
}

func testSource(ctx context.Context, name string, source sources.Source, classifier *sentiment.Classifier, brand string) {
	fmt.Printf("Testing %s... ", name)

	if !source.IsEnabled() {
		fmt.Println("DISABLED (missing credentials)")
		return
	}

	comments, err := source.FetchComments(ctx, brand, 7*24*time.Hour)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}

	fmt.Printf("SUCCESS (%d comments found)\n", len(comments))
	if len(comments) == 0 {
		return
	}

	classified, err := classifier.ClassifyBatch(ctx, comments[:min(len(comments), 3)], brand)
	if err != nil {
		fmt.Printf("   classification stopped: %v\n", err)
	}
	for _, c := range classified {
		text := []rune(strings.ReplaceAll(c.Text, "\n", " "))
		if len(text) > 80 {
			text = append(text[:80], []rune("...")...)
		}
		fmt.Printf("   [%s %.2f] %s\n", c.Classification.Sentiment, c.Classification.Confidence, string(text))
	}
}
