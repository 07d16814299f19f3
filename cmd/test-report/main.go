package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/evpulse/oem-sentiment-bot/internal/monitoring"
	"github.com/evpulse/oem-sentiment-bot/internal/notifications"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/storage"
	"github.com/evpulse/oem-sentiment-bot/internal/temporal"
	"github.com/sirupsen/logrus"
)

func main() {
	input := flag.String("input", "", "JSON file with an array of comments (default: built-in samples)")
	output := flag.String("output", "test_output", "directory for the saved report")
	lexiconFile := flag.String("lexicon", "", "optional lexicon overlay (YAML)")
	flag.Parse()

	fmt.Println("EV OEM Sentiment Bot - Test Report Generator")
	fmt.Println("============================================")

	comments := sampleComments(time.Now())
	if *input != "" {
		loaded, err := loadComments(*input)
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", *input, err)
			os.Exit(1)
		}
		comments = loaded
	}

	lex, err := lexicon.LoadFile(*lexiconFile)
	if err != nil {
		logrus.Fatalf("Failed to load lexicon: %v", err)
	}
	classifier, err := sentiment.NewClassifier(lex, sentiment.DefaultConfig())
	if err != nil {
		logrus.Fatalf("Failed to build classifier: %v", err)
	}

	store, err := storage.NewFileStorage(*output)
	if err != nil {
		logrus.Fatalf("Failed to open %s: %v", *output, err)
	}
	console := notifications.NewConsole(os.Stdout, *output)

	cfg := &config.Config{ReportSchedule: "weekly", ReportPeriod: "last 1 months"}
	service := monitoring.NewService(cfg, store, console, classifier, temporal.NewAggregator(lex))

	fmt.Printf("\nGenerating report with %d comments...\n", len(comments))

	ctx := context.Background()
	report, err := service.GenerateTestReport(ctx, comments)
	if err != nil {
		fmt.Printf("Error generating report: %v\n", err)
		os.Exit(1)
	}

	if err := console.SendReport(ctx, report); err != nil {
		fmt.Printf("Error sending report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nTest report generation completed!")
	fmt.Printf("   Check the '%s' directory for the saved JSON report\n", *output)
}

func loadComments(path string) ([]models.Comment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func sampleComments(now time.Time) []models.Comment {
	sample := func(n int, oem, source, text string, likes, replies, daysAgo int, videoTitle, url string) models.Comment {
		return models.Comment{
			ID:         fmt.Sprintf("sample_%d", n),
			Text:       text,
			Likes:      likes,
			Replies:    replies,
			Date:       now.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
			VideoTitle: videoTitle,
			VideoURL:   url,
			OEM:        oem,
			Source:     source,
		}
	}

	return []models.Comment{
		sample(1, "Ather", "youtube", "Ather 450X ka performance bahut acha hai! Range bhi mast hai. Highly recommend!",
			48, 6, 2, "Ather 450X long term review", "https://www.youtube.com/watch?v=sample1"),
		sample(2, "Ola Electric", "youtube", "Great service! Visited the center 3 times for the same issue 🙄",
			210, 31, 1, "Ola S1 Pro owner review", "https://www.youtube.com/watch?v=sample2"),
		sample(3, "Ola Electric", "reddit", "froud company hai, dont buy. Service center koi sunta nahi",
			120, 14, 4, "r/IndianBikes", "https://reddit.com/r/IndianBikes/comments/sample3"),
		sample(4, "TVS iQube", "youtube", "iQube vangunen, romba nalla iruku 👍",
			9, 0, 6, "TVS iQube ST review", "https://www.youtube.com/watch?v=sample4"),
		sample(5, "Bajaj Chetak", "youtube", "Chetak vs Ather, which one should I buy for 30 km daily?",
			3, 2, 3, "Bajaj Chetak 2024 walkaround", "https://www.youtube.com/watch?v=sample5"),
		sample(6, "Hero Vida", "youtube", "Vida V1 Pro owner for a year, loyal customer, battery still gives 100 km 🔥",
			27, 3, 10, "Hero Vida V1 one year review", "https://www.youtube.com/watch?v=sample6"),
	}
}
