package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Schedule configuration
	ReportSchedule string // "daily" or "weekly"
	TimeZone       string
	ReportPeriod   string // free-text period the report metrics cover

	// Storage configuration
	StorageAccount   string
	StorageContainer string
	LocalStorageDir  string // used when no storage account is set
	RetentionDays    int    // archived objects older than this are pruned; 0 keeps everything

	// Notification configuration
	TeamsWebhookURL   string
	NotificationEmail string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string

	// Comment sources
	YouTubeAPIKey      string
	YouTubeMaxVideos   int
	RedditClientID     string
	RedditClientSecret string

	// Brands to monitor; empty means every brand in the lexicon
	Brands []string

	// Relevance filtering
	EnableContextFiltering bool

	// Classifier tuning
	EmojiThreshold         float64
	MixedLanguageThreshold float64
	SarcasmThreshold       float64
	IdiomWeight            float64
	EmojiTextWeight        float64
	ClassifierCacheSize    int
	ClassifierWorkers      int
	LexiconFile            string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Debug:          getBoolEnv("DEBUG", false),
		ReportSchedule: getEnv("REPORT_SCHEDULE", "weekly"),
		TimeZone:       getEnv("TIMEZONE", "UTC"),
		ReportPeriod:   getEnv("REPORT_PERIOD", "last 1 months"),

		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "classified-comments"),
		LocalStorageDir:  getEnv("LOCAL_STORAGE_DIR", "data"),
		RetentionDays:    getIntEnv("ARCHIVE_RETENTION_DAYS", 400),

		TeamsWebhookURL:   getEnv("TEAMS_WEBHOOK_URL", ""),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getIntEnv("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),

		YouTubeAPIKey:      getEnv("YOUTUBE_API_KEY", ""),
		YouTubeMaxVideos:   getIntEnv("YOUTUBE_MAX_VIDEOS", 10),
		RedditClientID:     getEnv("REDDIT_CLIENT_ID", ""),
		RedditClientSecret: getEnv("REDDIT_CLIENT_SECRET", ""),

		Brands: getSliceEnv("BRANDS", nil),

		EnableContextFiltering: getBoolEnv("ENABLE_CONTEXT_FILTERING", true),

		EmojiThreshold:         getFloatEnv("EMOJI_THRESHOLD", 0.3),
		MixedLanguageThreshold: getFloatEnv("MIXED_LANGUAGE_THRESHOLD", 0.8),
		SarcasmThreshold:       getFloatEnv("SARCASM_THRESHOLD", 0.5),
		IdiomWeight:            getFloatEnv("IDIOM_WEIGHT", 2.0),
		EmojiTextWeight:        getFloatEnv("EMOJI_TEXT_WEIGHT", 0.5),
		ClassifierCacheSize:    getIntEnv("CLASSIFIER_CACHE_SIZE", 1000),
		ClassifierWorkers:      getIntEnv("CLASSIFIER_WORKERS", runtime.NumCPU()),
		LexiconFile:            getEnv("LEXICON_FILE", ""),
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Sentiment maps the classifier settings onto the pipeline configuration
func (c *Config) Sentiment() sentiment.Config {
	return sentiment.Config{
		EmojiThreshold:         c.EmojiThreshold,
		MixedLanguageThreshold: c.MixedLanguageThreshold,
		SarcasmThreshold:       c.SarcasmThreshold,
		IdiomWeight:            c.IdiomWeight,
		EmojiTextWeight:        c.EmojiTextWeight,
		CacheSize:              c.ClassifierCacheSize,
		Workers:                c.ClassifierWorkers,
	}
}

func (c *Config) validate() error {
	if c.ReportSchedule != "daily" && c.ReportSchedule != "weekly" {
		return fmt.Errorf("REPORT_SCHEDULE must be 'daily' or 'weekly'")
	}

	if c.TeamsWebhookURL == "" && c.NotificationEmail == "" {
		return fmt.Errorf("at least one notification method must be configured (TEAMS_WEBHOOK_URL or NOTIFICATION_EMAIL)")
	}

	if c.NotificationEmail != "" {
		if c.SMTPHost == "" || c.SMTPUsername == "" || c.SMTPPassword == "" {
			return fmt.Errorf("SMTP configuration is required when NOTIFICATION_EMAIL is set")
		}
	}

	if c.RetentionDays < 0 {
		return fmt.Errorf("ARCHIVE_RETENTION_DAYS must not be negative")
	}

	if c.YouTubeMaxVideos <= 0 {
		return fmt.Errorf("YOUTUBE_MAX_VIDEOS must be positive")
	}

	if err := c.Sentiment().Validate(); err != nil {
		return fmt.Errorf("invalid classifier settings: %w", err)
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var out []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}
	return defaultValue
}
