package models

import "time"

// Comment represents a single user comment collected from a platform.
// It is never mutated by the classifier; enrichment produces a ClassifiedComment.
type Comment struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Likes      int    `json:"likes"`
	Replies    int    `json:"replies"`
	Shares     int    `json:"shares"`
	Date       string `json:"date"`
	VideoID    string `json:"video_id,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
	VideoTitle string `json:"video_title,omitempty"`
	OEM        string `json:"oem,omitempty"` // brand the collector searched for
	Source     string `json:"source,omitempty"`
}

// ClassifiedComment is the original comment plus its classification
type ClassifiedComment struct {
	Comment
	Classification Classification `json:"classification"`
}

// Report represents a periodic report of classified comments
type Report struct {
	ID            string                     `json:"id"`
	GeneratedAt   time.Time                  `json:"generated_at"`
	Period        string                     `json:"period"` // "daily", "weekly" or a free-text period query
	TotalComments int                        `json:"total_comments"`
	Comments      []ClassifiedComment        `json:"comments"`
	Summary       BatchSummary               `json:"summary"`
	Brands        map[string]TemporalMetrics `json:"brands,omitempty"`
	Type          string                     `json:"type,omitempty"` // "" for regular reports, "urgent" otherwise
}

// Alert represents an urgent notification
type Alert struct {
	ID        string             `json:"id"`
	Type      string             `json:"type"` // "critical", "urgent", "info"
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Brand     string             `json:"brand,omitempty"`
	Comment   *ClassifiedComment `json:"comment,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// BatchSummary is the flat counter set handed to report generators
type BatchSummary struct {
	TotalComments          int            `json:"total_comments"`
	FailedComments         int            `json:"failed_comments"`
	SentimentDistribution  map[string]int `json:"sentiment_distribution"`
	LanguageDistribution   map[string]int `json:"language_distribution"`
	EmojiUsage             map[string]int `json:"emoji_usage"`
	SarcasmCount           int            `json:"sarcasm_count"`
	BrandMentions          map[string]int `json:"brand_mentions"`
	TopBrands              []string       `json:"top_brands"`
	AverageConfidence      float64        `json:"average_confidence"`
	AverageEngagement      float64        `json:"average_engagement"`
	MultilingualPercentage float64        `json:"multilingual_percentage"`
	SarcasmPercentage      float64        `json:"sarcasm_percentage"`
}
