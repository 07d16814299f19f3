package models

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Language tags reported by the language mixer
const (
	LanguageEnglish    = "english"
	LanguageDevanagari = "devanagari"
	LanguageTamil      = "tamil"
	LanguageMalayalam  = "malayalam"
	LanguageTelugu     = "telugu"
	LanguageBengali    = "bengali"
	LanguageGujarati   = "gujarati"
	LanguageKannada    = "kannada"
	LanguageLocalWords = "local_words"
	LanguageUnknown    = "unknown"
)

// Engagement levels
const (
	EngagementNone   = "none"
	EngagementLow    = "low"
	EngagementMedium = "medium"
	EngagementHigh   = "high"
	EngagementViral  = "viral"
)

// LanguageProfile describes the script and word-level language composition of a text
type LanguageProfile struct {
	PrimaryLanguage string             `json:"primary_language"`
	IsMixed         bool               `json:"is_mixed"`
	Languages       map[string]float64 `json:"languages"`
}

// EmojiProfile summarizes emoji usage and its sentiment
type EmojiProfile struct {
	HasEmojis           bool     `json:"has_emojis"`
	EmojiCount          int      `json:"emoji_count"`
	Emojis              []string `json:"emojis,omitempty"`
	EmojiSentimentScore float64  `json:"emoji_sentiment_score"`
	EmojiSentiment      string   `json:"emoji_sentiment"`
}

// BrandScore is the match strength of a single brand inside a text
type BrandScore struct {
	MatchScore int     `json:"match_score"`
	Confidence float64 `json:"confidence"`
}

// BrandMention describes which brands a text talks about
type BrandMention struct {
	PrimaryCompany     string                `json:"primary_company,omitempty"`
	AllMentions        map[string]BrandScore `json:"all_mentions"`
	CompetitorMentions []string              `json:"competitor_mentions"`
}

// EngagementProfile converts raw counters into a bounded weight
type EngagementProfile struct {
	EngagementScore     float64 `json:"engagement_score"`
	EngagementLevel     string  `json:"engagement_level"`
	AmplificationFactor float64 `json:"amplification_factor"`
}

// SentimentWord is one keyword or phrase hit recorded by the pattern scorer
type SentimentWord struct {
	Word      string  `json:"word"`
	Sentiment string  `json:"sentiment"`
	Language  string  `json:"language"`
	Weight    float64 `json:"weight"`
}

// PatternSentiment is the output of the pattern-based scorer
type PatternSentiment struct {
	Sentiment                       string          `json:"sentiment"`
	Confidence                      float64         `json:"confidence"`
	PositiveScore                   float64         `json:"positive_score"`
	NegativeScore                   float64         `json:"negative_score"`
	SentimentWords                  []SentimentWord `json:"sentiment_words"`
	IsAdviceRequest                 bool            `json:"is_advice_request"`
	IsInformationSeeking            bool            `json:"is_information_seeking"`
	IsAdviceGiving                  bool            `json:"is_advice_giving"`
	IsNeutralInquiry                bool            `json:"is_neutral_inquiry"`
	IsIrrelevant                    bool            `json:"is_irrelevant"`
	HasStrongNegative               bool            `json:"has_strong_negative"`
	HasNegativePhrase               bool            `json:"has_negative_phrase"`
	HasStrongPositiveRecommendation bool            `json:"has_strong_positive_recommendation"`
	Reason                          string          `json:"reason"`
}

// SarcasmProfile is the output of the sarcasm detector
type SarcasmProfile struct {
	SarcasmDetected   bool     `json:"sarcasm_detected"`
	SarcasmScore      float64  `json:"sarcasm_score"`
	SarcasmIndicators []string `json:"sarcasm_indicators"`
}

// Classification is the final, combined result for one comment and one target brand
type Classification struct {
	Sentiment             string            `json:"sentiment"`
	Confidence            float64           `json:"confidence"`
	TargetBrand           string            `json:"target_brand,omitempty"`
	LanguageAnalysis      LanguageProfile   `json:"language_analysis"`
	EmojiAnalysis         EmojiProfile      `json:"emoji_analysis"`
	CompanyAnalysis       BrandMention      `json:"company_analysis"`
	EngagementAnalysis    EngagementProfile `json:"engagement_analysis"`
	PatternAnalysis       PatternSentiment  `json:"pattern_analysis"`
	SarcasmAnalysis       SarcasmProfile    `json:"sarcasm_analysis"`
	ClassificationFactors []string          `json:"classification_factors"`
	LexiconVersion        string            `json:"lexicon_version,omitempty"`
	Failed                bool              `json:"failed,omitempty"`
}
