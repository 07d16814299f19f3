package sentiment

import (
	"testing"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func classified(sentiment string, confidence float64, language string, mixed bool, brands ...string) models.ClassifiedComment {
	mentions := make(map[string]models.BrandScore)
	for _, b := range brands {
		mentions[b] = models.BrandScore{MatchScore: 3, Confidence: 0.6}
	}
	return models.ClassifiedComment{
		Classification: models.Classification{
			Sentiment:          sentiment,
			Confidence:         confidence,
			LanguageAnalysis:   models.LanguageProfile{PrimaryLanguage: language, IsMixed: mixed},
			CompanyAnalysis:    models.BrandMention{AllMentions: mentions},
			EngagementAnalysis: models.EngagementProfile{EngagementScore: 0.5},
		},
	}
}

func TestSummarize(t *testing.T) {
	comments := []models.ClassifiedComment{
		classified(models.SentimentPositive, 0.9, models.LanguageEnglish, false, "Ather"),
		classified(models.SentimentNegative, 0.7, models.LanguageEnglish, true, "Ola Electric", "Ather"),
		classified(models.SentimentNeutral, 0.5, models.LanguageDevanagari, true, "Ola Electric"),
		classified(models.SentimentNegative, 0.7, models.LanguageLocalWords, false),
	}
	comments[1].Classification.SarcasmAnalysis.SarcasmDetected = true
	comments[2].Classification.EmojiAnalysis.Emojis = []string{"👍", "👍"}
	comments[3].Classification.Failed = true

	summary := Summarize(comments)

	assert.Equal(t, 4, summary.TotalComments)
	assert.Equal(t, 1, summary.FailedComments)
	assert.Equal(t, map[string]int{"positive": 1, "negative": 2, "neutral": 1}, summary.SentimentDistribution)
	assert.Equal(t, 2, summary.LanguageDistribution[models.LanguageEnglish])
	assert.Equal(t, 2, summary.EmojiUsage["👍"])
	assert.Equal(t, 1, summary.SarcasmCount)
	assert.InDelta(t, 25.0, summary.SarcasmPercentage, 0.001)
	assert.InDelta(t, 50.0, summary.MultilingualPercentage, 0.001)
	assert.InDelta(t, 0.7, summary.AverageConfidence, 0.001)
	assert.InDelta(t, 0.5, summary.AverageEngagement, 0.001)
	assert.Equal(t, map[string]int{"Ather": 2, "Ola Electric": 2}, summary.BrandMentions)
	assert.Equal(t, []string{"Ather", "Ola Electric"}, summary.TopBrands)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalComments)
	assert.Zero(t, summary.AverageConfidence)
	assert.Empty(t, summary.TopBrands)
	assert.Equal(t, 0, summary.SentimentDistribution[models.SentimentPositive])
}
