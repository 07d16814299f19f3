package sentiment

import (
	"sort"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"gonum.org/v1/gonum/stat"
)

const topBrandCount = 5

// Summarize builds the flat counter set consumed by report generators
func Summarize(comments []models.ClassifiedComment) models.BatchSummary {
	summary := models.BatchSummary{
		TotalComments: len(comments),
		SentimentDistribution: map[string]int{
			models.SentimentPositive: 0,
			models.SentimentNegative: 0,
			models.SentimentNeutral:  0,
		},
		LanguageDistribution: make(map[string]int),
		EmojiUsage:           make(map[string]int),
		BrandMentions:        make(map[string]int),
		TopBrands:            []string{},
	}
	if len(comments) == 0 {
		return summary
	}

	confidences := make([]float64, 0, len(comments))
	engagement := make([]float64, 0, len(comments))
	mixed := 0

	for _, c := range comments {
		cl := c.Classification
		if cl.Failed {
			summary.FailedComments++
		}
		summary.SentimentDistribution[cl.Sentiment]++
		summary.LanguageDistribution[cl.LanguageAnalysis.PrimaryLanguage]++
		for _, e := range cl.EmojiAnalysis.Emojis {
			summary.EmojiUsage[e]++
		}
		if cl.SarcasmAnalysis.SarcasmDetected {
			summary.SarcasmCount++
		}
		for brand := range cl.CompanyAnalysis.AllMentions {
			summary.BrandMentions[brand]++
		}
		if cl.LanguageAnalysis.IsMixed {
			mixed++
		}
		confidences = append(confidences, cl.Confidence)
		engagement = append(engagement, cl.EngagementAnalysis.EngagementScore)
	}

	n := float64(len(comments))
	summary.AverageConfidence = stat.Mean(confidences, nil)
	summary.AverageEngagement = stat.Mean(engagement, nil)
	summary.MultilingualPercentage = float64(mixed) / n * 100
	summary.SarcasmPercentage = float64(summary.SarcasmCount) / n * 100

	for brand := range summary.BrandMentions {
		summary.TopBrands = append(summary.TopBrands, brand)
	}
	sort.Slice(summary.TopBrands, func(i, j int) bool {
		a, b := summary.TopBrands[i], summary.TopBrands[j]
		if summary.BrandMentions[a] != summary.BrandMentions[b] {
			return summary.BrandMentions[a] > summary.BrandMentions[b]
		}
		return a < b
	})
	if len(summary.TopBrands) > topBrandCount {
		summary.TopBrands = summary.TopBrands[:topBrandCount]
	}

	return summary
}
