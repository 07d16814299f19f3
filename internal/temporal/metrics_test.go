package temporal

import (
	"strings"
	"testing"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comment(text, sentiment, day, brand string) models.ClassifiedComment {
	return models.ClassifiedComment{
		Comment: models.Comment{Text: text, Date: day},
		Classification: models.Classification{
			Sentiment:   sentiment,
			Confidence:  0.8,
			TargetBrand: brand,
		},
	}
}

func TestFilter(t *testing.T) {
	period, err := ParsePeriod("August 2024", referenceNow)
	require.NoError(t, err)

	comments := []models.ClassifiedComment{
		comment("a", models.SentimentPositive, "2024-08-10T10:00:00Z", ""),
		comment("b", models.SentimentPositive, "2024-09-01", ""),
		comment("c", models.SentimentNegative, "15/08/2024", ""),
		comment("d", models.SentimentNeutral, "not a date", ""),
		comment("e", models.SentimentNeutral, "", ""),
		comment("f", models.SentimentNeutral, "Aug 31, 2024", ""),
	}

	kept := Filter(comments, period)

	var texts []string
	for _, c := range kept {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"a", "c", "f"}, texts)
}

func TestFilterBrand(t *testing.T) {
	mentioned := comment("Vida is fine", models.SentimentPositive, "2024-08-01", "")
	mentioned.Classification.CompanyAnalysis.AllMentions = map[string]models.BrandScore{"Hero Vida": {MatchScore: 3}}
	collected := comment("nice", models.SentimentPositive, "2024-08-01", "")
	collected.OEM = "hero vida"

	comments := []models.ClassifiedComment{
		comment("targeted", models.SentimentPositive, "2024-08-01", "Hero Vida"),
		comment("other", models.SentimentPositive, "2024-08-01", "Ather"),
		mentioned,
		collected,
	}

	assert.Len(t, FilterBrand(comments, "Hero Vida"), 3)
	assert.Len(t, FilterBrand(comments, ""), 4)
	assert.Empty(t, FilterBrand(comments, "Ola Electric"))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2024-08-10T10:00:00Z", true},
		{"2024-08-10T10:00:00.123+05:30", true},
		{"2024-08-10 10:00:00", true},
		{"2024-08-10", true},
		{"10/08/2024", true},
		{"10 Aug 2024", true},
		{"August 10, 2024", true},
		{"yesterday", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, ok := ParseDate(tt.value, time.UTC)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, 2024, parsed.Year())
				assert.Equal(t, time.August, parsed.Month())
			}
		})
	}
}

func TestAggregator_Metrics(t *testing.T) {
	agg := NewAggregator(lexicon.Default())

	t.Run("largest remainder rounding", func(t *testing.T) {
		m := agg.Metrics([]models.ClassifiedComment{
			comment("", models.SentimentPositive, "", ""),
			comment("", models.SentimentNegative, "", ""),
			comment("", models.SentimentNeutral, "", ""),
		})

		assert.Equal(t, 33.4, m.PositivePercentage)
		assert.Equal(t, 33.3, m.NegativePercentage)
		assert.Equal(t, 33.3, m.NeutralPercentage)
		assert.InDelta(t, 0.1, m.SentimentScore, 1e-9)
		assert.Equal(t, 0.8, m.AverageConfidence)
		assert.Equal(t, ConfidenceLow, m.ConfidenceLevel)
	})

	t.Run("net sentiment", func(t *testing.T) {
		m := agg.Metrics([]models.ClassifiedComment{
			comment("", models.SentimentPositive, "", ""),
			comment("", models.SentimentPositive, "", ""),
			comment("", models.SentimentNegative, "", ""),
		})

		assert.Equal(t, 2, m.PositiveCount)
		assert.Equal(t, 66.7, m.PositivePercentage)
		assert.Equal(t, 33.3, m.NegativePercentage)
		assert.Equal(t, 0.0, m.NeutralPercentage)
		assert.InDelta(t, 33.4, m.SentimentScore, 1e-9)
	})

	t.Run("empty set", func(t *testing.T) {
		m := agg.Metrics(nil)

		assert.Equal(t, 0, m.TotalComments)
		assert.Zero(t, m.PositivePercentage+m.NegativePercentage+m.NeutralPercentage)
		assert.Equal(t, 50.0, m.BrandStrengthScore)
		assert.Equal(t, ConfidenceLow, m.ConfidenceLevel)
	})
}

func TestPercentTenths_SumsToHundred(t *testing.T) {
	for pos := 0; pos <= 12; pos++ {
		for neg := 0; neg <= 12; neg++ {
			for neu := 0; neu <= 12; neu++ {
				if pos+neg+neu == 0 {
					continue
				}
				tenths := percentTenths([]int{pos, neg, neu})
				assert.Equal(t, 1000, tenths[0]+tenths[1]+tenths[2], "%d/%d/%d", pos, neg, neu)
			}
		}
	}
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, ConfidenceLow},
		{29, ConfidenceLow},
		{30, ConfidenceMedium},
		{99, ConfidenceMedium},
		{100, ConfidenceHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, confidenceLevel(tt.n), "n=%d", tt.n)
	}
}

func TestAggregator_BrandStrength(t *testing.T) {
	agg := NewAggregator(lexicon.Default())

	t.Run("strengths", func(t *testing.T) {
		s := agg.BrandStrength([]models.ClassifiedComment{
			comment("I am a loyal customer and highly recommend it", models.SentimentPositive, "", ""),
		})

		assert.Equal(t, 7.5, s.RawScore)
		assert.Equal(t, 90.0, s.Score)
		assert.Equal(t, 40.0, s.Confidence)
		assert.Equal(t, []string{"loyalty", "recommendation"}, s.TopStrengths)
		assert.Empty(t, s.TopWeaknesses)
	})

	t.Run("weaknesses", func(t *testing.T) {
		s := agg.BrandStrength([]models.ClassifiedComment{
			comment("Service center is pathetic, waiting for spare parts", models.SentimentNegative, "", ""),
		})

		assert.Equal(t, -15.0, s.RawScore)
		assert.Equal(t, 10.0, s.Score)
		assert.Equal(t, []string{"service_issues", "dissatisfaction"}, s.TopWeaknesses)
		assert.Empty(t, s.TopStrengths)
	})

	t.Run("longer keyword claims the span", func(t *testing.T) {
		s := agg.BrandStrength([]models.ClassifiedComment{
			comment("range drop", models.SentimentNegative, "", ""),
		})

		assert.Equal(t, map[string]float64{"performance_issues": -2.0}, s.CategoryScores)
	})

	t.Run("long comments are normalized", func(t *testing.T) {
		text := "loyal" + strings.Repeat(" word", 39)
		s := agg.BrandStrength([]models.ClassifiedComment{
			comment(text, models.SentimentPositive, "", ""),
		})

		assert.Equal(t, 2.0, s.CategoryScores["loyalty"])
	})

	t.Run("confidence grows with sample size", func(t *testing.T) {
		ten := make([]models.ClassifiedComment, 10)
		thousand := make([]models.ClassifiedComment, 1000)

		assert.Equal(t, 60.0, agg.BrandStrength(ten).Confidence)
		assert.Equal(t, 95.0, agg.BrandStrength(thousand).Confidence)
		assert.Equal(t, 0.0, agg.BrandStrength(nil).Confidence)
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		for _, text := range []string{
			strings.Repeat("worst fraud scam ", 30),
			strings.Repeat("loyal recommend premium ", 30),
			"",
		} {
			s := agg.BrandStrength([]models.ClassifiedComment{comment(text, "", "", "")})
			assert.GreaterOrEqual(t, s.Score, 10.0)
			assert.LessOrEqual(t, s.Score, 90.0)
		}
	})
}

func TestAggregator_Analyze(t *testing.T) {
	agg := NewAggregator(lexicon.Default())
	comments := []models.ClassifiedComment{
		comment("Ather is great", models.SentimentPositive, "2024-08-02", "Ather"),
		comment("Ather service is slow", models.SentimentNegative, "2024-08-20", "Ather"),
		comment("Ather in July", models.SentimentPositive, "2024-07-20", "Ather"),
		comment("Ola in August", models.SentimentNegative, "2024-08-05", "Ola Electric"),
	}

	t.Run("brand and period", func(t *testing.T) {
		m, err := agg.Analyze("Ather", "August 2024", comments, referenceNow)
		require.NoError(t, err)

		assert.Equal(t, "Ather", m.Brand)
		require.NotNil(t, m.Period)
		assert.Equal(t, "August 2024", m.Period.Description)
		assert.Equal(t, 2, m.TotalComments)
		assert.Equal(t, 50.0, m.PositivePercentage)
		assert.Equal(t, 0.0, m.SentimentScore)
	})

	t.Run("no query uses every comment", func(t *testing.T) {
		m, err := agg.Analyze("Ather", "", comments, referenceNow)
		require.NoError(t, err)

		assert.Nil(t, m.Period)
		assert.Equal(t, 3, m.TotalComments)
	})

	t.Run("unrecognized query", func(t *testing.T) {
		_, err := agg.Analyze("Ather", "whenever", comments, referenceNow)
		assert.ErrorIs(t, err, ErrNoPeriod)
	})
}

func TestAggregator_MonthlyTrend(t *testing.T) {
	agg := NewAggregator(lexicon.Default())
	now := time.Date(2024, time.October, 5, 9, 0, 0, 0, time.UTC)
	comments := []models.ClassifiedComment{
		comment("a", models.SentimentPositive, "2024-08-02", "Ather"),
		comment("b", models.SentimentNegative, "2024-10-01", "Ather"),
		comment("c", models.SentimentNegative, "2024-10-03", "Ather"),
		comment("d", models.SentimentNegative, "2024-06-03", "Ather"),
	}

	points := agg.MonthlyTrend("Ather", comments, 3, now)

	require.Len(t, points, 3)
	assert.Equal(t, "2024-08", points[0].Label)
	assert.Equal(t, "2024-09", points[1].Label)
	assert.Equal(t, "2024-10", points[2].Label)
	assert.Equal(t, 1, points[0].Metrics.TotalComments)
	assert.Equal(t, 0, points[1].Metrics.TotalComments)
	assert.Equal(t, 2, points[2].Metrics.NegativeCount)
	assert.Empty(t, agg.MonthlyTrend("Ather", comments, 0, now))
}
