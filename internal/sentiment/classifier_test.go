package sentiment

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(lexicon.Default(), DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestClassifier_Scenarios(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("mixed language recommendation", func(t *testing.T) {
		comment := models.Comment{
			Text:  "Ather 450X ka performance bahut acha hai! Range bhi mast hai. Highly recommend!",
			Likes: 50,
		}
		result := c.Classify(comment, "Ather")

		assert.Equal(t, models.SentimentPositive, result.Sentiment)
		assert.Greater(t, result.Confidence, 0.7)
		assert.True(t, result.LanguageAnalysis.IsMixed)
		assert.Equal(t, "Ather", result.CompanyAnalysis.PrimaryCompany)
		assert.Equal(t, "Ather", result.TargetBrand)
		assert.True(t, result.PatternAnalysis.HasStrongPositiveRecommendation)
	})

	t.Run("factual question stays neutral", func(t *testing.T) {
		result := c.Classify(models.Comment{Text: "Is the Ola S1 fire case real or fake?", Likes: 2}, "")

		assert.Equal(t, models.SentimentNeutral, result.Sentiment)
		assert.InDelta(t, 0.85, result.Confidence, 0.01)
		assert.True(t, result.PatternAnalysis.IsNeutralInquiry)
	})

	t.Run("hinglish question stays neutral", func(t *testing.T) {
		result := c.ClassifyText("Ola ka fire case real hai ya fake?", "")
		assert.Equal(t, models.SentimentNeutral, result.Sentiment)
	})

	t.Run("misspelled fraud resolves negative", func(t *testing.T) {
		result := c.Classify(models.Comment{Text: "froud company hai, dont buy"}, "")

		assert.Equal(t, models.SentimentNegative, result.Sentiment)
		assert.Greater(t, result.Confidence, 0.7)
		assert.True(t, result.PatternAnalysis.HasStrongNegative)
	})

	t.Run("badhiya is not bad", func(t *testing.T) {
		result := c.ClassifyText("bhot badhiya gaadi hai", "")

		assert.Equal(t, models.SentimentPositive, result.Sentiment)
		for _, w := range result.PatternAnalysis.SentimentWords {
			assert.NotEqual(t, "bad", w.Word)
		}
	})

	t.Run("sarcastic praise with repeated visits", func(t *testing.T) {
		result := c.ClassifyText("Great service! Visited the center 3 times for the same issue", "")

		assert.Equal(t, models.SentimentNegative, result.Sentiment)
		assert.True(t, result.SarcasmAnalysis.SarcasmDetected)
		assert.Contains(t, result.SarcasmAnalysis.SarcasmIndicators, ruleRepeatedVisitPraise)
	})

	t.Run("thanks for nothing is a complaint", func(t *testing.T) {
		result := c.ClassifyText("thanks Ola for nothing, scooter broke again", "Ola")

		assert.Equal(t, models.SentimentNegative, result.Sentiment)
		assert.True(t, result.SarcasmAnalysis.SarcasmDetected)
		for _, w := range result.PatternAnalysis.SentimentWords {
			assert.NotEqual(t, models.SentimentPositive, w.Sentiment, w.Word)
		}
	})

	t.Run("sarcasm flips lexically positive text", func(t *testing.T) {
		result := c.ClassifyText("Great job Ola, scooter went to repair again. Excellent!", "")

		assert.Equal(t, models.SentimentNegative, result.Sentiment)
		assert.Equal(t, models.SentimentPositive, result.PatternAnalysis.Sentiment)
		assert.True(t, hasFactor(result, "sarcasm_flip: positive -> negative"))
		assert.InDelta(t, 0.72, result.Confidence, 0.01)
	})
}

func TestClassifier_BrandGating(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name     string
		text     string
		target   string
		expected string
		factor   string
	}{
		{"competitor praise is neutralized", "Ola is great", "Hero Vida", models.SentimentNeutral, "brand_gate: about Ola Electric"},
		{"target praise is kept", "Hero Vida is great", "Hero Vida", models.SentimentPositive, ""},
		{"target tied with another brand is kept", "Ola and Ather both are great", "Ather", models.SentimentPositive, ""},
		{"no target disables gating", "Ola is great", "", models.SentimentPositive, ""},
		{"petrol praise under EV target", "Activa is the best scooter, petrol zindabad", "Ather", models.SentimentNeutral, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.ClassifyText(tt.text, tt.target)
			assert.Equal(t, tt.expected, result.Sentiment)
			if tt.factor != "" {
				assert.True(t, hasFactor(result, tt.factor), result.ClassificationFactors)
				assert.InDelta(t, 0.85, result.Confidence, 0.001)
			}
		})
	}
}

func TestClassifier_UnbrandedDiscount(t *testing.T) {
	c := newTestClassifier(t)

	result := c.ClassifyText("Great scooter, very smooth", "Ather")

	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.45, result.Confidence, 0.001)
	assert.True(t, hasFactor(result, "brand_discount"))

	untargeted := c.ClassifyText("Great scooter, very smooth", "")
	assert.InDelta(t, 0.9, untargeted.Confidence, 0.001)
}

func TestClassifier_EmojiInfluence(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("single thumbs up stays neutral", func(t *testing.T) {
		result := c.ClassifyText("👍", "")

		assert.Equal(t, models.SentimentNeutral, result.Sentiment)
		assert.Equal(t, models.SentimentPositive, result.EmojiAnalysis.EmojiSentiment)
		assert.True(t, hasFactor(result, "emoji_influence"))
	})

	t.Run("strong emoji clears the band", func(t *testing.T) {
		result := c.ClassifyText("😍😍", "")

		assert.Equal(t, models.SentimentPositive, result.Sentiment)
		assert.InDelta(t, 0.725, result.Confidence, 0.001)
	})

	t.Run("emoji never overrides a question", func(t *testing.T) {
		result := c.ClassifyText("Is the Ola S1 fire case real or fake? 😍😍", "")
		assert.Equal(t, models.SentimentNeutral, result.Sentiment)
	})

	t.Run("agreeing emoji adds confidence", func(t *testing.T) {
		plain := c.ClassifyText("good but bad", "")
		withEmoji := c.ClassifyText("good but bad 😡", "")

		assert.Equal(t, models.SentimentNegative, withEmoji.Sentiment)
		assert.InDelta(t, plain.Confidence+0.05, withEmoji.Confidence, 0.001)
	})
}

func TestClassifier_EngagementAmplification(t *testing.T) {
	c := newTestClassifier(t)

	result := c.Classify(models.Comment{Text: "Hero Vida is great", Likes: 100, Replies: 10}, "Hero Vida")

	assert.Equal(t, models.EngagementViral, result.EngagementAnalysis.EngagementLevel)
	assert.Equal(t, 0.95, result.Confidence)
	assert.True(t, hasFactor(result, "engagement_amplification: viral"))
}

func TestClassifier_ConfidenceBounds(t *testing.T) {
	c := newTestClassifier(t)

	texts := []string{
		"", "   ", "!!!", "12345", "👍", "Ola", "acha nahi hai", "worst worst worst scam fraud",
		"Highly recommend!!! best scooter ever 😍🔥", "Thanks for nothing Ola, service center is a joke",
		"यह स्कूटर बहुत अच्छा है", "செம்ம சூப்பர் வண்டி",
	}
	for _, text := range texts {
		result := c.Classify(models.Comment{Text: text, Likes: 500, Replies: 50, Shares: 20}, "Ola")
		assert.GreaterOrEqual(t, result.Confidence, 0.3, text)
		assert.LessOrEqual(t, result.Confidence, 0.95, text)
		assert.NotEmpty(t, result.ClassificationFactors, text)
		assert.Contains(t, []string{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral}, result.Sentiment)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	for _, size := range []int{0, 10} {
		t.Run(fmt.Sprintf("cache size %d", size), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CacheSize = size
			c, err := NewClassifier(lexicon.Default(), cfg)
			require.NoError(t, err)

			comment := models.Comment{Text: "Ather 450X ka performance bahut acha hai 😍", Likes: 120}
			first := c.Classify(comment, "Ather")
			second := c.Classify(comment, "Ather")
			assert.Equal(t, first, second)

			// mutating a result must not leak into later classifications
			first.PatternAnalysis.SentimentWords[0].Word = "changed"
			third := c.Classify(comment, "Ather")
			assert.Equal(t, second, third)
		})
	}
}

func TestClassifier_TargetDependentResult(t *testing.T) {
	c := newTestClassifier(t)

	forOla := c.ClassifyText("Ola is great", "Ola")
	forVida := c.ClassifyText("Ola is great", "Hero Vida")

	assert.Equal(t, models.SentimentPositive, forOla.Sentiment)
	assert.Equal(t, models.SentimentNeutral, forVida.Sentiment)
	assert.Equal(t, []string{}, forOla.CompanyAnalysis.CompetitorMentions)
	assert.Equal(t, []string{"Ola Electric"}, forVida.CompanyAnalysis.CompetitorMentions)
}

func TestClassifier_CacheIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheSize = 3
	c, err := NewClassifier(lexicon.Default(), cfg)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		c.ClassifyText(fmt.Sprintf("comment number %d is good", i), "")
	}
	assert.Equal(t, 3, c.cache.Len())
}

func TestClassifier_ClassifyBatch(t *testing.T) {
	c := newTestClassifier(t)

	texts := []string{
		"Ather is great",
		"froud company hai, dont buy",
		"Is the Ola S1 fire case real or fake?",
		"",
	}
	var comments []models.Comment
	for i := 0; i < 40; i++ {
		comments = append(comments, models.Comment{ID: fmt.Sprintf("c%d", i), Text: texts[i%len(texts)]})
	}

	results, err := c.ClassifyBatch(context.Background(), comments, "")
	require.NoError(t, err)
	require.Len(t, results, len(comments))

	for i, r := range results {
		assert.Equal(t, comments[i].ID, r.ID)
		assert.False(t, r.Classification.Failed)
		assert.Equal(t, c.Classify(comments[i], ""), r.Classification)
	}
}

func TestClassifier_ClassifyBatchLogsFailedIndex(t *testing.T) {
	c := newTestClassifier(t)
	c.sarcasm = nil // every non-empty text now fails
	hook := logtest.NewGlobal()
	defer hook.Reset()

	comments := []models.Comment{{Text: "scooter one"}, {Text: "scooter two"}, {Text: "scooter three"}}
	results, err := c.ClassifyBatch(context.Background(), comments, "Ather")
	require.NoError(t, err)

	var indexes []int
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			indexes = append(indexes, entry.Data["index"].(int))
		}
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, indexes)
	for _, r := range results {
		assert.True(t, r.Classification.Failed)
		assert.Equal(t, models.SentimentNeutral, r.Classification.Sentiment)
	}
}

func TestClassifier_ClassifyBatchCancelled(t *testing.T) {
	c := newTestClassifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	comments := []models.Comment{{ID: "a", Text: "good"}, {ID: "b", Text: "bad"}}
	results, err := c.ClassifyBatch(ctx, comments, "")

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Classification.Failed)
		assert.Equal(t, models.SentimentNeutral, r.Classification.Sentiment)
		assert.True(t, strings.HasPrefix(r.Classification.ClassificationFactors[0], "enrichment_failed"))
	}
}

func TestClassifier_EmptyBatch(t *testing.T) {
	c := newTestClassifier(t)

	results, err := c.ClassifyBatch(context.Background(), nil, "Ather")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestNewClassifier_Validation(t *testing.T) {
	_, err := NewClassifier(nil, DefaultConfig())
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.SarcasmThreshold = 1.5
	_, err = NewClassifier(lexicon.Default(), cfg)
	assert.Error(t, err)

	lex := lexicon.Default()
	lex.Brands = nil
	_, err = NewClassifier(lex, DefaultConfig())
	assert.Error(t, err)
}

func hasFactor(c models.Classification, prefix string) bool {
	for _, f := range c.ClassificationFactors {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}
