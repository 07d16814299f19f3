package sentiment

import (
	"testing"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSarcasmDetector_Detect(t *testing.T) {
	lex := lexicon.Default()
	cfg := DefaultConfig()
	detector := NewSarcasmDetector(lex, cfg)
	emoji := NewEmojiScorer(lex, cfg)
	brands := NewBrandDetector(lex)

	tests := []struct {
		name      string
		text      string
		detected  bool
		indicator string
	}{
		{"repeated visit with praise", "Great service! Visited the center 3 times for the same issue", true, ruleRepeatedVisitPraise},
		{"gratitude followed by complaint", "Thanks for nothing!! The scooter is still broken", true, ruleGratitudeThenComplaint},
		{"gratitude alone", "thanks Ola for nothing, scooter broke again", true, ruleGratitudeThenComplaint},
		{"positive emoji with complaint", "Battery dead again, waiting for refund 😊", false, ruleEmojiTextMismatch},
		{"brand praise with complaints", "Wow Ola, amazing, scooter stuck on the highway", true, ruleBrandPraiseComplaint},
		{"punctuation with complaint", "Still waiting for my refund!!!", false, ruleExcessivePunctuation},
		{"sincere praise", "Great scooter, amazing range", false, ""},
		{"negated complaint is not sarcasm", "Ather service center is great, no problem in 2 years", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := detector.Detect(tt.text, emoji.Analyze(tt.text), brands.Detect(tt.text, ""))

			assert.Equal(t, tt.detected, profile.SarcasmDetected, profile.SarcasmIndicators)
			assert.GreaterOrEqual(t, profile.SarcasmScore, 0.0)
			assert.LessOrEqual(t, profile.SarcasmScore, 1.0)
			if tt.indicator != "" {
				assert.Contains(t, profile.SarcasmIndicators, tt.indicator)
			}
		})
	}
}

func TestSarcasmDetector_Threshold(t *testing.T) {
	lex := lexicon.Default()
	cfg := DefaultConfig()
	cfg.SarcasmThreshold = 0.2

	profile := NewSarcasmDetector(lex, cfg).Detect("Still waiting for my refund!!!", models.EmojiProfile{}, models.BrandMention{})

	assert.True(t, profile.SarcasmDetected)
	assert.InDelta(t, 0.3, profile.SarcasmScore, 0.001)
}

func TestSarcasmDetector_Gratitude(t *testing.T) {
	detector := NewSarcasmDetector(lexicon.Default(), DefaultConfig())

	t.Run("rule alone clears the threshold", func(t *testing.T) {
		profile := detector.Detect("thanks Ola for nothing, scooter broke again", models.EmojiProfile{}, models.BrandMention{})

		assert.Equal(t, []string{ruleGratitudeThenComplaint}, profile.SarcasmIndicators)
		assert.InDelta(t, 0.6, profile.SarcasmScore, 0.001)
		assert.True(t, profile.SarcasmDetected)
	})

	t.Run("complaint in a later clause does not count", func(t *testing.T) {
		profile := detector.Detect("Thanks Ather. No issues in two years", models.EmojiProfile{}, models.BrandMention{})

		assert.NotContains(t, profile.SarcasmIndicators, ruleGratitudeThenComplaint)
		assert.False(t, profile.SarcasmDetected)
	})
}
