package sentiment

import (
	"fmt"
	"math"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

const (
	minConfidence = 0.3
	maxConfidence = 0.95

	sarcasmDiscount     = 0.8
	emojiAgreementBonus = 0.05
	brandGateConfidence = 0.85
	unbrandedDiscount   = 0.5
	emojiOnlyBase       = 0.5
)

// Combiner merges the per-layer results into the final classification
type Combiner struct {
	cfg    Config
	brands *BrandDetector
}

// NewCombiner creates a combiner. The brand detector resolves target labels.
func NewCombiner(cfg Config, brands *BrandDetector) *Combiner {
	return &Combiner{cfg: cfg, brands: brands}
}

// Combine applies the override rules in a fixed order and records each one that
// fires in ClassificationFactors. An empty target disables brand gating.
func (c *Combiner) Combine(
	pattern models.PatternSentiment,
	emoji models.EmojiProfile,
	sarcasm models.SarcasmProfile,
	engagement models.EngagementProfile,
	brand models.BrandMention,
	target string,
) models.Classification {
	sentiment, confidence := pattern.Sentiment, pattern.Confidence
	factors := []string{fmt.Sprintf("pattern: %s %.2f (%s)", sentiment, confidence, pattern.Reason)}

	flipped := false
	if sarcasm.SarcasmDetected {
		switch {
		case sentiment == models.SentimentPositive:
			sentiment = models.SentimentNegative
			confidence *= sarcasmDiscount
			flipped = true
			factors = append(factors, fmt.Sprintf("sarcasm_flip: positive -> negative (score %.2f)", sarcasm.SarcasmScore))
		case sentiment == models.SentimentNeutral && emoji.EmojiSentiment == models.SentimentPositive:
			sentiment = models.SentimentNegative
			flipped = true
			factors = append(factors, fmt.Sprintf("sarcasm_flip: neutral with positive emoji -> negative (score %.2f)", sarcasm.SarcasmScore))
		default:
			factors = append(factors, fmt.Sprintf("sarcasm_detected: no change (score %.2f)", sarcasm.SarcasmScore))
		}
	}

	if emoji.HasEmojis && !flipped {
		switch {
		case sentiment == models.SentimentNeutral && c.emojiMayDecide(pattern):
			combined := c.cfg.EmojiTextWeight * emoji.EmojiSentimentScore
			switch {
			case combined > c.cfg.EmojiThreshold:
				sentiment = models.SentimentPositive
				confidence = emojiOnlyBase + math.Abs(combined)*0.5
			case combined < -c.cfg.EmojiThreshold:
				sentiment = models.SentimentNegative
				confidence = emojiOnlyBase + math.Abs(combined)*0.5
			}
			factors = append(factors, fmt.Sprintf("emoji_influence: %.2f -> %s", combined, sentiment))
		case sentiment != models.SentimentNeutral && emoji.EmojiSentiment == sentiment:
			confidence += emojiAgreementBonus
			factors = append(factors, "emoji_agreement: "+sentiment)
		}
	}

	if engagement.EngagementLevel == models.EngagementHigh || engagement.EngagementLevel == models.EngagementViral {
		confidence *= engagement.AmplificationFactor
		factors = append(factors, fmt.Sprintf("engagement_amplification: %s x%.1f",
			engagement.EngagementLevel, engagement.AmplificationFactor))
	}

	resolved := ""
	if target != "" {
		resolved = c.brands.ResolveBrand(target)
		switch {
		case c.aboutOtherBrand(brand, resolved):
			sentiment, confidence = models.SentimentNeutral, brandGateConfidence
			factors = append(factors, fmt.Sprintf("brand_gate: about %s, not %s", brand.PrimaryCompany, resolved))
		case pattern.IsIrrelevant:
			sentiment, confidence = models.SentimentNeutral, brandGateConfidence
			factors = append(factors, "brand_gate: irrelevant product")
		case brand.PrimaryCompany == "" && sentiment != models.SentimentNeutral:
			confidence *= unbrandedDiscount
			factors = append(factors, "brand_discount: no brand mentioned")
		}
	}

	confidence = clamp(confidence, minConfidence, maxConfidence)

	return models.Classification{
		Sentiment:             sentiment,
		Confidence:            confidence,
		TargetBrand:           resolved,
		EmojiAnalysis:         emoji,
		CompanyAnalysis:       brand,
		EngagementAnalysis:    engagement,
		PatternAnalysis:       pattern,
		SarcasmAnalysis:       sarcasm,
		ClassificationFactors: factors,
	}
}

// emojiMayDecide reports whether a neutral pattern result carries no text signal
// that emoji should not override
func (c *Combiner) emojiMayDecide(p models.PatternSentiment) bool {
	if p.IsNeutralInquiry || p.IsIrrelevant || p.IsAdviceRequest || p.IsInformationSeeking {
		return false
	}
	for _, w := range p.SentimentWords {
		if w.Weight != 0 {
			return false
		}
	}
	return true
}

// aboutOtherBrand reports a primary brand other than target that outscores the
// target. A target tied for the top score is treated as the subject.
func (c *Combiner) aboutOtherBrand(brand models.BrandMention, target string) bool {
	if brand.PrimaryCompany == "" || brand.PrimaryCompany == target {
		return false
	}
	top := brand.AllMentions[brand.PrimaryCompany].MatchScore
	own, ok := brand.AllMentions[target]
	return !ok || own.MatchScore < top
}
