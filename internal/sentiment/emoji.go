package sentiment

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

// EmojiScorer averages the lexicon scores of the emoji found in a text
type EmojiScorer struct {
	scores    map[string]float64
	keys      []string // longest first so ZWJ sequences win over their parts
	threshold float64
}

// NewEmojiScorer builds a scorer from the lexicon emoji table
func NewEmojiScorer(lex *lexicon.Lexicon, cfg Config) *EmojiScorer {
	keys := make([]string, 0, len(lex.Emoji))
	for k := range lex.Emoji {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	return &EmojiScorer{scores: lex.Emoji, keys: keys, threshold: cfg.EmojiThreshold}
}

// Analyze extracts known emoji in order of appearance. Each occurrence counts once.
func (s *EmojiScorer) Analyze(text string) models.EmojiProfile {
	profile := models.EmojiProfile{EmojiSentiment: models.SentimentNeutral}

	var total float64
	for i := 0; i < len(text); {
		if matched := s.matchAt(text[i:]); matched != "" {
			profile.Emojis = append(profile.Emojis, matched)
			total += s.scores[matched]
			i += len(matched)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}

	profile.EmojiCount = len(profile.Emojis)
	profile.HasEmojis = profile.EmojiCount > 0
	if profile.HasEmojis {
		profile.EmojiSentimentScore = clamp(total/float64(profile.EmojiCount), -1, 1)
	}
	profile.EmojiSentiment = s.label(profile.EmojiSentimentScore)

	return profile
}

func (s *EmojiScorer) matchAt(text string) string {
	for _, k := range s.keys {
		if strings.HasPrefix(text, k) {
			return k
		}
	}
	return ""
}

func (s *EmojiScorer) label(score float64) string {
	switch {
	case score > s.threshold:
		return models.SentimentPositive
	case score < -s.threshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
