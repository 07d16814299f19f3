package sentiment

import (
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

type contextRule struct {
	negative []phrase
	positive []phrase
}

// contextResolver decides the polarity of context-dependent idioms from cues
// elsewhere in the same comment. Rules are keyed by idiom phrase; the rule with
// an empty phrase applies to idioms without a dedicated one.
type contextResolver struct {
	rules    map[string]contextRule
	fallback contextRule
}

func newContextResolver(rules []lexicon.ContextRule) *contextResolver {
	r := &contextResolver{rules: make(map[string]contextRule, len(rules))}
	for _, rule := range rules {
		compiled := contextRule{
			negative: compilePhrases(rule.NegativeCues),
			positive: compilePhrases(rule.PositiveCues),
		}
		if rule.Phrase == "" {
			r.fallback = compiled
			continue
		}
		r.rules[normalize(rule.Phrase)] = compiled
	}
	return r
}

// resolve returns the polarity for idiom given the comment tokens outside the
// idiom span. Negative cues are checked before positive ones.
func (r *contextResolver) resolve(idiom string, tokens []string, idiomSpan span) (string, string) {
	rule, ok := r.rules[normalize(idiom)]
	if !ok {
		rule = r.fallback
	}

	rest := make([]string, 0, len(tokens))
	rest = append(rest, tokens[:idiomSpan.start]...)
	rest = append(rest, "")
	rest = append(rest, tokens[idiomSpan.end:]...)

	if cue, found := firstMatch(rule.negative, rest); found {
		return models.SentimentNegative, cue
	}
	if cue, found := firstMatch(rule.positive, rest); found {
		return models.SentimentPositive, cue
	}
	return models.SentimentNeutral, ""
}
