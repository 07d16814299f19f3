package sentiment

import (
	"math"
	"regexp"
	"sync"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Sarcasm rule names and weights. Scores of all fired rules add up, capped at 1.
// Gratitude and repeated-visit rules clear the default threshold on their own;
// the rest only count together with another rule.
const (
	rulePraiseInNegativeContext = "praise_in_negative_context"
	ruleExcessivePunctuation    = "excessive_punctuation_with_complaint"
	ruleEmojiTextMismatch       = "positive_emoji_with_negative_context"
	ruleGratitudeThenComplaint  = "gratitude_followed_by_complaint"
	ruleRepeatedVisitPraise     = "repeated_visit_with_praise"
	ruleBrandPraiseComplaint    = "brand_praise_with_complaints"
)

var ruleWeights = map[string]float64{
	rulePraiseInNegativeContext: 0.4,
	ruleExcessivePunctuation:    0.3,
	ruleEmojiTextMismatch:       0.4,
	ruleGratitudeThenComplaint:  0.6,
	ruleRepeatedVisitPraise:     0.6,
	ruleBrandPraiseComplaint:    0.3,
}

const gratitudeWindow = 6

var (
	punctuationRun = regexp.MustCompile(`!{2,}|\?{2,}`)
	sentenceBreak  = regexp.MustCompile(`[.!?\n।]+`)
)

// SarcasmDetector flags ironic praise with a union of lexical rules
type SarcasmDetector struct {
	praise          []phrase
	negativeContext []phrase
	complaints      []phrase
	gratitude       []phrase
	negations       map[string]bool
	repeatedVisit   []*regexp.Regexp
	threshold       float64

	mu        sync.Mutex
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSarcasmDetector compiles the sarcasm tables. When the sentence model cannot be
// loaded the detector falls back to splitting on terminal punctuation.
func NewSarcasmDetector(lex *lexicon.Lexicon, cfg Config) *SarcasmDetector {
	d := &SarcasmDetector{
		praise:          compilePhrases(lex.Sarcasm.PraiseWords),
		negativeContext: compilePhrases(lex.Sarcasm.NegativeContext),
		complaints:      compilePhrases(lex.Sarcasm.ComplaintWords),
		gratitude:       compilePhrases(lex.Sarcasm.GratitudeWords),
		negations:       toSet(lex.Negations),
		repeatedVisit:   compileRegexps(lex.Sarcasm.RepeatedVisit),
		threshold:       cfg.SarcasmThreshold,
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		logrus.Warnf("Sentence tokenizer unavailable, using punctuation splitting: %v", err)
	} else {
		d.tokenizer = tokenizer
	}

	return d
}

// Detect evaluates every rule and sums the weights of those that fire
func (d *SarcasmDetector) Detect(text string, emoji models.EmojiProfile, brand models.BrandMention) models.SarcasmProfile {
	profile := models.SarcasmProfile{SarcasmIndicators: []string{}}

	norm := normalize(text)
	tokens, clauses := tokenizeClauses(norm)
	if len(tokens) == 0 {
		return profile
	}

	parts := d.sentences(norm)
	sentenceTokens := make([][]string, 0, len(parts))
	for _, s := range parts {
		sentenceTokens = append(sentenceTokens, tokenize(s))
	}

	hasPraise := anyPhrase(d.praise, tokens)
	hasNegativeContext := d.affirmed(d.negativeContext, tokens)
	hasComplaint := d.affirmed(d.complaints, tokens)

	fire := func(rule string) {
		profile.SarcasmIndicators = append(profile.SarcasmIndicators, rule)
		profile.SarcasmScore += ruleWeights[rule]
	}

	if hasPraise && hasNegativeContext {
		for _, st := range sentenceTokens {
			if anyPhrase(d.praise, st) && d.affirmed(d.negativeContext, st) {
				fire(rulePraiseInNegativeContext)
				break
			}
		}
	}

	if hasComplaint && d.punctuationNearComplaint(norm, parts) {
		fire(ruleExcessivePunctuation)
	}

	if emoji.EmojiSentiment == models.SentimentPositive && (hasNegativeContext || hasComplaint) {
		fire(ruleEmojiTextMismatch)
	}

	if d.gratitudeThenComplaint(tokens, clauses) {
		fire(ruleGratitudeThenComplaint)
	}

	if hasPraise && (hasNegativeContext || hasComplaint) && d.repeatedVisitIn(norm) {
		fire(ruleRepeatedVisitPraise)
	}

	if brand.PrimaryCompany != "" && hasPraise && hasComplaint {
		fire(ruleBrandPraiseComplaint)
	}

	profile.SarcasmScore = math.Min(profile.SarcasmScore, 1.0)
	profile.SarcasmDetected = profile.SarcasmScore > d.threshold
	return profile
}

func (d *SarcasmDetector) sentences(text string) []string {
	if d.tokenizer == nil {
		return sentenceBreak.Split(text, -1)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var out []string
	for _, s := range d.tokenizer.Tokenize(text) {
		out = append(out, s.Text)
	}
	return out
}

// punctuationNearComplaint checks the sentence ending in a punctuation run and the
// one after it for a complaint word
func (d *SarcasmDetector) punctuationNearComplaint(norm string, parts []string) bool {
	for i, s := range parts {
		if !punctuationRun.MatchString(s) {
			continue
		}
		if anyPhrase(d.complaints, tokenize(s)) {
			return true
		}
		if i+1 < len(parts) && anyPhrase(d.complaints, tokenize(parts[i+1])) {
			return true
		}
	}
	// Fallback splitting drops the punctuation itself
	return d.tokenizer == nil && punctuationRun.MatchString(norm)
}

// gratitudeThenComplaint looks for a negation or complaint in the clause right
// after a thanks
func (d *SarcasmDetector) gratitudeThenComplaint(tokens []string, clauses []int) bool {
	for _, g := range spans(d.gratitude, tokens) {
		end := g.end
		for end < min(g.end+gratitudeWindow, len(tokens)) && clauses[end] == clauses[g.end-1] {
			end++
		}
		window := tokens[g.end:end]
		for _, tok := range window {
			if d.negations[tok] {
				return true
			}
		}
		if anyPhrase(d.complaints, window) {
			return true
		}
	}
	return false
}

func (d *SarcasmDetector) repeatedVisitIn(norm string) bool {
	for _, re := range d.repeatedVisit {
		if re.MatchString(norm) {
			return true
		}
	}
	return false
}

// affirmed reports an occurrence of any phrase in list that is not negated
// ("no problem" is not a complaint)
func (d *SarcasmDetector) affirmed(list []phrase, tokens []string) bool {
	for _, sp := range spans(list, tokens) {
		negated := false
		for j := max(sp.start-modifierWindow, 0); j < sp.start; j++ {
			if d.negations[tokens[j]] {
				negated = true
				break
			}
		}
		if !negated {
			return true
		}
	}
	return false
}

func anyPhrase(list []phrase, tokens []string) bool {
	_, ok := firstMatch(list, tokens)
	return ok
}
