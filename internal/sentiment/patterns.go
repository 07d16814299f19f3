package sentiment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

const (
	modifierWindow       = 2 // tokens searched for negations and intensifiers
	relevanceWindow      = 3 // tokens between an irrelevant product and praise or an EV anchor
	negationFactor       = 0.8
	intensifierFactor    = 1.5
	strongSignalBoost    = 2.0
	negativePhraseBoost  = 1.0
	adviceOverrideMargin = 3.0
)

// Language tags recorded on sentiment word hits
const (
	sourceIdiom   = "idiom"
	sourceContext = "context"
	sourcePattern = "pattern"
)

type idiomMatcher struct {
	phrase
	polarity lexicon.Polarity
}

type keyword struct {
	sentiment string
	language  string
}

// PatternScorer is the central heuristic: idioms, context rules, intent
// detection and negation-aware keyword scoring resolved into one sentiment.
type PatternScorer struct {
	cfg Config

	idioms   []idiomMatcher
	context  *contextResolver
	keywords map[string]keyword

	negations     map[string]bool
	postNegations map[string]bool
	intensifiers  map[string]bool

	inquiry            []*regexp.Regexp
	strongPositive     []phrase
	strongNegative     []phrase
	negativePhrases    []phrase
	adviceSeeking      []phrase
	informationSeeking []phrase
	adviceGiving       []phrase
	irrelevant         []phrase
	anchors            []phrase // EV terms plus brand and product names
}

// NewPatternScorer compiles the lexicon tables used by the scorer
func NewPatternScorer(lex *lexicon.Lexicon, cfg Config) *PatternScorer {
	s := &PatternScorer{
		cfg:                cfg,
		context:            newContextResolver(lex.ContextRules),
		keywords:           make(map[string]keyword),
		negations:          toSet(lex.Negations),
		postNegations:      toSet(lex.PostNegations),
		intensifiers:       toSet(lex.Intensifiers),
		inquiry:            compileRegexps(lex.NeutralInquiry),
		strongPositive:     compilePhrases(lex.StrongPositiveRecommendations),
		strongNegative:     compilePhrases(lex.StrongNegatives),
		negativePhrases:    compilePhrases(lex.NegativePhrases),
		adviceSeeking:      compilePhrases(lex.AdviceSeeking),
		informationSeeking: compilePhrases(lex.InformationSeeking),
		adviceGiving:       compilePhrases(lex.AdviceGiving),
		irrelevant:         compilePhrases(lex.IrrelevantProducts),
	}

	polarity := make(map[string]lexicon.Polarity, len(lex.Idioms))
	var phrases []string
	for _, idiom := range lex.Idioms {
		key := normalize(idiom.Phrase)
		if _, ok := polarity[key]; !ok {
			phrases = append(phrases, idiom.Phrase)
		}
		polarity[key] = idiom.Polarity
	}
	for _, p := range compilePhrases(phrases) {
		s.idioms = append(s.idioms, idiomMatcher{phrase: p, polarity: polarity[normalize(p.text)]})
	}

	// First registration wins when a word appears in more than one list
	for _, list := range []struct {
		words     []string
		sentiment string
		language  string
	}{
		{lex.EnglishPositive, models.SentimentPositive, models.LanguageEnglish},
		{lex.EnglishNegative, models.SentimentNegative, models.LanguageEnglish},
		{lex.HindiPositive, models.SentimentPositive, "hindi"},
		{lex.HindiNegative, models.SentimentNegative, "hindi"},
		{lex.DevanagariPositive, models.SentimentPositive, models.LanguageDevanagari},
		{lex.DevanagariNegative, models.SentimentNegative, models.LanguageDevanagari},
		{lex.RegionalPositive, models.SentimentPositive, "regional"},
		{lex.RegionalNegative, models.SentimentNegative, "regional"},
	} {
		for _, w := range list.words {
			w = normalize(w)
			if _, ok := s.keywords[w]; !ok {
				s.keywords[w] = keyword{sentiment: list.sentiment, language: list.language}
			}
		}
	}

	anchors := append([]string{}, lex.EVTerms...)
	for _, b := range lex.Brands {
		anchors = append(anchors, b.Primary...)
		anchors = append(anchors, b.Products...)
	}
	s.anchors = compilePhrases(anchors)

	return s
}

// scoring carries the per-comment working state
type scoring struct {
	tokens     []string
	clause     []int
	masked     []bool
	positiveAt []int
	result     *models.PatternSentiment
}

func (sc *scoring) add(word, sentiment, language string, weight float64, at int) {
	switch sentiment {
	case models.SentimentPositive:
		sc.result.PositiveScore += weight
		if at >= 0 {
			sc.positiveAt = append(sc.positiveAt, at)
		}
	case models.SentimentNegative:
		sc.result.NegativeScore += weight
	}
	sc.result.SentimentWords = append(sc.result.SentimentWords, models.SentimentWord{
		Word:      word,
		Sentiment: sentiment,
		Language:  language,
		Weight:    weight,
	})
}

// Analyze scores text. It never fails; text without any signal is neutral.
func (s *PatternScorer) Analyze(text string, lang models.LanguageProfile) models.PatternSentiment {
	norm := normalize(text)
	tokens, clauses := tokenizeClauses(norm)

	result := models.PatternSentiment{
		Sentiment:      models.SentimentNeutral,
		SentimentWords: []models.SentimentWord{},
	}
	if len(tokens) == 0 {
		result.Confidence = 0.3
		result.Reason = "empty_text"
		return result
	}

	sc := &scoring{tokens: tokens, clause: clauses, masked: make([]bool, len(tokens)), result: &result}

	s.scoreIdioms(sc)
	s.detectIntents(norm, sc)
	s.scoreKeywords(sc)
	result.IsIrrelevant = s.isIrrelevant(tokens, sc.positiveAt)

	s.resolve(&result, norm, lang)
	return result
}

func (s *PatternScorer) scoreIdioms(sc *scoring) {
	for _, idiom := range s.idioms {
		for _, start := range idiom.findAll(sc.tokens) {
			end := start + len(idiom.tokens)
			if anyMasked(sc.masked, start, end) {
				continue
			}
			for i := start; i < end; i++ {
				sc.masked[i] = true
			}

			switch idiom.polarity {
			case lexicon.Positive, lexicon.Negative:
				sentiment, weight := string(idiom.polarity), s.cfg.IdiomWeight
				if s.negatedBefore(sc, start) {
					sentiment, weight = opposite(sentiment), weight*negationFactor
				}
				sc.add(idiom.text, sentiment, sourceIdiom, weight, start)

			case lexicon.ContextDependent:
				sentiment, cue := s.context.resolve(idiom.text, sc.tokens, span{start, end})
				if sentiment == models.SentimentNeutral {
					sc.add(idiom.text, sentiment, sourceContext, 0, start)
					continue
				}
				sc.add(fmt.Sprintf("%s (%s)", idiom.text, cue), sentiment, sourceContext, s.cfg.IdiomWeight, start)

			default:
				sc.add(idiom.text, models.SentimentNeutral, sourceIdiom, 0, start)
			}
		}
	}
}

func (s *PatternScorer) detectIntents(norm string, sc *scoring) {
	r := sc.result
	for _, re := range s.inquiry {
		if re.MatchString(norm) {
			r.IsNeutralInquiry = true
			break
		}
	}

	r.HasStrongPositiveRecommendation = claim(sc, s.strongPositive, models.SentimentPositive, strongSignalBoost)
	r.HasStrongNegative = claim(sc, s.strongNegative, models.SentimentNegative, strongSignalBoost)
	r.HasNegativePhrase = claim(sc, s.negativePhrases, models.SentimentNegative, negativePhraseBoost)

	_, r.IsAdviceRequest = firstMatch(s.adviceSeeking, sc.tokens)
	_, r.IsInformationSeeking = firstMatch(s.informationSeeking, sc.tokens)
	_, r.IsAdviceGiving = firstMatch(s.adviceGiving, sc.tokens)
}

// claim scores the first phrase of list found in the tokens and masks each of its
// occurrences so the words are not scored again as keywords
func claim(sc *scoring, list []phrase, sentiment string, weight float64) bool {
	for _, p := range list {
		starts := p.findAll(sc.tokens)
		if len(starts) == 0 {
			continue
		}
		for _, start := range starts {
			for i := start; i < start+len(p.tokens); i++ {
				sc.masked[i] = true
			}
		}
		sc.add(p.text, sentiment, sourcePattern, weight, starts[0])
		return true
	}
	return false
}

func (s *PatternScorer) scoreKeywords(sc *scoring) {
	for i, tok := range sc.tokens {
		if sc.masked[i] {
			continue
		}
		kw, ok := s.keywords[tok]
		if !ok {
			continue
		}

		sentiment, weight := kw.sentiment, 1.0
		if s.intensifiedBefore(sc, i) {
			weight *= intensifierFactor
		}
		if s.negatedBefore(sc, i) || s.negatedAfter(sc, i) {
			sentiment, weight = opposite(sentiment), weight*negationFactor
		}
		sc.add(tok, sentiment, kw.language, weight, i)
	}
}

// isIrrelevant reports praise aimed at a non-EV product with no EV anchor nearby
func (s *PatternScorer) isIrrelevant(tokens []string, positiveAt []int) bool {
	if len(positiveAt) == 0 {
		return false
	}
	anchors := spans(s.anchors, tokens)
	for _, product := range spans(s.irrelevant, tokens) {
		praised := false
		for _, p := range positiveAt {
			if product.near(p, relevanceWindow) {
				praised = true
				break
			}
		}
		if !praised {
			continue
		}
		anchored := false
		for _, a := range anchors {
			if product.near(a.start, relevanceWindow) || product.near(a.end-1, relevanceWindow) {
				anchored = true
				break
			}
		}
		if !anchored {
			return true
		}
	}
	return false
}

func (s *PatternScorer) resolve(r *models.PatternSentiment, norm string, lang models.LanguageProfile) {
	pos, neg := r.PositiveScore, r.NegativeScore
	total := pos + neg

	switch {
	case r.IsNeutralInquiry:
		r.Sentiment, r.Confidence, r.Reason = models.SentimentNeutral, 0.85, "neutral_inquiry"

	case len(r.SentimentWords) == 0 && (lang.PrimaryLanguage == models.LanguageUnknown || onlyStopwords(norm)):
		r.Sentiment, r.Confidence, r.Reason = models.SentimentNeutral, 0.3, "no_sentiment_content"

	case r.IsIrrelevant:
		r.Sentiment, r.Confidence, r.Reason = models.SentimentNeutral, 0.8, "irrelevant_product"

	case r.HasStrongPositiveRecommendation:
		r.Sentiment = models.SentimentPositive
		r.Confidence = clamp(0.6+0.35*margin(pos, neg), 0.75, 0.95)
		r.Reason = "strong_positive_recommendation"

	case r.HasStrongNegative || r.HasNegativePhrase:
		r.Sentiment = models.SentimentNegative
		r.Confidence = clamp(0.65+0.3*margin(neg, pos), 0.7, 0.95)
		r.Reason = "strong_negative_pattern"

	case (r.IsAdviceRequest || r.IsInformationSeeking) && pos-neg < adviceOverrideMargin:
		r.Sentiment, r.Confidence, r.Reason = models.SentimentNeutral, 0.7, "request_without_sentiment"

	case total == 0:
		r.Sentiment, r.Confidence, r.Reason = models.SentimentNeutral, 0.5, "no_sentiment_words"

	default:
		// Ties go negative: complaints carry more signal than equivocation
		if neg >= pos {
			r.Sentiment = models.SentimentNegative
		} else {
			r.Sentiment = models.SentimentPositive
		}
		r.Confidence = clamp(0.5+0.4*abs(pos-neg)/total, 0, 0.9)
		r.Reason = "keyword_balance"
		if r.IsAdviceGiving {
			r.Reason = "advice_giving"
		} else if r.IsAdviceRequest || r.IsInformationSeeking {
			r.Reason = "request_with_strong_sentiment"
		}
	}
}

func (s *PatternScorer) negatedBefore(sc *scoring, i int) bool {
	return s.windowHas(sc, s.negations, i, i-modifierWindow, i)
}

func (s *PatternScorer) negatedAfter(sc *scoring, i int) bool {
	return s.windowHas(sc, s.postNegations, i, i+1, i+1+modifierWindow)
}

func (s *PatternScorer) intensifiedBefore(sc *scoring, i int) bool {
	return s.windowHas(sc, s.intensifiers, i, i-modifierWindow, i)
}

// windowHas checks unmasked tokens in [from, to) that share a clause with token at
func (s *PatternScorer) windowHas(sc *scoring, set map[string]bool, at, from, to int) bool {
	for j := max(from, 0); j < min(to, len(sc.tokens)); j++ {
		if sc.clause[j] != sc.clause[at] {
			continue
		}
		if !sc.masked[j] && set[sc.tokens[j]] {
			return true
		}
	}
	return false
}

func onlyStopwords(norm string) bool {
	return strings.TrimSpace(stopwords.CleanString(norm, "en", false)) == ""
}

func anyMasked(masked []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if masked[i] {
			return true
		}
	}
	return false
}

func opposite(sentiment string) string {
	switch sentiment {
	case models.SentimentPositive:
		return models.SentimentNegative
	case models.SentimentNegative:
		return models.SentimentPositive
	}
	return sentiment
}

// margin is the share of the total by which a exceeds b, 0 when it does not
func margin(a, b float64) float64 {
	if a <= b || a+b == 0 {
		return 0
	}
	return (a - b) / (a + b)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
