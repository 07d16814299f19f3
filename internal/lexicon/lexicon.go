package lexicon

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v3"
)

// Version identifies the built-in tables. Overlays append their own suffix.
const Version = "2025.1"

// Polarity is the sentiment tag attached to an idiom
type Polarity string

const (
	Positive         Polarity = "positive"
	Negative         Polarity = "negative"
	Neutral          Polarity = "neutral"
	ContextDependent Polarity = "context_dependent"
)

// Idiom is a multi-word (often code-switched) phrase with a fixed or contextual polarity
type Idiom struct {
	Phrase   string   `yaml:"phrase" json:"phrase"`
	Polarity Polarity `yaml:"polarity" json:"polarity"`
}

// ContextRule resolves a context-dependent idiom by looking for qualifying cues
// elsewhere in the same comment. Negative cues are checked first.
type ContextRule struct {
	Phrase       string   `yaml:"phrase" json:"phrase"`
	NegativeCues []string `yaml:"negative_cues" json:"negative_cues"`
	PositiveCues []string `yaml:"positive_cues" json:"positive_cues"`
}

// Brand lists the name variants of one OEM in three tiers
type Brand struct {
	Name     string   `yaml:"name" json:"name"`
	Primary  []string `yaml:"primary" json:"primary"`   // weight 3
	Products []string `yaml:"products" json:"products"` // weight 2
	Variants []string `yaml:"variants" json:"variants"` // weight 1
}

// KeywordCategory is a weighted group of brand-strength keywords
type KeywordCategory struct {
	Name     string   `yaml:"name" json:"name"`
	Weight   float64  `yaml:"weight" json:"weight"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// SarcasmLexicon holds the phrase lists used by the sarcasm rules
type SarcasmLexicon struct {
	PraiseWords     []string `yaml:"praise_words" json:"praise_words"`
	NegativeContext []string `yaml:"negative_context" json:"negative_context"`
	ComplaintWords  []string `yaml:"complaint_words" json:"complaint_words"`
	GratitudeWords  []string `yaml:"gratitude_words" json:"gratitude_words"`
	RepeatedVisit   []string `yaml:"repeated_visit" json:"repeated_visit"` // regular expressions
}

// Lexicon is the complete set of static tables consumed by the classifier.
// It holds data only; matching logic lives in the sentiment package.
type Lexicon struct {
	Version string `yaml:"version" json:"version"`

	EnglishPositive    []string `yaml:"english_positive" json:"english_positive"`
	EnglishNegative    []string `yaml:"english_negative" json:"english_negative"`
	HindiPositive      []string `yaml:"hindi_positive" json:"hindi_positive"`
	HindiNegative      []string `yaml:"hindi_negative" json:"hindi_negative"`
	DevanagariPositive []string `yaml:"devanagari_positive" json:"devanagari_positive"`
	DevanagariNegative []string `yaml:"devanagari_negative" json:"devanagari_negative"`
	RegionalPositive   []string `yaml:"regional_positive" json:"regional_positive"`
	RegionalNegative   []string `yaml:"regional_negative" json:"regional_negative"`
	CommonEnglish      []string `yaml:"common_english" json:"common_english"`

	Negations     []string `yaml:"negations" json:"negations"`
	PostNegations []string `yaml:"post_negations" json:"post_negations"`
	Intensifiers  []string `yaml:"intensifiers" json:"intensifiers"`

	Idioms       []Idiom       `yaml:"idioms" json:"idioms"`
	ContextRules []ContextRule `yaml:"context_rules" json:"context_rules"`

	Emoji  map[string]float64 `yaml:"emoji" json:"emoji"`
	Brands []Brand            `yaml:"brands" json:"brands"`

	NeutralInquiry                []string `yaml:"neutral_inquiry" json:"neutral_inquiry"` // regular expressions
	StrongPositiveRecommendations []string `yaml:"strong_positive_recommendations" json:"strong_positive_recommendations"`
	StrongNegatives               []string `yaml:"strong_negatives" json:"strong_negatives"`
	NegativePhrases               []string `yaml:"negative_phrases" json:"negative_phrases"`
	AdviceSeeking                 []string `yaml:"advice_seeking" json:"advice_seeking"`
	InformationSeeking            []string `yaml:"information_seeking" json:"information_seeking"`
	AdviceGiving                  []string `yaml:"advice_giving" json:"advice_giving"`
	IrrelevantProducts            []string `yaml:"irrelevant_products" json:"irrelevant_products"`
	EVTerms                       []string `yaml:"ev_terms" json:"ev_terms"`

	Sarcasm SarcasmLexicon `yaml:"sarcasm" json:"sarcasm"`

	Strengths  []KeywordCategory `yaml:"strengths" json:"strengths"`
	Weaknesses []KeywordCategory `yaml:"weaknesses" json:"weaknesses"`
}

// Default returns a fresh copy of the built-in tables
func Default() *Lexicon {
	return &Lexicon{
		Version:                       Version,
		EnglishPositive:               englishPositive(),
		EnglishNegative:               englishNegative(),
		HindiPositive:                 hindiPositive(),
		HindiNegative:                 hindiNegative(),
		DevanagariPositive:            devanagariPositive(),
		DevanagariNegative:            devanagariNegative(),
		RegionalPositive:              regionalPositive(),
		RegionalNegative:              regionalNegative(),
		CommonEnglish:                 commonEnglish(),
		Negations:                     negations(),
		PostNegations:                 postNegations(),
		Intensifiers:                  intensifiers(),
		Idioms:                        idioms(),
		ContextRules:                  contextRules(),
		Emoji:                         emojiScores(),
		Brands:                        brands(),
		NeutralInquiry:                neutralInquiry(),
		StrongPositiveRecommendations: strongPositiveRecommendations(),
		StrongNegatives:               strongNegatives(),
		NegativePhrases:               negativePhrases(),
		AdviceSeeking:                 adviceSeeking(),
		InformationSeeking:            informationSeeking(),
		AdviceGiving:                  adviceGiving(),
		IrrelevantProducts:            irrelevantProducts(),
		EVTerms:                       evTerms(),
		Sarcasm:                       sarcasm(),
		Strengths:                     strengths(),
		Weaknesses:                    weaknesses(),
	}
}

// LoadFile reads a YAML overlay and merges it into the default tables.
// An empty path returns the defaults unchanged.
func LoadFile(path string) (*Lexicon, error) {
	lex := Default()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var overlay Lexicon
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}

	if err := overlay.validateEntries(); err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}

	for _, conflict := range lex.Merge(&overlay) {
		logrus.Warnf("Lexicon overlay %s needs review: %s", path, conflict)
	}

	logrus.Infof("Loaded lexicon overlay %s (version %s)", path, lex.Version)
	return lex, nil
}

// Merge folds other into l. Word lists are unioned, idioms/emoji/brands/categories
// are overridden by key. It returns a description of every entry whose polarity
// or score changed so callers can flag it for manual review.
func (l *Lexicon) Merge(other *Lexicon) []string {
	var conflicts []string

	l.EnglishPositive = union(l.EnglishPositive, other.EnglishPositive)
	l.EnglishNegative = union(l.EnglishNegative, other.EnglishNegative)
	l.HindiPositive = union(l.HindiPositive, other.HindiPositive)
	l.HindiNegative = union(l.HindiNegative, other.HindiNegative)
	l.DevanagariPositive = union(l.DevanagariPositive, other.DevanagariPositive)
	l.DevanagariNegative = union(l.DevanagariNegative, other.DevanagariNegative)
	l.RegionalPositive = union(l.RegionalPositive, other.RegionalPositive)
	l.RegionalNegative = union(l.RegionalNegative, other.RegionalNegative)
	l.CommonEnglish = union(l.CommonEnglish, other.CommonEnglish)
	l.Negations = union(l.Negations, other.Negations)
	l.PostNegations = union(l.PostNegations, other.PostNegations)
	l.Intensifiers = union(l.Intensifiers, other.Intensifiers)
	l.NeutralInquiry = union(l.NeutralInquiry, other.NeutralInquiry)
	l.StrongPositiveRecommendations = union(l.StrongPositiveRecommendations, other.StrongPositiveRecommendations)
	l.StrongNegatives = union(l.StrongNegatives, other.StrongNegatives)
	l.NegativePhrases = union(l.NegativePhrases, other.NegativePhrases)
	l.AdviceSeeking = union(l.AdviceSeeking, other.AdviceSeeking)
	l.InformationSeeking = union(l.InformationSeeking, other.InformationSeeking)
	l.AdviceGiving = union(l.AdviceGiving, other.AdviceGiving)
	l.IrrelevantProducts = union(l.IrrelevantProducts, other.IrrelevantProducts)
	l.EVTerms = union(l.EVTerms, other.EVTerms)

	l.Sarcasm.PraiseWords = union(l.Sarcasm.PraiseWords, other.Sarcasm.PraiseWords)
	l.Sarcasm.NegativeContext = union(l.Sarcasm.NegativeContext, other.Sarcasm.NegativeContext)
	l.Sarcasm.ComplaintWords = union(l.Sarcasm.ComplaintWords, other.Sarcasm.ComplaintWords)
	l.Sarcasm.GratitudeWords = union(l.Sarcasm.GratitudeWords, other.Sarcasm.GratitudeWords)
	l.Sarcasm.RepeatedVisit = union(l.Sarcasm.RepeatedVisit, other.Sarcasm.RepeatedVisit)

	// Idioms: override by phrase, keep first-seen order
	index := make(map[string]int, len(l.Idioms))
	for i, idiom := range l.Idioms {
		index[idiom.Phrase] = i
	}
	for _, idiom := range other.Idioms {
		if i, ok := index[idiom.Phrase]; ok {
			if l.Idioms[i].Polarity != idiom.Polarity {
				conflicts = append(conflicts, fmt.Sprintf("idiom %q changes polarity %s -> %s",
					idiom.Phrase, l.Idioms[i].Polarity, idiom.Polarity))
			}
			l.Idioms[i] = idiom
			continue
		}
		index[idiom.Phrase] = len(l.Idioms)
		l.Idioms = append(l.Idioms, idiom)
	}

	rules := make(map[string]int, len(l.ContextRules))
	for i, rule := range l.ContextRules {
		rules[rule.Phrase] = i
	}
	for _, rule := range other.ContextRules {
		if i, ok := rules[rule.Phrase]; ok {
			l.ContextRules[i] = rule
			continue
		}
		l.ContextRules = append(l.ContextRules, rule)
	}

	if l.Emoji == nil {
		l.Emoji = make(map[string]float64)
	}
	emojis := make([]string, 0, len(other.Emoji))
	for e := range other.Emoji {
		emojis = append(emojis, e)
	}
	sort.Strings(emojis)
	for _, e := range emojis {
		score := other.Emoji[e]
		if old, ok := l.Emoji[e]; ok && (old > 0) != (score > 0) {
			conflicts = append(conflicts, fmt.Sprintf("emoji %q changes score %.2f -> %.2f", e, old, score))
		}
		l.Emoji[e] = score
	}

	brandIndex := make(map[string]int, len(l.Brands))
	for i, b := range l.Brands {
		brandIndex[b.Name] = i
	}
	for _, b := range other.Brands {
		if i, ok := brandIndex[b.Name]; ok {
			l.Brands[i].Primary = union(l.Brands[i].Primary, b.Primary)
			l.Brands[i].Products = union(l.Brands[i].Products, b.Products)
			l.Brands[i].Variants = union(l.Brands[i].Variants, b.Variants)
			continue
		}
		l.Brands = append(l.Brands, b)
	}

	l.Strengths = mergeCategories(l.Strengths, other.Strengths)
	l.Weaknesses = mergeCategories(l.Weaknesses, other.Weaknesses)

	// Words that ended up on both sides of a polarity pair
	for _, pair := range [][2][]string{
		{l.EnglishPositive, l.EnglishNegative},
		{l.HindiPositive, l.HindiNegative},
		{l.DevanagariPositive, l.DevanagariNegative},
		{l.RegionalPositive, l.RegionalNegative},
	} {
		for _, w := range intersect(pair[0], pair[1]) {
			conflicts = append(conflicts, fmt.Sprintf("word %q is listed as both positive and negative", w))
		}
	}

	if other.Version != "" {
		l.Version = other.Version
	} else {
		l.Version = l.Version + "+overlay"
	}

	return conflicts
}

// Validate checks the tables for values the classifier cannot use
func (l *Lexicon) Validate() error {
	if err := l.validateEntries(); err != nil {
		return err
	}
	if len(l.Brands) == 0 {
		return fmt.Errorf("lexicon has no brands")
	}
	return nil
}

func (l *Lexicon) validateEntries() error {
	for _, idiom := range l.Idioms {
		switch idiom.Polarity {
		case Positive, Negative, Neutral, ContextDependent:
		default:
			return fmt.Errorf("idiom %q has unknown polarity %q", idiom.Phrase, idiom.Polarity)
		}
		if idiom.Phrase == "" {
			return fmt.Errorf("idiom with empty phrase")
		}
	}
	for e, score := range l.Emoji {
		if score < -1 || score > 1 {
			return fmt.Errorf("emoji %q score %.2f outside [-1, 1]", e, score)
		}
	}
	for _, b := range l.Brands {
		if b.Name == "" {
			return fmt.Errorf("brand with empty name")
		}
	}
	for _, c := range l.Strengths {
		if c.Weight < 0 {
			return fmt.Errorf("strength category %q has negative weight", c.Name)
		}
	}
	for _, c := range l.Weaknesses {
		if c.Weight > 0 {
			return fmt.Errorf("weakness category %q has positive weight", c.Name)
		}
	}
	return nil
}

// BrandNames returns brand labels in registration order
func (l *Lexicon) BrandNames() []string {
	names := make([]string, 0, len(l.Brands))
	for _, b := range l.Brands {
		names = append(names, b.Name)
	}
	return names
}

func union(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, w := range list {
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, w := range a {
		set[w] = true
	}
	var out []string
	for _, w := range b {
		if set[w] {
			out = append(out, w)
		}
	}
	return out
}

func mergeCategories(base, extra []KeywordCategory) []KeywordCategory {
	index := make(map[string]int, len(base))
	for i, c := range base {
		index[c.Name] = i
	}
	for _, c := range extra {
		if i, ok := index[c.Name]; ok {
			if c.Weight != 0 {
				base[i].Weight = c.Weight
			}
			base[i].Keywords = union(base[i].Keywords, c.Keywords)
			continue
		}
		base = append(base, c)
	}
	return base
}
