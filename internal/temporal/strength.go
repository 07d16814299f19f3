package temporal

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

const (
	wordsPerUnit          = 20 // comment length unit used for density normalization
	topCategories         = 3
	maxStrengthConfidence = 95.0
)

type keyword struct {
	category string
	weight   float64
	text     string
	pattern  *regexp.Regexp
}

type category struct {
	name   string
	weight float64
}

// strengthScorer scores comment sets against the weighted brand-strength categories
type strengthScorer struct {
	keywords   []keyword
	categories []category
}

func newStrengthScorer(lex *lexicon.Lexicon) *strengthScorer {
	s := &strengthScorer{}
	seen := make(map[string]bool)
	for _, cat := range append(append([]lexicon.KeywordCategory{}, lex.Strengths...), lex.Weaknesses...) {
		s.categories = append(s.categories, category{name: cat.Name, weight: cat.Weight})
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			s.keywords = append(s.keywords, keyword{
				category: cat.Name,
				weight:   cat.Weight,
				text:     kw,
				pattern:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
			})
		}
	}
	// longest keywords claim their span first so "range drop" is not also "range"
	sort.SliceStable(s.keywords, func(i, j int) bool {
		return len(s.keywords[i].text) > len(s.keywords[j].text)
	})
	return s
}

// commentScores returns the length-normalized contribution of each category to one text
func (s *strengthScorer) commentScores(text string) map[string]float64 {
	scores := make(map[string]float64)
	lower := strings.ToLower(text)
	taken := make([]bool, len(lower))

	for _, kw := range s.keywords {
		for _, loc := range kw.pattern.FindAllStringIndex(lower, -1) {
			if overlaps(taken, loc[0], loc[1]) {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				taken[i] = true
			}
			scores[kw.category] += kw.weight
		}
	}

	norm := math.Max(1, float64(len(strings.Fields(text)))/wordsPerUnit)
	for name := range scores {
		scores[name] /= norm
	}
	return scores
}

func (s *strengthScorer) score(comments []models.ClassifiedComment) models.BrandStrength {
	result := models.BrandStrength{
		Score:          50,
		TopStrengths:   []string{},
		TopWeaknesses:  []string{},
		CategoryScores: make(map[string]float64),
	}
	n := len(comments)
	if n == 0 {
		return result
	}

	total := 0.0
	for _, c := range comments {
		for name, v := range s.commentScores(c.Text) {
			result.CategoryScores[name] += v
			total += v
		}
	}
	for name := range result.CategoryScores {
		result.CategoryScores[name] = round(result.CategoryScores[name]/float64(n), 3)
	}

	raw := total / float64(n)
	result.RawScore = round(raw, 3)
	result.Score = round(50+40*math.Tanh(raw/2), 1)
	result.Confidence = round(math.Min(maxStrengthConfidence, 40+20*math.Log10(float64(n))), 1)
	result.TopStrengths, result.TopWeaknesses = s.rank(result.CategoryScores)
	return result
}

// rank orders positive categories by descending score and negative ones by
// ascending score, keeping the top three of each
func (s *strengthScorer) rank(scores map[string]float64) ([]string, []string) {
	var strong, weak []string
	for _, c := range s.categories {
		v := scores[c.name]
		switch {
		case v > 0:
			strong = append(strong, c.name)
		case v < 0:
			weak = append(weak, c.name)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool { return scores[strong[i]] > scores[strong[j]] })
	sort.SliceStable(weak, func(i, j int) bool { return scores[weak[i]] < scores[weak[j]] })

	strong = append([]string{}, strong[:min(len(strong), topCategories)]...)
	weak = append([]string{}, weak[:min(len(weak), topCategories)]...)
	return strong, weak
}

func overlaps(taken []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if taken[i] {
			return true
		}
	}
	return false
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
