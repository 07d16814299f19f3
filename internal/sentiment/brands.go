package sentiment

import (
	"math"
	"strings"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

// Tier weights for brand name variants
const (
	primaryWeight = 3
	productWeight = 2
	variantWeight = 1

	brandConfidenceScale = 5.0
)

type brandMatcher struct {
	name     string
	primary  []phrase
	products []phrase
	variants []phrase
}

// BrandDetector scores registered brands by how strongly a text names them
type BrandDetector struct {
	brands []brandMatcher
}

// NewBrandDetector builds a detector over the lexicon brand table. Registration
// order is kept and decides ties.
func NewBrandDetector(lex *lexicon.Lexicon) *BrandDetector {
	d := &BrandDetector{brands: make([]brandMatcher, 0, len(lex.Brands))}
	for _, b := range lex.Brands {
		d.brands = append(d.brands, brandMatcher{
			name:     b.Name,
			primary:  compilePhrases(b.Primary),
			products: compilePhrases(b.Products),
			variants: compilePhrases(b.Variants),
		})
	}
	return d
}

// Detect finds brand mentions in text. Competitors are the mentioned brands other
// than target, or other than the primary brand when no target is given.
func (d *BrandDetector) Detect(text, target string) models.BrandMention {
	tokens := tokenize(normalize(text))
	mention := models.BrandMention{
		AllMentions:        make(map[string]models.BrandScore),
		CompetitorMentions: []string{},
	}

	var order []string
	best := 0
	for _, b := range d.brands {
		score := b.score(tokens)
		if score == 0 {
			continue
		}
		mention.AllMentions[b.name] = models.BrandScore{
			MatchScore: score,
			Confidence: math.Min(float64(score)/brandConfidenceScale, 1.0),
		}
		order = append(order, b.name)
		if score > best {
			best = score
			mention.PrimaryCompany = b.name
		}
	}

	exclude := mention.PrimaryCompany
	if target != "" {
		exclude = d.ResolveBrand(target)
	}
	for _, name := range order {
		if name != exclude {
			mention.CompetitorMentions = append(mention.CompetitorMentions, name)
		}
	}

	return mention
}

// ResolveBrand maps a user-supplied brand label onto a registered brand name.
// Unknown labels are returned unchanged.
func (d *BrandDetector) ResolveBrand(target string) string {
	t := strings.TrimSpace(target)
	if t == "" {
		return ""
	}
	key := strings.Join(tokenize(normalize(t)), " ")
	for _, b := range d.brands {
		if strings.EqualFold(b.name, t) {
			return b.name
		}
		for _, p := range b.primary {
			if strings.Join(p.tokens, " ") == key {
				return b.name
			}
		}
	}

	tokens := tokenize(normalize(t))
	best, name := 0, t
	for _, b := range d.brands {
		if score := b.score(tokens); score > best {
			best, name = score, b.name
		}
	}
	return name
}

// Names returns the registered brand names in order
func (d *BrandDetector) Names() []string {
	names := make([]string, 0, len(d.brands))
	for _, b := range d.brands {
		names = append(names, b.name)
	}
	return names
}

func (b brandMatcher) score(tokens []string) int {
	score := 0
	for _, tier := range []struct {
		list   []phrase
		weight int
	}{
		{b.primary, primaryWeight},
		{b.products, productWeight},
		{b.variants, variantWeight},
	} {
		for _, p := range tier.list {
			if p.in(tokens) {
				score += tier.weight
			}
		}
	}
	return score
}
