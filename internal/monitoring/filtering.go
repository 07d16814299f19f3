package monitoring

import (
	"regexp"
	"strings"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// Ride-hailing and fintech products that share a name with Ola Electric
var noiseTerms = []string{
	"ola cab", "ola cabs", "ola ride", "ola driver", "ola auto", "ola money",
	"ola app", "uber", "rapido", "cab booking", "krutrim",
}

var evIndicators = []string{
	"scooter", "scooty", "ev", "evs", "electric", "battery", "charging", "charger",
	"range", "bike", "gaadi", "service center", "service centre", "motor", "kwh",
}

var (
	noisePatterns       = compileTerms(noiseTerms)
	evIndicatorPatterns = compileTerms(evIndicators)
)

func compileTerms(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, t := range terms {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(t)+`\b`))
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// filterByContext drops comments that are not about an EV brand
func (s *Service) filterByContext(comments []models.Comment) []models.Comment {
	var filtered []models.Comment

	for _, c := range comments {
		if s.isRelevantComment(c) {
			filtered = append(filtered, c)
		} else {
			logrus.Debugf("Filtered out irrelevant comment %s from %s", c.ID, c.Source)
		}
	}

	return filtered
}

// isRelevantComment decides whether a comment is about an EV brand or product
func (s *Service) isRelevantComment(c models.Comment) bool {
	text := strings.ToLower(c.Text)
	hasEV := matchesAny(evIndicatorPatterns, text)

	if matchesAny(noisePatterns, text) && !hasEV {
		return false
	}

	if len(s.classifier.DetectBrands(c.Text).AllMentions) > 0 {
		return true
	}

	if hasEV {
		return true
	}

	// Short replies under a brand video inherit the video's context
	if c.OEM != "" && c.VideoTitle != "" {
		return len(s.classifier.DetectBrands(c.VideoTitle).AllMentions) > 0
	}

	return false
}
