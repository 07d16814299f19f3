package temporal

import (
	"strings"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// dateLayouts are tried in order when reading a comment date
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate reads a comment date in any of the supported layouts. Dates
// without a zone are interpreted in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Filter keeps the comments dated inside period. Comments with a missing or
// unparseable date are dropped.
func Filter(comments []models.ClassifiedComment, period models.TimePeriod) []models.ClassifiedComment {
	loc := period.Start.Location()
	kept := make([]models.ClassifiedComment, 0, len(comments))
	dropped := 0

	for _, c := range comments {
		t, ok := ParseDate(c.Date, loc)
		if !ok {
			dropped++
			continue
		}
		if period.Contains(t) {
			kept = append(kept, c)
		}
	}

	if dropped > 0 {
		logrus.Debugf("Dropped %d comments with unparseable dates while filtering %s", dropped, period.Description)
	}
	return kept
}

// FilterBrand keeps the comments that concern brand: classified against it,
// collected for it, or mentioning it.
func FilterBrand(comments []models.ClassifiedComment, brand string) []models.ClassifiedComment {
	if brand == "" {
		return comments
	}
	kept := make([]models.ClassifiedComment, 0, len(comments))
	for _, c := range comments {
		if strings.EqualFold(c.Classification.TargetBrand, brand) || strings.EqualFold(c.OEM, brand) {
			kept = append(kept, c)
			continue
		}
		if _, ok := c.Classification.CompanyAnalysis.AllMentions[brand]; ok {
			kept = append(kept, c)
		}
	}
	return kept
}
