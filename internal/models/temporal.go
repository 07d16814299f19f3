package models

import "time"

// Period types
const (
	PeriodMonth        = "month"
	PeriodQuarter      = "quarter"
	PeriodYear         = "year"
	PeriodSpecificDate = "specific_date"
	PeriodDuration     = "duration"
)

// TimePeriod is a query-derived time window. Start is inclusive, End exclusive.
type TimePeriod struct {
	Type        string     `json:"type"`
	Year        int        `json:"year,omitempty"`
	Month       time.Month `json:"month,omitempty"`
	Quarter     int        `json:"quarter,omitempty"`
	Months      []int      `json:"months,omitempty"`
	Day         int        `json:"day,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Description string     `json:"description"`
}

// Contains reports whether t falls inside the period
func (p TimePeriod) Contains(t time.Time) bool {
	t = t.In(p.Start.Location())
	switch p.Type {
	case PeriodSpecificDate:
		return t.Year() == p.Year && t.Month() == p.Month && t.Day() == p.Day
	case PeriodMonth:
		return t.Year() == p.Year && t.Month() == p.Month
	case PeriodQuarter:
		if t.Year() != p.Year {
			return false
		}
		for _, m := range p.Months {
			if int(t.Month()) == m {
				return true
			}
		}
		return false
	case PeriodYear:
		return t.Year() == p.Year
	default:
		return !t.Before(p.Start) && t.Before(p.End)
	}
}

// BrandStrength is the weighted keyword-density score of a comment set
type BrandStrength struct {
	Score          float64            `json:"score"`
	Confidence     float64            `json:"confidence"`
	RawScore       float64            `json:"raw_score"`
	TopStrengths   []string           `json:"top_strengths"`
	TopWeaknesses  []string           `json:"top_weaknesses"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// TemporalMetrics aggregates classified comments for one brand and period
type TemporalMetrics struct {
	Brand              string        `json:"brand,omitempty"`
	Period             *TimePeriod   `json:"period,omitempty"`
	TotalComments      int           `json:"total_comments"`
	PositiveCount      int           `json:"positive_count"`
	NegativeCount      int           `json:"negative_count"`
	NeutralCount       int           `json:"neutral_count"`
	PositivePercentage float64       `json:"positive_percentage"`
	NegativePercentage float64       `json:"negative_percentage"`
	NeutralPercentage  float64       `json:"neutral_percentage"`
	SentimentScore     float64       `json:"sentiment_score"` // net sentiment, -100..100
	AverageConfidence  float64       `json:"average_confidence"`
	ConfidenceLevel    string        `json:"confidence_level"`
	BrandStrengthScore float64       `json:"brand_strength_score"`
	BrandStrength      BrandStrength `json:"brand_strength"`
}

// TrendPoint is one month of a sentiment trend series
type TrendPoint struct {
	Label   string          `json:"label"` // "2024-08"
	Metrics TemporalMetrics `json:"metrics"`
}
