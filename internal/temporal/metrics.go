package temporal

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Confidence levels by sample size
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"

	highSampleSize   = 100
	mediumSampleSize = 30
)

// Aggregator turns classified comments into period and brand level metrics
type Aggregator struct {
	strength *strengthScorer
}

// NewAggregator builds an aggregator over the brand-strength tables of lex
func NewAggregator(lex *lexicon.Lexicon) *Aggregator {
	return &Aggregator{strength: newStrengthScorer(lex)}
}

// Metrics computes sentiment distribution and brand strength for a comment set
func (a *Aggregator) Metrics(comments []models.ClassifiedComment) models.TemporalMetrics {
	m := models.TemporalMetrics{TotalComments: len(comments)}

	confidences := make([]float64, 0, len(comments))
	for _, c := range comments {
		switch c.Classification.Sentiment {
		case models.SentimentPositive:
			m.PositiveCount++
		case models.SentimentNegative:
			m.NegativeCount++
		default:
			m.NeutralCount++
		}
		confidences = append(confidences, c.Classification.Confidence)
	}

	tenths := percentTenths([]int{m.PositiveCount, m.NegativeCount, m.NeutralCount})
	m.PositivePercentage = float64(tenths[0]) / 10
	m.NegativePercentage = float64(tenths[1]) / 10
	m.NeutralPercentage = float64(tenths[2]) / 10
	m.SentimentScore = float64(tenths[0]-tenths[1]) / 10

	if len(confidences) > 0 {
		m.AverageConfidence = round(stat.Mean(confidences, nil), 3)
	}
	m.ConfidenceLevel = confidenceLevel(len(comments))

	m.BrandStrength = a.strength.score(comments)
	m.BrandStrengthScore = m.BrandStrength.Score
	return m
}

// BrandStrength scores a comment set against the strength and weakness categories
func (a *Aggregator) BrandStrength(comments []models.ClassifiedComment) models.BrandStrength {
	return a.strength.score(comments)
}

// Analyze parses query, narrows comments to brand and the parsed period and
// returns the metrics. An empty query analyzes every dated comment.
func (a *Aggregator) Analyze(brand, query string, comments []models.ClassifiedComment, now time.Time) (models.TemporalMetrics, error) {
	selected := FilterBrand(comments, brand)

	var period *models.TimePeriod
	if query != "" {
		p, err := ParsePeriod(query, now)
		if err != nil {
			return models.TemporalMetrics{}, fmt.Errorf("failed to parse period %q: %w", query, err)
		}
		period = &p
		selected = Filter(selected, p)
	}

	m := a.Metrics(selected)
	m.Brand = brand
	m.Period = period

	logrus.Debugf("Temporal metrics for %q over %q: %d comments, net sentiment %.1f",
		brand, query, m.TotalComments, m.SentimentScore)
	return m, nil
}

// MonthlyTrend returns one point per calendar month for the last months
// months ending with the month of now, oldest first
func (a *Aggregator) MonthlyTrend(brand string, comments []models.ClassifiedComment, months int, now time.Time) []models.TrendPoint {
	if months <= 0 {
		return []models.TrendPoint{}
	}
	selected := FilterBrand(comments, brand)
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]models.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		period := monthPeriod(start.Year(), start.Month(), start.Location())
		m := a.Metrics(Filter(selected, period))
		m.Brand = brand
		m.Period = &period
		points = append(points, models.TrendPoint{Label: start.Format("2006-01"), Metrics: m})
	}
	return points
}

func confidenceLevel(n int) string {
	switch {
	case n >= highSampleSize:
		return ConfidenceHigh
	case n >= mediumSampleSize:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// percentTenths converts counts to percentages in tenths of a percent using the
// largest remainder method, so a non-empty set always sums to exactly 1000.
func percentTenths(counts []int) []int {
	out := make([]int, len(counts))
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return out
	}

	type share struct {
		idx       int
		remainder float64
	}
	shares := make([]share, len(counts))
	assigned := 0
	for i, c := range counts {
		exact := float64(c) * 1000 / float64(total)
		out[i] = int(math.Floor(exact))
		assigned += out[i]
		shares[i] = share{idx: i, remainder: exact - float64(out[i])}
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].remainder > shares[j].remainder })
	for k := 0; assigned < 1000; k++ {
		out[shares[k%len(shares)].idx]++
		assigned++
	}
	return out
}
