package temporal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

// ErrNoPeriod is returned when a query carries no recognizable time expression
var ErrNoPeriod = errors.New("no time period found in query")

// ErrInvalidPeriod is returned for a recognized but unusable time expression
var ErrInvalidPeriod = errors.New("invalid time period")

const monthAlternation = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var (
	durationPattern  = regexp.MustCompile(`(?i)\b(?:last|past|previous|pichle|pichhle)\s+(\d+\s+)?(day|week|month|year|mahine|mahina|saal)s?\b`)
	quarterPattern   = regexp.MustCompile(`(?i)\bq([1-4])\b(?:\s*,?\s*(\d{4}))?`)
	isoDatePattern   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	monthDayYear     = regexp.MustCompile(`(?i)\b(` + monthAlternation + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	dayMonthYear     = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthAlternation + `)\.?,?\s+(\d{4})\b`)
	monthYearPattern = regexp.MustCompile(`(?i)\b(` + monthAlternation + `)\.?,?\s+(\d{4})\b`)
	// abbreviations and "may" are too ambiguous without a year
	bareMonthPattern = regexp.MustCompile(`(?i)\b(january|february|march|april|june|july|august|september|october|november|december)\b`)
	yearPattern      = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

var quarterMonths = map[int][]int{
	1: {1, 2, 3},
	2: {4, 5, 6},
	3: {7, 8, 9},
	4: {10, 11, 12},
}

// ParsePeriod extracts a time window from a free-text query such as
// "August 2024", "Q2 2025", "15 Aug 2024" or "last 6 months".
// Queries without a year fall back to the year of now.
func ParsePeriod(query string, now time.Time) (models.TimePeriod, error) {
	q := strings.TrimSpace(query)
	loc := now.Location()

	if m := durationPattern.FindStringSubmatch(q); m != nil {
		n := 1
		if s := strings.TrimSpace(m[1]); s != "" {
			n, _ = strconv.Atoi(s)
		}
		if n <= 0 {
			return models.TimePeriod{}, fmt.Errorf("%w: duration %q", ErrInvalidPeriod, m[0])
		}
		return durationPeriod(n, strings.ToLower(m[2]), now), nil
	}

	if m := quarterPattern.FindStringSubmatch(q); m != nil {
		quarter, _ := strconv.Atoi(m[1])
		year := now.Year()
		if m[2] != "" {
			year, _ = strconv.Atoi(m[2])
		}
		start := time.Date(year, time.Month(quarterMonths[quarter][0]), 1, 0, 0, 0, 0, loc)
		return models.TimePeriod{
			Type:        models.PeriodQuarter,
			Year:        year,
			Quarter:     quarter,
			Months:      quarterMonths[quarter],
			Start:       start,
			End:         start.AddDate(0, 3, 0),
			Description: fmt.Sprintf("Q%d %d", quarter, year),
		}, nil
	}

	if p, ok := parseSpecificDate(q, loc); ok {
		return p, nil
	}

	if m := monthYearPattern.FindStringSubmatch(q); m != nil {
		year, _ := strconv.Atoi(m[2])
		return monthPeriod(year, monthFromName(m[1]), loc), nil
	}

	if m := bareMonthPattern.FindStringSubmatch(q); m != nil {
		return monthPeriod(now.Year(), monthFromName(m[1]), loc), nil
	}

	if m := yearPattern.FindStringSubmatch(q); m != nil {
		year, _ := strconv.Atoi(m[1])
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return models.TimePeriod{
			Type:        models.PeriodYear,
			Year:        year,
			Start:       start,
			End:         start.AddDate(1, 0, 0),
			Description: strconv.Itoa(year),
		}, nil
	}

	return models.TimePeriod{}, ErrNoPeriod
}

func parseSpecificDate(q string, loc *time.Location) (models.TimePeriod, bool) {
	var (
		year, day int
		month     time.Month
	)
	switch {
	case isoDatePattern.MatchString(q):
		m := isoDatePattern.FindStringSubmatch(q)
		year, _ = strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		month = time.Month(mm)
		day, _ = strconv.Atoi(m[3])
	case monthDayYear.MatchString(q):
		m := monthDayYear.FindStringSubmatch(q)
		month = monthFromName(m[1])
		day, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	case dayMonthYear.MatchString(q):
		m := dayMonthYear.FindStringSubmatch(q)
		day, _ = strconv.Atoi(m[1])
		month = monthFromName(m[2])
		year, _ = strconv.Atoi(m[3])
	default:
		return models.TimePeriod{}, false
	}

	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range days; reject them instead
	if month < time.January || month > time.December || start.Day() != day || start.Month() != month {
		return models.TimePeriod{}, false
	}
	return models.TimePeriod{
		Type:        models.PeriodSpecificDate,
		Year:        year,
		Month:       month,
		Day:         day,
		Start:       start,
		End:         start.AddDate(0, 0, 1),
		Description: start.Format("2 January 2006"),
	}, true
}

func monthPeriod(year int, month time.Month, loc *time.Location) models.TimePeriod {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return models.TimePeriod{
		Type:        models.PeriodMonth,
		Year:        year,
		Month:       month,
		Start:       start,
		End:         start.AddDate(0, 1, 0),
		Description: start.Format("January 2006"),
	}
}

func durationPeriod(n int, unit string, now time.Time) models.TimePeriod {
	var start time.Time
	switch unit {
	case "day":
		start = now.AddDate(0, 0, -n)
	case "week":
		start = now.AddDate(0, 0, -7*n)
	case "year", "saal":
		start = now.AddDate(-n, 0, 0)
		unit = "year"
	default:
		start = now.AddDate(0, -n, 0)
		unit = "month"
	}
	if n != 1 {
		unit += "s"
	}
	return models.TimePeriod{
		Type:        models.PeriodDuration,
		Start:       start,
		End:         now,
		Description: fmt.Sprintf("last %d %s", n, unit),
	}
}

func monthFromName(name string) time.Month {
	prefix := strings.ToLower(name)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), prefix) {
			return m
		}
	}
	return 0
}
