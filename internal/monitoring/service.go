package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/evpulse/oem-sentiment-bot/internal/notifications"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/sources"
	"github.com/evpulse/oem-sentiment-bot/internal/storage"
	"github.com/evpulse/oem-sentiment-bot/internal/temporal"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service collects, classifies and reports on comments about EV brands
type Service struct {
	config              *config.Config
	archive             *storage.Archive
	notificationService notifications.NotificationInterface
	classifier          *sentiment.Classifier
	aggregator          *temporal.Aggregator
	sources             []sources.Source
	metrics             *Metrics
	now                 func() time.Time
	mu                  sync.RWMutex
}

// Metrics holds monitoring metrics
type Metrics struct {
	TotalComments      int            `json:"total_comments"`
	FilteredOut        int            `json:"filtered_out"`
	FailedComments     int            `json:"failed_comments"`
	LastRun            time.Time      `json:"last_run"`
	LastRunDuration    string         `json:"last_run_duration"`
	SourceMetrics      map[string]int `json:"source_metrics"`
	BrandMetrics       map[string]int `json:"brand_metrics"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
	AlertsSent         int            `json:"alerts_sent"`
	ErrorCount         int            `json:"error_count"`
	LexiconVersion     string         `json:"lexicon_version"`
}

// TrendReport is the answer to a brand trend query
type TrendReport struct {
	Brand   string                 `json:"brand"`
	Query   string                 `json:"query,omitempty"`
	Metrics models.TemporalMetrics `json:"metrics"`
	Trend   []models.TrendPoint    `json:"trend"`
}

// NewService creates a new monitoring service
func NewService(cfg *config.Config, store storage.StorageInterface, notificationService notifications.NotificationInterface,
	classifier *sentiment.Classifier, aggregator *temporal.Aggregator) *Service {
	service := &Service{
		config:              cfg,
		archive:             storage.NewArchive(store),
		notificationService: notificationService,
		classifier:          classifier,
		aggregator:          aggregator,
		now:                 time.Now,
		metrics: &Metrics{
			SourceMetrics:      make(map[string]int),
			BrandMetrics:       make(map[string]int),
			SentimentBreakdown: make(map[string]int),
			LexiconVersion:     classifier.LexiconVersion(),
		},
	}

	service.initializeSources()

	return service
}

func (s *Service) initializeSources() {
	s.sources = []sources.Source{
		sources.NewYouTubeSource(s.config.YouTubeAPIKey, s.config.YouTubeMaxVideos),
		sources.NewRedditSource(s.config.RedditClientID, s.config.RedditClientSecret),
	}
}

// brands returns the canonical names of the monitored brands
func (s *Service) brands() []string {
	if len(s.config.Brands) == 0 {
		return s.classifier.BrandNames()
	}
	seen := make(map[string]bool)
	var out []string
	for _, b := range s.config.Brands {
		name := s.classifier.ResolveBrand(b)
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func (s *Service) searchWindow() time.Duration {
	switch s.config.ReportSchedule {
	case "daily":
		return 24 * time.Hour
	case "weekly":
		return 7 * 24 * time.Hour
	}
	// Fallback to time since last run, at least one day
	if since := s.now().Sub(s.getLastRunTime()); since > 24*time.Hour {
		return since
	}
	return 24 * time.Hour
}

// collection is what one fetch round returned, grouped by brand
type collection struct {
	byBrand  map[string][]models.Comment
	bySource map[string]int
	errors   int
}

type fetchResult struct {
	source   string
	brand    string
	comments []models.Comment
	err      error
}

// collect fetches comments for every brand from every enabled source concurrently
func (s *Service) collect(ctx context.Context, brands []string, window time.Duration) collection {
	var wg sync.WaitGroup
	results := make(chan fetchResult, len(s.sources)*len(brands))

	for _, source := range s.sources {
		if !source.IsEnabled() {
			logrus.Debugf("Skipping disabled source %s", source.GetName())
			continue
		}
		for _, brand := range brands {
			wg.Add(1)
			go func(src sources.Source, brand string) {
				defer wg.Done()

				logrus.Infof("Fetching %s comments from %s (window: %v)", brand, src.GetName(), window)
				comments, err := src.FetchComments(ctx, brand, window)
				results <- fetchResult{source: src.GetName(), brand: brand, comments: comments, err: err}
			}(source, brand)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	c := collection{byBrand: make(map[string][]models.Comment), bySource: make(map[string]int)}
	for r := range results {
		if r.err != nil {
			logrus.Errorf("Error fetching %s from %s: %v", r.brand, r.source, r.err)
			c.errors++
			continue
		}
		logrus.Infof("Found %d %s comments on %s", len(r.comments), r.brand, r.source)
		c.byBrand[r.brand] = append(c.byBrand[r.brand], r.comments...)
		c.bySource[r.source] += len(r.comments)
	}
	return c
}

// classifyAll filters and classifies every brand's comments against that brand
func (s *Service) classifyAll(ctx context.Context, brands []string, byBrand map[string][]models.Comment) ([]models.ClassifiedComment, map[string][]models.ClassifiedComment, int, error) {
	var all []models.ClassifiedComment
	perBrand := make(map[string][]models.ClassifiedComment)
	filtered := 0

	for _, brand := range brands {
		comments := byBrand[brand]
		if s.config.EnableContextFiltering {
			before := len(comments)
			comments = s.filterByContext(comments)
			filtered += before - len(comments)
		}
		if len(comments) == 0 {
			continue
		}

		classified, err := s.classifier.ClassifyBatch(ctx, comments, brand)
		if err != nil {
			return nil, nil, filtered, fmt.Errorf("failed to classify %s comments: %w", brand, err)
		}
		perBrand[brand] = classified
		all = append(all, classified...)
	}

	return all, perBrand, filtered, nil
}

// RunMonitoring performs the main collection and reporting run
func (s *Service) RunMonitoring(ctx context.Context) error {
	start := s.now()
	logrus.Info("Starting monitoring run")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	brands := s.brands()
	window := s.searchWindow()
	logrus.Infof("Searching %d sources for %d brands in the last %v", len(s.sources), len(brands), window)

	collected := s.collect(ctx, brands, window)

	all, perBrand, filtered, err := s.classifyAll(ctx, brands, collected.byBrand)
	if err != nil {
		return err
	}
	logrus.Infof("Classified %d comments (%d filtered as irrelevant)", len(all), filtered)

	for _, brand := range brands {
		if len(perBrand[brand]) == 0 {
			continue
		}
		if _, err := s.archive.SaveComments(ctx, brand, perBrand[brand], start); err != nil {
			logrus.Errorf("Failed to store %s comments: %v", brand, err)
			return err
		}
	}

	s.updateMetrics(all, collected, filtered, s.now().Sub(start))

	if days := s.config.RetentionDays; days > 0 {
		if _, err := s.archive.Prune(ctx, start.AddDate(0, 0, -days)); err != nil {
			logrus.Warnf("Failed to prune archive: %v", err)
		}
	}

	report := s.generateReport(ctx, all, brands, s.config.ReportSchedule)
	if _, err := s.archive.SaveReport(ctx, report); err != nil {
		logrus.Warnf("Failed to archive report %s: %v", report.ID, err)
	}

	if err := s.notificationService.SendReport(ctx, report); err != nil {
		logrus.Errorf("Failed to send report: %v", err)
		return err
	}

	logrus.Infof("Monitoring run completed in %v", s.now().Sub(start))
	return nil
}

// generateReport summarizes the run and attaches per-brand metrics over the
// configured report period, read from the archive
func (s *Service) generateReport(ctx context.Context, comments []models.ClassifiedComment, brands []string, period string) *models.Report {
	now := s.now()
	report := &models.Report{
		ID:            uuid.NewString(),
		GeneratedAt:   now,
		Period:        period,
		TotalComments: len(comments),
		Comments:      comments,
		Summary:       sentiment.Summarize(comments),
		Brands:        make(map[string]models.TemporalMetrics),
	}

	since := time.Time{}
	if p, err := temporal.ParsePeriod(s.config.ReportPeriod, now); err == nil {
		since = p.Start
	} else {
		logrus.Warnf("Invalid REPORT_PERIOD %q, using full history: %v", s.config.ReportPeriod, err)
	}

	for _, brand := range brands {
		history, err := s.archive.LoadComments(ctx, brand, since)
		if err != nil {
			logrus.Warnf("Failed to load %s history, using this run only: %v", brand, err)
			history = temporal.FilterBrand(comments, brand)
		}
		if len(history) == 0 {
			continue
		}

		query := s.config.ReportPeriod
		if since.IsZero() {
			query = ""
		}
		metrics, err := s.aggregator.Analyze(brand, query, history, now)
		if err != nil {
			logrus.Warnf("Failed to aggregate %s: %v", brand, err)
			continue
		}
		report.Brands[brand] = metrics
	}

	return report
}

// GenerateTestReport classifies sample comments against their collected brand
// and builds a report from them alone
func (s *Service) GenerateTestReport(ctx context.Context, comments []models.Comment) (*models.Report, error) {
	byBrand := make(map[string][]models.Comment)
	var brands []string
	for _, c := range comments {
		brand := s.classifier.ResolveBrand(c.OEM)
		if _, ok := byBrand[brand]; !ok {
			brands = append(brands, brand)
		}
		byBrand[brand] = append(byBrand[brand], c)
	}

	all, _, _, err := s.classifyAll(ctx, brands, byBrand)
	if err != nil {
		return nil, err
	}

	now := s.now()
	report := &models.Report{
		ID:            uuid.NewString(),
		GeneratedAt:   now,
		Period:        "test",
		TotalComments: len(all),
		Comments:      all,
		Summary:       sentiment.Summarize(all),
		Brands:        make(map[string]models.TemporalMetrics),
	}
	for _, brand := range brands {
		if brand == "" {
			continue
		}
		metrics, err := s.aggregator.Analyze(brand, "", all, now)
		if err != nil {
			return nil, err
		}
		report.Brands[brand] = metrics
	}
	return report, nil
}

// Trends answers a free-text period query for one brand from the archive, with
// a monthly series over the last months months
func (s *Service) Trends(ctx context.Context, brand, query string, months int) (*TrendReport, error) {
	name := s.classifier.ResolveBrand(brand)
	if name == "" {
		return nil, fmt.Errorf("brand is required")
	}
	now := s.now()

	history, err := s.archive.LoadComments(ctx, name, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s history: %w", name, err)
	}

	metrics, err := s.aggregator.Analyze(name, query, history, now)
	if err != nil {
		return nil, err
	}

	return &TrendReport{
		Brand:   name,
		Query:   query,
		Metrics: metrics,
		Trend:   s.aggregator.MonthlyTrend(name, history, months, now),
	}, nil
}

func (s *Service) updateMetrics(comments []models.ClassifiedComment, collected collection, filtered int, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.TotalComments = len(comments)
	s.metrics.FilteredOut = filtered
	s.metrics.LastRun = s.now()
	s.metrics.LastRunDuration = duration.String()
	s.metrics.ErrorCount = collected.errors
	s.metrics.FailedComments = 0

	s.metrics.SourceMetrics = make(map[string]int)
	for source, n := range collected.bySource {
		s.metrics.SourceMetrics[source] = n
	}
	s.metrics.BrandMetrics = make(map[string]int)
	s.metrics.SentimentBreakdown = make(map[string]int)

	for _, c := range comments {
		s.metrics.BrandMetrics[c.Classification.TargetBrand]++
		s.metrics.SentimentBreakdown[c.Classification.Sentiment]++
		if c.Classification.Failed {
			s.metrics.FailedComments++
		}
	}
}

func (s *Service) getLastRunTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.metrics.LastRun.IsZero() {
		return s.now().Add(-24 * time.Hour)
	}

	return s.metrics.LastRun
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
