package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/lexicon"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/sources"
	"github.com/evpulse/oem-sentiment-bot/internal/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStorage is a mock implementation of the storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Store(ctx context.Context, name string, data []byte) error {
	args := m.Called(name, data)
	return args.Error(0)
}

func (m *MockStorage) Retrieve(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(name)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of the notification service
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendReport(ctx context.Context, report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockNotificationService) SendAlert(ctx context.Context, alert *models.Alert) error {
	args := m.Called(alert)
	return args.Error(0)
}

// fakeSource returns canned comments per brand
type fakeSource struct {
	name     string
	enabled  bool
	comments map[string][]models.Comment
	err      error
}

func (f *fakeSource) GetName() string { return f.name }

func (f *fakeSource) IsEnabled() bool { return f.enabled }

func (f *fakeSource) FetchComments(ctx context.Context, brand string, since time.Duration) ([]models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.comments[brand], nil
}

var testNow = time.Date(2024, time.August, 20, 10, 0, 0, 0, time.UTC)

func newTestClassifier(t *testing.T) *sentiment.Classifier {
	t.Helper()
	c, err := sentiment.NewClassifier(lexicon.Default(), sentiment.DefaultConfig())
	require.NoError(t, err)
	return c
}

func newTestService(t *testing.T, cfg *config.Config, store *MockFileStorage, notifier *MockNotificationService, srcs ...sources.Source) *Service {
	t.Helper()
	service := NewService(cfg, store, notifier, newTestClassifier(t), temporal.NewAggregator(lexicon.Default()))
	service.sources = srcs
	service.now = func() time.Time { return testNow }
	return service
}

func TestNewService(t *testing.T) {
	cfg := &config.Config{YouTubeAPIKey: "key", YouTubeMaxVideos: 5}
	service := NewService(cfg, &MockStorage{}, &MockNotificationService{}, newTestClassifier(t), temporal.NewAggregator(lexicon.Default()))

	require.Len(t, service.sources, 2)
	assert.Equal(t, "youtube", service.sources[0].GetName())
	assert.True(t, service.sources[0].IsEnabled())
	assert.Equal(t, "reddit", service.sources[1].GetName())
	assert.False(t, service.sources[1].IsEnabled())
	assert.Contains(t, service.GetMetrics(), `"lexicon_version"`)
}

func TestService_brands(t *testing.T) {
	tests := []struct {
		name     string
		brands   []string
		expected []string
	}{
		{name: "configured aliases resolve", brands: []string{"ola", "ather", "Ola Electric"}, expected: []string{"Ola Electric", "Ather"}},
		{name: "unknown brand kept", brands: []string{"Ultraviolette"}, expected: []string{"Ultraviolette"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &Service{config: &config.Config{Brands: tt.brands}, classifier: newTestClassifier(t)}
			assert.Equal(t, tt.expected, service.brands())
		})
	}

	t.Run("defaults to every registered brand", func(t *testing.T) {
		classifier := newTestClassifier(t)
		service := &Service{config: &config.Config{}, classifier: classifier}
		assert.Equal(t, classifier.BrandNames(), service.brands())
	})
}

func TestService_searchWindow(t *testing.T) {
	tests := []struct {
		schedule string
		expected time.Duration
	}{
		{"daily", 24 * time.Hour},
		{"weekly", 7 * 24 * time.Hour},
		{"0 9 * * 1", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			service := &Service{
				config:  &config.Config{ReportSchedule: tt.schedule},
				metrics: &Metrics{},
				now:     func() time.Time { return testNow },
			}
			assert.Equal(t, tt.expected, service.searchWindow())
		})
	}
}

func TestIsUrgent(t *testing.T) {
	urgent := models.Classification{
		Sentiment:          models.SentimentNegative,
		EngagementAnalysis: models.EngagementProfile{EngagementLevel: models.EngagementViral},
		PatternAnalysis:    models.PatternSentiment{HasStrongNegative: true},
	}

	tests := []struct {
		name     string
		modify   func(c *models.Classification)
		expected bool
	}{
		{name: "viral strong negative", modify: func(c *models.Classification) {}, expected: true},
		{name: "high engagement negative phrase", modify: func(c *models.Classification) {
			c.EngagementAnalysis.EngagementLevel = models.EngagementHigh
			c.PatternAnalysis = models.PatternSentiment{HasNegativePhrase: true}
		}, expected: true},
		{name: "medium engagement", modify: func(c *models.Classification) {
			c.EngagementAnalysis.EngagementLevel = models.EngagementMedium
		}, expected: false},
		{name: "positive", modify: func(c *models.Classification) { c.Sentiment = models.SentimentPositive }, expected: false},
		{name: "failed", modify: func(c *models.Classification) { c.Failed = true }, expected: false},
		{name: "mild complaint", modify: func(c *models.Classification) { c.PatternAnalysis = models.PatternSentiment{} }, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := urgent
			tt.modify(&cls)
			assert.Equal(t, tt.expected, isUrgent(models.ClassifiedComment{Classification: cls}))
		})
	}
}

func TestService_RunUrgentCheck(t *testing.T) {
	store := NewMockFileStorage()
	notifier := &MockNotificationService{}
	source := &fakeSource{name: "youtube", enabled: true, comments: map[string][]models.Comment{
		"Ola Electric": {
			{ID: "c1", Text: "Ola Electric scooter is the worst, never buy, service center is a scam", Likes: 150, Source: "youtube"},
			{ID: "c2", Text: "Ola S1 Pro range is decent for city rides", Likes: 300, Source: "youtube"},
			{ID: "c3", Text: "Ola scooter is the worst, never buy", Likes: 3, Source: "youtube"},
		},
	}}
	service := newTestService(t, &config.Config{Brands: []string{"Ola Electric"}}, store, notifier, source)

	notifier.On("SendAlert", mock.MatchedBy(func(a *models.Alert) bool {
		return a.Type == "urgent" && a.Brand == "Ola Electric" && a.Comment != nil && a.Comment.ID == "c1"
	})).Return(nil).Once()

	require.NoError(t, service.RunUrgentCheck(context.Background()))

	notifier.AssertExpectations(t)
	assert.Contains(t, service.GetMetrics(), `"alerts_sent": 1`)
	assert.Len(t, store.names("comments/ola-electric/2024-08-20/"), 1)
}

func TestService_RunUrgentCheck_AlertFailure(t *testing.T) {
	notifier := &MockNotificationService{}
	source := &fakeSource{name: "youtube", enabled: true, comments: map[string][]models.Comment{
		"Ather": {{ID: "c1", Text: "Ather is a scam, worst service, never buy", Likes: 500}},
	}}
	service := newTestService(t, &config.Config{Brands: []string{"Ather"}}, NewMockFileStorage(), notifier, source)

	notifier.On("SendAlert", mock.Anything).Return(errors.New("webhook down"))

	err := service.RunUrgentCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook down")
}

func TestService_RunMonitoring_StorageFailure(t *testing.T) {
	store := &MockStorage{}
	notifier := &MockNotificationService{}
	source := &fakeSource{name: "youtube", enabled: true, comments: map[string][]models.Comment{
		"Ather": {{ID: "c1", Text: "Ather 450X is superb", Date: "2024-08-19T10:00:00Z"}},
	}}

	service := NewService(&config.Config{Brands: []string{"Ather"}, ReportSchedule: "daily", ReportPeriod: "last 1 months"},
		store, notifier, newTestClassifier(t), temporal.NewAggregator(lexicon.Default()))
	service.sources = []sources.Source{source}

	store.On("Store", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := service.RunMonitoring(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	notifier.AssertNotCalled(t, "SendReport", mock.Anything)
}

func TestService_collect_SourceErrors(t *testing.T) {
	good := &fakeSource{name: "youtube", enabled: true, comments: map[string][]models.Comment{
		"Ather": {{ID: "a"}, {ID: "b"}},
	}}
	bad := &fakeSource{name: "reddit", enabled: true, err: errors.New("rate limited")}
	off := &fakeSource{name: "other", enabled: false, comments: map[string][]models.Comment{"Ather": {{ID: "x"}}}}

	service := &Service{sources: []sources.Source{good, bad, off}}
	got := service.collect(context.Background(), []string{"Ather", "Ola Electric"}, time.Hour)

	assert.Len(t, got.byBrand["Ather"], 2)
	assert.Equal(t, 2, got.bySource["youtube"])
	assert.Equal(t, 2, got.errors)
	assert.NotContains(t, got.bySource, "other")
}
