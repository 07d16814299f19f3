package notifications

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/gomail.v2"
)

const (
	teamsCommentLimit = 5
	emailCommentLimit = 10
	excerptLength     = 200
)

// title upper-cases the first letter of each word. Casers are stateful so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Service delivers reports and alerts through Teams and email
type Service struct {
	config *config.Config
	client *resty.Client
	dialer func() mailSender
}

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

var _ NotificationInterface = (*Service)(nil)

// TeamsMessage represents a Microsoft Teams message card
type TeamsMessage struct {
	Type       string         `json:"@type"`
	Context    string         `json:"@context"`
	ThemeColor string         `json:"themeColor,omitempty"`
	Title      string         `json:"title"`
	Text       string         `json:"text"`
	Sections   []TeamsSection `json:"sections,omitempty"`
}

type TeamsSection struct {
	ActivityTitle    string      `json:"activityTitle,omitempty"`
	ActivitySubtitle string      `json:"activitySubtitle,omitempty"`
	ActivityText     string      `json:"activityText,omitempty"`
	Facts            []TeamsFact `json:"facts,omitempty"`
	Markdown         bool        `json:"markdown,omitempty"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
		dialer: func() mailSender {
			return gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		},
	}
}

// SendReport sends a report via every configured channel
func (s *Service) SendReport(ctx context.Context, report *models.Report) error {
	html, err := buildReportHTML(report)
	if err != nil {
		return fmt.Errorf("failed to build report email: %w", err)
	}
	subject := fmt.Sprintf("EV Sentiment Report - %s (%d comments)", title(report.Period), report.TotalComments)

	return s.deliver(ctx, "report", buildReportCard(report), subject, buildReportText(report), html)
}

// SendAlert sends an urgent alert via every configured channel
func (s *Service) SendAlert(ctx context.Context, alert *models.Alert) error {
	html, err := buildAlertHTML(alert)
	if err != nil {
		return fmt.Errorf("failed to build alert email: %w", err)
	}
	subject := fmt.Sprintf("[%s] %s", strings.ToUpper(alert.Type), alert.Title)

	return s.deliver(ctx, "alert", buildAlertCard(alert), subject, buildAlertText(alert), html)
}

func (s *Service) deliver(ctx context.Context, kind string, card *TeamsMessage, subject, text, html string) error {
	var errs []string

	if s.config.TeamsWebhookURL != "" {
		if err := s.sendToTeams(ctx, card); err != nil {
			logrus.Errorf("Failed to send %s to Teams: %v", kind, err)
			errs = append(errs, fmt.Sprintf("Teams: %v", err))
		} else {
			logrus.Infof("Successfully sent %s to Teams", kind)
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(subject, text, html); err != nil {
			logrus.Errorf("Failed to send %s email: %v", kind, err)
			errs = append(errs, fmt.Sprintf("Email: %v", err))
		} else {
			logrus.Infof("Successfully sent %s via email", kind)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (s *Service) sendToTeams(ctx context.Context, message *TeamsMessage) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.TeamsWebhookURL)
	if err != nil {
		return fmt.Errorf("failed to send Teams message: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("teams webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) sendEmail(subject, text, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	if err := s.dialer().DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// sortedBrands returns the report's brand names in a stable order
func sortedBrands(report *models.Report) []string {
	names := make([]string, 0, len(report.Brands))
	for name := range report.Brands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// notableComments returns up to limit comments, negatives first, then by engagement
func notableComments(comments []models.ClassifiedComment, limit int) []models.ClassifiedComment {
	ranked := append([]models.ClassifiedComment(nil), comments...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Classification, ranked[j].Classification
		an, bn := a.Sentiment == models.SentimentNegative, b.Sentiment == models.SentimentNegative
		if an != bn {
			return an
		}
		return a.EngagementAnalysis.EngagementScore > b.EngagementAnalysis.EngagementScore
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func excerpt(text string, length int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= length {
		return string(runes)
	}
	return string(runes[:length]) + "..."
}
