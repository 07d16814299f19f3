package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const urgentWindow = 4 * time.Hour

// isUrgent flags widely seen comments that carry a strong complaint
func isUrgent(c models.ClassifiedComment) bool {
	cls := c.Classification
	if cls.Failed || cls.Sentiment != models.SentimentNegative {
		return false
	}

	level := cls.EngagementAnalysis.EngagementLevel
	if level != models.EngagementHigh && level != models.EngagementViral {
		return false
	}

	return cls.PatternAnalysis.HasStrongNegative || cls.PatternAnalysis.HasNegativePhrase
}

func newAlert(c models.ClassifiedComment, now time.Time) *models.Alert {
	brand := c.Classification.TargetBrand
	if brand == "" {
		brand = c.OEM
	}
	level := c.Classification.EngagementAnalysis.EngagementLevel
	message := fmt.Sprintf("%d likes, %d replies on %s: %s", c.Likes, c.Replies, c.Source, c.Classification.PatternAnalysis.Reason)

	return &models.Alert{
		ID:        uuid.NewString(),
		Type:      "urgent",
		Title:     fmt.Sprintf("Negative comment about %s (%s engagement)", brand, level),
		Message:   message,
		Brand:     brand,
		Comment:   &c,
		CreatedAt: now,
	}
}

// RunUrgentCheck looks for highly engaged strong complaints posted recently
func (s *Service) RunUrgentCheck(ctx context.Context) error {
	logrus.Info("Running urgent comment check")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	brands := s.brands()
	collected := s.collect(ctx, brands, urgentWindow)

	all, perBrand, _, err := s.classifyAll(ctx, brands, collected.byBrand)
	if err != nil {
		return err
	}

	now := s.now()
	sent := 0
	var errs []error
	for _, brand := range brands {
		var urgent []models.ClassifiedComment
		for _, c := range perBrand[brand] {
			if isUrgent(c) {
				urgent = append(urgent, c)
			}
		}
		if len(urgent) == 0 {
			continue
		}

		logrus.Warnf("Found %d urgent %s comments", len(urgent), brand)
		if _, err := s.archive.SaveComments(ctx, brand, urgent, now); err != nil {
			logrus.Errorf("Failed to store urgent %s comments: %v", brand, err)
		}

		for _, c := range urgent {
			if err := s.notificationService.SendAlert(ctx, newAlert(c, now)); err != nil {
				logrus.Errorf("Failed to send urgent alert for %s: %v", c.ID, err)
				errs = append(errs, err)
				continue
			}
			sent++
		}
	}

	s.mu.Lock()
	s.metrics.AlertsSent += sent
	s.mu.Unlock()

	logrus.Infof("Urgent check finished: %d comments checked, %d alerts sent", len(all), sent)
	if len(errs) > 0 {
		return fmt.Errorf("failed to send %d urgent alerts: %w", len(errs), errs[0])
	}
	return nil
}
