package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	commentsPrefix = "comments"
	reportsPrefix  = "reports"
	dayLayout      = "2006-01-02"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Archive lays classified batches and reports out on a storage backend:
//
//	comments/<brand>/<day>/<batch id>.json
//	reports/<day>/<report id>.json
type Archive struct {
	store StorageInterface
}

// NewArchive wraps a storage backend
func NewArchive(store StorageInterface) *Archive {
	return &Archive{store: store}
}

// Slug turns a brand name into a path segment
func Slug(brand string) string {
	s := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(brand), "-"), "-")
	if s == "" {
		return "unbranded"
	}
	return s
}

// SaveComments stores one classified batch for brand and returns its object name
func (a *Archive) SaveComments(ctx context.Context, brand string, comments []models.ClassifiedComment, at time.Time) (string, error) {
	data, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal comments: %w", err)
	}

	name := path.Join(commentsPrefix, Slug(brand), at.UTC().Format(dayLayout), uuid.NewString()+".json")
	if err := a.store.Store(ctx, name, data); err != nil {
		return "", err
	}

	logrus.Infof("Archived %d classified comments for %s as %s", len(comments), brand, name)
	return name, nil
}

// LoadComments reads every batch stored for brand on or after since.
// Batches that cannot be decoded are skipped and logged.
func (a *Archive) LoadComments(ctx context.Context, brand string, since time.Time) ([]models.ClassifiedComment, error) {
	prefix := path.Join(commentsPrefix, Slug(brand)) + "/"
	names, err := a.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	cutoff := since.UTC().Format(dayLayout)
	var all []models.ClassifiedComment
	for _, name := range names {
		day := path.Base(path.Dir(name))
		if !since.IsZero() && day < cutoff {
			continue
		}

		data, err := a.store.Retrieve(ctx, name)
		if err != nil {
			return nil, err
		}

		var batch []models.ClassifiedComment
		if err := json.Unmarshal(data, &batch); err != nil {
			logrus.Warnf("Skipping unreadable batch %s: %v", name, err)
			continue
		}
		all = append(all, batch...)
	}

	return all, nil
}

// SaveReport stores a report under its generation day
func (a *Archive) SaveReport(ctx context.Context, report *models.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	name := path.Join(reportsPrefix, report.GeneratedAt.UTC().Format(dayLayout), report.ID+".json")
	if err := a.store.Store(ctx, name, data); err != nil {
		return "", err
	}
	return name, nil
}

// Prune deletes stored objects from days before cutoff and returns how many were removed
func (a *Archive) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	limit := cutoff.UTC().Format(dayLayout)
	removed := 0

	for _, prefix := range []string{commentsPrefix + "/", reportsPrefix + "/"} {
		names, err := a.store.List(ctx, prefix)
		if err != nil {
			return removed, err
		}
		for _, name := range names {
			if path.Base(path.Dir(name)) >= limit {
				continue
			}
			if err := a.store.Delete(ctx, name); err != nil {
				return removed, err
			}
			removed++
		}
	}

	if removed > 0 {
		logrus.Infof("Pruned %d archived objects older than %s", removed, limit)
	}
	return removed, nil
}
