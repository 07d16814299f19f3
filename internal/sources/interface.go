package sources

import (
	"context"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

// Source collects raw comments about a brand from one platform
type Source interface {
	GetName() string
	FetchComments(ctx context.Context, brand string, since time.Duration) ([]models.Comment, error)
	IsEnabled() bool
}
