package sentiment

import (
	"math"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

// CalculateEngagement converts raw counters into a bounded engagement profile.
// Negative counters are treated as zero.
func CalculateEngagement(likes, replies, shares int) models.EngagementProfile {
	likeWeight := math.Min(float64(max(likes, 0))/100, 1.0)
	replyWeight := math.Min(float64(max(replies, 0))/20, 0.5)
	shareWeight := math.Min(float64(max(shares, 0))/10, 0.3)

	score := likeWeight + replyWeight + shareWeight

	profile := models.EngagementProfile{EngagementScore: score}
	switch {
	case score >= 1.5:
		profile.EngagementLevel = models.EngagementViral
		profile.AmplificationFactor = 1.5
	case score >= 1.0:
		profile.EngagementLevel = models.EngagementHigh
		profile.AmplificationFactor = 1.3
	case score >= 0.5:
		profile.EngagementLevel = models.EngagementMedium
		profile.AmplificationFactor = 1.1
	case score > 0:
		profile.EngagementLevel = models.EngagementLow
		profile.AmplificationFactor = 1.0
	default:
		profile.EngagementLevel = models.EngagementNone
		profile.AmplificationFactor = 1.0
	}

	return profile
}
