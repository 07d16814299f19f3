package monitoring

import (
	"testing"

	"github.com/evpulse/oem-sentiment-bot/internal/config"
	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIsRelevantComment(t *testing.T) {
	service := &Service{config: &config.Config{EnableContextFiltering: true}, classifier: newTestClassifier(t)}

	testCases := []struct {
		name     string
		comment  models.Comment
		expected bool
		reason   string
	}{
		{
			name:     "Scooter owner - should accept",
			comment:  models.Comment{Text: "My Ola S1 Pro battery died after 8 months", OEM: "Ola Electric"},
			expected: true,
			reason:   "Brand product and EV context",
		},
		{
			name:     "Cab ride - should reject",
			comment:  models.Comment{Text: "Ola cab driver cancelled my ride again", OEM: "Ola Electric"},
			expected: false,
			reason:   "Ride-hailing noise without EV context",
		},
		{
			name:     "Uber comparison - should reject",
			comment:  models.Comment{Text: "Uber is cheaper than ola auto these days"},
			expected: false,
			reason:   "Ride-hailing noise without EV context",
		},
		{
			name:     "Cab versus scooter - should accept",
			comment:  models.Comment{Text: "Ola cab nahi, Ola scooter lena hai"},
			expected: true,
			reason:   "EV indicator overrides ride-hailing noise",
		},
		{
			name:     "Krutrim AI - should reject",
			comment:  models.Comment{Text: "Krutrim AI from Ola is interesting"},
			expected: false,
			reason:   "Not an EV product",
		},
		{
			name:     "Generic EV talk - should accept",
			comment:  models.Comment{Text: "Charging infra in my city is still poor"},
			expected: true,
			reason:   "EV indicator without brand",
		},
		{
			name:     "Short reply under brand video - should accept",
			comment:  models.Comment{Text: "Mast hai bhai", OEM: "Ather", VideoTitle: "Ather 450X long term review"},
			expected: true,
			reason:   "Video title names the brand",
		},
		{
			name:     "Short reply under unrelated video - should reject",
			comment:  models.Comment{Text: "Mast hai bhai", OEM: "Ather", VideoTitle: "Goa vlog day 3"},
			expected: false,
			reason:   "No brand anywhere",
		},
		{
			name:     "Off topic - should reject",
			comment:  models.Comment{Text: "Lovely weather today"},
			expected: false,
			reason:   "No brand and no EV context",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.isRelevantComment(tc.comment), tc.reason)
		})
	}
}

func TestFilterByContext(t *testing.T) {
	service := &Service{config: &config.Config{}, classifier: newTestClassifier(t)}

	comments := []models.Comment{
		{ID: "1", Text: "Ather 450X range is solid"},
		{ID: "2", Text: "Ola ride was late"},
		{ID: "3", Text: "TVS iQube service was quick"},
	}

	filtered := service.filterByContext(comments)

	if assert.Len(t, filtered, 2) {
		assert.Equal(t, "1", filtered[0].ID)
		assert.Equal(t, "3", filtered[1].ID)
	}
}
