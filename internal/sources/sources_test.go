package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouTubeSource_GetName(t *testing.T) {
	source := NewYouTubeSource("api_key", 5)
	assert.Equal(t, "youtube", source.GetName())
}

func TestYouTubeSource_IsEnabled(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		expected bool
	}{
		{
			name:     "API key provided",
			apiKey:   "api_key",
			expected: true,
		},
		{
			name:     "Missing API key",
			apiKey:   "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewYouTubeSource(tt.apiKey, 5)
			assert.Equal(t, tt.expected, source.IsEnabled())
		})
	}
}

func TestYouTubeSource_FetchComments(t *testing.T) {
	var searchQuery string
	commentPages := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			searchQuery = r.URL.Query().Get("q")
			_, _ = w.Write([]byte(`{"items":[
				{"id":{"videoId":"vid1"},"snippet":{"title":"Ather 450X long term review"}},
				{"id":{"videoId":"vid2"},"snippet":{"title":"Comments off"}}
			]}`))
		case "/commentThreads":
			switch r.URL.Query().Get("videoId") {
			case "vid2":
				w.WriteHeader(http.StatusForbidden)
			default:
				commentPages++
				if r.URL.Query().Get("pageToken") == "" {
					_, _ = w.Write([]byte(`{"nextPageToken":"p2","items":[
						{"id":"c1","snippet":{"totalReplyCount":4,"topLevelComment":{"snippet":{
							"textOriginal":"Range bhi mast hai","authorDisplayName":"rider",
							"publishedAt":"2024-08-10T10:00:00Z","likeCount":12}}}}
					]}`))
					return
				}
				_, _ = w.Write([]byte(`{"items":[
					{"id":"c1","snippet":{"topLevelComment":{"snippet":{"textOriginal":"dup"}}}},
					{"id":"c2","snippet":{"topLevelComment":{"snippet":{"textDisplay":"Service center is a joke",
						"publishedAt":"2024-08-11T10:00:00Z"}}}}
				]}`))
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	source := NewYouTubeSource("key", 5).WithBaseURL(server.URL)
	comments, err := source.FetchComments(context.Background(), "Ather", 30*24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, "Ather electric scooter review", searchQuery)
	assert.Equal(t, 2, commentPages)
	require.Len(t, comments, 2)

	first := comments[0]
	assert.Equal(t, "youtube_comment_c1", first.ID)
	assert.Equal(t, "Range bhi mast hai", first.Text)
	assert.Equal(t, 12, first.Likes)
	assert.Equal(t, 4, first.Replies)
	assert.Equal(t, "vid1", first.VideoID)
	assert.Equal(t, "Ather 450X long term review", first.VideoTitle)
	assert.Equal(t, "Ather", first.OEM)
	assert.Equal(t, "youtube", first.Source)

	assert.Equal(t, "Service center is a joke", comments[1].Text)
}

func TestYouTubeSource_SearchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer server.Close()

	source := NewYouTubeSource("key", 5).WithBaseURL(server.URL)
	_, err := source.FetchComments(context.Background(), "Ola Electric", time.Hour)
	assert.Error(t, err)
}

func TestYouTubeSource_DisabledReturnsNothing(t *testing.T) {
	comments, err := NewYouTubeSource("", 5).FetchComments(context.Background(), "Ather", time.Hour)
	assert.NoError(t, err)
	assert.Nil(t, comments)
}

func TestRedditSource_IsEnabled(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		expected     bool
	}{
		{
			name:         "Both credentials provided",
			clientID:     "client_id",
			clientSecret: "client_secret",
			expected:     true,
		},
		{
			name:         "Missing client ID",
			clientID:     "",
			clientSecret: "client_secret",
			expected:     false,
		},
		{
			name:         "Missing client secret",
			clientID:     "client_id",
			clientSecret: "",
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewRedditSource(tt.clientID, tt.clientSecret)
			assert.Equal(t, tt.expected, source.IsEnabled())
			assert.Equal(t, "reddit", source.GetName())
		})
	}
}

func TestRedditSource_FetchComments(t *testing.T) {
	now := float64(time.Now().Unix())
	old := float64(time.Now().Add(-90 * 24 * time.Hour).Unix())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/token" {
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok"})
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/r/IndianBikes/search.json" {
			_, _ = w.Write([]byte(`{"data":{"children":[]}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"children": []any{
				map[string]any{"data": map[string]any{"id": "a1", "title": "Ather after 1 year", "selftext": "No complaints",
					"author": "owner", "subreddit": "IndianBikes", "permalink": "/r/IndianBikes/a1", "created_utc": now,
					"score": 30, "num_comments": 8}},
				map[string]any{"data": map[string]any{"id": "a2", "title": "Ather old post", "created_utc": old}},
				map[string]any{"data": map[string]any{"id": "a3", "title": "Unrelated", "created_utc": now}},
			}},
		})
	}))
	defer server.Close()

	source := NewRedditSource("id", "secret").WithEndpoints(server.URL+"/token", server.URL)
	comments, err := source.FetchComments(context.Background(), "Ather", 30*24*time.Hour)
	require.NoError(t, err)

	require.Len(t, comments, 1)
	assert.Equal(t, "reddit_a1", comments[0].ID)
	assert.Equal(t, "Ather after 1 year\nNo complaints", comments[0].Text)
	assert.Equal(t, 30, comments[0].Likes)
	assert.Equal(t, 8, comments[0].Replies)
	assert.Equal(t, "reddit", comments[0].Source)
}

func TestDeduplicateComments(t *testing.T) {
	comments := []models.Comment{
		{ID: "youtube_comment_1", Text: "first"},
		{ID: "youtube_comment_2", Text: "second"},
		{ID: "youtube_comment_1", Text: "first again"},
	}

	unique := deduplicateComments(comments)

	require.Len(t, unique, 2)
	assert.Equal(t, "first", unique[0].Text)
	assert.Equal(t, "youtube_comment_2", unique[1].ID)
}
