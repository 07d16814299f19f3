package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultYouTubeURL   = "https://www.googleapis.com/youtube/v3"
	maxCommentPages     = 3
	commentsPerPage     = 100
	defaultSearchSuffix = "electric scooter review"
)

// YouTubeSource collects top-level comments from videos about a brand
type YouTubeSource struct {
	apiKey    string
	baseURL   string
	maxVideos int
	client    *resty.Client
}

type youTubeSearchResponse struct {
	Items []youTubeVideo `json:"items"`
}

type youTubeVideo struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		PublishedAt string `json:"publishedAt"`
	} `json:"snippet"`
}

type youTubeCommentsResponse struct {
	NextPageToken string           `json:"nextPageToken"`
	Items         []youTubeComment `json:"items"`
}

type youTubeComment struct {
	ID      string `json:"id"`
	Snippet struct {
		TotalReplyCount int `json:"totalReplyCount"`
		TopLevelComment struct {
			Snippet struct {
				TextOriginal      string `json:"textOriginal"`
				TextDisplay       string `json:"textDisplay"`
				AuthorDisplayName string `json:"authorDisplayName"`
				PublishedAt       string `json:"publishedAt"`
				LikeCount         int    `json:"likeCount"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

// NewYouTubeSource creates a new YouTube source
func NewYouTubeSource(apiKey string, maxVideos int) *YouTubeSource {
	if maxVideos <= 0 {
		maxVideos = 10
	}
	return &YouTubeSource{
		apiKey:    apiKey,
		baseURL:   defaultYouTubeURL,
		maxVideos: maxVideos,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "OEM-Sentiment-Bot/1.0"),
	}
}

// WithBaseURL points the source at a different API root
func (y *YouTubeSource) WithBaseURL(baseURL string) *YouTubeSource {
	y.baseURL = strings.TrimRight(baseURL, "/")
	return y
}

func (y *YouTubeSource) GetName() string {
	return "youtube"
}

func (y *YouTubeSource) IsEnabled() bool {
	return y.apiKey != ""
}

// FetchComments searches recent videos about brand and returns their top-level comments
func (y *YouTubeSource) FetchComments(ctx context.Context, brand string, since time.Duration) ([]models.Comment, error) {
	if !y.IsEnabled() {
		logrus.Debug("YouTube source disabled - missing API key")
		return nil, nil
	}

	videos, err := y.searchVideos(ctx, brand, since)
	if err != nil {
		return nil, fmt.Errorf("failed to search YouTube videos for %q: %w", brand, err)
	}

	var all []models.Comment
	for _, video := range videos {
		comments, err := y.getVideoComments(ctx, video, brand)
		if err != nil {
			logrus.Errorf("Failed to get comments for video %s: %v", video.ID.VideoID, err)
			continue
		}
		all = append(all, comments...)
	}

	logrus.Debugf("YouTube returned %d comments from %d videos for %s", len(all), len(videos), brand)
	return deduplicateComments(all), nil
}

func (y *YouTubeSource) searchVideos(ctx context.Context, brand string, since time.Duration) ([]youTubeVideo, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":           "snippet",
			"q":              brand + " " + defaultSearchSuffix,
			"type":           "video",
			"order":          "date",
			"publishedAfter": time.Now().Add(-since).UTC().Format(time.RFC3339),
			"maxResults":     fmt.Sprint(y.maxVideos),
			"key":            y.apiKey,
		}).
		Get(y.baseURL + "/search")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("youtube API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var searchResp youTubeSearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, fmt.Errorf("failed to parse YouTube response: %w", err)
	}

	videos := make([]youTubeVideo, 0, len(searchResp.Items))
	for _, v := range searchResp.Items {
		if v.ID.VideoID != "" {
			videos = append(videos, v)
		}
	}
	if len(videos) > y.maxVideos {
		videos = videos[:y.maxVideos]
	}
	return videos, nil
}

func (y *YouTubeSource) getVideoComments(ctx context.Context, video youTubeVideo, brand string) ([]models.Comment, error) {
	var comments []models.Comment
	pageToken := ""

	for page := 0; page < maxCommentPages; page++ {
		params := map[string]string{
			"part":       "snippet",
			"videoId":    video.ID.VideoID,
			"maxResults": fmt.Sprint(commentsPerPage),
			"textFormat": "plainText",
			"key":        y.apiKey,
		}
		if pageToken != "" {
			params["pageToken"] = pageToken
		}

		resp, err := y.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(y.baseURL + "/commentThreads")
		if err != nil {
			return nil, err
		}

		if resp.StatusCode() != http.StatusOK {
			// Comments disabled on this video
			if resp.StatusCode() == http.StatusForbidden {
				return comments, nil
			}
			return nil, fmt.Errorf("youtube comments API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
		}

		var commentsResp youTubeCommentsResponse
		if err := json.Unmarshal(resp.Body(), &commentsResp); err != nil {
			return nil, fmt.Errorf("failed to parse YouTube comments response: %w", err)
		}

		for _, item := range commentsResp.Items {
			comments = append(comments, toComment(item, video, brand))
		}

		if commentsResp.NextPageToken == "" {
			break
		}
		pageToken = commentsResp.NextPageToken
	}

	return comments, nil
}

func toComment(item youTubeComment, video youTubeVideo, brand string) models.Comment {
	s := item.Snippet.TopLevelComment.Snippet
	text := s.TextOriginal
	if text == "" {
		text = s.TextDisplay
	}
	return models.Comment{
		ID:         "youtube_comment_" + item.ID,
		Text:       text,
		Author:     s.AuthorDisplayName,
		Likes:      s.LikeCount,
		Replies:    item.Snippet.TotalReplyCount,
		Date:       s.PublishedAt,
		VideoID:    video.ID.VideoID,
		VideoURL:   fmt.Sprintf("https://www.youtube.com/watch?v=%s&lc=%s", video.ID.VideoID, item.ID),
		VideoTitle: video.Snippet.Title,
		OEM:        brand,
		Source:     "youtube",
	}
}

func deduplicateComments(comments []models.Comment) []models.Comment {
	seen := make(map[string]bool)
	var unique []models.Comment

	for _, c := range comments {
		if !seen[c.ID] {
			seen[c.ID] = true
			unique = append(unique, c)
		}
	}

	return unique
}
