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

// Owner communities where Indian EV scooters are discussed
var redditCommunities = []string{
	"IndianBikes",
	"electricvehicles",
	"india",
	"bangalore",
	"CarsIndia",
}

// RedditSource turns Reddit posts about a brand into comments
type RedditSource struct {
	clientID     string
	clientSecret string
	authURL      string
	apiURL       string
	client       *resty.Client
	accessToken  string
}

type redditAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type redditSearchResponse struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	Created     float64 `json:"created_utc"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
}

// NewRedditSource creates a new Reddit source
func NewRedditSource(clientID, clientSecret string) *RedditSource {
	return &RedditSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		authURL:      "https://www.reddit.com/api/v1/access_token",
		apiURL:       "https://oauth.reddit.com",
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "OEM-Sentiment-Bot/1.0"),
	}
}

// WithEndpoints overrides the OAuth and API roots
func (r *RedditSource) WithEndpoints(authURL, apiURL string) *RedditSource {
	r.authURL = authURL
	r.apiURL = strings.TrimRight(apiURL, "/")
	return r
}

func (r *RedditSource) GetName() string {
	return "reddit"
}

func (r *RedditSource) IsEnabled() bool {
	return r.clientID != "" && r.clientSecret != ""
}

// FetchComments searches the owner communities for recent posts about brand
func (r *RedditSource) FetchComments(ctx context.Context, brand string, since time.Duration) ([]models.Comment, error) {
	if !r.IsEnabled() {
		logrus.Debug("Reddit source disabled - missing credentials")
		return nil, nil
	}

	if err := r.authenticate(ctx); err != nil {
		return nil, fmt.Errorf("reddit authentication failed: %w", err)
	}

	var all []models.Comment
	for _, community := range redditCommunities {
		comments, err := r.searchCommunity(ctx, community, brand, since)
		if err != nil {
			logrus.Errorf("Failed to search subreddit %s: %v", community, err)
			continue
		}
		all = append(all, comments...)
	}

	return deduplicateComments(all), nil
}

func (r *RedditSource) authenticate(ctx context.Context) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBasicAuth(r.clientID, r.clientSecret).
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
		}).
		Post(r.authURL)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("token endpoint returned status %d", resp.StatusCode())
	}

	var authResp redditAuthResponse
	if err := json.Unmarshal(resp.Body(), &authResp); err != nil {
		return err
	}

	r.accessToken = authResp.AccessToken
	return nil
}

func (r *RedditSource) searchCommunity(ctx context.Context, community, brand string, since time.Duration) ([]models.Comment, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.accessToken).
		SetQueryParams(map[string]string{
			"q":           brand,
			"restrict_sr": "1",
			"sort":        "new",
			"limit":       "100",
		}).
		Get(fmt.Sprintf("%s/r/%s/search.json", r.apiURL, community))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("reddit API returned status %d", resp.StatusCode())
	}

	var searchResp redditSearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, err
	}

	var comments []models.Comment
	cutoff := time.Now().Add(-since)
	needle := strings.ToLower(brand)

	for _, child := range searchResp.Data.Children {
		post := child.Data
		createdAt := time.Unix(int64(post.Created), 0).UTC()
		if createdAt.Before(cutoff) {
			continue
		}

		text := strings.TrimSpace(post.Title + "\n" + post.Selftext)
		if !strings.Contains(strings.ToLower(text), needle) {
			continue
		}

		comments = append(comments, models.Comment{
			ID:         "reddit_" + post.ID,
			Text:       text,
			Author:     post.Author,
			Likes:      max(post.Score, 0),
			Replies:    post.NumComments,
			Date:       createdAt.Format(time.RFC3339),
			VideoURL:   "https://reddit.com" + post.Permalink,
			VideoTitle: fmt.Sprintf("r/%s", post.Subreddit),
			OEM:        brand,
			Source:     "reddit",
		})
	}

	return comments, nil
}
