package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/qepting91/linkpulse/internal/config"
	"github.com/qepting91/linkpulse/internal/domain"
)

// RapidAPIClient fetches profile posts from the Fresh LinkedIn Profile Data
// API on RapidAPI
type RapidAPIClient struct {
	client  *resty.Client
	limiter *rate.Limiter
}

type profilePostsResponse struct {
	Data []domain.RawPost `json:"data"`
}

// apiError is the envelope RapidAPI sends on non-2xx responses
type apiError struct {
	Message string `json:"message"`
}

func NewRapidAPIClient(cfg config.Provider) (*RapidAPIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("RAPID_API_KEY is required for rapidapi mode")
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(30 * time.Second).
		SetHeader("x-rapidapi-key", cfg.APIKey).
		SetHeader("x-rapidapi-host", cfg.APIHost)

	// API Rate Limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &RapidAPIClient{client: client, limiter: limiter}, nil
}

func (rc *RapidAPIClient) FetchPosts(ctx context.Context, profileURL string) ([]domain.RawPost, error) {
	if err := rc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body profilePostsResponse
	var apiErr apiError
	resp, err := rc.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"linkedin_url": profileURL,
			"type":         "posts",
		}).
		SetResult(&body).
		SetError(&apiErr).
		Get("/get-profile-posts")
	if err != nil {
		return nil, fmt.Errorf("profile posts request: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return nil, fmt.Errorf("profile posts api error: %s: %s", resp.Status(), apiErr.Message)
		}
		return nil, fmt.Errorf("profile posts api error: %s", resp.Status())
	}
	return body.Data, nil
}
