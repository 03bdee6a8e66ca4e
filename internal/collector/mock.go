package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/qepting91/linkpulse/internal/domain"
)

// MockClient implements domain.Collector but returns fake data
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) FetchPosts(ctx context.Context, profileURL string) ([]domain.RawPost, error) {
	// Simulate network latency (nice for testing concurrency)
	time.Sleep(100 * time.Millisecond)

	slug := profileSlug(profileURL)

	// More than the analysis window holds, so truncation gets exercised
	var posts []domain.RawPost
	for i := 0; i < 12; i++ {
		posts = append(posts, domain.RawPost{
			PostURL:     fmt.Sprintf("https://www.linkedin.com/posts/%s-update-%d", slug, i+1),
			NumLikes:    json.Number(fmt.Sprint(rand.Intn(500))),
			NumComments: json.Number(fmt.Sprint(rand.Intn(50))),
			NumReposts:  json.Number(fmt.Sprint(rand.Intn(25))),
		})
	}
	return posts, nil
}

// profileSlug pulls the trailing path segment out of a profile URL
func profileSlug(profileURL string) string {
	trimmed := strings.TrimRight(profileURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if trimmed == "" {
		return "profile"
	}
	return trimmed
}
