package domain

import (
	"context"
	"encoding/json"
)

// CompetitorProfile represents one profile on a comparison list
type CompetitorProfile struct {
	Label      string
	ProfileURL string
}

// PostRecord is the clean per-post shape used for analysis and storage
type PostRecord struct {
	URL      string `json:"url"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Reposts  int    `json:"reposts"`
}

// Engagement is the total interaction volume of the post
func (p PostRecord) Engagement() int {
	return p.Likes + p.Comments + p.Reposts
}

// RawPost is a single post as a provider returns it. Each value carries the
// two field names seen across providers, and counts stay json.Number so that
// validation happens when records are loaded rather than when JSON decodes.
type RawPost struct {
	URL         string      `json:"url,omitempty"`
	PostURL     string      `json:"post_url,omitempty"`
	Likes       json.Number `json:"likes,omitempty"`
	NumLikes    json.Number `json:"num_likes,omitempty"`
	Comments    json.Number `json:"comments,omitempty"`
	NumComments json.Number `json:"num_comments,omitempty"`
	Reposts     json.Number `json:"reposts,omitempty"`
	NumReposts  json.Number `json:"num_reposts,omitempty"`
}

// Collector defines the interface for post fetching
type Collector interface {
	FetchPosts(ctx context.Context, profileURL string) ([]RawPost, error)
}
