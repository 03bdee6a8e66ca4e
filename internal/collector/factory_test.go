package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/linkpulse/internal/config"
)

func TestNewSelectsMode(t *testing.T) {
	c, err := New(config.Provider{Mode: config.ModeMock})
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, c)

	c, err = New(testProvider("https://example.com"))
	require.NoError(t, err)
	assert.IsType(t, &RapidAPIClient{}, c)

	_, err = New(config.Provider{Mode: "scraper"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown COLLECTOR_MODE")
}

func TestMockClientFetchPosts(t *testing.T) {
	posts, err := NewMockClient().FetchPosts(context.Background(), "https://www.linkedin.com/in/jane-doe/")
	require.NoError(t, err)
	require.Len(t, posts, 12)

	for _, p := range posts {
		assert.Contains(t, p.PostURL, "jane-doe")
		likes, err := p.NumLikes.Int64()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, likes, int64(0))
	}
}

func TestProfileSlug(t *testing.T) {
	assert.Equal(t, "jane-doe", profileSlug("https://www.linkedin.com/in/jane-doe/"))
	assert.Equal(t, "acme", profileSlug("https://www.linkedin.com/company/acme"))
	assert.Equal(t, "profile", profileSlug(""))
}
