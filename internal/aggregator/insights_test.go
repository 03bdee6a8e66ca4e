package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/linkpulse/internal/domain"
)

func TestSummaryInsightsLines(t *testing.T) {
	ws := WorkingSet{
		{URL: "https://www.linkedin.com/posts/launch", Likes: 1200, Comments: 34, Reposts: 8},
		{URL: "https://www.linkedin.com/posts/recap", Likes: 310, Comments: 12, Reposts: 5},
	}

	rep, err := Aggregate(ws)
	require.NoError(t, err)
	top, err := TopPerformer(ws)
	require.NoError(t, err)

	lines := SummaryInsights(rep, top, len(ws))
	require.Len(t, lines, 6)

	assert.Equal(t, "📈 Most Engaging Post: https://www.linkedin.com/posts/launch", lines[0])
	assert.Equal(t, "👍 Received 1,200 likes", lines[1])
	assert.Equal(t, "💬 Generated 34 comments", lines[2])
	assert.Equal(t, "🔄 Earned 8 reposts", lines[3])
	assert.Equal(t, "📊 Average likes per post: 755.0", lines[4])
	// (1200+34+8+310+12+5) / 2 = 784.5
	assert.Equal(t, "💡 Engagement rate: 784.5 interactions per post", lines[5])
}

func TestSummaryInsightsRounding(t *testing.T) {
	rep, err := Aggregate(sampleSet())
	require.NoError(t, err)
	top, err := TopPerformer(sampleSet())
	require.NoError(t, err)

	lines := SummaryInsights(rep, top, 3)
	assert.Equal(t, "📊 Average likes per post: 21.7", lines[4])
	assert.Equal(t, "💡 Engagement rate: 25.3 interactions per post", lines[5])
}

func TestSummaryInsightsZeroCount(t *testing.T) {
	lines := SummaryInsights(Report{}, domain.PostRecord{URL: "https://example.com/none"}, 0)
	require.Len(t, lines, 6)
	assert.Equal(t, "💡 Engagement rate: 0.0 interactions per post", lines[5])
}
