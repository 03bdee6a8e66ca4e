package aggregator

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/qepting91/linkpulse/internal/domain"
)

// SummaryInsights renders the six headline lines for a report: the top post
// with its counts, the average likes, and the per-post engagement rate.
// count is the number of posts behind rep and is the rate denominator.
func SummaryInsights(rep Report, top domain.PostRecord, count int) []string {
	var rate float64
	if count > 0 {
		rate = float64(rep.TotalEngagement) / float64(count)
	}
	return []string{
		fmt.Sprintf("📈 Most Engaging Post: %s", top.URL),
		fmt.Sprintf("👍 Received %s likes", humanize.Comma(int64(top.Likes))),
		fmt.Sprintf("💬 Generated %s comments", humanize.Comma(int64(top.Comments))),
		fmt.Sprintf("🔄 Earned %s reposts", humanize.Comma(int64(top.Reposts))),
		fmt.Sprintf("📊 Average likes per post: %.1f", rep.AverageLikes),
		fmt.Sprintf("💡 Engagement rate: %.1f interactions per post", rate),
	}
}
