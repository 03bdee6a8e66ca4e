package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/qepting91/linkpulse/internal/aggregator"
)

// Envelope is the JSON document served by /api/report and --json output
type Envelope struct {
	aggregator.Report
	PostCount int      `json:"post_count"`
	Insights  []string `json:"insights"`
}

// WriteJSON writes an indented envelope to w
func WriteJSON(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// Comparison is one profile's aggregated engagement for side-by-side output
type Comparison struct {
	Label      string            `json:"label"`
	ProfileURL string            `json:"profile_url"`
	PostCount  int               `json:"post_count"`
	Report     aggregator.Report `json:"report"`
}

// Renderer assembles full terminal reports
type Renderer struct {
	out     io.Writer
	printer *Printer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, useColors bool) *Renderer {
	return &Renderer{out: out, printer: NewPrinter(out, useColors)}
}

// RenderReport prints the totals block, the ranked post table, and the
// summary insights for one profile.
func (r *Renderer) RenderReport(profileURL string, rep aggregator.Report, ranked aggregator.WorkingSet, by aggregator.Metric, insights []string) {
	r.printer.Print("Profile: %s", profileURL)

	r.printer.Header("Engagement Totals")
	r.printer.Metric("Total Likes", humanize.Comma(int64(rep.TotalLikes)))
	r.printer.Metric("Total Impressions", humanize.Comma(int64(rep.TotalImpressions)))
	r.printer.Metric("Total Engagements", humanize.Comma(int64(rep.TotalEngagement)))

	r.printer.Header(fmt.Sprintf("Posts by %s", by))
	table := NewTable(r.out, []string{"RANK", "LIKES", "COMMENTS", "REPOSTS", "ENGAGEMENT", "POST"})
	for i, p := range ranked {
		table.AddRow([]string{
			fmt.Sprint(i + 1),
			humanize.Comma(int64(p.Likes)),
			humanize.Comma(int64(p.Comments)),
			humanize.Comma(int64(p.Reposts)),
			humanize.Comma(int64(p.Engagement())),
			truncate(p.URL, 72),
		})
	}
	table.Render()

	r.printer.Header("Summary Insights")
	for _, line := range insights {
		r.printer.Print("%s", line)
	}
}

// RenderComparison prints the competitor table in the order given
func (r *Renderer) RenderComparison(rows []Comparison) {
	r.printer.Header("Competitor Comparison")
	table := NewTable(r.out, []string{"RANK", "LABEL", "POSTS", "LIKES", "ENGAGEMENT", "AVG LIKES", "RATE"})
	for i, row := range rows {
		table.AddRow([]string{
			fmt.Sprint(i + 1),
			row.Label,
			fmt.Sprint(row.PostCount),
			humanize.Comma(int64(row.Report.TotalLikes)),
			humanize.Comma(int64(row.Report.TotalEngagement)),
			fmt.Sprintf("%.1f", row.Report.AverageLikes),
			fmt.Sprintf("%.1f", row.Report.EngagementRate),
		})
	}
	table.Render()
}

// Warning surfaces a non-fatal problem alongside the report
func (r *Renderer) Warning(format string, args ...interface{}) {
	r.printer.Warning(format, args...)
}

// truncate shortens s to max runes with a trailing ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
