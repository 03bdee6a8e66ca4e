// Package aggregator turns raw provider posts into engagement reports:
// bounded working sets, totals, rankings, and the headline insight lines.
package aggregator

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/qepting91/linkpulse/internal/domain"
)

// MaxWorkingSet caps analysis to the ten most recent posts
const MaxWorkingSet = 10

var (
	// ErrEmptyInput means there were no records to analyze
	ErrEmptyInput = errors.New("no post records to analyze")
	// ErrMalformedRecord means a record's counts could not be read as
	// non-negative integers
	ErrMalformedRecord = errors.New("malformed post record")
)

// MalformedPolicy decides what Load does with records that fail validation.
// One policy applies to the whole batch.
type MalformedPolicy int

const (
	// AbortOnMalformed rejects the batch on the first bad record
	AbortOnMalformed MalformedPolicy = iota
	// SkipMalformed drops bad records and keeps the rest
	SkipMalformed
)

// Metric names a rankable engagement count
type Metric string

const (
	MetricLikes    Metric = "likes"
	MetricComments Metric = "comments"
	MetricReposts  Metric = "reposts"
)

// ParseMetric maps user input to a Metric, defaulting to likes when empty
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", string(MetricLikes):
		return MetricLikes, nil
	case string(MetricComments):
		return MetricComments, nil
	case string(MetricReposts):
		return MetricReposts, nil
	}
	return "", fmt.Errorf("unknown metric %q (use likes, comments, or reposts)", s)
}

// WorkingSet is the bounded, ordered sequence of posts under analysis
type WorkingSet []domain.PostRecord

// Report holds every figure derived from one working set. All fields come
// from the same Aggregate call, so totals and ranking cannot disagree.
type Report struct {
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`
	TotalReposts  int `json:"total_reposts"`
	// TotalImpressions is likes plus reposts, a reach proxy that
	// deliberately excludes comments.
	TotalImpressions int                 `json:"total_impressions"`
	TotalEngagement  int                 `json:"total_engagement"`
	RankedPosts      []domain.PostRecord `json:"ranked_posts"`
	AverageLikes     float64             `json:"average_likes"`
	EngagementRate   float64             `json:"engagement_rate"`
}

// Load builds a working set from provider output. Absent count fields become
// zero, provider ordering is preserved, and only the first MaxWorkingSet
// records are kept.
func Load(raw []domain.RawPost, policy MalformedPolicy) (WorkingSet, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	if len(raw) > MaxWorkingSet {
		raw = raw[:MaxWorkingSet]
	}

	ws := make(WorkingSet, 0, len(raw))
	for i, r := range raw {
		rec, err := cleanRecord(r)
		if err != nil {
			if policy == SkipMalformed {
				continue
			}
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ws = append(ws, rec)
	}
	if len(ws) == 0 {
		return nil, ErrEmptyInput
	}
	return ws, nil
}

func cleanRecord(r domain.RawPost) (domain.PostRecord, error) {
	likes, err := coerceCount(r.Likes, r.NumLikes)
	if err != nil {
		return domain.PostRecord{}, fmt.Errorf("likes: %w", err)
	}
	comments, err := coerceCount(r.Comments, r.NumComments)
	if err != nil {
		return domain.PostRecord{}, fmt.Errorf("comments: %w", err)
	}
	reposts, err := coerceCount(r.Reposts, r.NumReposts)
	if err != nil {
		return domain.PostRecord{}, fmt.Errorf("reposts: %w", err)
	}

	url := r.URL
	if url == "" {
		url = r.PostURL
	}
	return domain.PostRecord{URL: url, Likes: likes, Comments: comments, Reposts: reposts}, nil
}

// coerceCount resolves a field pair to a non-negative int, absent meaning zero
func coerceCount(primary, alt json.Number) (int, error) {
	n := primary
	if n == "" {
		n = alt
	}
	if n == "" {
		return 0, nil
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer count", ErrMalformedRecord, n.String())
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrMalformedRecord, v)
	}
	return int(v), nil
}

// Aggregate derives the full report for a working set. It never mutates the
// input and the same input always produces the same report.
func Aggregate(ws WorkingSet) (Report, error) {
	if len(ws) == 0 {
		return Report{}, ErrEmptyInput
	}

	var rep Report
	for _, p := range ws {
		rep.TotalLikes += p.Likes
		rep.TotalComments += p.Comments
		rep.TotalReposts += p.Reposts
	}
	rep.TotalImpressions = rep.TotalLikes + rep.TotalReposts
	rep.TotalEngagement = rep.TotalLikes + rep.TotalComments + rep.TotalReposts
	rep.RankedPosts = Rank(ws, MetricLikes)

	count := float64(len(ws))
	rep.AverageLikes = float64(rep.TotalLikes) / count
	rep.EngagementRate = float64(rep.TotalEngagement) / count
	return rep, nil
}

// Rank returns a copy of ws ordered by the chosen metric, highest first.
// The sort is stable: ties keep their original relative order.
func Rank(ws WorkingSet, by Metric) WorkingSet {
	ranked := make(WorkingSet, len(ws))
	copy(ranked, ws)

	value := metricValue(by)
	sort.SliceStable(ranked, func(i, j int) bool {
		return value(ranked[i]) > value(ranked[j])
	})
	return ranked
}

func metricValue(by Metric) func(domain.PostRecord) int {
	switch by {
	case MetricComments:
		return func(p domain.PostRecord) int { return p.Comments }
	case MetricReposts:
		return func(p domain.PostRecord) int { return p.Reposts }
	default:
		return func(p domain.PostRecord) int { return p.Likes }
	}
}

// TopPerformer returns the post with the most likes, earliest post on ties
func TopPerformer(ws WorkingSet) (domain.PostRecord, error) {
	if len(ws) == 0 {
		return domain.PostRecord{}, ErrEmptyInput
	}
	return Rank(ws, MetricLikes)[0], nil
}
