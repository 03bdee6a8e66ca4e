// Package dashboard serves engagement charts built from the current snapshot
package dashboard

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/qepting91/linkpulse/internal/aggregator"
	"github.com/qepting91/linkpulse/internal/report"
	"github.com/qepting91/linkpulse/internal/snapshot"
)

// Server renders charts and the report API from snapshot data. Every request
// reloads the snapshot, so a refresh picks up new fetches.
type Server struct {
	store snapshot.Store
}

func NewServer(store snapshot.Store) *Server {
	return &Server{store: store}
}

// Handler returns the dashboard routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleCharts)
	mux.HandleFunc("/api/report", s.handleReport)
	return mux
}

// Start serves the dashboard on the given port
func Start(store snapshot.Store, port string) error {
	return http.ListenAndServe(":"+port, NewServer(store).Handler())
}

func (s *Server) load() (aggregator.WorkingSet, aggregator.Report, error) {
	posts, err := s.store.Load()
	if err != nil {
		return nil, aggregator.Report{}, fmt.Errorf("load snapshot: %w", err)
	}
	// A hand-edited snapshot may exceed the analysis window
	if len(posts) > aggregator.MaxWorkingSet {
		posts = posts[:aggregator.MaxWorkingSet]
	}
	ws := aggregator.WorkingSet(posts)
	rep, err := aggregator.Aggregate(ws)
	if err != nil {
		return nil, aggregator.Report{}, err
	}
	return ws, rep, nil
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ws, rep, err := s.load()
	if err != nil {
		slog.Warn("dashboard has no data", "error", err)
		fmt.Fprintln(w, "No snapshot data yet. Run 'linkpulse serve --profile <url>' to fetch posts first.")
		return
	}

	labels := postLabels(len(ws))

	// 1. Likes per Post
	likesBar := charts.NewBar()
	likesBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Likes per Post"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var likeItems []opts.BarData
	for _, p := range ws {
		likeItems = append(likeItems, opts.BarData{Value: p.Likes})
	}
	likesBar.SetXAxis(labels).AddSeries("Likes", likeItems)

	// 2. Comments per Post
	commentsBar := charts.NewBar()
	commentsBar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Comments per Post"}))

	var commentItems []opts.BarData
	for _, p := range ws {
		commentItems = append(commentItems, opts.BarData{Value: p.Comments})
	}
	commentsBar.SetXAxis(labels).AddSeries("Comments", commentItems)

	// 3. Overall Engagement Trends
	trend := charts.NewLine()
	trend.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Overall Engagement Trends"}))

	var likeLine, commentLine, repostLine []opts.LineData
	for _, p := range ws {
		likeLine = append(likeLine, opts.LineData{Value: p.Likes})
		commentLine = append(commentLine, opts.LineData{Value: p.Comments})
		repostLine = append(repostLine, opts.LineData{Value: p.Reposts})
	}
	trend.SetXAxis(labels).
		AddSeries("Likes", likeLine).
		AddSeries("Comments", commentLine).
		AddSeries("Reposts", repostLine).
		SetSeriesOptions(charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}))

	// 4. Engagement Split
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Engagement Split"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	pie.AddSeries("Interactions", []opts.PieData{
		{Name: "Likes", Value: rep.TotalLikes},
		{Name: "Comments", Value: rep.TotalComments},
		{Name: "Reposts", Value: rep.TotalReposts},
	})

	likesBar.Render(w)
	commentsBar.Render(w)
	trend.Render(w)
	pie.Render(w)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ws, rep, err := s.load()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	top, err := aggregator.TopPerformer(ws)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report.Envelope{
		Report:    rep,
		PostCount: len(ws),
		Insights:  aggregator.SummaryInsights(rep, top, len(ws)),
	})
}

// postLabels numbers posts newest-first, matching working set order
func postLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("#%d", i+1)
	}
	return labels
}
