package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/qepting91/linkpulse/internal/aggregator"
	"github.com/qepting91/linkpulse/internal/collector"
	"github.com/qepting91/linkpulse/internal/config"
	"github.com/qepting91/linkpulse/internal/domain"
	"github.com/qepting91/linkpulse/internal/ingest"
	"github.com/qepting91/linkpulse/internal/report"
)

// newCompareCmd creates the compare subcommand.
func newCompareCmd() *cobra.Command {
	var file string
	var workers int
	var jsonOut bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare engagement across a list of profiles",
		Long:  "Compare reads a CSV of labeled profile URLs (label,profile_url), fetches each profile's recent posts, and prints a side-by-side engagement comparison ordered by total engagement.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			client, err := collector.New(cfg.Provider)
			if err != nil {
				return fmt.Errorf("initialize collector: %w", err)
			}

			profiles, err := ingest.LoadProfiles(file)
			if err != nil {
				return fmt.Errorf("load profile list: %w", err)
			}
			if len(profiles) == 0 {
				return fmt.Errorf("no usable profiles in %s", file)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			// Zero workers would leave the job queue undrained
			if workers < 1 {
				workers = 1
			}

			// Concurrency Setup
			jobQueue := make(chan domain.CompetitorProfile, len(profiles))
			resultQueue := make(chan report.Comparison, len(profiles))
			var wg sync.WaitGroup

			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for p := range jobQueue {
						row, err := analyzeProfile(ctx, client, p)
						if err != nil {
							slog.Error("profile fetch failed", "profile", p.ProfileURL, "error", err)
							continue
						}
						resultQueue <- row
					}
				}()
			}

			slog.Info("starting comparison", "profiles", len(profiles), "mode", cfg.Provider.Mode)
			for _, p := range profiles {
				jobQueue <- p
			}
			close(jobQueue)
			wg.Wait()
			close(resultQueue)

			var rows []report.Comparison
			for row := range resultQueue {
				rows = append(rows, row)
			}
			if len(rows) == 0 {
				return fmt.Errorf("no profiles could be analyzed")
			}
			sort.SliceStable(rows, func(i, j int) bool {
				return rows[i].Report.TotalEngagement > rows[j].Report.TotalEngagement
			})

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			r := report.NewRenderer(cmd.OutOrStdout(), !noColor)
			if len(rows) < len(profiles) {
				r.Warning("%d of %d profiles could not be analyzed", len(profiles)-len(rows), len(profiles))
			}
			r.RenderComparison(rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "input/competitors.csv", "profile list CSV (label,profile_url)")
	cmd.Flags().IntVar(&workers, "workers", 2, "concurrent profile fetches")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the comparison as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// analyzeProfile fetches and aggregates one profile. Malformed records are
// skipped here so one bad post cannot knock a profile out of the comparison.
func analyzeProfile(ctx context.Context, client domain.Collector, p domain.CompetitorProfile) (report.Comparison, error) {
	raw, err := client.FetchPosts(ctx, p.ProfileURL)
	if err != nil {
		return report.Comparison{}, fmt.Errorf("fetch posts: %w", err)
	}

	ws, err := aggregator.Load(raw, aggregator.SkipMalformed)
	if err != nil {
		return report.Comparison{}, err
	}
	rep, err := aggregator.Aggregate(ws)
	if err != nil {
		return report.Comparison{}, err
	}

	return report.Comparison{
		Label:      p.Label,
		ProfileURL: p.ProfileURL,
		PostCount:  len(ws),
		Report:     rep,
	}, nil
}
