package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/qepting91/linkpulse/internal/aggregator"
	"github.com/qepting91/linkpulse/internal/collector"
	"github.com/qepting91/linkpulse/internal/config"
	"github.com/qepting91/linkpulse/internal/report"
)

// newAnalyzeCmd creates the analyze subcommand.
func newAnalyzeCmd() *cobra.Command {
	var by string
	var jsonOut bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "analyze <profile-url>",
		Short: "Fetch a profile's recent posts and report engagement",
		Long:  "Analyze fetches the profile's most recent posts, aggregates likes, comments, and reposts, and prints totals, a post ranking, and summary insights.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileURL := args[0]

			metric, err := aggregator.ParseMetric(by)
			if err != nil {
				return err
			}

			cfg := config.Load()
			client, err := collector.New(cfg.Provider)
			if err != nil {
				return fmt.Errorf("initialize collector: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			slog.Info("fetching posts", "profile", profileURL, "mode", cfg.Provider.Mode)
			raw, err := client.FetchPosts(ctx, profileURL)
			if err != nil {
				return fmt.Errorf("fetch posts: %w", err)
			}

			ws, err := aggregator.Load(raw, aggregator.AbortOnMalformed)
			if err != nil {
				if errors.Is(err, aggregator.ErrEmptyInput) {
					return fmt.Errorf("no post data found for %s", profileURL)
				}
				return err
			}

			rep, err := aggregator.Aggregate(ws)
			if err != nil {
				return err
			}
			top, err := aggregator.TopPerformer(ws)
			if err != nil {
				return err
			}
			insights := aggregator.SummaryInsights(rep, top, len(ws))

			if jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), report.Envelope{
					Report:    rep,
					PostCount: len(ws),
					Insights:  insights,
				})
			}

			r := report.NewRenderer(cmd.OutOrStdout(), !noColor)
			r.RenderReport(profileURL, rep, aggregator.Rank(ws, metric), metric, insights)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "likes", "ranking metric (likes, comments, reposts)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
