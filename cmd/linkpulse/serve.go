package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/qepting91/linkpulse/internal/aggregator"
	"github.com/qepting91/linkpulse/internal/collector"
	"github.com/qepting91/linkpulse/internal/config"
	"github.com/qepting91/linkpulse/internal/dashboard"
	"github.com/qepting91/linkpulse/internal/snapshot"
)

// newServeCmd creates the serve subcommand.
func newServeCmd() *cobra.Command {
	var profile string
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engagement chart dashboard",
		Long:  "Serve starts the chart dashboard. With --profile it first fetches that profile's recent posts into the snapshot; without it, the dashboard shows whatever the snapshot already holds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port == "" {
				port = cfg.Port
			}
			store := snapshot.Store{Path: cfg.SnapshotPath}

			if profile != "" {
				client, err := collector.New(cfg.Provider)
				if err != nil {
					return fmt.Errorf("initialize collector: %w", err)
				}

				ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
				defer cancel()

				slog.Info("fetching posts", "profile", profile, "mode", cfg.Provider.Mode)
				raw, err := client.FetchPosts(ctx, profile)
				if err != nil {
					return fmt.Errorf("fetch posts: %w", err)
				}
				ws, err := aggregator.Load(raw, aggregator.AbortOnMalformed)
				if err != nil {
					return fmt.Errorf("build working set: %w", err)
				}
				if err := store.Write(ws); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				slog.Info("snapshot updated", "path", store.Path, "posts", len(ws))
			}

			slog.Info("starting dashboard", "port", port)
			return dashboard.Start(store, port)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "profile URL to fetch into the snapshot before serving")
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default PORT env or 8080)")

	return cmd
}
