package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"grantflow/internal/config"
	"grantflow/internal/storage"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Summarize recorded model calls by provider and outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cfg.PostgresURL == "" {
				return errors.New("GRANTFLOW_POSTGRES_URL is not set")
			}
			window, _ := cmd.Flags().GetDuration("since")

			db, err := storage.NewDB(cmd.Context(), cfg.PostgresURL)
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := storage.ListOutcomeCounts(cmd.Context(), db.Pool, time.Now().Add(-window))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), counts)
		},
	}
	cmd.Flags().Duration("since", 24*time.Hour, "how far back to look")
	return cmd
}
