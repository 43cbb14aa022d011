package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grantflow/internal/analysis"
	"grantflow/internal/models"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <analysis.json>",
		Short: "Print the risk, eligibility and completeness scores for a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var a models.AIAnalysis
			if err := json.Unmarshal(data, &a); err != nil {
				return fmt.Errorf("decode analysis %s: %w", args[0], err)
			}
			cfg := loadConfig(cmd)
			return printJSON(cmd.OutOrStdout(), analysis.Deriver{RiskPolicy: cfg.RiskPolicy}.Derive(a))
		},
	}
}
