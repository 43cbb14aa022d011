package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"grantflow/internal/analysis"
	"grantflow/internal/app"
	"grantflow/internal/config"
	"grantflow/internal/extract"
	"grantflow/internal/logger"
	"grantflow/internal/util"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Assess a local PDF or text file and print the analysis with its scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			log := zap.NewNop()
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log = logger.Must("dev")
			}

			text, err := readApplication(args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return util.ErrNoApplicationText
			}

			analyzer, cleanup, err := app.NewAnalyzer(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			svc := analysis.NewService(analyzer, analysis.Deriver{RiskPolicy: cfg.RiskPolicy})
			return printJSON(cmd.OutOrStdout(), svc.Assess(cmd.Context(), text))
		},
	}
}

func readApplication(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if extract.IsPDFName(path) {
		return extract.PDF(data)
	}
	return util.SanitizeText(string(data)), nil
}

func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("risk-policy"); p != "" {
		cfg.RiskPolicy = p
		if p != config.RiskTiered {
			cfg.RiskPolicy = config.RiskAdditive
		}
	}
	return cfg
}
