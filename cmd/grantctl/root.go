package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

const appName = "grantctl"

// Actual version can be specified in build command.
var version = "unknown"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "grantctl runs grant application analysis from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("risk-policy", "", "risk formula: additive or tiered (default from GRANTFLOW_RISK_POLICY)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")

	root.AddCommand(newAnalyzeCmd(), newScoreCmd(), newAuditCmd(), newProvidersCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s version: %s\n", appName, version)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
