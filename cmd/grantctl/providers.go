package main

import (
	"github.com/spf13/cobra"

	"grantflow/internal/config"
	"grantflow/internal/providers"
)

type providerEntry struct {
	Name     string `json:"name"`
	KeyAlias string `json:"key_alias,omitempty"`
	Active   bool   `json:"active"`
}

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the configured model providers; the first one is the one called",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := providers.NewManager(config.Load())
			if err != nil {
				return err
			}
			refs := mgr.LLMProviderRefs()
			out := make([]providerEntry, 0, len(refs))
			for i, ref := range refs {
				out = append(out, providerEntry{Name: ref.Name, KeyAlias: ref.KeyAlias, Active: i == 0})
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
