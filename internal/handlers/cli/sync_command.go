package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
)

// NewSyncCommand creates the 'sync' subcommand.
func NewSyncCommand(aliasService ports.AliasService) *cobra.Command {
	var print bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the shell alias state from the config file.",
		Long: `Emits 'unalias -a' followed by a definition for every enabled alias, so
the shell ends up exactly mirroring the configuration. The statements go to
the delta descriptor set up by 'aliasmgr init'; --print echoes them to
stdout instead, for inspection or manual sourcing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := aliasService.Sync()
			if err != nil {
				return fmt.Errorf("could not sync aliases: %w", err)
			}
			if print {
				fmt.Print(script)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&print, "print", false, "Also print the alias statements to stdout.")

	return cmd
}
