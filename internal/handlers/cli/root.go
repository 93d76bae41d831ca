package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

func NewRootCommand(version string, aliasService ports.AliasService, shellWarning string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aliasmgr",
		Short: "aliasmgr manages your shell aliases from a single config file.",
		Long: `aliasmgr keeps shell aliases in a TOML config file, grouped and
individually toggleable, and feeds alias definitions back to your shell.
Run 'aliasmgr init' from your shell configuration to wire it up.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if aliasService == nil && cmd.Name() != "init" {
				return fmt.Errorf("alias service not initialized for command %s", cmd.Name())
			}
			// init is the command that fixes the warning condition, so it
			// stays quiet there.
			if shellWarning != "" && cmd.Name() != "init" {
				fmt.Fprintln(os.Stderr, ui.WarningColor("Warning: "+shellWarning))
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewAddCommand(aliasService))
	rootCmd.AddCommand(NewRemoveCommand(aliasService))
	rootCmd.AddCommand(NewListCommand(aliasService))
	rootCmd.AddCommand(NewMoveCommand(aliasService))
	rootCmd.AddCommand(NewRenameCommand(aliasService))
	rootCmd.AddCommand(NewEditCommand(aliasService))
	rootCmd.AddCommand(NewEnableCommand(aliasService))
	rootCmd.AddCommand(NewDisableCommand(aliasService))
	rootCmd.AddCommand(NewSortCommand(aliasService))
	rootCmd.AddCommand(NewSyncCommand(aliasService))
	rootCmd.AddCommand(NewImportCommand(aliasService))
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}
