package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewRenameCommand creates the 'rename' subcommand.
func NewRenameCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rename",
		Aliases: []string{"rn"},
		Short:   "Rename an alias or alias group.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "alias OLD NEW",
		Short: "Rename an alias, keeping its command, group, and flags.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := aliasService.RenameAlias(args[0], args[1]); err != nil {
				return fmt.Errorf("could not rename alias: %w", err)
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' renamed to '%s'.", args[0], args[1])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "group OLD NEW",
		Short: "Rename a group, updating the membership of its aliases.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := aliasService.RenameGroup(args[0], args[1]); err != nil {
				return fmt.Errorf("could not rename group: %w", err)
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Group '%s' renamed to '%s'.", args[0], args[1])))
			return nil
		},
	})

	return cmd
}
