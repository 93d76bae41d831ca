package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewEditCommand creates the 'edit' subcommand.
func NewEditCommand(aliasService ports.AliasService) *cobra.Command {
	return &cobra.Command{
		Use:     "edit ALIAS COMMAND",
		Aliases: []string{"ed"},
		Short:   "Replace the command of an existing alias.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := aliasService.EditAlias(args[0], args[1]); err != nil {
				return fmt.Errorf("could not edit alias: %w", err)
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' updated.", args[0])))
			return nil
		},
	}
}
