package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewMoveCommand creates the 'move' subcommand.
func NewMoveCommand(aliasService ports.AliasService) *cobra.Command {
	return &cobra.Command{
		Use:     "move ALIAS [GROUP]",
		Aliases: []string{"mv"},
		Short:   "Move an alias into a group, or out of its group.",
		Long:    `Moves an alias to the named group. Without a group the alias becomes ungrouped.`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := ""
			if len(args) == 2 {
				group = args[1]
			}
			if _, err := aliasService.MoveAlias(args[0], group); err != nil {
				return fmt.Errorf("could not move alias: %w", err)
			}
			if group == "" {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' is now ungrouped.", args[0])))
			} else {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' moved to group '%s'.", args[0], group)))
			}
			return nil
		},
	}
}
