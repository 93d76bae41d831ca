package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewSortCommand creates the 'sort' subcommand.
func NewSortCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort aliases or groups alphabetically in the config file.",
	}

	var group string
	var groupSet bool

	aliasesCmd := &cobra.Command{
		Use:   "aliases",
		Short: "Sort aliases by name, across the whole file or within one group.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupSet = cmd.Flags().Changed("group")
			var scope *string
			if groupSet {
				scope = &group
			}
			if _, err := aliasService.SortAliases(scope); err != nil {
				return fmt.Errorf("could not sort aliases: %w", err)
			}
			fmt.Println(ui.SuccessColor("Aliases sorted."))
			return nil
		},
	}
	aliasesCmd.Flags().StringVarP(&group, "group", "g", "", "Only sort the aliases of this group.")
	cmd.AddCommand(aliasesCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "groups",
		Short: "Sort groups by name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := aliasService.SortGroups(); err != nil {
				return fmt.Errorf("could not sort groups: %w", err)
			}
			fmt.Println(ui.SuccessColor("Groups sorted."))
			return nil
		},
	})

	return cmd
}
