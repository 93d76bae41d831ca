package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove aliases, a group, or everything.",
	}
	cmd.AddCommand(newRemoveAliasCommand(aliasService))
	cmd.AddCommand(newRemoveGroupCommand(aliasService))
	cmd.AddCommand(newRemoveAllCommand(aliasService))
	return cmd
}

func newRemoveAliasCommand(aliasService ports.AliasService) *cobra.Command {
	return &cobra.Command{
		Use:   "alias NAME...",
		Short: "Remove one or more aliases.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := aliasService.RemoveAliases(args); err != nil {
				return fmt.Errorf("could not remove: %w", err)
			}
			if len(args) == 1 {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' removed.", args[0])))
			} else {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("%d aliases removed.", len(args))))
			}
			return nil
		},
	}
}

func newRemoveGroupCommand(aliasService ports.AliasService) *cobra.Command {
	var reassign bool

	cmd := &cobra.Command{
		Use:   "group NAME",
		Short: "Remove an alias group.",
		Long: `Removes a group. Its member aliases are deleted with it unless
--reassign is given, in which case they become ungrouped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := aliasService.RemoveGroup(args[0], reassign); err != nil {
				return fmt.Errorf("could not remove group: %w", err)
			}
			if reassign {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("Group '%s' removed; its aliases are now ungrouped.", args[0])))
			} else {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("Group '%s' and its aliases removed.", args[0])))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reassign, "reassign", "r", false, "Keep the group's aliases as ungrouped aliases.")

	return cmd
}

func newRemoveAllCommand(aliasService ports.AliasService) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Remove every alias and group.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !promptYesNo("Remove every alias and group?") {
				fmt.Println(ui.InfoColor("Nothing removed."))
				return nil
			}
			if _, err := aliasService.RemoveAll(); err != nil {
				return fmt.Errorf("could not remove: %w", err)
			}
			fmt.Println(ui.SuccessColor("All aliases and groups removed."))
			return nil
		},
	}
}
