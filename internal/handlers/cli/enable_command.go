package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewEnableCommand creates the 'enable' subcommand.
func NewEnableCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enable",
		Aliases: []string{"en"},
		Short:   "Enable an alias or alias group.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "alias NAME",
		Short: "Enable an alias.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := aliasService.EnableAlias(args[0])
			if err != nil {
				return fmt.Errorf("could not enable alias: %w", err)
			}
			if !res.Changed {
				fmt.Println(ui.InfoColor(fmt.Sprintf("Alias '%s' is already enabled.", args[0])))
				return nil
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' enabled.", args[0])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "group NAME",
		Short: "Enable a group and its member aliases.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := aliasService.EnableGroup(args[0])
			if err != nil {
				return fmt.Errorf("could not enable group: %w", err)
			}
			if !res.Changed {
				fmt.Println(ui.InfoColor(fmt.Sprintf("Group '%s' is already enabled.", args[0])))
				return nil
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Group '%s' enabled.", args[0])))
			return nil
		},
	})

	return cmd
}
