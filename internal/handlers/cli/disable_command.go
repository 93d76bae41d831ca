package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewDisableCommand creates the 'disable' subcommand.
func NewDisableCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "disable",
		Aliases: []string{"dis"},
		Short:   "Disable an alias or alias group without removing it.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "alias NAME",
		Short: "Disable an alias.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := aliasService.DisableAlias(args[0])
			if err != nil {
				return fmt.Errorf("could not disable alias: %w", err)
			}
			if !res.Changed {
				fmt.Println(ui.InfoColor(fmt.Sprintf("Alias '%s' is already disabled.", args[0])))
				return nil
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' disabled.", args[0])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "group NAME",
		Short: "Disable a group; its member aliases stop being emitted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := aliasService.DisableGroup(args[0])
			if err != nil {
				return fmt.Errorf("could not disable group: %w", err)
			}
			if !res.Changed {
				fmt.Println(ui.InfoColor(fmt.Sprintf("Group '%s' is already disabled.", args[0])))
				return nil
			}
			fmt.Println(ui.SuccessColor(fmt.Sprintf("Group '%s' disabled.", args[0])))
			return nil
		},
	})

	return cmd
}
