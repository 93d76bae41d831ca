package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewAddCommand creates the 'add' subcommand with its alias/group targets.
func NewAddCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"a"},
		Short:   "Add a new alias or alias group.",
	}
	cmd.AddCommand(newAddAliasCommand(aliasService))
	cmd.AddCommand(newAddGroupCommand(aliasService))
	return cmd
}

func newAddAliasCommand(aliasService ports.AliasService) *cobra.Command {
	var group string
	var disabled, global bool

	cmd := &cobra.Command{
		Use:   "alias NAME COMMAND",
		Short: "Add a new alias.",
		Long: `Adds an alias to the configuration and, when possible, to the running
shell. Adding an existing name asks before overwriting; naming an unknown
group asks before creating it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddAliasCmd(aliasService, args[0], args[1], group, disabled, global)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "Add the alias to a group.")
	cmd.Flags().BoolVarP(&disabled, "disabled", "d", false, "Add the alias in disabled state.")
	cmd.Flags().BoolVar(&global, "global", false, "Make the alias global (zsh only).")

	return cmd
}

func runAddAliasCmd(aliasService ports.AliasService, name, command, group string, disabled, global bool) error {
	a := aliascfg.NewAlias(name, command, group, !disabled, global)
	res, err := aliasService.AddAlias(a, promptOverwriteAlias, promptCreateGroup)
	if err != nil {
		return fmt.Errorf("could not add alias: %w", err)
	}
	if !res.Changed {
		fmt.Println(ui.InfoColor(fmt.Sprintf("Alias '%s' was not added.", name)))
		return nil
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Alias '%s' added.", name)))
	return nil
}

func newAddGroupCommand(aliasService ports.AliasService) *cobra.Command {
	var disabled bool

	cmd := &cobra.Command{
		Use:   "group NAME",
		Short: "Add a new alias group.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddGroupCmd(aliasService, args[0], disabled)
		},
	}

	cmd.Flags().BoolVarP(&disabled, "disabled", "d", false, "Add the group in disabled state.")

	return cmd
}

func runAddGroupCmd(aliasService ports.AliasService, name string, disabled bool) error {
	_, err := aliasService.AddGroup(aliascfg.Group{Name: name, Enabled: !disabled})
	if err != nil {
		// An existing group is a no-op, not a failure.
		if errors.Is(err, aliascfg.ErrGroupExists) {
			fmt.Println(ui.InfoColor(fmt.Sprintf("Group '%s' already exists. No changes made.", name)))
			return nil
		}
		return fmt.Errorf("could not add group: %w", err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Group '%s' added.", name)))
	return nil
}
