package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

type listCommandFlags struct {
	group    string
	groupSet bool
	enabled  bool
	disabled bool
	global   bool
	pattern  string
}

// NewListCommand creates the 'list' subcommand.
func NewListCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured aliases.",
		Long: `Displays the aliases from the configuration file in a table. Filters
combine; without any, every alias is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, aliasService)
		},
	}

	cmd.Flags().StringP("group", "g", "", "Only aliases of this group (use '' for ungrouped).")
	cmd.Flags().Bool("enabled", false, "Only enabled aliases.")
	cmd.Flags().Bool("disabled", false, "Only disabled aliases.")
	cmd.Flags().Bool("global", false, "Only global aliases (zsh).")
	cmd.Flags().StringP("pattern", "p", "", "Only aliases whose name or command contains this text.")

	return cmd
}

func parseListCommandFlags(cmd *cobra.Command) (listCommandFlags, error) {
	var flags listCommandFlags
	flags.group, _ = cmd.Flags().GetString("group")
	flags.groupSet = cmd.Flags().Changed("group")
	flags.enabled, _ = cmd.Flags().GetBool("enabled")
	flags.disabled, _ = cmd.Flags().GetBool("disabled")
	flags.global, _ = cmd.Flags().GetBool("global")
	flags.pattern, _ = cmd.Flags().GetString("pattern")

	if flags.enabled && flags.disabled {
		return flags, fmt.Errorf("--enabled and --disabled are mutually exclusive")
	}
	return flags, nil
}

func (f listCommandFlags) filter() ports.ListFilter {
	filter := ports.ListFilter{
		Global:  f.global,
		Pattern: f.pattern,
	}
	if f.groupSet {
		filter.Group = &f.group
	}
	if f.enabled {
		t := true
		filter.Enabled = &t
	}
	if f.disabled {
		fa := false
		filter.Enabled = &fa
	}
	return filter
}

func runListCmd(cmd *cobra.Command, aliasService ports.AliasService) error {
	flags, err := parseListCommandFlags(cmd)
	if err != nil {
		return err
	}

	aliases, err := aliasService.List(flags.filter())
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(aliases) == 0 {
		fmt.Println(ui.InfoColor("No aliases match."))
		return nil
	}

	renderAliasTable(os.Stdout, aliases)
	return nil
}

func renderAliasTable(w io.Writer, aliases []aliascfg.Alias) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{
		ui.HeaderColor("Alias"), ui.HeaderColor("Command"), ui.HeaderColor("Group"),
		ui.HeaderColor("Enabled"), ui.HeaderColor("Global"),
	})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, a := range aliases {
		group := ""
		if a.Group != "" {
			group = ui.GroupColor(a.Group)
		}
		table.Append([]string{
			ui.AliasNameColor(a.Name), ui.AliasCmdColor(a.Command), group,
			yesNo(a.Enabled), yesNo(a.Global),
		})
	}
	table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
