package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(aliasService ports.AliasService) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import aliases from a YAML preset file.",
		Long: `Reads a YAML list of aliases (alias/command, optionally group, global,
disabled) and adds the ones whose names are still free. Groups named by a
preset are created on the fly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := aliasService.ImportPresets(args[0])
			if err != nil {
				return fmt.Errorf("could not import presets: %w", err)
			}
			if len(res.Added) == 0 && len(res.Skipped) == 0 {
				fmt.Println(ui.InfoColor("No presets found in " + args[0] + "."))
				return nil
			}
			if len(res.Added) > 0 {
				fmt.Println(ui.SuccessColor(fmt.Sprintf("%d alias(es) imported.", len(res.Added))))
			}
			for _, name := range res.Skipped {
				fmt.Println(ui.DetailColor(fmt.Sprintf("Skipped '%s': already exists.", name)))
			}
			return nil
		},
	}
}
