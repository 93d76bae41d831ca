package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
	"github.com/rmachado/aliasmgr/internal/core/services/shellinit"
)

// NewInitCommand creates the 'init' subcommand. It prints the snippet users
// add to their shell configuration, e.g.:
//
//	eval "$(aliasmgr init zsh)"
func NewInitCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:       "init bash|zsh",
		Short:     "Print the shell initialization snippet.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Print(shellinit.Snippet(sh, configPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Pin a custom config file path in the snippet.")

	return cmd
}
