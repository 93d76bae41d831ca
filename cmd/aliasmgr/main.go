package main

import (
	"fmt"
	"os"

	"github.com/rmachado/aliasmgr/internal/adapters/presets"
	"github.com/rmachado/aliasmgr/internal/adapters/shellfd"
	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
	"github.com/rmachado/aliasmgr/internal/core/services/aliasops"
	"github.com/rmachado/aliasmgr/internal/handlers/cli"
	"github.com/rmachado/aliasmgr/internal/handlers/ui"
	"github.com/rmachado/aliasmgr/internal/repositories/configstore"
)

// Version is set at build time
var Version = "dev"

func main() {
	configPath, err := configstore.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
		os.Exit(1)
	}
	store := configstore.New(configPath)

	sh, shellWarning := shell.Determine()

	deltaSink := shellfd.NewWriter()
	presetProvider := presets.NewYAMLProvider()

	aliasService := aliasops.NewService(store, deltaSink, presetProvider, sh)
	rootCmd := cli.NewRootCommand(Version, aliasService, shellWarning)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
