/*
Package presets reads ready-made alias bundles from YAML files, so a set of
aliases can be shared as a single file and imported in one command.

The expected document is a list of entries:

	- alias: ga
	  command: git add
	  group: git
	- alias: gp
	  command: git push
	  global: true
*/
package presets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/ports"
)

type presetEntry struct {
	Alias    string `yaml:"alias"`
	Command  string `yaml:"command"`
	Group    string `yaml:"group"`
	Global   bool   `yaml:"global"`
	Disabled bool   `yaml:"disabled"`
}

// YAMLProvider implements the PresetProvider port for YAML bundle files.
type YAMLProvider struct{}

// NewYAMLProvider creates a YAML preset provider.
func NewYAMLProvider() ports.PresetProvider {
	return &YAMLProvider{}
}

// LoadPresets reads and parses the preset aliases from the given file. The
// file must exist; an empty document yields an empty list.
func (p *YAMLProvider) LoadPresets(path string) ([]aliascfg.Alias, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file %s: %w", path, err)
	}

	var entries []presetEntry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		// A file with only comments or a bare document separator decodes to
		// nothing; treat it like an empty list.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}

	aliases := make([]aliascfg.Alias, 0, len(entries))
	for _, e := range entries {
		aliases = append(aliases, aliascfg.NewAlias(e.Alias, e.Command, e.Group, !e.Disabled, e.Global))
	}
	return aliases, nil
}
