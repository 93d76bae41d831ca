package ports

import "github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"

// PresetProvider sources ready-made aliases from an external file, such as a
// YAML bundle shipped alongside dotfiles.
type PresetProvider interface {
	// LoadPresets reads the preset aliases from the given file.
	LoadPresets(path string) ([]aliascfg.Alias, error)
}
