package ports

import "github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"

/*
ConfigStore defines the interface for loading and persisting the alias
configuration. This is a driven port, implemented by a repository adapter
that understands the on-disk file format.
*/
type ConfigStore interface {
	// Load reads the configuration. A missing file yields an empty config,
	// not an error.
	Load() (*aliascfg.Config, error)

	// Save writes the configuration back. The write is all-or-nothing: on
	// error the previous file content is untouched.
	Save(cfg *aliascfg.Config) error

	// Path returns the resolved location of the configuration file, for
	// display in messages.
	Path() string
}
