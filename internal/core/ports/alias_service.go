package ports

import "github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"

// ConfirmFunc answers an interactive yes/no question about the named entity.
// The CLI layer injects prompt implementations; tests inject constants.
type ConfirmFunc func(name string) bool

// MutationResult reports what a mutating operation did. Delta holds the
// alias/unalias lines the live shell needs to apply, empty when the change
// only affects the config file.
type MutationResult struct {
	Delta   string
	Changed bool
}

// ImportResult summarizes a preset import.
type ImportResult struct {
	MutationResult
	Added   []string
	Skipped []string
}

// ListFilter narrows the aliases reported by List. Nil pointer fields mean
// "no constraint". Pattern is matched as a substring of the alias name or
// its command.
type ListFilter struct {
	Group   *string
	Enabled *bool
	Global  bool
	Pattern string
}

/*
AliasService is the driving port for every alias operation. Each call is a
single load-mutate-save transaction against the config store; the returned
delta has already been pushed to the DeltaSink.
*/
type AliasService interface {
	AddAlias(a aliascfg.Alias, overwrite, createGroup ConfirmFunc) (MutationResult, error)
	AddGroup(g aliascfg.Group) (MutationResult, error)

	RemoveAliases(names []string) (MutationResult, error)
	RemoveGroup(name string, reassign bool) (MutationResult, error)
	RemoveAll() (MutationResult, error)

	MoveAlias(name, group string) (MutationResult, error)
	RenameAlias(oldName, newName string) (MutationResult, error)
	RenameGroup(oldName, newName string) (MutationResult, error)
	EditAlias(name, command string) (MutationResult, error)

	EnableAlias(name string) (MutationResult, error)
	DisableAlias(name string) (MutationResult, error)
	EnableGroup(name string) (MutationResult, error)
	DisableGroup(name string) (MutationResult, error)

	// SortAliases sorts all aliases when group is nil, otherwise only the
	// members of the named group (empty string for the ungrouped scope).
	SortAliases(group *string) (MutationResult, error)
	SortGroups() (MutationResult, error)

	ImportPresets(path string) (ImportResult, error)

	// List returns the aliases matching the filter, in config order.
	List(filter ListFilter) ([]aliascfg.Alias, error)

	// Sync produces the full alias script for the current shell and pushes
	// it to the delta sink.
	Sync() (string, error)
}
