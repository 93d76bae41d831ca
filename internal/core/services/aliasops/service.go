/*
Package aliasops implements the alias operations behind the CLI. Every
operation is one load-mutate-save transaction: the configuration is read
from the store, changed in memory, written back, and the resulting shell
delta is pushed to the sink so the invoking shell can apply it immediately.
*/
package aliasops

import (
	"errors"
	"fmt"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
	"github.com/rmachado/aliasmgr/internal/core/ports"
	"github.com/rmachado/aliasmgr/internal/core/services/projection"
)

type service struct {
	store   ports.ConfigStore
	sink    ports.DeltaSink
	presets ports.PresetProvider
	shell   shell.Type
}

// NewService creates the alias operation service. It panics if the store or
// sink is nil; presets may be nil, in which case import is unavailable.
func NewService(store ports.ConfigStore, sink ports.DeltaSink, presets ports.PresetProvider, sh shell.Type) ports.AliasService {
	if store == nil {
		panic("store cannot be nil")
	}
	if sink == nil {
		panic("sink cannot be nil")
	}
	return &service{store: store, sink: sink, presets: presets, shell: sh}
}

// mutate runs one transaction. The config is saved and the delta sent only
// when the mutation reports a change.
func (s *service) mutate(fn func(cfg *aliascfg.Config) (ports.MutationResult, error)) (ports.MutationResult, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return ports.MutationResult{}, fmt.Errorf("load config: %w", err)
	}
	res, err := fn(cfg)
	if err != nil || !res.Changed {
		return res, err
	}
	if err := s.store.Save(cfg); err != nil {
		return ports.MutationResult{}, fmt.Errorf("save config: %w", err)
	}
	if res.Delta != "" {
		if err := s.sink.Send(res.Delta); err != nil {
			return res, fmt.Errorf("send alias delta: %w", err)
		}
	}
	return res, nil
}

// activeStatement renders the alias definition when the alias should exist
// in the live shell, or "" otherwise.
func (s *service) activeStatement(cfg *aliascfg.Config, a aliascfg.Alias) string {
	if !projection.Active(cfg, a) {
		return ""
	}
	return projection.Statement(a, s.shell)
}

func (s *service) AddAlias(a aliascfg.Alias, overwrite, createGroup ports.ConfirmFunc) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		return s.addAlias(cfg, a, overwrite, createGroup)
	})
}

func (s *service) addAlias(cfg *aliascfg.Config, a aliascfg.Alias, overwrite, createGroup ports.ConfirmFunc) (ports.MutationResult, error) {
	err := cfg.AddAlias(a)
	switch {
	case err == nil:
		return ports.MutationResult{Changed: true, Delta: s.activeStatement(cfg, a)}, nil

	case errors.Is(err, aliascfg.ErrAliasExists):
		if overwrite == nil || !overwrite(a.Name) {
			return ports.MutationResult{}, nil
		}
		return s.overwriteAlias(cfg, a, createGroup)

	case errors.Is(err, aliascfg.ErrGroupNotFound):
		if createGroup == nil || !createGroup(a.Group) {
			return ports.MutationResult{}, nil
		}
		if err := cfg.AddGroup(aliascfg.Group{Name: a.Group, Enabled: true}); err != nil {
			return ports.MutationResult{}, err
		}
		if err := cfg.AddAlias(a); err != nil {
			return ports.MutationResult{}, err
		}
		return ports.MutationResult{Changed: true, Delta: s.activeStatement(cfg, a)}, nil

	default:
		return ports.MutationResult{}, err
	}
}

// overwriteAlias replaces an existing alias definition in place, moving it
// between groups when needed. The file position of the alias is kept.
func (s *service) overwriteAlias(cfg *aliascfg.Config, a aliascfg.Alias, createGroup ports.ConfirmFunc) (ports.MutationResult, error) {
	existing, _ := cfg.FindAlias(a.Name)
	if a.Group != existing.Group && a.Group != "" && !cfg.HasGroup(a.Group) {
		if createGroup == nil || !createGroup(a.Group) {
			return ports.MutationResult{}, nil
		}
		if err := cfg.AddGroup(aliascfg.Group{Name: a.Group, Enabled: true}); err != nil {
			return ports.MutationResult{}, err
		}
	}

	wasActive := projection.Active(cfg, *existing)
	existing.Command = a.Command
	existing.Group = a.Group
	existing.Enabled = a.Enabled
	existing.Global = a.Global
	existing.Detailed = a.Detailed

	delta := ""
	if stmt := s.activeStatement(cfg, *existing); stmt != "" {
		delta = stmt
	} else if wasActive {
		delta = projection.Unalias(a.Name)
	}
	return ports.MutationResult{Changed: true, Delta: delta}, nil
}

func (s *service) AddGroup(g aliascfg.Group) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		if err := cfg.AddGroup(g); err != nil {
			return ports.MutationResult{}, err
		}
		return ports.MutationResult{Changed: true}, nil
	})
}

func (s *service) RemoveAliases(names []string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		var delta string
		for _, name := range names {
			a, ok := cfg.FindAlias(name)
			if !ok {
				return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrAliasNotFound, name)
			}
			wasActive := projection.Active(cfg, *a)
			if err := cfg.RemoveAlias(name); err != nil {
				return ports.MutationResult{}, err
			}
			if wasActive {
				delta += projection.Unalias(name) + "\n"
			}
		}
		return ports.MutationResult{Changed: len(names) > 0, Delta: delta}, nil
	})
}

func (s *service) RemoveGroup(name string, reassign bool) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		members := cfg.AliasesInGroup(name)
		wasActive := make(map[string]bool, len(members))
		for _, a := range members {
			wasActive[a.Name] = projection.Active(cfg, a)
		}
		if err := cfg.RemoveGroup(name, reassign); err != nil {
			return ports.MutationResult{}, err
		}

		var delta string
		if reassign {
			// Members of a disabled group come back to life once ungrouped.
			for _, a := range members {
				cur, ok := cfg.FindAlias(a.Name)
				if !ok {
					continue
				}
				if !wasActive[a.Name] {
					if stmt := s.activeStatement(cfg, *cur); stmt != "" {
						delta += stmt + "\n"
					}
				}
			}
		} else {
			for _, a := range members {
				if wasActive[a.Name] {
					delta += projection.Unalias(a.Name) + "\n"
				}
			}
		}
		return ports.MutationResult{Changed: true, Delta: delta}, nil
	})
}

func (s *service) RemoveAll() (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		cfg.RemoveAll()
		return ports.MutationResult{Changed: true, Delta: "unalias -a\n"}, nil
	})
}

func (s *service) MoveAlias(name, group string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		a, ok := cfg.FindAlias(name)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrAliasNotFound, name)
		}
		wasActive := projection.Active(cfg, *a)
		if err := cfg.MoveAlias(name, group); err != nil {
			return ports.MutationResult{}, err
		}

		// Moving across an enabled/disabled group boundary changes whether
		// the alias exists in the live shell.
		delta := ""
		if stmt := s.activeStatement(cfg, *a); stmt != "" && !wasActive {
			delta = stmt
		} else if stmt == "" && wasActive {
			delta = projection.Unalias(name)
		}
		return ports.MutationResult{Changed: true, Delta: delta}, nil
	})
}

func (s *service) RenameAlias(oldName, newName string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		a, ok := cfg.FindAlias(oldName)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrAliasNotFound, oldName)
		}
		active := projection.Active(cfg, *a)
		if err := cfg.RenameAlias(oldName, newName); err != nil {
			return ports.MutationResult{}, err
		}
		delta := ""
		if active {
			delta = projection.Unalias(oldName) + "\n"
			if stmt := s.activeStatement(cfg, *a); stmt != "" {
				delta += stmt + "\n"
			}
		}
		return ports.MutationResult{Changed: true, Delta: delta}, nil
	})
}

func (s *service) RenameGroup(oldName, newName string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		if err := cfg.RenameGroup(oldName, newName); err != nil {
			return ports.MutationResult{}, err
		}
		return ports.MutationResult{Changed: true}, nil
	})
}

func (s *service) EditAlias(name, command string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		a, ok := cfg.FindAlias(name)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrAliasNotFound, name)
		}
		a.Command = command
		return ports.MutationResult{Changed: true, Delta: s.activeStatement(cfg, *a)}, nil
	})
}

func (s *service) EnableAlias(name string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		a, ok := cfg.FindAlias(name)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrAliasNotFound, name)
		}
		if a.Enabled {
			return ports.MutationResult{}, nil
		}
		a.Enabled = true
		return ports.MutationResult{Changed: true, Delta: s.activeStatement(cfg, *a)}, nil
	})
}

func (s *service) DisableAlias(name string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		a, ok := cfg.FindAlias(name)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrAliasNotFound, name)
		}
		if !a.Enabled {
			return ports.MutationResult{}, nil
		}
		wasActive := projection.Active(cfg, *a)
		a.Enabled = false
		delta := ""
		if wasActive {
			delta = projection.Unalias(name)
		}
		return ports.MutationResult{Changed: true, Delta: delta}, nil
	})
}

func (s *service) EnableGroup(name string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		g, ok := cfg.FindGroup(name)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrGroupNotFound, name)
		}
		if g.Enabled {
			return ports.MutationResult{}, nil
		}
		g.Enabled = true
		var delta string
		for _, a := range cfg.AliasesInGroup(name) {
			if stmt := s.activeStatement(cfg, a); stmt != "" {
				delta += stmt + "\n"
			}
		}
		return ports.MutationResult{Changed: true, Delta: delta}, nil
	})
}

func (s *service) DisableGroup(name string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		g, ok := cfg.FindGroup(name)
		if !ok {
			return ports.MutationResult{}, fmt.Errorf("%w: %q", aliascfg.ErrGroupNotFound, name)
		}
		if !g.Enabled {
			return ports.MutationResult{}, nil
		}
		var delta string
		for _, a := range cfg.AliasesInGroup(name) {
			if a.Enabled {
				delta += projection.Unalias(a.Name) + "\n"
			}
		}
		g.Enabled = false
		return ports.MutationResult{Changed: true, Delta: delta}, nil
	})
}

func (s *service) SortAliases(group *string) (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		if group == nil {
			cfg.SortAliases()
		} else if err := cfg.SortAliasesInGroup(*group); err != nil {
			return ports.MutationResult{}, err
		}
		return ports.MutationResult{Changed: true}, nil
	})
}

func (s *service) SortGroups() (ports.MutationResult, error) {
	return s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		cfg.SortGroups()
		return ports.MutationResult{Changed: true}, nil
	})
}

func (s *service) ImportPresets(path string) (ports.ImportResult, error) {
	if s.presets == nil {
		return ports.ImportResult{}, fmt.Errorf("preset provider not configured")
	}
	presets, err := s.presets.LoadPresets(path)
	if err != nil {
		return ports.ImportResult{}, fmt.Errorf("load presets: %w", err)
	}

	var out ports.ImportResult
	res, err := s.mutate(func(cfg *aliascfg.Config) (ports.MutationResult, error) {
		var delta string
		for _, p := range presets {
			if err := aliascfg.ValidateName(p.Name); err != nil {
				return ports.MutationResult{}, err
			}
			if cfg.HasAlias(p.Name) {
				out.Skipped = append(out.Skipped, p.Name)
				continue
			}
			if p.Group != "" && !cfg.HasGroup(p.Group) {
				if err := cfg.AddGroup(aliascfg.Group{Name: p.Group, Enabled: true}); err != nil {
					return ports.MutationResult{}, err
				}
			}
			if err := cfg.AddAlias(p); err != nil {
				return ports.MutationResult{}, err
			}
			out.Added = append(out.Added, p.Name)
			if stmt := s.activeStatement(cfg, p); stmt != "" {
				delta += stmt + "\n"
			}
		}
		return ports.MutationResult{Changed: len(out.Added) > 0, Delta: delta}, nil
	})
	out.MutationResult = res
	return out, err
}

func (s *service) List(filter ports.ListFilter) ([]aliascfg.Alias, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return projection.Filter(cfg, filter, s.shell), nil
}

func (s *service) Sync() (string, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	script := projection.Script(cfg, s.shell)
	if err := s.sink.Send(script); err != nil {
		return script, fmt.Errorf("send alias delta: %w", err)
	}
	return script, nil
}
