/*
Package aliascfg defines the core domain model for the alias configuration:
aliases, groups, and the ordered collection both live in. All collection
mutations preserve the order of the backing file; new entries append at the
end.
*/
package aliascfg

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors surfaced by config mutations. Callers discriminate with
// errors.Is to decide whether to prompt, skip, or abort.
var (
	ErrAliasExists   = errors.New("alias already exists")
	ErrAliasNotFound = errors.New("alias does not exist")
	ErrGroupExists   = errors.New("group already exists")
	ErrGroupNotFound = errors.New("group does not exist")
	ErrInvalidName   = errors.New("invalid name")
)

/*
Alias is a single named shell alias. Group is the name of the containing
group, empty for ungrouped aliases. Detailed records whether the config file
used the table form for this alias, so an entry the user wrote in table form
stays in table form across a load/save round trip.
*/
type Alias struct {
	Name     string
	Command  string
	Group    string
	Enabled  bool
	Global   bool
	Detailed bool
}

// NewAlias builds an alias with the representation flag derived from its
// state: disabled or global aliases cannot use the shorthand form.
func NewAlias(name, command, group string, enabled, global bool) Alias {
	return Alias{
		Name:     name,
		Command:  command,
		Group:    group,
		Enabled:  enabled,
		Global:   global,
		Detailed: !enabled || global,
	}
}

// NeedsTableForm reports whether the alias must be serialized in the
// detailed table form rather than the bare-string shorthand.
func (a Alias) NeedsTableForm() bool {
	return a.Detailed || !a.Enabled || a.Global
}

// Group is a named collection of aliases. Disabling a group suppresses all
// of its members during projection without touching their own flags.
type Group struct {
	Name    string
	Enabled bool
}

// Config is the in-memory model of the whole configuration file. Aliases and
// Groups keep file order; names are unique within each slice.
type Config struct {
	Aliases []Alias
	Groups  []Group
}

// New returns an empty configuration.
func New() *Config {
	return &Config{}
}

// ValidateName rejects names the config file cannot represent. Names are
// written as bare TOML keys, so only ASCII letters, digits, '_' and '-' are
// allowed.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q may only contain letters, digits, '_' and '-'", ErrInvalidName, name)
		}
	}
	return nil
}

// ValidateGroupedName additionally rejects names that collide with the keys
// carrying fixed meaning inside a group table. Ungrouped aliases are not
// affected.
func ValidateGroupedName(name, group string) error {
	if group == "" {
		return nil
	}
	if name == "enabled" || name == "command" {
		return fmt.Errorf("%w: %q is reserved inside a group", ErrInvalidName, name)
	}
	return nil
}

func (c *Config) aliasIndex(name string) int {
	for i := range c.Aliases {
		if c.Aliases[i].Name == name {
			return i
		}
	}
	return -1
}

func (c *Config) groupIndex(name string) int {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return i
		}
	}
	return -1
}

// FindAlias returns a pointer into the config for the named alias.
func (c *Config) FindAlias(name string) (*Alias, bool) {
	if i := c.aliasIndex(name); i >= 0 {
		return &c.Aliases[i], true
	}
	return nil, false
}

// FindGroup returns a pointer into the config for the named group.
func (c *Config) FindGroup(name string) (*Group, bool) {
	if i := c.groupIndex(name); i >= 0 {
		return &c.Groups[i], true
	}
	return nil, false
}

// HasAlias reports whether an alias with the given name exists.
func (c *Config) HasAlias(name string) bool { return c.aliasIndex(name) >= 0 }

// HasGroup reports whether a group with the given name exists.
func (c *Config) HasGroup(name string) bool { return c.groupIndex(name) >= 0 }

// GroupEnabled reports whether the named group is enabled. The ungrouped
// scope (empty name) is always enabled.
func (c *Config) GroupEnabled(name string) bool {
	if name == "" {
		return true
	}
	if g, ok := c.FindGroup(name); ok {
		return g.Enabled
	}
	return true
}

// AliasesInGroup returns the aliases belonging to the named group, in config
// order. An empty name selects the ungrouped aliases.
func (c *Config) AliasesInGroup(group string) []Alias {
	var out []Alias
	for _, a := range c.Aliases {
		if a.Group == group {
			out = append(out, a)
		}
	}
	return out
}

// AddAlias appends an alias after validating its name, uniqueness, and the
// existence of its group.
func (c *Config) AddAlias(a Alias) error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	if err := ValidateGroupedName(a.Name, a.Group); err != nil {
		return err
	}
	if c.HasAlias(a.Name) {
		return fmt.Errorf("%w: %q", ErrAliasExists, a.Name)
	}
	if a.Group != "" && !c.HasGroup(a.Group) {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, a.Group)
	}
	c.Aliases = append(c.Aliases, a)
	return nil
}

// AddGroup appends a group after validating its name and uniqueness.
func (c *Config) AddGroup(g Group) error {
	if err := ValidateName(g.Name); err != nil {
		return err
	}
	if c.HasGroup(g.Name) {
		return fmt.Errorf("%w: %q", ErrGroupExists, g.Name)
	}
	c.Groups = append(c.Groups, g)
	return nil
}

// RemoveAlias deletes the named alias, keeping the order of the remaining
// entries.
func (c *Config) RemoveAlias(name string) error {
	i := c.aliasIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrAliasNotFound, name)
	}
	c.Aliases = append(c.Aliases[:i], c.Aliases[i+1:]...)
	return nil
}

/*
RemoveGroup deletes the named group. When reassign is true its member
aliases move to the ungrouped scope; otherwise they are deleted along with
the group. Either way no alias is left referencing a missing group.
*/
func (c *Config) RemoveGroup(name string, reassign bool) error {
	i := c.groupIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	c.Groups = append(c.Groups[:i], c.Groups[i+1:]...)

	if reassign {
		for j := range c.Aliases {
			if c.Aliases[j].Group == name {
				c.Aliases[j].Group = ""
			}
		}
		return nil
	}

	kept := c.Aliases[:0]
	for _, a := range c.Aliases {
		if a.Group != name {
			kept = append(kept, a)
		}
	}
	c.Aliases = kept
	return nil
}

// RemoveAll clears every alias and group.
func (c *Config) RemoveAll() {
	c.Aliases = nil
	c.Groups = nil
}

// RenameAlias changes an alias name in place, preserving its command, group
// membership, and flags.
func (c *Config) RenameAlias(oldName, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}
	i := c.aliasIndex(oldName)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrAliasNotFound, oldName)
	}
	if err := ValidateGroupedName(newName, c.Aliases[i].Group); err != nil {
		return err
	}
	if c.HasAlias(newName) {
		return fmt.Errorf("%w: %q", ErrAliasExists, newName)
	}
	c.Aliases[i].Name = newName
	return nil
}

// RenameGroup changes a group name and rewrites the membership of every
// alias that referenced the old name.
func (c *Config) RenameGroup(oldName, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}
	i := c.groupIndex(oldName)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, oldName)
	}
	if c.HasGroup(newName) {
		return fmt.Errorf("%w: %q", ErrGroupExists, newName)
	}
	c.Groups[i].Name = newName
	for j := range c.Aliases {
		if c.Aliases[j].Group == oldName {
			c.Aliases[j].Group = newName
		}
	}
	return nil
}

// MoveAlias reassigns an alias to the named group, or to the ungrouped scope
// when group is empty.
func (c *Config) MoveAlias(name, group string) error {
	i := c.aliasIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrAliasNotFound, name)
	}
	if err := ValidateGroupedName(c.Aliases[i].Name, group); err != nil {
		return err
	}
	if group != "" && !c.HasGroup(group) {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}
	c.Aliases[i].Group = group
	return nil
}

// SortAliases orders every alias by name.
func (c *Config) SortAliases() {
	sort.SliceStable(c.Aliases, func(i, j int) bool {
		return c.Aliases[i].Name < c.Aliases[j].Name
	})
}

// SortAliasesInGroup orders the aliases of one group by name, leaving
// aliases outside the group where they were. An empty group name sorts the
// ungrouped aliases.
func (c *Config) SortAliasesInGroup(group string) error {
	if group != "" && !c.HasGroup(group) {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}
	var members []Alias
	for _, a := range c.Aliases {
		if a.Group == group {
			members = append(members, a)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})
	k := 0
	for i := range c.Aliases {
		if c.Aliases[i].Group == group {
			c.Aliases[i] = members[k]
			k++
		}
	}
	return nil
}

// SortGroups orders the groups by name. Alias order is untouched.
func (c *Config) SortGroups() {
	sort.SliceStable(c.Groups, func(i, j int) bool {
		return c.Groups[i].Name < c.Groups[j].Name
	})
}
