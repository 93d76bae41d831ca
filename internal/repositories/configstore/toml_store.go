/*
Package configstore persists the alias configuration as a TOML file.

The file format has three entry forms:

	py = "python3"                                # simple alias
	js = { command = "node", enabled = false }    # detailed alias
	[git]                                         # group
	enabled = false
	ga = "git add"

Entry order in the file is meaningful and survives a load/save round trip,
which rules out decoding straight into Go maps. Decoding therefore goes
through toml.Primitive values and uses the MetaData key order to rebuild the
model in file order; encoding is written by hand so the output stays minimal
(no blank lines, shorthand wherever the alias state allows it).
*/
package configstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/ports"
)

// EnvVar overrides the configuration file location when set.
const EnvVar = "ALIASMGR_CONFIG_PATH"

// Store reads and writes the alias configuration at a fixed path.
type Store struct {
	path string
}

var _ ports.ConfigStore = (*Store)(nil)

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath resolves the configuration file location: the ALIASMGR_CONFIG_PATH
// environment variable when set, otherwise aliasmgr/aliases.toml under the
// user configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine user config dir: %w", err)
	}
	return filepath.Join(base, "aliasmgr", "aliases.toml"), nil
}

// Path returns the resolved configuration file location.
func (s *Store) Path() string { return s.path }

// Load reads the configuration file. A missing file yields an empty config.
func (s *Store) Load() (*aliascfg.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return aliascfg.New(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", s.path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save writes the configuration atomically: the content goes to a temporary
// file in the target directory first and replaces the config via rename, so
// a failed write never leaves a truncated file behind.
func (s *Store) Save(cfg *aliascfg.Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".aliases-*.toml")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(Encode(cfg)); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace config %s: %w", s.path, err)
	}
	return nil
}

// aliasTable is the detailed TOML form of an alias. A nil Enabled means the
// key was absent and defaults to true.
type aliasTable struct {
	Command string `toml:"command"`
	Enabled *bool  `toml:"enabled"`
	Global  bool   `toml:"global"`
}

func (t aliasTable) enabled() bool { return t.Enabled == nil || *t.Enabled }

// Decode parses TOML content into the ordered config model.
func Decode(content string) (*aliascfg.Config, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(content, &raw)
	if err != nil {
		return nil, err
	}

	cfg := aliascfg.New()
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		switch md.Type(name) {
		case "String":
			var command string
			if err := md.PrimitiveDecode(raw[name], &command); err != nil {
				return nil, err
			}
			cfg.Aliases = append(cfg.Aliases, aliascfg.Alias{
				Name: name, Command: command, Enabled: true,
			})

		case "Hash":
			if md.Type(name, "command") == "String" {
				a, err := decodeAliasTable(md, raw[name], name, "")
				if err != nil {
					return nil, err
				}
				cfg.Aliases = append(cfg.Aliases, a)
				continue
			}
			if err := decodeGroup(md, raw[name], name, cfg); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("entry %q: unexpected %s value", name, md.Type(name))
		}
	}
	return cfg, nil
}

func decodeAliasTable(md toml.MetaData, prim toml.Primitive, name, group string) (aliascfg.Alias, error) {
	var t aliasTable
	if err := md.PrimitiveDecode(prim, &t); err != nil {
		return aliascfg.Alias{}, fmt.Errorf("alias %q: %w", name, err)
	}
	return aliascfg.Alias{
		Name:     name,
		Command:  t.Command,
		Group:    group,
		Enabled:  t.enabled(),
		Global:   t.Global,
		Detailed: true,
	}, nil
}

func decodeGroup(md toml.MetaData, prim toml.Primitive, name string, cfg *aliascfg.Config) error {
	var entries map[string]toml.Primitive
	if err := md.PrimitiveDecode(prim, &entries); err != nil {
		return fmt.Errorf("group %q: %w", name, err)
	}

	group := aliascfg.Group{Name: name, Enabled: true}
	if enabledPrim, ok := entries["enabled"]; ok {
		if md.Type(name, "enabled") != "Bool" {
			return fmt.Errorf("group %q: enabled must be a boolean", name)
		}
		if err := md.PrimitiveDecode(enabledPrim, &group.Enabled); err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
	}
	cfg.Groups = append(cfg.Groups, group)

	// Member order comes from the metadata key list, which follows the file.
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != name || key[1] == "enabled" {
			continue
		}
		sub := key[1]
		switch md.Type(name, sub) {
		case "String":
			var command string
			if err := md.PrimitiveDecode(entries[sub], &command); err != nil {
				return fmt.Errorf("alias %q: %w", sub, err)
			}
			cfg.Aliases = append(cfg.Aliases, aliascfg.Alias{
				Name: sub, Command: command, Group: name, Enabled: true,
			})
		case "Hash":
			if md.Type(name, sub, "command") != "String" {
				return fmt.Errorf("group %q: nested groups are not supported (%q)", name, sub)
			}
			a, err := decodeAliasTable(md, entries[sub], sub, name)
			if err != nil {
				return err
			}
			cfg.Aliases = append(cfg.Aliases, a)
		default:
			return fmt.Errorf("group %q: entry %q has unexpected %s value", name, sub, md.Type(name, sub))
		}
	}
	return nil
}

// Encode renders the config in file order: ungrouped aliases first, then one
// table per group. No blank lines are emitted.
func Encode(cfg *aliascfg.Config) string {
	var b strings.Builder
	for _, a := range cfg.Aliases {
		if a.Group == "" || !cfg.HasGroup(a.Group) {
			writeAlias(&b, a)
		}
	}
	for _, g := range cfg.Groups {
		fmt.Fprintf(&b, "[%s]\n", g.Name)
		if !g.Enabled {
			b.WriteString("enabled = false\n")
		}
		for _, a := range cfg.AliasesInGroup(g.Name) {
			writeAlias(&b, a)
		}
	}
	return b.String()
}

func writeAlias(b *strings.Builder, a aliascfg.Alias) {
	if !a.NeedsTableForm() {
		fmt.Fprintf(b, "%s = %s\n", a.Name, quoteTOML(a.Command))
		return
	}
	fmt.Fprintf(b, "%s = { command = %s", a.Name, quoteTOML(a.Command))
	if !a.Enabled {
		b.WriteString(", enabled = false")
	}
	if a.Global {
		b.WriteString(", global = true")
	}
	b.WriteString(" }\n")
}

// quoteTOML renders s as a TOML basic string.
func quoteTOML(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
