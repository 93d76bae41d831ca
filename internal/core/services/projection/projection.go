/*
Package projection turns the alias model into shell statements. It is the
only place that knows shell syntax differences: zsh globals use 'alias -g',
bash has no global aliases at all and silently skips them.
*/
package projection

import (
	"fmt"
	"strings"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
	"github.com/rmachado/aliasmgr/internal/core/ports"
)

// quote wraps s in single quotes, escaping embedded single quotes the POSIX
// way ('\'') so commands survive eval in the target shell.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

/*
Statement renders one alias definition for the target shell. The empty
string means the alias has no representation there, which happens for global
aliases outside zsh.
*/
func Statement(a aliascfg.Alias, sh shell.Type) string {
	if a.Global {
		if !sh.SupportsGlobal() {
			return ""
		}
		return fmt.Sprintf("alias -g %s=%s", a.Name, quote(a.Command))
	}
	return fmt.Sprintf("alias %s=%s", a.Name, quote(a.Command))
}

// Unalias renders the removal statement for one alias.
func Unalias(name string) string {
	return fmt.Sprintf("unalias %s", quote(name))
}

// Active reports whether the alias should exist in the live shell: both the
// alias and its containing group must be enabled.
func Active(cfg *aliascfg.Config, a aliascfg.Alias) bool {
	return a.Enabled && cfg.GroupEnabled(a.Group)
}

/*
Script produces the full sync output: a leading 'unalias -a' wiping the
current alias state, followed by a definition for every active alias, in
config order.
*/
func Script(cfg *aliascfg.Config, sh shell.Type) string {
	var b strings.Builder
	b.WriteString("unalias -a\n")
	for _, a := range cfg.Aliases {
		if !Active(cfg, a) {
			continue
		}
		if stmt := Statement(a, sh); stmt != "" {
			b.WriteString(stmt)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Filter selects the aliases matching the given filter, in config order.
// The global filter matches nothing under a shell without global aliases.
func Filter(cfg *aliascfg.Config, f ports.ListFilter, sh shell.Type) []aliascfg.Alias {
	if f.Global && !sh.SupportsGlobal() {
		return nil
	}
	var out []aliascfg.Alias
	for _, a := range cfg.Aliases {
		if f.Group != nil && a.Group != *f.Group {
			continue
		}
		if f.Enabled != nil && a.Enabled != *f.Enabled {
			continue
		}
		if f.Global && !a.Global {
			continue
		}
		if f.Pattern != "" &&
			!strings.Contains(a.Name, f.Pattern) &&
			!strings.Contains(a.Command, f.Pattern) {
			continue
		}
		out = append(out, a)
	}
	return out
}
