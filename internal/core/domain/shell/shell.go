/*
Package shell identifies the target shell for alias emission. Only bash and
zsh are supported; zsh additionally understands global aliases.
*/
package shell

import (
	"fmt"
	"os"
	"strings"
)

// Type is a supported shell.
type Type string

const (
	Bash Type = "bash"
	Zsh  Type = "zsh"
)

// EnvVar is the environment variable the init snippet exports so later
// invocations know which shell they are emitting for.
const EnvVar = "ALIASMGR_SHELL"

// Default is used when no shell can be determined.
const Default = Bash

// Parse converts a user- or environment-supplied shell name to a Type.
func Parse(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (expected bash or zsh)", s)
	}
}

/*
Determine reads the target shell from ALIASMGR_SHELL. An unset or invalid
value falls back to bash; the returned warning, when non-empty, should be
shown to the user since global aliases silently disappear under the wrong
shell.
*/
func Determine() (Type, string) {
	val, ok := os.LookupEnv(EnvVar)
	if !ok {
		return Default, fmt.Sprintf("%s is not set, assuming %s; run 'aliasmgr init' in your shell configuration", EnvVar, Default)
	}
	sh, err := Parse(val)
	if err != nil {
		return Default, fmt.Sprintf("invalid %s value %q, assuming %s", EnvVar, val, Default)
	}
	return sh, ""
}

// SupportsGlobal reports whether the shell understands 'alias -g'.
func (t Type) SupportsGlobal() bool { return t == Zsh }
