// Package shellinit emits the snippet users source from their shell
// configuration. It exports the aliasmgr environment, installs a wrapper
// function that applies alias deltas from file descriptor 3, and runs an
// initial sync.
package shellinit

import (
	"fmt"
	"strings"

	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
	"github.com/rmachado/aliasmgr/internal/repositories/configstore"
)

const wrapperFunc = `
# Wrap aliasmgr so alias deltas emitted on FD 3 reach this shell.
__aliasmgr_cmd="$(command -v aliasmgr)"

aliasmgr() {
    local deltas

    # Capture FD 3 without disturbing standard output.
    {
        deltas="$("$__aliasmgr_cmd" "$@" 3>&1 1>&4)"
    } 4>&1

    if [ -n "$deltas" ]; then
        eval "$deltas"
    fi
}
`

// Snippet renders the init script for the given shell. A non-empty
// configPath additionally pins the config file location for every wrapped
// invocation.
func Snippet(sh shell.Type, configPath string) string {
	var b strings.Builder
	b.WriteString("# aliasmgr initialization\n")
	fmt.Fprintf(&b, "export %s=%s\n", shell.EnvVar, sh)
	if configPath != "" {
		fmt.Fprintf(&b, "export %s=%q\n", configstore.EnvVar, configPath)
	}
	b.WriteString(wrapperFunc)
	b.WriteString("\n# Sync aliases on shell startup\naliasmgr sync\n")
	return b.String()
}
