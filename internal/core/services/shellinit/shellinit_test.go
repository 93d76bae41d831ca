package shellinit

import (
	"strings"
	"testing"

	"github.com/rmachado/aliasmgr/internal/core/domain/shell"
)

func TestSnippet(t *testing.T) {
	t.Run("exports the shell and installs the wrapper", func(t *testing.T) {
		out := Snippet(shell.Zsh, "")

		for _, want := range []string{
			"export ALIASMGR_SHELL=zsh\n",
			"aliasmgr() {",
			`3>&1 1>&4`,
			"aliasmgr sync\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("snippet missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "ALIASMGR_CONFIG_PATH") {
			t.Error("config path exported without being requested")
		}
	})

	t.Run("pins the config path when given", func(t *testing.T) {
		out := Snippet(shell.Bash, "/home/u/my aliases.toml")

		if want := `export ALIASMGR_CONFIG_PATH="/home/u/my aliases.toml"` + "\n"; !strings.Contains(out, want) {
			t.Errorf("snippet missing %q:\n%s", want, out)
		}
	})
}
