package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rmachado/aliasmgr/internal/handlers/ui"
)

// promptYesNo asks a y/N question on the terminal. Anything but an explicit
// yes counts as no.
func promptYesNo(question string) bool {
	fmt.Print(ui.PromptColor(question + " (y/N): "))
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func promptOverwriteAlias(name string) bool {
	return promptYesNo(fmt.Sprintf("Alias '%s' already exists. Overwrite it?", name))
}

func promptCreateGroup(name string) bool {
	return promptYesNo(fmt.Sprintf("Group '%s' does not exist. Create it?", name))
}
