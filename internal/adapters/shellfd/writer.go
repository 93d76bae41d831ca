/*
Package shellfd sends alias deltas to the invoking shell over file
descriptor 3. The wrapper function installed by 'aliasmgr init' opens that
descriptor and evals whatever arrives on it, keeping stdout free for normal
command output.
*/
package shellfd

import (
	"fmt"
	"os"

	"github.com/rmachado/aliasmgr/internal/core/ports"
)

// DeltaFD is the file descriptor the init wrapper captures.
const DeltaFD = 3

// Writer implements the DeltaSink port on top of an inherited file
// descriptor.
type Writer struct {
	file *os.File
}

// NewWriter creates a delta writer for the fixed descriptor.
func NewWriter() ports.DeltaSink {
	return &Writer{file: os.NewFile(DeltaFD, "alias-delta")}
}

/*
Send writes one delta to the descriptor. When the descriptor is not open,
which happens whenever aliasmgr runs outside the init wrapper, the delta is
dropped with a hint on stderr; the config file is already saved at that
point, so the user only misses the live-shell update until the next sync.
*/
func (w *Writer) Send(delta string) error {
	if delta == "" {
		return nil
	}
	if _, err := w.file.WriteString(delta); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not send alias delta to the shell; add 'aliasmgr init' to your shell configuration")
		return nil
	}
	return nil
}
