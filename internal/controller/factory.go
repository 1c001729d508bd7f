package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Mode selects how filtering progress is displayed.
type Mode string

const (
	// ModeAuto shows the TUI when the command writes to a terminal and plain
	// text otherwise.
	ModeAuto  Mode = "auto"
	ModeTUI   Mode = "tui"
	ModePlain Mode = "plain"
)

// NewUI creates the UI for mode. An empty or unknown mode behaves as ModeAuto.
func NewUI(cmd *cobra.Command, mode Mode) UI {
	switch mode {
	case ModeTUI:
		return NewTUI(cmd.OutOrStdout())
	case ModePlain:
		return NewSimpleUI(cmd)
	}

	if IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
