package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_Modes(t *testing.T) {
	tests := []struct {
		mode    Mode
		wantTUI bool
	}{
		{ModeTUI, true},
		{ModePlain, false},
		{ModeAuto, false},
		{"", false},
	}

	for _, tt := range tests {
		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})

		ui := NewUI(cmd, tt.mode)

		if _, isTUI := ui.(*TUI); isTUI != tt.wantTUI {
			t.Errorf("NewUI(%q) returned %T, want TUI=%v", tt.mode, ui, tt.wantTUI)
		}

		if _, isSimple := ui.(*SimpleUI); isSimple == tt.wantTUI {
			t.Errorf("NewUI(%q) returned %T", tt.mode, ui)
		}
	}
}

func TestNewUI_AutoOnCharDevice(t *testing.T) {
	file, err := os.OpenFile("/dev/null", os.O_WRONLY, 0)
	if err != nil {
		t.Skip("/dev/null not available")
	}
	defer file.Close()

	cmd := &cobra.Command{}
	cmd.SetOut(file)

	ui := NewUI(cmd, ModeAuto)

	if _, ok := ui.(*TUI); !ok {
		t.Fatalf("NewUI(auto) on a character device returned %T, want *TUI", ui)
	}
}

func TestIsTTY_WithRegularFile(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "deflake-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	defer file.Close()

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_WithCharDevice(t *testing.T) {
	file, err := os.Open("/dev/null")
	if err != nil {
		t.Skip("/dev/null not available")
	}
	defer file.Close()

	if !IsTTY(file) {
		t.Fatalf("IsTTY(/dev/null) = false, want true")
	}
}

func TestIsTTY_WithNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}
