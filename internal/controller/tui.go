package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/deflake/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("UI already started")
	}

	t.program = tea.NewProgram(newFilterModel(cfg.total, cfg.interrupt), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// Close stops the progress display and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})
	<-done

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
}

// Notify forwards a driver event to the running display.
func (t *TUI) Notify(event m.Event) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(eventMsg{event: event})
	}
}

// DisplayReport prints the final summary once the display has closed.
func (t *TUI) DisplayReport(report m.RunReport) error {
	t.mu.Lock()
	err := t.err
	t.mu.Unlock()

	if err != nil {
		_, _ = fmt.Fprintf(t.output, "display error: %v\n", err)
	}

	_, _ = fmt.Fprintf(t.output, "\n%s", renderReport(report))

	return err
}

// DisplayAssembled prints where every assembled class was written.
func (t *TUI) DisplayAssembled(classes []m.ClassReport) error {
	_, _ = fmt.Fprintf(t.output, "\n%s", renderAssembled(classes))

	return nil
}

// DisplayNeutralized lists the flaky markers of one class.
func (t *TUI) DisplayNeutralized(path m.Path, lines []m.NeutralizedLine) error {
	_, _ = fmt.Fprint(t.output, renderNeutralized(path, lines))

	return nil
}
