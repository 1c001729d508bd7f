package controller

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/deflake/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the number of classes about to be filtered.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.total > 0 {
		s.printf("Filtering %d class(es)\n", cfg.total)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Notify prints one line per event.
func (s *SimpleUI) Notify(event m.Event) {
	s.printf("%s\n", describeEvent(event))
}

// DisplayReport prints the per-class summary table.
func (s *SimpleUI) DisplayReport(report m.RunReport) error {
	s.printf("\n%s", renderReport(report))

	return nil
}

// DisplayAssembled prints where every assembled class was written.
func (s *SimpleUI) DisplayAssembled(classes []m.ClassReport) error {
	s.printf("\n%s", renderAssembled(classes))

	return nil
}

// DisplayNeutralized lists the flaky markers of one class.
func (s *SimpleUI) DisplayNeutralized(path m.Path, lines []m.NeutralizedLine) error {
	s.printf("%s", renderNeutralized(path, lines))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
