package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/deflake/internal/model"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayReport_PrintsTable(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	report := m.RunReport{
		RunID: "01RUN",
		Classes: []m.ClassReport{
			{Class: "pkg.A", Outcome: m.OutcomeStabilized, Iterations: 3, Flaky: []string{"test001", "test004"}},
			{Class: "pkg.B", Outcome: m.OutcomeEnvironmentError, Iterations: 1, Error: "execution harness timed out"},
		},
	}

	if err := ui.DisplayReport(report); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"pkg.A", "stabilized", "test001, test004",
		"pkg.B", "environment_error",
		"TOTAL CLASSES 2", "STABILIZED 1", "FLAKY 2",
		"pkg.B: execution harness timed out",
	)
}

func TestSimpleUI_Notify(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.Start(WithTotal(2)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Notify(m.Event{Class: "pkg.A", Kind: m.EventIterationStarted, Iteration: 0})
	ui.Notify(m.Event{Class: "pkg.A", Kind: m.EventFlakyFound, Iteration: 0, Method: "test002", Line: 42, Message: "    assertTrue(x);"})
	ui.Notify(m.Event{Class: "pkg.A", Kind: m.EventCompileRepaired, Iteration: 1, Line: 17, Message: "never thrown"})
	ui.Notify(m.Event{Class: "pkg.A", Kind: m.EventStabilized, Iteration: 1, Message: "1 flaky method(s)"})
	ui.Notify(m.Event{Class: "pkg.B", Kind: m.EventHalted, Message: "boom"})
	ui.Close()

	assertContainsAll(t, buf.String(),
		"Filtering 2 class(es)",
		"pkg.A: iteration 0",
		"pkg.A: flaky test002 at line 42: assertTrue(x);",
		"pkg.A: repaired compile error at line 17 (never thrown)",
		"pkg.A: stabilized after 2 iteration(s), 1 flaky method(s)",
		"pkg.B: halted: boom",
	)
}

func TestSimpleUI_DisplayAssembled(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	err := ui.DisplayAssembled([]m.ClassReport{{Class: "pkg.A", Location: "out/pkg/A.java"}})
	if err != nil {
		t.Fatalf("DisplayAssembled() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "pkg.A", "out/pkg/A.java", "TOTAL CLASSES 1")
}

func TestSimpleUI_DisplayNeutralized(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	lines := []m.NeutralizedLine{
		{Line: 12, Text: "        // flaky: assertTrue(x);"},
		{Line: 20, Text: "        int y = 0; // flaky: compute()"},
	}

	if err := ui.DisplayNeutralized("out/pkg/A.java", lines); err != nil {
		t.Fatalf("DisplayNeutralized() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "out/pkg/A.java: 2 neutralized line(s)", "12", "// flaky: assertTrue(x);", "20")

	buf.Reset()

	if err := ui.DisplayNeutralized("out/pkg/B.java", nil); err != nil {
		t.Fatalf("DisplayNeutralized() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "out/pkg/B.java: no neutralized lines")
}
