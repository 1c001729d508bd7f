package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/deflake/internal/model"
)

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderReport(report m.RunReport) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Class", "Outcome", "Iterations", "Repairs", "Flaky"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	stabilized, flaky := 0, 0

	for _, c := range report.Classes {
		if c.Outcome == m.OutcomeStabilized {
			stabilized++
		}

		flaky += len(c.Flaky)

		table.Append([]string{
			c.Class,
			string(c.Outcome),
			fmt.Sprintf("%d", c.Iterations),
			fmt.Sprintf("%d", c.CompileRepairs),
			strings.Join(c.Flaky, ", "),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Classes %d", len(report.Classes)),
		fmt.Sprintf("Stabilized %d", stabilized),
		"", "",
		fmt.Sprintf("Flaky %d", flaky),
	})
	table.Render()

	var out strings.Builder

	out.WriteString(buf.String())

	for _, c := range report.Classes {
		if c.Error != "" {
			fmt.Fprintf(&out, "\n%s: %s\n", c.Class, c.Error)
		}
	}

	return out.String()
}

func renderAssembled(classes []m.ClassReport) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Class", "Location"})
	for _, c := range classes {
		table.Append([]string{c.Class, string(c.Location)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Classes %d", len(classes)), ""})
	table.Render()

	return buf.String()
}

func renderNeutralized(path m.Path, lines []m.NeutralizedLine) string {
	if len(lines) == 0 {
		return fmt.Sprintf("%s: no neutralized lines\n", path)
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Line", "Statement"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, l := range lines {
		table.Append([]string{fmt.Sprintf("%d", l.Line), strings.TrimSpace(l.Text)})
	}

	table.Render()

	return fmt.Sprintf("%s: %d neutralized line(s)\n\n%s", path, len(lines), buf.String())
}

func describeEvent(e m.Event) string {
	switch e.Kind {
	case m.EventIterationStarted:
		return fmt.Sprintf("%s: iteration %d", e.Class, e.Iteration)
	case m.EventCompileRepaired:
		return fmt.Sprintf("%s: repaired compile error at line %d (%s)", e.Class, e.Line, e.Message)
	case m.EventFlakyFound:
		return fmt.Sprintf("%s: flaky %s at line %d: %s", e.Class, e.Method, e.Line, strings.TrimSpace(e.Message))
	case m.EventStabilized:
		return fmt.Sprintf("%s: stabilized after %d iteration(s), %s", e.Class, e.Iteration+1, e.Message)
	case m.EventHalted:
		return fmt.Sprintf("%s: halted: %s", e.Class, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Class, e.Message)
	}
}
