package domain

import (
	"fmt"
	"strconv"

	m "github.com/mouse-blink/deflake/internal/model"
)

// DefaultTestPrefix is the prefix of generated test method names.
const DefaultTestPrefix = "test"

const (
	minIndexWidth = 3
	methodIndent  = "    "
	bodyIndent    = methodIndent + methodIndent
)

// MethodName returns the name of the index-th (1-based) of total methods.
// Indices are zero-padded to a common width so that name order is run order.
func MethodName(prefix string, index, total int) string {
	width := len(strconv.Itoa(total))
	if width < minIndexWidth {
		width = minIndexWidth
	}

	return fmt.Sprintf("%s%0*d", prefix, width, index)
}

// RenderMethod renders one sequence into a JUnit test method. A sequence that
// cannot render, or renders a statement broken inside an expression, is a
// defect upstream; the error is not recoverable.
func RenderMethod(seq m.Sequence, className, name, debugFlag string) (m.TestMethod, error) {
	statements, err := seq.Render()
	if err != nil {
		return m.TestMethod{}, fmt.Errorf("failed to render %s.%s: %w", className, name, err)
	}

	text := []string{
		methodIndent + "@Test",
		methodIndent + "public void " + name + "() throws Throwable {",
	}

	if debugFlag != "" {
		text = append(text, fmt.Sprintf(`%sif (%s) System.out.format("%%n%%s%%n", "%s.%s");`, bodyIndent, debugFlag, className, name))
	}

	for _, st := range statements {
		lines, err := m.StatementLines(st)
		if err != nil {
			return m.TestMethod{}, fmt.Errorf("failed to render %s.%s: %w", className, name, err)
		}

		for _, line := range lines {
			text = append(text, bodyIndent+line)
		}
	}

	text = append(text, methodIndent+"}")

	return m.TestMethod{Name: name, Text: text}, nil
}

// RenderMethods renders every sequence with consecutive names starting at 1.
func RenderMethods(seqs []m.Sequence, className, prefix, debugFlag string) ([]m.TestMethod, error) {
	methods := make([]m.TestMethod, 0, len(seqs))

	for i, seq := range seqs {
		method, err := RenderMethod(seq, className, MethodName(prefix, i+1, len(seqs)), debugFlag)
		if err != nil {
			return nil, err
		}

		methods = append(methods, method)
	}

	return methods, nil
}
