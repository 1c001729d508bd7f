package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sequence is a recorded operation sequence that can render itself as Java
// statements. It is read-only for the filter.
type Sequence interface {
	Render() ([]string, error)
}

// RecordedSequence is a Sequence whose statements were recorded as text.
type RecordedSequence struct {
	Statements []string `yaml:"statements"`
}

// Render returns the recorded statements. Blank statements are a recording
// defect and are rejected.
func (s RecordedSequence) Render() ([]string, error) {
	if len(s.Statements) == 0 {
		return nil, errors.New("sequence has no statements")
	}

	out := make([]string, 0, len(s.Statements))

	for i, st := range s.Statements {
		if strings.TrimSpace(st) == "" {
			return nil, fmt.Errorf("statement %d is blank", i+1)
		}

		if _, err := StatementLines(st); err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}

		out = append(out, st)
	}

	return out, nil
}

// StatementLines splits a rendered statement into source lines with trailing
// whitespace removed. A statement may only break at statement boundaries:
// every line of a multi-line statement must end in ';', '{', '}' or ':'
// (optionally followed by a line comment).
func StatementLines(statement string) ([]string, error) {
	lines := strings.Split(statement, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	if len(lines) == 1 {
		return lines, nil
	}

	for i, line := range lines {
		if !endsAtBoundary(line) {
			return nil, fmt.Errorf("line %d of a multi-line statement breaks inside an expression: %q", i+1, strings.TrimSpace(line))
		}
	}

	return lines, nil
}

func endsAtBoundary(line string) bool {
	code := strings.TrimSpace(line)
	if code == "" || strings.HasPrefix(code, "//") {
		return true
	}

	if idx := strings.LastIndex(code, "//"); idx > 0 {
		if before := strings.TrimSpace(code[:idx]); strings.ContainsAny(before[len(before)-1:], ";{}:") {
			return true
		}
	}

	return strings.ContainsAny(code[len(code)-1:], ";{}:")
}

// Suite describes one generated test class before assembly.
type Suite struct {
	Origin    Path               `yaml:"-"`
	Package   string             `yaml:"package"`
	Class     string             `yaml:"class"`
	DebugFlag string             `yaml:"debug_flag,omitempty"`
	Fixtures  Fixtures           `yaml:"fixtures,omitempty"`
	Sequences []RecordedSequence `yaml:"sequences"`
}

// QualifiedName returns the binary name of the class the suite assembles into.
func (s Suite) QualifiedName() string {
	return QualifiedName(s.Package, s.Class)
}

// AsSequences widens the recorded sequences to the Sequence interface.
func (s Suite) AsSequences() []Sequence {
	out := make([]Sequence, len(s.Sequences))
	for i, seq := range s.Sequences {
		out[i] = seq
	}

	return out
}
