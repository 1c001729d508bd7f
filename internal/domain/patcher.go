package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/deflake/internal/model"
)

const (
	// FlakyMarker prefixes every neutralized statement or initializer.
	FlakyMarker = "// flaky: "
	// repairMarker prefixes lines rewritten to fix a compile artifact.
	repairMarker = "/* flaky */"
)

// ErrUnrepairable is returned for compile diagnostics the patcher does not
// know how to fix.
var ErrUnrepairable = errors.New("compile diagnostic is not auto-repairable")

const (
	neverThrownDiagnostic = "is never thrown in body of corresponding try statement"
	tryWithoutCatch       = "'try' without 'catch', 'finally' or resource declarations"
)

var (
	declarationPattern = regexp.MustCompile(
		`^(\s*)((?:final\s+)?)([A-Za-z_$][\w$.]*(?:<.*>)?(?:\[\])*)\s+([A-Za-z_$][\w$]*)\s*=\s*([^=\s].*);\s*$`)
	catchPattern = regexp.MustCompile(
		`^(\s*)(\}\s*)?catch\s*\(\s*(?:final\s+)?[\w$.<>\[\]|\s]+?\s+([A-Za-z_$][\w$]*)\s*\)\s*\{(.*)$`)
	tryPattern = regexp.MustCompile(`^(\s*)try\s*\{(.*)$`)

	notATypeKeyword = map[string]bool{
		"return": true, "throw": true, "else": true, "case": true,
		"new": true, "assert": true, "yield": true, "do": true,
	}
)

var defaultValues = map[string]string{
	"boolean": "false",
	"byte":    "0",
	"char":    "0",
	"short":   "0",
	"int":     "0",
	"long":    "0L",
	"float":   "0.0f",
	"double":  "0.0",
}

// DefaultValue returns an inert literal assignable to a variable of javaType.
func DefaultValue(javaType string) string {
	if v, ok := defaultValues[strings.TrimSpace(javaType)]; ok {
		return v
	}

	return "null"
}

// Neutralize returns a copy of lines with the 1-based line made inert. A
// declaration keeps its variable with a default initializer, so later uses
// still compile; any other statement is commented out. The line count never
// changes, and an already neutralized line is left as is.
func Neutralize(lines []string, lineNumber int) ([]string, error) {
	if lineNumber < 1 || lineNumber > len(lines) {
		return nil, fmt.Errorf("line %d outside 1..%d", lineNumber, len(lines))
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[lineNumber-1] = neutralizeLine(lines[lineNumber-1])

	return out, nil
}

// NeutralizeAll neutralizes the line of every failure.
func NeutralizeAll(lines []string, failures []m.Failure) ([]string, error) {
	out := lines

	for _, f := range failures {
		var err error

		out, err = Neutralize(out, f.Line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Method, err)
		}
	}

	return out, nil
}

func neutralizeLine(line string) string {
	if isNeutralized(line) {
		return line
	}

	if match := declarationPattern.FindStringSubmatch(line); match != nil && !notATypeKeyword[match[3]] {
		indent, modifiers, javaType, name, init := match[1], match[2], match[3], match[4], match[5]

		return fmt.Sprintf("%s%s%s %s = %s; %s%s", indent, modifiers, javaType, name, DefaultValue(javaType), FlakyMarker, strings.TrimSpace(init))
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	return indent + FlakyMarker + trimmed
}

func isNeutralized(line string) bool {
	return strings.Contains(line, FlakyMarker) || strings.Contains(line, repairMarker)
}

// RepairCompileDiagnostic rewrites the line a compile error points at when
// the error is a known artifact of an earlier patch: a catch clause whose
// exception can no longer be thrown, or a try block left without handlers.
// Other diagnostics return ErrUnrepairable.
func RepairCompileDiagnostic(lines []string, diag m.Diagnostic) ([]string, error) {
	if diag.Line < 1 || diag.Line > len(lines) {
		return nil, fmt.Errorf("%w: line %d outside 1..%d", ErrUnrepairable, diag.Line, len(lines))
	}

	line := lines[diag.Line-1]
	if strings.Contains(line, repairMarker) {
		return nil, fmt.Errorf("%w: line %d was already repaired: %s", ErrUnrepairable, diag.Line, diag.Message)
	}

	var repaired string

	switch {
	case strings.Contains(diag.Message, neverThrownDiagnostic):
		match := catchPattern.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("%w: no catch clause on line %d", ErrUnrepairable, diag.Line)
		}

		indent, brace, variable, rest := match[1], strings.TrimSpace(match[2]), match[3], match[4]
		if brace != "" {
			brace += " "
		}

		repaired = fmt.Sprintf("%s%s %scatch (java.lang.Throwable %s) {%s // %s",
			indent, repairMarker, brace, variable, rest, strings.TrimSpace(line))

	case strings.Contains(diag.Message, tryWithoutCatch):
		match := tryPattern.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("%w: no try block on line %d", ErrUnrepairable, diag.Line)
		}

		repaired = fmt.Sprintf("%s%s {%s // %s", match[1], repairMarker, match[2], strings.TrimSpace(line))

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrepairable, diag.Message)
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[diag.Line-1] = repaired

	return out, nil
}

// FindNeutralized returns the 1-based numbers of lines carrying a flaky or
// repair marker.
func FindNeutralized(lines []string) []int {
	var out []int

	for i, line := range lines {
		if isNeutralized(line) {
			out = append(out, i+1)
		}
	}

	return out
}
