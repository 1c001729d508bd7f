package domain

import (
	"errors"
	"fmt"
	"strings"
)

// State names a step of the filter loop.
type State string

// Filter loop states.
const (
	StateWrite         State = "WRITE"
	StateCompile       State = "COMPILE"
	StateCompileRepair State = "COMPILE_REPAIR"
	StateRun           State = "RUN"
	StatePatch         State = "PATCH"
	StateDone          State = "DONE"
)

// ErrorKind is the closed set of ways a filtering run can halt.
type ErrorKind string

const (
	// KindEnvironment means the environment prevented a verdict: timeouts,
	// killed JVMs, runners that cannot start or are misconfigured.
	KindEnvironment ErrorKind = "environment"
	// KindInternal means a collaborator broke its contract or the filter
	// reached a state it cannot reason about.
	KindInternal ErrorKind = "internal"
	// KindFlaky means flaky assertions were found while patching was disabled.
	KindFlaky ErrorKind = "flaky"
)

// FilterError is the terminal error of a filtering run.
type FilterError struct {
	Kind      ErrorKind
	State     State
	Class     string
	Iteration int
	Message   string

	// Method and Line locate the statement involved, when known.
	Method   string
	Line     int
	LineText string

	// Source, Stdout and Stderr are only filled in verbose mode, or for
	// flaky halts where the caller must see the offending class.
	Source string
	Stdout []string
	Stderr []string

	Err error
}

func (e *FilterError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s error", e.Kind)

	if e.State != "" {
		fmt.Fprintf(&b, " in %s", e.State)
	}

	if e.Class != "" {
		fmt.Fprintf(&b, " for %s (iteration %d)", e.Class, e.Iteration)
	}

	fmt.Fprintf(&b, ": %s", e.Message)

	if e.Method != "" {
		fmt.Fprintf(&b, " [%s line %d]", e.Method, e.Line)
	} else if e.Line > 0 {
		fmt.Fprintf(&b, " [line %d]", e.Line)
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *FilterError) Unwrap() error { return e.Err }

// Detail renders the diagnostic context carried by the error.
func (e *FilterError) Detail() string {
	var b strings.Builder

	if e.LineText != "" {
		fmt.Fprintf(&b, "line %d: %s\n", e.Line, strings.TrimSpace(e.LineText))
	}

	if e.Source != "" {
		b.WriteString("--- source ---\n")
		b.WriteString(numberLines(e.Source))
	}

	if len(e.Stdout) > 0 {
		b.WriteString("--- stdout ---\n")
		b.WriteString(strings.Join(e.Stdout, "\n"))
		b.WriteString("\n")
	}

	if len(e.Stderr) > 0 {
		b.WriteString("--- stderr ---\n")
		b.WriteString(strings.Join(e.Stderr, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

func environmentError(format string, args ...any) *FilterError {
	return &FilterError{Kind: KindEnvironment, Message: fmt.Sprintf(format, args...)}
}

func internalError(format string, args ...any) *FilterError {
	return &FilterError{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a FilterError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var fe *FilterError
	if errors.As(err, &fe) {
		return fe.Kind
	}

	return ""
}

// IsEnvironmentError reports whether err halted for environmental reasons.
func IsEnvironmentError(err error) bool { return KindOf(err) == KindEnvironment }

// IsFlakyHalt reports whether err is a policy halt on detected flakiness.
func IsFlakyHalt(err error) bool { return KindOf(err) == KindFlaky }

func numberLines(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	var b strings.Builder

	for i, line := range lines {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, line)
	}

	return b.String()
}
