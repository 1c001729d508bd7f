package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ExitKilled is the exit status reported for a JVM killed by SIGKILL, which in
// practice means the kernel OOM killer or an external watchdog.
const ExitKilled = 137

// ErrHarnessStart is returned when the test runner process cannot be started
// at all (missing java binary, bad working directory).
var ErrHarnessStart = errors.New("execution harness could not start")

// ErrCompilerStart is returned when the compiler process cannot be started.
var ErrCompilerStart = errors.New("compiler could not start")

// ExecutionStatus is the outcome of one JUnit run.
type ExecutionStatus struct {
	ExitCode int
	TimedOut bool
	Stdout   []string
	Stderr   []string
	Duration time.Duration
}

// Passed reports whether every test in the run passed.
func (s ExecutionStatus) Passed() bool {
	return !s.TimedOut && s.ExitCode == 0
}

// Severity is a compiler diagnostic kind.
type Severity string

const (
	// SeverityError fails the compilation.
	SeverityError Severity = "ERROR"
	// SeverityWarning is informational.
	SeverityWarning Severity = "WARNING"
	// SeverityNote is informational.
	SeverityNote Severity = "NOTE"
)

// Diagnostic is a single compiler message.
type Diagnostic struct {
	Severity Severity
	Source   Path
	Line     int
	Message  string
	// Context holds the source excerpt lines javac prints under the message.
	Context []string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", d.Source, d.Line, strings.ToLower(string(d.Severity)), d.Message)
}

// CompileError is returned by the compiler when a source file does not compile.
type CompileError struct {
	Source      Path
	Diagnostics []Diagnostic
	Output      []string
}

func (e *CompileError) Error() string {
	errs := e.Errors()
	if len(errs) == 0 {
		return fmt.Sprintf("compilation of %s failed without diagnostics", e.Source)
	}

	return fmt.Sprintf("compilation of %s failed with %d error(s); first: %s", e.Source, len(errs), errs[0])
}

// Errors returns the ERROR-severity diagnostics.
func (e *CompileError) Errors() []Diagnostic {
	var out []Diagnostic

	for _, d := range e.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}

	return out
}
