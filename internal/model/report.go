package model

import (
	"sort"
	"sync"
)

// Failure is one failing assertion recovered from a JUnit report.
type Failure struct {
	Method string
	Line   int
}

// FlakyRegistry accumulates the names of test methods found to be flaky
// during one filtering run. It only grows.
type FlakyRegistry struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// NewFlakyRegistry returns an empty registry.
func NewFlakyRegistry() *FlakyRegistry {
	return &FlakyRegistry{names: make(map[string]struct{})}
}

// Add records name and reports whether it was new.
func (r *FlakyRegistry) Add(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[name]; ok {
		return false
	}

	r.names[name] = struct{}{}

	return true
}

// Contains reports whether name was recorded.
func (r *FlakyRegistry) Contains(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.names[name]

	return ok
}

// Len returns the number of recorded names.
func (r *FlakyRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.names)
}

// Names returns the recorded names sorted ascending, which for generated
// names is also run order.
func (r *FlakyRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}

	sort.Strings(out)

	return out
}

// Outcome is the terminal state of one class-filtering run.
type Outcome string

const (
	// OutcomeStabilized means the class passed deterministically.
	OutcomeStabilized Outcome = "stabilized"
	// OutcomeEnvironmentError means the environment prevented a verdict.
	OutcomeEnvironmentError Outcome = "environment_error"
	// OutcomeInternalError means a collaborator broke its contract.
	OutcomeInternalError Outcome = "internal_error"
	// OutcomeFlakyHalt means flakiness was found and patching was disabled.
	OutcomeFlakyHalt Outcome = "flaky_halt"
)

// ClassReport summarises one class-filtering run for persistence.
type ClassReport struct {
	Class          string   `yaml:"class"`
	Outcome        Outcome  `yaml:"outcome"`
	Location       Path     `yaml:"location,omitempty"`
	Iterations     int      `yaml:"iterations"`
	CompileRepairs int      `yaml:"compile_repairs,omitempty"`
	Flaky          []string `yaml:"flaky,omitempty"`
	Error          string   `yaml:"error,omitempty"`
}

// RunReport is the persisted summary of one `deflake filter` invocation.
type RunReport struct {
	RunID   string        `yaml:"run_id"`
	Classes []ClassReport `yaml:"classes"`
}

// NeutralizedLine is a line of a class source that carries a flaky marker.
type NeutralizedLine struct {
	Line int
	Text string
}
