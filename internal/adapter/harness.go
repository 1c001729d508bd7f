package adapter

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	m "github.com/mouse-blink/deflake/internal/model"
)

// DefaultJUnitRunner is the JUnit 4 console runner whose report format the
// failure parser understands.
const DefaultJUnitRunner = "org.junit.runner.JUnitCore"

// Harness runs a compiled test class and reports what happened.
type Harness interface {
	// Run executes the class's tests with workingDir as the current
	// directory. A failing test is reported through a non-zero exit code; the
	// returned error is reserved for a runner that cannot start, and wraps
	// model.ErrHarnessStart.
	Run(ctx context.Context, qualifiedClassName string, workingDir m.Path) (m.ExecutionStatus, error)
}

// JUnitConfig configures the java-backed harness.
type JUnitConfig struct {
	Binary    string
	Classpath []string
	JVMArgs   []string
	Runner    string
	Timeout   time.Duration
}

// JUnitAdapter runs JUnitCore in a fresh JVM.
type JUnitAdapter struct {
	cfg JUnitConfig
}

// NewJUnitAdapter constructs a JUnitAdapter with defaults for empty fields.
// Relative classpath entries are resolved against the current directory.
func NewJUnitAdapter(cfg JUnitConfig) *JUnitAdapter {
	if cfg.Binary == "" {
		cfg.Binary = "java"
	}

	if cfg.Runner == "" {
		cfg.Runner = DefaultJUnitRunner
	}

	cfg.Classpath = absoluteClasspath(cfg.Classpath)

	return &JUnitAdapter{cfg: cfg}
}

// Run executes the JUnit runner. The working directory is the first
// classpath entry, so classes compiled into it are found.
func (a *JUnitAdapter) Run(ctx context.Context, qualifiedClassName string, workingDir m.Path) (m.ExecutionStatus, error) {
	classpath := append([]string{"."}, a.cfg.Classpath...)

	args := append([]string{}, a.cfg.JVMArgs...)
	args = append(args, "-cp", strings.Join(classpath, string(os.PathListSeparator)), a.cfg.Runner, qualifiedClassName)

	res, err := runProcess(ctx, a.cfg.Timeout, string(workingDir), a.cfg.Binary, args...)
	if err != nil {
		return m.ExecutionStatus{}, fmt.Errorf("%w: %s: %w", m.ErrHarnessStart, a.cfg.Binary, err)
	}

	return m.ExecutionStatus{
		ExitCode: res.ExitCode,
		TimedOut: res.TimedOut,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Duration: res.Duration,
	}, nil
}
