package domain

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/mouse-blink/deflake/internal/adapter"
	m "github.com/mouse-blink/deflake/internal/model"
)

// Orchestrator drives one test class to a deterministic pass by repeatedly
// compiling it, running it, and neutralizing the assertions that fail.
type Orchestrator interface {
	Filter(ctx context.Context, source m.ClassSource) (Result, error)
}

// Result is the outcome of a filtering run. On error it still carries the
// flaky methods found and the iterations spent before the halt.
type Result struct {
	Source         m.ClassSource
	Location       m.Path
	Flaky          *m.FlakyRegistry
	Iterations     int
	CompileRepairs int
}

// OrchestratorConfig holds the policy knobs of the filter loop.
type OrchestratorConfig struct {
	TestPrefix  string
	ScratchRoot m.Path
	// HaltOnFlaky stops at the first flaky assertion instead of patching it.
	HaltOnFlaky bool
	// Verbose attaches source and runner output to every FilterError.
	Verbose bool
	// MaxIterations bounds the number of runs; 0 means unbounded.
	MaxIterations int
}

// OrchestratorOption customises an Orchestrator.
type OrchestratorOption func(*orchestrator)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) OrchestratorOption {
	return func(o *orchestrator) {
		o.logger = logger
	}
}

// WithObserver registers a receiver for progress events.
func WithObserver(observer m.Observer) OrchestratorOption {
	return func(o *orchestrator) {
		o.observer = observer
	}
}

// WithRunToken overrides how the per-run scratch directory token is made.
func WithRunToken(token func() string) OrchestratorOption {
	return func(o *orchestrator) {
		o.token = token
	}
}

type orchestrator struct {
	compiler adapter.Compiler
	harness  adapter.Harness
	writer   adapter.ClassWriter
	fs       adapter.FSAdapter
	parser   *FailureParser
	cfg      OrchestratorConfig
	logger   *zap.Logger
	observer m.Observer
	token    func() string
}

// NewOrchestrator constructs an Orchestrator backed by the provided adapters.
func NewOrchestrator(
	compiler adapter.Compiler,
	harness adapter.Harness,
	writer adapter.ClassWriter,
	fs adapter.FSAdapter,
	cfg OrchestratorConfig,
	opts ...OrchestratorOption,
) Orchestrator {
	if cfg.TestPrefix == "" {
		cfg.TestPrefix = DefaultTestPrefix
	}

	if cfg.ScratchRoot == "" {
		cfg.ScratchRoot = m.Path(os.TempDir())
	}

	o := &orchestrator{
		compiler: compiler,
		harness:  harness,
		writer:   writer,
		fs:       fs,
		parser:   NewFailureParser(cfg.TestPrefix),
		cfg:      cfg,
		logger:   zap.NewNop(),
		observer: m.ObserverFunc(func(m.Event) {}),
		token:    func() string { return ulid.Make().String() },
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// filterRun is the state of one Filter call.
type filterRun struct {
	token          string
	source         m.ClassSource
	location       m.Path
	registry       *m.FlakyRegistry
	iteration      int
	runs           int
	compileRepairs int
	logger         *zap.Logger
}

func (r *filterRun) result() Result {
	return Result{
		Source:         r.source,
		Location:       r.location,
		Flaky:          r.registry,
		Iterations:     r.runs,
		CompileRepairs: r.compileRepairs,
	}
}

func (o *orchestrator) Filter(ctx context.Context, source m.ClassSource) (Result, error) {
	run := &filterRun{
		token:    o.token(),
		source:   source,
		registry: m.NewFlakyRegistry(),
		logger:   o.logger.With(zap.String("class", source.QualifiedName())),
	}

	for ; ; run.iteration++ {
		if ctx.Err() != nil {
			return run.result(), o.cancelled(ctx, run, StateWrite)
		}

		if o.cfg.MaxIterations > 0 && run.iteration >= o.cfg.MaxIterations {
			return run.result(), o.halt(run, StateWrite,
				internalError("no deterministic pass after %d iterations", o.cfg.MaxIterations), nil)
		}

		done, err := o.iterate(ctx, run)
		if err != nil {
			return run.result(), err
		}

		if done {
			run.logger.Info("class stabilized",
				zap.Int("iterations", run.runs),
				zap.Strings("flaky", run.registry.Names()))
			o.notify(run, m.Event{Kind: m.EventStabilized, Message: fmt.Sprintf("%d flaky method(s)", run.registry.Len())})

			return run.result(), nil
		}
	}
}

// iterate performs WRITE, COMPILE, RUN and, on failure, PATCH. The scratch
// directory of the iteration is removed on every exit path.
func (o *orchestrator) iterate(ctx context.Context, run *filterRun) (bool, error) {
	run.logger.Debug("iteration started", zap.Int("iteration", run.iteration))
	o.notify(run, m.Event{Kind: m.EventIterationStarted})

	if err := o.write(run); err != nil {
		return false, err
	}

	scratch := o.fs.JoinPath(string(o.cfg.ScratchRoot), fmt.Sprintf("%s-%s-%d", run.source.Name, run.token, run.iteration))
	if err := o.fs.MkdirAll(scratch); err != nil {
		fe := environmentError("cannot create scratch directory %s", scratch)
		fe.Err = err

		return false, o.halt(run, StateWrite, fe, nil)
	}

	defer o.cleanup(run, scratch)

	if err := o.compile(ctx, run, scratch); err != nil {
		return false, err
	}

	status, err := o.harness.Run(ctx, run.source.QualifiedName(), scratch)
	run.runs++

	// A cancelled run is killed, and its exit status says nothing about the class.
	if ctx.Err() != nil {
		return false, o.cancelled(ctx, run, StateRun)
	}

	if err != nil {
		fe := environmentError("execution harness failed")
		fe.Err = err

		return false, o.halt(run, StateRun, fe, nil)
	}

	run.logger.Debug("run finished",
		zap.Int("iteration", run.iteration),
		zap.Int("exit_code", status.ExitCode),
		zap.Bool("timed_out", status.TimedOut),
		zap.Duration("duration", status.Duration))

	switch {
	case status.Passed():
		return true, nil
	case status.TimedOut:
		return false, o.halt(run, StateRun, environmentError("execution harness timed out"), &status)
	case status.ExitCode == m.ExitKilled:
		return false, o.halt(run, StateRun,
			environmentError("test JVM was killed (exit %d), probably out of memory", status.ExitCode), &status)
	}

	failures, err := o.parser.Parse(status, run.source)
	if err != nil {
		return false, o.halt(run, StateRun, err, &status)
	}

	for _, f := range failures {
		if run.registry.Add(f.Method) {
			run.logger.Info("flaky method found", zap.String("method", f.Method), zap.Int("line", f.Line))
		}

		o.notify(run, m.Event{Kind: m.EventFlakyFound, Method: f.Method, Line: f.Line, Message: run.source.Line(f.Line)})
	}

	if o.cfg.HaltOnFlaky {
		first := failures[0]
		fe := &FilterError{
			Kind:     KindFlaky,
			Message:  fmt.Sprintf("%d flaky assertion(s) found and patching is disabled", len(failures)),
			Method:   first.Method,
			Line:     first.Line,
			LineText: run.source.Line(first.Line),
			Source:   run.source.Text(),
		}

		return false, o.halt(run, StatePatch, fe, &status)
	}

	return false, o.patch(run, failures)
}

func (o *orchestrator) write(run *filterRun) error {
	location, err := o.writer.Write(run.source.Package, run.source.Name, run.source.Text())
	if err != nil {
		fe := environmentError("cannot persist class source")
		fe.Err = err

		return o.halt(run, StateWrite, fe, nil)
	}

	run.location = location

	return nil
}

// compile compiles the persisted source into scratch, repairing known patch
// artifacts in place until it compiles. Repairs do not start a new iteration.
func (o *orchestrator) compile(ctx context.Context, run *filterRun, scratch m.Path) error {
	for {
		err := o.compiler.Compile(ctx, run.location, scratch)
		if ctx.Err() != nil {
			return o.cancelled(ctx, run, StateCompile)
		}

		if err == nil {
			return nil
		}

		var compileErr *m.CompileError
		if !errors.As(err, &compileErr) {
			kind := internalError
			if errors.Is(err, m.ErrCompilerStart) {
				kind = environmentError
			}

			fe := kind("compiler failed")
			fe.Err = err

			return o.halt(run, StateCompile, fe, nil)
		}

		if err := o.repair(run, compileErr); err != nil {
			return err
		}

		if err := o.write(run); err != nil {
			return err
		}
	}
}

func (o *orchestrator) repair(run *filterRun, compileErr *m.CompileError) error {
	diagnostics := compileErr.Errors()
	if len(diagnostics) == 0 {
		fe := internalError("compilation failed without error diagnostics")
		fe.Err = compileErr
		fe.Stderr = compileErr.Output

		return o.halt(run, StateCompileRepair, fe, nil)
	}

	lines := run.source.Lines()
	repairedLines := make(map[int]bool)

	for _, diag := range diagnostics {
		if repairedLines[diag.Line] {
			continue
		}

		patched, err := RepairCompileDiagnostic(lines, diag)
		if err != nil {
			fe := internalError("unrecognized compile diagnostic")
			fe.Line = diag.Line
			fe.LineText = run.source.Line(diag.Line)
			fe.Err = err

			return o.halt(run, StateCompileRepair, fe, nil)
		}

		lines = patched
		repairedLines[diag.Line] = true

		run.logger.Info("compile artifact repaired", zap.Int("line", diag.Line), zap.String("diagnostic", diag.Message))
		o.notify(run, m.Event{Kind: m.EventCompileRepaired, Line: diag.Line, Message: diag.Message})
	}

	next := run.source.WithLines(lines)
	if fingerprint(next) == fingerprint(run.source) {
		return o.halt(run, StateCompileRepair, internalError("compile repair made no progress"), nil)
	}

	run.source = next
	run.compileRepairs++

	return nil
}

func (o *orchestrator) patch(run *filterRun, failures []m.Failure) error {
	lines, err := NeutralizeAll(run.source.Lines(), failures)
	if err != nil {
		fe := internalError("cannot neutralize failing line")
		fe.Err = err

		return o.halt(run, StatePatch, fe, nil)
	}

	next := run.source.WithLines(lines)
	if fingerprint(next) == fingerprint(run.source) {
		first := failures[0]
		fe := internalError("failing lines are already neutralized; no progress possible")
		fe.Method = first.Method
		fe.Line = first.Line
		fe.LineText = run.source.Line(first.Line)

		return o.halt(run, StatePatch, fe, nil)
	}

	run.source = next

	return nil
}

// halt decorates err with the run context and reports it.
func (o *orchestrator) halt(run *filterRun, state State, err error, status *m.ExecutionStatus) error {
	var fe *FilterError
	if !errors.As(err, &fe) {
		fe = internalError("unexpected failure")
		fe.Err = err
	}

	if fe.State == "" {
		fe.State = state
	}

	fe.Class = run.source.QualifiedName()
	fe.Iteration = run.iteration

	if fe.Line > 0 && fe.LineText == "" {
		fe.LineText = run.source.Line(fe.Line)
	}

	if o.cfg.Verbose {
		fe.Source = run.source.Text()

		if status != nil {
			fe.Stdout = status.Stdout
			fe.Stderr = status.Stderr
		}
	}

	run.logger.Error("filtering halted",
		zap.String("kind", string(fe.Kind)),
		zap.String("state", string(fe.State)),
		zap.Int("iteration", run.iteration),
		zap.Error(fe))
	o.notify(run, m.Event{Kind: m.EventHalted, Method: fe.Method, Line: fe.Line, Message: fe.Error()})

	return fe
}

func (o *orchestrator) cancelled(ctx context.Context, run *filterRun, state State) error {
	fe := environmentError("filtering cancelled")
	fe.Err = ctx.Err()

	return o.halt(run, state, fe, nil)
}

func (o *orchestrator) cleanup(run *filterRun, scratch m.Path) {
	if err := o.fs.RemoveAll(scratch); err != nil {
		run.logger.Warn("failed to remove scratch directory", zap.String("path", string(scratch)), zap.Error(err))
	}
}

func (o *orchestrator) notify(run *filterRun, event m.Event) {
	event.Class = run.source.QualifiedName()
	event.Iteration = run.iteration
	o.observer.Notify(event)
}

func fingerprint(source m.ClassSource) [32]byte {
	return blake3.Sum256([]byte(source.Text()))
}
