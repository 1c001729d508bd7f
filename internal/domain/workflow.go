// Package domain contains the flaky-assertion filter: rendering and assembly
// of generated test classes, JUnit report parsing, source patching, and the
// compile/run/patch loop.
package domain

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/deflake/internal/adapter"
	m "github.com/mouse-blink/deflake/internal/model"
)

// Workflow assembles suites into classes and filters them.
type Workflow interface {
	Assemble(ctx context.Context, args AssembleArgs) ([]ClassOutcome, error)
	Filter(ctx context.Context, args FilterArgs) ([]ClassOutcome, error)
}

// AssembleArgs selects the suites to assemble.
type AssembleArgs struct {
	Suites []string
}

// FilterArgs selects the suites to filter and how many classes run at once.
type FilterArgs struct {
	AssembleArgs
	Parallel int
	// Reports is the directory the run report is written to; empty skips it.
	Reports m.Path
}

// ClassOutcome is the result for one suite. Err is a *FilterError when the
// class halted; Result is still filled in as far as the run got.
type ClassOutcome struct {
	Suite  m.Suite
	Result Result
	Err    error
}

// Outcome classifies the class outcome for reporting.
func (c ClassOutcome) Outcome() m.Outcome {
	switch {
	case c.Err == nil:
		return m.OutcomeStabilized
	case IsEnvironmentError(c.Err):
		return m.OutcomeEnvironmentError
	case IsFlakyHalt(c.Err):
		return m.OutcomeFlakyHalt
	default:
		return m.OutcomeInternalError
	}
}

type workflow struct {
	suites     adapter.SuiteStore
	writer     adapter.ClassWriter
	reports    adapter.ReportStore
	orch       Orchestrator
	testPrefix string
	runID      func() string
	logger     *zap.Logger
}

// NewWorkflow creates a Workflow from its collaborators.
func NewWorkflow(
	suites adapter.SuiteStore,
	writer adapter.ClassWriter,
	reports adapter.ReportStore,
	orch Orchestrator,
	testPrefix string,
	runID func() string,
	logger *zap.Logger,
) Workflow {
	if testPrefix == "" {
		testPrefix = DefaultTestPrefix
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	if runID == nil {
		runID = func() string { return ulid.Make().String() }
	}

	return &workflow{
		suites:     suites,
		writer:     writer,
		reports:    reports,
		orch:       orch,
		testPrefix: testPrefix,
		runID:      runID,
		logger:     logger,
	}
}

// Assemble renders and writes every suite without compiling it.
func (w *workflow) Assemble(_ context.Context, args AssembleArgs) ([]ClassOutcome, error) {
	suites, err := w.suites.Load(args.Suites)
	if err != nil {
		return nil, err
	}

	outcomes := make([]ClassOutcome, 0, len(suites))

	for _, suite := range suites {
		source, err := AssembleSuite(suite, w.testPrefix)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", suite.Origin, err)
		}

		location, err := w.writer.Write(source.Package, source.Name, source.Text())
		if err != nil {
			return nil, err
		}

		outcomes = append(outcomes, ClassOutcome{
			Suite:  suite,
			Result: Result{Source: source, Location: location, Flaky: m.NewFlakyRegistry()},
		})
	}

	return outcomes, nil
}

// Filter assembles every suite and filters the classes, up to Parallel at a
// time. A class that halts does not stop the others; the returned error is
// reserved for failures before filtering starts and for cancellation.
func (w *workflow) Filter(ctx context.Context, args FilterArgs) ([]ClassOutcome, error) {
	suites, err := w.suites.Load(args.Suites)
	if err != nil {
		return nil, err
	}

	sources := make([]m.ClassSource, len(suites))

	for i, suite := range suites {
		sources[i], err = AssembleSuite(suite, w.testPrefix)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", suite.Origin, err)
		}
	}

	if err := checkDistinctClasses(suites); err != nil {
		return nil, err
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	outcomes := make([]ClassOutcome, len(suites))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i := range suites {
		g.Go(func() error {
			result, err := w.orch.Filter(gctx, sources[i])
			outcomes[i] = ClassOutcome{Suite: suites[i], Result: result, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	if args.Reports != "" && w.reports != nil {
		if err := w.reports.SaveReport(args.Reports, BuildReport(w.runID(), outcomes)); err != nil {
			w.logger.Warn("failed to save run report", zap.Error(err))
		}
	}

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

// checkDistinctClasses rejects two suites that would write the same class
// file, since concurrent runs would overwrite each other.
func checkDistinctClasses(suites []m.Suite) error {
	seen := make(map[string]m.Path, len(suites))

	for _, suite := range suites {
		name := suite.QualifiedName()
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("suites %s and %s both define class %s", prev, suite.Origin, name)
		}

		seen[name] = suite.Origin
	}

	return nil
}

// BuildReport summarises outcomes for persistence.
func BuildReport(runID string, outcomes []ClassOutcome) m.RunReport {
	report := m.RunReport{RunID: runID, Classes: make([]m.ClassReport, 0, len(outcomes))}

	for _, o := range outcomes {
		cr := m.ClassReport{
			Class:          o.Suite.QualifiedName(),
			Outcome:        o.Outcome(),
			Location:       o.Result.Location,
			Iterations:     o.Result.Iterations,
			CompileRepairs: o.Result.CompileRepairs,
		}

		if o.Result.Flaky != nil {
			cr.Flaky = o.Result.Flaky.Names()
		}

		if o.Err != nil {
			cr.Error = o.Err.Error()
		}

		report.Classes = append(report.Classes, cr)
	}

	return report
}

// HaltError reports the classes of a run that halted. It unwraps to every
// class error, so errors.As finds each FilterError.
type HaltError struct {
	Total int
	Errs  []error
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("%d of %d class(es) halted", len(e.Errs), e.Total)
}

func (e *HaltError) Unwrap() []error { return e.Errs }

// HaltErrors returns a *HaltError for the classes that halted, or nil.
func HaltErrors(outcomes []ClassOutcome) error {
	var errs []error

	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return &HaltError{Total: len(outcomes), Errs: errs}
}
