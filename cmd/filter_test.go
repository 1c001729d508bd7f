package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mouse-blink/deflake/internal/config"
	"github.com/mouse-blink/deflake/internal/controller"
	"github.com/mouse-blink/deflake/internal/domain"
	m "github.com/mouse-blink/deflake/internal/model"
)

func stabilized(class string) domain.ClassOutcome {
	return domain.ClassOutcome{
		Suite:  m.Suite{Package: "pkg", Class: class},
		Result: domain.Result{Iterations: 1, Flaky: m.NewFlakyRegistry()},
	}
}

func (f *cliFixture) expectFilterDisplay() {
	f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().Close().Return().Once()
	f.ui.EXPECT().DisplayReport(mock.Anything).Return(nil).Once()
}

func TestFilterCmd_PassesFlagsThrough(t *testing.T) {
	f := newCLIFixture(t)
	f.expectFilterDisplay()

	out := t.TempDir()

	f.workflow.EXPECT().Filter(mock.Anything, mock.MatchedBy(func(args domain.FilterArgs) bool {
		return len(args.Suites) == 2 &&
			args.Suites[0] == "suites/*.yaml" &&
			args.Parallel == 3 &&
			args.Reports == m.Path(out)
	})).Return([]domain.ClassOutcome{stabilized("A")}, nil).Once()

	err := f.execute(newFilterCmd(),
		"--output", out, "filter",
		"--parallel", "3", "--halt-on-flaky", "--max-iterations", "9", "--timeout", "30s",
		"--classpath", "lib/junit.jar",
		"suites/*.yaml", "more/**/*.yaml")
	require.NoError(t, err)

	assert.True(t, f.cfg.HaltOnFlaky)
	assert.Equal(t, 9, f.cfg.MaxIterations)
	assert.Equal(t, 30*time.Second, f.cfg.Timeout)
	assert.Equal(t, []string{"lib/junit.jar"}, f.cfg.Classpath)
	assert.Equal(t, out, f.cfg.OutputDir)
	assert.Contains(t, f.stderr.String(), "finished in")
}

func TestFilterCmd_ConfigFileWithFlagOverride(t *testing.T) {
	f := newCLIFixture(t)
	f.expectFilterDisplay()

	path := filepath.Join(t.TempDir(), "deflake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel: 5\nmax_iterations: 7\ntest_prefix: regression\n"), 0o600))

	f.workflow.EXPECT().Filter(mock.Anything, mock.MatchedBy(func(args domain.FilterArgs) bool {
		return args.Parallel == 5
	})).Return([]domain.ClassOutcome{stabilized("A")}, nil).Once()

	err := f.execute(newFilterCmd(), "--config", path, "filter", "--max-iterations", "2", "suites/*.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2, f.cfg.MaxIterations)
	assert.Equal(t, "regression", f.cfg.TestPrefix)
}

func TestFilterCmd_DisplayMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deflake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: tui\n"), 0o600))

	tests := []struct {
		name string
		args []string
		want controller.Mode
	}{
		{"from config", []string{"--config", path}, controller.ModeTUI},
		{"no-tui flag wins", []string{"--config", path, "--no-tui"}, controller.ModePlain},
		{"default", nil, controller.ModeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			f.expectFilterDisplay()
			f.workflow.EXPECT().Filter(mock.Anything, mock.Anything).
				Return([]domain.ClassOutcome{stabilized("A")}, nil).Once()

			args := append(append([]string{}, tt.args...), "filter", "suites/*.yaml")
			require.NoError(t, f.execute(newFilterCmd(), args...))

			assert.Equal(t, tt.want, f.uiMode)
		})
	}
}

func TestFilterCmd_HaltedClassFailsCommand(t *testing.T) {
	f := newCLIFixture(t)
	f.expectFilterDisplay()

	halted := domain.ClassOutcome{
		Suite: m.Suite{Package: "pkg", Class: "B"},
		Result: domain.Result{Iterations: 1, Flaky: m.NewFlakyRegistry()},
		Err: &domain.FilterError{
			Kind:    domain.KindEnvironment,
			State:   domain.StateRun,
			Message: "execution harness timed out",
			Stdout:  []string{"JUnit version 4.13.2"},
		},
	}

	f.workflow.EXPECT().Filter(mock.Anything, mock.Anything).
		Return([]domain.ClassOutcome{stabilized("A"), halted}, nil).Once()

	err := f.execute(newFilterCmd(), "--verbose", "filter", "suites/*.yaml")
	require.ErrorContains(t, err, "1 of 2 class(es) halted")
	assert.True(t, domain.IsEnvironmentError(err))

	assert.True(t, f.cfg.Verbose)
	assert.Contains(t, f.stderr.String(), "== pkg.B ==")
	assert.Contains(t, f.stderr.String(), "JUnit version 4.13.2")
}

func TestFilterCmd_WorkflowErrorBeforeFiltering(t *testing.T) {
	f := newCLIFixture(t)
	f.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().Close().Return().Once()

	f.workflow.EXPECT().Filter(mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	err := f.execute(newFilterCmd(), "filter", "suites/*.yaml")
	require.ErrorIs(t, err, assert.AnError)
}

func TestFilterCmd_RequiresSuites(t *testing.T) {
	f := newCLIFixture(t)

	err := f.execute(newFilterCmd(), "filter")
	require.Error(t, err)
}

func TestFilterCmd_InvalidConfig(t *testing.T) {
	f := newCLIFixture(t)

	path := filepath.Join(t.TempDir(), "deflake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paralel: 2\n"), 0o600))

	err := f.execute(newFilterCmd(), "--config", path, "filter", "suites/*.yaml")
	require.ErrorContains(t, err, "paralel")
}

func TestBuildWorkflow(t *testing.T) {
	wf := buildWorkflow(config.Default(), m.ObserverFunc(func(m.Event) {}), zap.NewNop())
	require.NotNil(t, wf)
}
