package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/deflake/internal/config"
	"github.com/mouse-blink/deflake/internal/controller"
	controllermocks "github.com/mouse-blink/deflake/internal/controller/mocks"
	"github.com/mouse-blink/deflake/internal/domain"
	domainmocks "github.com/mouse-blink/deflake/internal/domain/mocks"
	m "github.com/mouse-blink/deflake/internal/model"
)

type cliFixture struct {
	workflow *domainmocks.MockWorkflow
	ui       *controllermocks.MockUI
	cfg      config.Config
	uiMode   controller.Mode
	stdout   bytes.Buffer
	stderr   bytes.Buffer
}

// newCLIFixture swaps the package factories for mocks and restores them when
// the test ends.
func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	f := &cliFixture{
		workflow: domainmocks.NewMockWorkflow(t),
		ui:       controllermocks.NewMockUI(t),
	}

	originalWorkflow, originalUI, originalLogger := newWorkflow, newUI, newLogger

	newWorkflow = func(cfg config.Config, _ m.Observer, _ *zap.Logger) domain.Workflow {
		f.cfg = cfg
		return f.workflow
	}
	newUI = func(_ *cobra.Command, mode controller.Mode) controller.UI {
		f.uiMode = mode
		return f.ui
	}
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }

	t.Cleanup(func() {
		newWorkflow, newUI, newLogger = originalWorkflow, originalUI, originalLogger
	})

	return f
}

func (f *cliFixture) execute(sub *cobra.Command, args ...string) error {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&f.stdout)
	cmd.SetErr(&f.stderr)
	cmd.SetArgs(args)

	return cmd.Execute()
}
