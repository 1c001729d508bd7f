// Package cmd provides the root command and CLI setup for deflake.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/deflake/internal/adapter"
	"github.com/mouse-blink/deflake/internal/config"
	"github.com/mouse-blink/deflake/internal/controller"
	"github.com/mouse-blink/deflake/internal/domain"
	"github.com/mouse-blink/deflake/internal/logging"
	m "github.com/mouse-blink/deflake/internal/model"
)

var fsAdapter adapter.FSAdapter = adapter.NewLocalFSAdapter()
var reportStore adapter.ReportStore = adapter.NewReportStore(fsAdapter)

// Factories are package variables so tests can swap in mocks.
var newLogger = logging.New
var newUI = controller.NewUI
var newWorkflow = buildWorkflow

var configFlag string
var outputDirFlag string
var verboseFlag bool
var noTUIFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deflake",
		Short: "Neutralize flaky assertions in generated JUnit regression tests",
		Long: `Deflake assembles generated JUnit 4 regression-test classes from recorded
suites, then compiles and runs each class repeatedly. Assertions that fail
because the code under test is nondeterministic are commented out, or turned
into defaulted declarations, until the class passes on every run.

Suites are selected with glob patterns, including ** for recursion:
  - suites/*.yaml
  - 'generated/**/*.yaml'`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "configuration file (default "+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().StringVarP(&outputDirFlag, "output", "o", "", "directory for stabilized classes and the run report")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging and full source/output on halts")
	cmd.PersistentFlags().BoolVar(&noTUIFlag, "no-tui", false, "plain text output, overriding the ui setting")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies the global flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputDir = outputDirFlag
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verboseFlag
	}

	return cfg, cfg.Validate()
}

// session is what every command needs once configuration is resolved.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	ui     controller.UI
}

func openSession(cmd *cobra.Command, apply func(*config.Config)) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if apply != nil {
		apply(&cfg)

		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	mode := controller.Mode(cfg.UI)
	if noTUIFlag {
		mode = controller.ModePlain
	}

	return &session{cfg: cfg, logger: logger, ui: newUI(cmd, mode)}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// buildWorkflow wires the javac and JUnit adapters into a workflow.
func buildWorkflow(cfg config.Config, observer m.Observer, logger *zap.Logger) domain.Workflow {
	writer := adapter.NewLocalClassWriter(fsAdapter, m.Path(cfg.OutputDir))

	compiler := adapter.NewJavacAdapter(adapter.JavacConfig{
		Binary:    cfg.Javac,
		Classpath: cfg.Classpath,
		Args:      cfg.JavacArgs,
		Timeout:   cfg.Timeout,
	})

	harness := adapter.NewJUnitAdapter(adapter.JUnitConfig{
		Binary:    cfg.Java,
		Classpath: cfg.Classpath,
		JVMArgs:   cfg.JVMArgs,
		Runner:    cfg.Runner,
		Timeout:   cfg.Timeout,
	})

	orch := domain.NewOrchestrator(compiler, harness, writer, fsAdapter,
		domain.OrchestratorConfig{
			TestPrefix:    cfg.TestPrefix,
			ScratchRoot:   m.Path(cfg.ScratchDir),
			HaltOnFlaky:   cfg.HaltOnFlaky,
			Verbose:       cfg.Verbose,
			MaxIterations: cfg.MaxIterations,
		},
		domain.WithLogger(logger),
		domain.WithObserver(observer),
	)

	return domain.NewWorkflow(adapter.NewSuiteStore(fsAdapter), writer, reportStore, orch, cfg.TestPrefix, nil, logger)
}

func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}

func errorf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
