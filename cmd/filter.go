package cmd

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/deflake/internal/config"
	"github.com/mouse-blink/deflake/internal/controller"
	"github.com/mouse-blink/deflake/internal/domain"
	m "github.com/mouse-blink/deflake/internal/model"
)

const filterLongDescription = `Assemble every matching suite into a JUnit class, then compile and run
each class until it passes deterministically. Failing assertions are
neutralized in place between runs. Stabilized classes and the run report
(deflake-report.yaml) are written to the output directory.

The command exits non-zero when any class halts: the environment failed
(timeouts, killed JVMs, missing javac/java), the runner output could not be
understood, or flaky assertions were found with --halt-on-flaky.`

var filterParallelFlag int
var filterHaltFlag bool
var filterMaxIterationsFlag int
var filterTimeoutFlag time.Duration
var filterScratchFlag string
var filterClasspathFlags []string

// filterCmd represents the filter command.
var filterCmd = newFilterCmd()

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [suite globs...]",
		Short: "Neutralize flaky assertions until every class passes",
		Long:  filterLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFilter,
	}
	cmd.Flags().IntVarP(&filterParallelFlag, "parallel", "p", 0, "number of classes filtered at once (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&filterHaltFlag, "halt-on-flaky", false, "stop at the first flaky assertion instead of neutralizing it")
	cmd.Flags().IntVar(&filterMaxIterationsFlag, "max-iterations", 0, "maximum runs per class, 0 for no limit")
	cmd.Flags().DurationVarP(&filterTimeoutFlag, "timeout", "t", 0, "timeout for each compile and each test run")
	cmd.Flags().StringVar(&filterScratchFlag, "scratch-dir", "", "parent directory of per-run scratch directories")
	cmd.Flags().StringArrayVar(&filterClasspathFlags, "classpath", nil, "classpath entry for compiling and running (can be repeated)")

	return cmd
}

func applyFilterFlags(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		flags := cmd.Flags()

		if flags.Changed("parallel") {
			cfg.Parallel = filterParallelFlag
		}

		if flags.Changed("halt-on-flaky") {
			cfg.HaltOnFlaky = filterHaltFlag
		}

		if flags.Changed("max-iterations") {
			cfg.MaxIterations = filterMaxIterationsFlag
		}

		if flags.Changed("timeout") {
			cfg.Timeout = filterTimeoutFlag
		}

		if flags.Changed("scratch-dir") {
			cfg.ScratchDir = filterScratchFlag
		}

		if flags.Changed("classpath") {
			cfg.Classpath = append(cfg.Classpath, filterClasspathFlags...)
		}
	}
}

func runFilter(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, applyFilterFlags(cmd))
	if err != nil {
		return err
	}
	defer s.close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	wf := newWorkflow(s.cfg, s.ui, s.logger)

	if err := s.ui.Start(controller.WithTotal(0), controller.WithInterrupt(cancel)); err != nil {
		return err
	}

	started := time.Now()

	outcomes, err := wf.Filter(ctx, domain.FilterArgs{
		AssembleArgs: domain.AssembleArgs{Suites: args},
		Parallel:     s.cfg.Parallel,
		Reports:      m.Path(s.cfg.OutputDir),
	})

	s.ui.Close()

	if outcomes == nil && err != nil {
		return err
	}

	if displayErr := s.ui.DisplayReport(domain.BuildReport("", outcomes)); displayErr != nil {
		return displayErr
	}

	errorf(cmd, "finished in %s\n", formatDuration(time.Since(started)))

	if s.cfg.Verbose {
		printHaltDetails(cmd, outcomes)
	}

	if err != nil {
		return err
	}

	return domain.HaltErrors(outcomes)
}

func printHaltDetails(cmd *cobra.Command, outcomes []domain.ClassOutcome) {
	for _, o := range outcomes {
		var fe *domain.FilterError
		if !errors.As(o.Err, &fe) {
			continue
		}

		if detail := fe.Detail(); detail != "" {
			errorf(cmd, "\n== %s ==\n%s", o.Suite.QualifiedName(), detail)
		}
	}
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
