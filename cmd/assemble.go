package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/deflake/internal/domain"
)

// assembleCmd represents the assemble command.
var assembleCmd = newAssembleCmd()

func newAssembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble [suite globs...]",
		Short: "Write the JUnit classes of the matching suites without running them",
		Long:  "Render every matching suite into a JUnit 4 class and write it under the output directory. Nothing is compiled or run.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			wf := newWorkflow(s.cfg, s.ui, s.logger)

			outcomes, err := wf.Assemble(cmd.Context(), domain.AssembleArgs{Suites: args})
			if err != nil {
				return err
			}

			return s.ui.DisplayAssembled(domain.BuildReport("", outcomes).Classes)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(assembleCmd)
}
