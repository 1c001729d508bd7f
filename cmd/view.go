package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/deflake/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of the last filter run",
		Long:  "View the run report saved by the last filter run in the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			report, err := reportStore.LoadReport(m.Path(s.cfg.OutputDir))
			if err != nil {
				return err
			}

			return s.ui.DisplayReport(report)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
