package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/deflake/internal/domain"
	m "github.com/mouse-blink/deflake/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <class source>...",
		Short: "List the neutralized lines of filtered classes",
		Long:  "Scan Java class sources for the markers left by filtering and list every neutralized or repaired line.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return err
			}
			defer s.close()

			for _, arg := range args {
				lines, err := neutralizedLines(m.Path(arg))
				if err != nil {
					return err
				}

				if err := s.ui.DisplayNeutralized(m.Path(arg), lines); err != nil {
					return err
				}
			}

			return nil
		},
	}

	return cmd
}

func neutralizedLines(path m.Path) ([]m.NeutralizedLine, error) {
	raw, err := fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class source: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

	var out []m.NeutralizedLine
	for _, n := range domain.FindNeutralized(lines) {
		out = append(out, m.NeutralizedLine{Line: n, Text: lines[n-1]})
	}

	return out, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
