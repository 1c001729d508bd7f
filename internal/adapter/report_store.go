package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/deflake/internal/model"
)

// ReportFileName is the file a run report is stored under in the output dir.
const ReportFileName = "deflake-report.yaml"

// ReportStore persists and retrieves filter run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
	LoadReport(dir m.Path) (m.RunReport, error)
}

// LocalReportStore stores reports as YAML through an FSAdapter.
type LocalReportStore struct {
	fs FSAdapter
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore(fs FSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveReport writes report to dir/deflake-report.yaml, replacing any older one.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	path := rs.fs.JoinPath(string(dir), ReportFileName)
	if err := rs.fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads the report stored in dir.
func (rs *LocalReportStore) LoadReport(dir m.Path) (m.RunReport, error) {
	path := rs.fs.JoinPath(string(dir), ReportFileName)

	data, err := rs.fs.ReadFile(path)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}
