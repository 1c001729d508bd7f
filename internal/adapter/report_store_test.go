package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/deflake/internal/model"
)

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	rs := NewReportStore(NewLocalFSAdapter())

	report := m.RunReport{
		RunID: "01HZX",
		Classes: []m.ClassReport{
			{Class: "pkg.ErrorTest0", Outcome: m.OutcomeStabilized, Iterations: 2, Flaky: []string{"test002"}},
			{Class: "pkg.ErrorTest1", Outcome: m.OutcomeEnvironmentError, Iterations: 1, Error: "killed"},
		},
	}

	require.NoError(t, rs.SaveReport(m.Path(dir), report))

	raw, err := os.ReadFile(filepath.Join(dir, ReportFileName))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "outcome: stabilized")

	got, err := rs.LoadReport(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestLocalReportStore_LoadMissing(t *testing.T) {
	rs := NewReportStore(NewLocalFSAdapter())

	_, err := rs.LoadReport(m.Path(t.TempDir()))
	require.Error(t, err)
}
