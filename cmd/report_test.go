package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/deflake/internal/model"
)

var errSuiteMissing = errors.New("no suite matches")

func TestReportCmd_ListsMarkers(t *testing.T) {
	f := newCLIFixture(t)

	path := filepath.Join(t.TempDir(), "ErrorTest0.java")
	source := "public class ErrorTest0 {\n" +
		"    // flaky: org.junit.Assert.assertEquals(1, x);\n" +
		"    int y = 0; // flaky: compute()\n" +
		"}\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))

	f.ui.EXPECT().DisplayNeutralized(m.Path(path), []m.NeutralizedLine{
		{Line: 2, Text: "    // flaky: org.junit.Assert.assertEquals(1, x);"},
		{Line: 3, Text: "    int y = 0; // flaky: compute()"},
	}).Return(nil).Once()

	err := f.execute(newReportCmd(), "report", path)
	require.NoError(t, err)
}

func TestReportCmd_MissingFile(t *testing.T) {
	f := newCLIFixture(t)

	err := f.execute(newReportCmd(), "report", filepath.Join(t.TempDir(), "Absent.java"))
	require.ErrorContains(t, err, "read class source")
}
