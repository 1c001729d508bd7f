package domain

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/deflake/internal/model"
)

func sixtyLineClass() m.ClassSource {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = "        // line"
	}

	return m.NewClassSource("pkg", "ErrorTest0", strings.Join(lines, "\n"))
}

func report(lines ...string) m.ExecutionStatus {
	return m.ExecutionStatus{ExitCode: 1, Stdout: lines}
}

func TestLineCursor(t *testing.T) {
	c := NewLineCursor([]string{"a", "b1", "c", "b2"})
	re := regexp.MustCompile(`^b(\d)$`)

	match, line, ok := c.ScanTo(re)
	require.True(t, ok)
	assert.Equal(t, "b1", line)
	assert.Equal(t, "1", match[1])
	assert.Equal(t, 2, c.Position())

	match, _, ok = c.ScanTo(re)
	require.True(t, ok)
	assert.Equal(t, "2", match[1])
	assert.True(t, c.Done())

	_, _, ok = c.ScanTo(re)
	assert.False(t, ok)

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestFailureParser_Parse(t *testing.T) {
	status := report(
		"JUnit version 4.13.2",
		"..E.E",
		"Time: 0.012",
		"There were 2 failures:",
		"1) test002(pkg.ErrorTest0)",
		"java.lang.AssertionError: expected:<1> but was:<0>",
		"\tat org.junit.Assert.fail(Assert.java:89)",
		"\tat pkg.Other.test002(Other.java:7)",
		"\tat pkg.ErrorTest0.test002(ErrorTest0.java:42)",
		"2) test003(pkg.ErrorTest0)",
		"java.lang.AssertionError",
		"\tat pkg.ErrorTest0.test003(ErrorTest0.java:51)",
		"",
		"FAILURES!!!",
		"Tests run: 3,  Failures: 2",
	)

	failures, err := NewFailureParser("test").Parse(status, sixtyLineClass())
	require.NoError(t, err)

	want := []m.Failure{{Method: "test002", Line: 42}, {Method: "test003", Line: 51}}
	if diff := cmp.Diff(want, failures); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestFailureParser_SingleFailureDefaultPackage(t *testing.T) {
	class := m.NewClassSource("", "RegressionTest0", strings.Repeat("x\n", 10))
	status := report(
		"There was 1 failure:",
		"1) test1(RegressionTest0)",
		"\tat RegressionTest0.test1(RegressionTest0.java:3)",
	)

	failures, err := NewFailureParser("").Parse(status, class)
	require.NoError(t, err)

	if diff := cmp.Diff([]m.Failure{{Method: "test1", Line: 3}}, failures); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestFailureParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   m.ExecutionStatus
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "no failure count",
			status:   report("JUnit version 4.13.2", "Exception in thread main"),
			wantKind: KindInternal,
			wantMsg:  "no failure count",
		},
		{
			name:     "no failure count after OOM kill",
			status:   m.ExecutionStatus{ExitCode: m.ExitKilled, Stdout: []string{"JUnit version 4.13.2"}},
			wantKind: KindEnvironment,
			wantMsg:  "killed",
		},
		{
			name:     "zero failures",
			status:   report("There were 0 failures:"),
			wantKind: KindInternal,
			wantMsg:  "invalid failure count",
		},
		{
			name:     "initialization error",
			status:   report("There was 1 failure:", "1) initializationError(pkg.ErrorTest0)", "java.lang.ClassNotFoundException: pkg.ErrorTest0"),
			wantKind: KindEnvironment,
			wantMsg:  "could not initialize",
		},
		{
			name:     "unexpected method name",
			status:   report("There was 1 failure:", "1) setUp(pkg.ErrorTest0)"),
			wantKind: KindInternal,
			wantMsg:  "naming convention",
		},
		{
			name:     "frame missing",
			status:   report("There was 1 failure:", "1) test002(pkg.ErrorTest0)", "\tat org.junit.Assert.fail(Assert.java:89)"),
			wantKind: KindInternal,
			wantMsg:  "no stack frame",
		},
		{
			name:     "line beyond source",
			status:   report("There was 1 failure:", "1) test002(pkg.ErrorTest0)", "\tat pkg.ErrorTest0.test002(ErrorTest0.java:61)"),
			wantKind: KindInternal,
			wantMsg:  "outside the 60-line source",
		},
		{
			name:     "line zero",
			status:   report("There was 1 failure:", "1) test002(pkg.ErrorTest0)", "\tat pkg.ErrorTest0.test002(ErrorTest0.java:0)"),
			wantKind: KindInternal,
			wantMsg:  "outside",
		},
		{
			name: "fewer headers than announced",
			status: report(
				"There were 2 failures:",
				"1) test002(pkg.ErrorTest0)",
				"\tat pkg.ErrorTest0.test002(ErrorTest0.java:42)",
				"FAILURES!!!",
			),
			wantKind: KindInternal,
			wantMsg:  "failure 2 of 2: numbered failure header not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFailureParser("test").Parse(tt.status, sixtyLineClass())
			require.Error(t, err)

			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseFailure_ConsumesCursor(t *testing.T) {
	cursor := NewLineCursor([]string{
		"1) test001(pkg.ErrorTest0)",
		"\tat pkg.ErrorTest0.test001(ErrorTest0.java:10)",
		"2) test001(pkg.ErrorTest0)",
		"\tat pkg.ErrorTest0.test001(ErrorTest0.java:11)",
	})
	parser := NewFailureParser("test")

	first, err := parser.ParseFailure(cursor, sixtyLineClass())
	require.NoError(t, err)
	assert.Equal(t, 10, first.Line)

	second, err := parser.ParseFailure(cursor, sixtyLineClass())
	require.NoError(t, err)
	assert.Equal(t, 11, second.Line)

	_, err = parser.ParseFailure(cursor, sixtyLineClass())
	require.Error(t, err)
}
