package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassSource(t *testing.T) {
	src := NewClassSource("pkg", "RegressionTest0", "package pkg;\n\npublic class RegressionTest0 {\n}\n")

	assert.Equal(t, 4, src.LineCount())
	assert.Equal(t, "package pkg;", src.Line(1))
	assert.Equal(t, "}", src.Line(4))
	assert.Empty(t, src.Line(0))
	assert.Empty(t, src.Line(5))
	assert.Equal(t, "pkg.RegressionTest0", src.QualifiedName())
	assert.Equal(t, "package pkg;\n\npublic class RegressionTest0 {\n}\n", src.Text())
}

func TestClassSource_IsImmutable(t *testing.T) {
	src := NewClassSource("", "A", "a\nb")

	lines := src.Lines()
	lines[0] = "changed"
	assert.Equal(t, "a", src.Line(1))

	next := src.WithLines(lines)
	lines[1] = "changed again"

	assert.Equal(t, "a", src.Line(1))
	assert.Equal(t, "changed", next.Line(1))
	assert.Equal(t, "b", next.Line(2))
	assert.Equal(t, "A", next.QualifiedName())
}

func TestRecordedSequence_Render(t *testing.T) {
	lines, err := RecordedSequence{Statements: []string{"int x = 1;", "assertTrue(x == 1);"}}.Render()
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	_, err = RecordedSequence{}.Render()
	require.Error(t, err)

	_, err = RecordedSequence{Statements: []string{"a();", "  "}}.Render()
	require.ErrorContains(t, err, "statement 2 is blank")
}

func TestStatementLines(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      []string
		wantErr   string
	}{
		{name: "single line", statement: "int x = 1;  ", want: []string{"int x = 1;"}},
		{name: "single line without terminator", statement: "x++", want: []string{"x++"}},
		{
			name:      "block",
			statement: "try {\n  foo(); // call\n} catch (Exception e) {\n}",
			want:      []string{"try {", "  foo(); // call", "} catch (Exception e) {", "}"},
		},
		{name: "switch label", statement: "switch (x) {\ncase 1:\n  y();\n}", want: []string{"switch (x) {", "case 1:", "  y();", "}"}},
		{name: "broken call", statement: "assertEquals(\n 1,\n counter.next());", wantErr: `line 1 of a multi-line statement breaks inside an expression: "assertEquals("`},
		{name: "broken declaration", statement: "int x =\n 5;", wantErr: "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := StatementLines(tt.statement)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestRecordedSequence_RenderRejectsBrokenStatement(t *testing.T) {
	_, err := RecordedSequence{Statements: []string{"a();", "assertEquals(\n1,\ncounter.next());"}}.Render()
	require.ErrorContains(t, err, "statement 2: line 1")
}

func TestSuite_AsSequences(t *testing.T) {
	suite := Suite{Class: "A", Sequences: []RecordedSequence{{Statements: []string{"a();"}}, {Statements: []string{"b();"}}}}

	seqs := suite.AsSequences()
	require.Len(t, seqs, 2)

	lines, err := seqs[1].Render()
	require.NoError(t, err)
	assert.Equal(t, []string{"b();"}, lines)
	assert.Equal(t, "A", suite.QualifiedName())
}
