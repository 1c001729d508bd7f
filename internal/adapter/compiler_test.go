package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/deflake/internal/model"
)

func TestParseDiagnostics(t *testing.T) {
	output := []string{
		"/tmp/out/pkg/ErrorTest0.java:17: error: exception java.io.IOException is never thrown in body of corresponding try statement",
		"    } catch (java.io.IOException e) {",
		"      ^",
		"/tmp/out/pkg/ErrorTest0.java:4: warning: [deprecation] Foo in bar has been deprecated",
		"import bar.Foo;",
		"Note: Some input files use unchecked or unsafe operations.",
		"1 error",
		"1 warning",
	}

	diags := ParseDiagnostics(output)
	require.Len(t, diags, 2)

	assert.Equal(t, m.SeverityError, diags[0].Severity)
	assert.Equal(t, 17, diags[0].Line)
	assert.Equal(t, m.Path("/tmp/out/pkg/ErrorTest0.java"), diags[0].Source)
	assert.Contains(t, diags[0].Message, "is never thrown in body of corresponding try statement")
	assert.Equal(t, []string{"    } catch (java.io.IOException e) {", "      ^"}, diags[0].Context)

	assert.Equal(t, m.SeverityWarning, diags[1].Severity)
	assert.Equal(t, 4, diags[1].Line)
	assert.Equal(t, []string{"import bar.Foo;"}, diags[1].Context)
}

func TestJavacAdapter_Compile_Success(t *testing.T) {
	dir := t.TempDir()
	javac := writeScript(t, dir, "javac", `echo "$@" > "`+filepath.Join(dir, "args")+`"; exit 0`)
	out := filepath.Join(dir, "classes")

	compiler := NewJavacAdapter(JavacConfig{Binary: javac, Classpath: []string{"junit.jar", "hamcrest.jar"}})
	require.NoError(t, compiler.Compile(context.Background(), m.Path("Foo.java"), m.Path(out)))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	args, err := os.ReadFile(filepath.Join(dir, "args"))
	require.NoError(t, err)
	junit, err := filepath.Abs("junit.jar")
	require.NoError(t, err)
	hamcrest, err := filepath.Abs("hamcrest.jar")
	require.NoError(t, err)
	assert.Equal(t, "-d "+out+" -cp "+junit+string(os.PathListSeparator)+hamcrest+" Foo.java\n", string(args))
}

func TestJavacAdapter_Compile_Diagnostics(t *testing.T) {
	dir := t.TempDir()
	javac := writeScript(t, dir, "javac", `echo "Foo.java:3: error: ';' expected" >&2; echo "1 error" >&2; exit 1`)

	compiler := NewJavacAdapter(JavacConfig{Binary: javac})
	err := compiler.Compile(context.Background(), m.Path("Foo.java"), m.Path(filepath.Join(dir, "classes")))
	require.Error(t, err)

	var compileErr *m.CompileError
	require.True(t, errors.As(err, &compileErr))
	require.Len(t, compileErr.Errors(), 1)
	assert.Equal(t, 3, compileErr.Errors()[0].Line)
	assert.Equal(t, "';' expected", compileErr.Errors()[0].Message)
}

func TestJavacAdapter_Compile_WarningsOnlyDoNotFail(t *testing.T) {
	dir := t.TempDir()
	javac := writeScript(t, dir, "javac", `echo "Foo.java:3: warning: unchecked" >&2; exit 0`)

	compiler := NewJavacAdapter(JavacConfig{Binary: javac})
	require.NoError(t, compiler.Compile(context.Background(), m.Path("Foo.java"), m.Path(filepath.Join(dir, "classes"))))
}

func TestJavacAdapter_Compile_MissingBinary(t *testing.T) {
	compiler := NewJavacAdapter(JavacConfig{Binary: filepath.Join(t.TempDir(), "nope")})
	err := compiler.Compile(context.Background(), m.Path("Foo.java"), m.Path(filepath.Join(t.TempDir(), "classes")))
	require.ErrorIs(t, err, m.ErrCompilerStart)
}
