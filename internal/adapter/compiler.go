package adapter

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	m "github.com/mouse-blink/deflake/internal/model"
)

// Compiler compiles one Java source file into a class output directory.
type Compiler interface {
	// Compile returns a *model.CompileError carrying every diagnostic when the
	// source does not compile. Warnings alone never fail the call.
	Compile(ctx context.Context, source m.Path, outputDir m.Path) error
}

// JavacConfig configures the javac-backed compiler.
type JavacConfig struct {
	Binary    string
	Classpath []string
	Args      []string
	Timeout   time.Duration
}

// JavacAdapter shells out to javac.
type JavacAdapter struct {
	cfg JavacConfig
}

// NewJavacAdapter constructs a JavacAdapter; an empty binary means "javac".
func NewJavacAdapter(cfg JavacConfig) *JavacAdapter {
	if cfg.Binary == "" {
		cfg.Binary = "javac"
	}

	cfg.Classpath = absoluteClasspath(cfg.Classpath)

	return &JavacAdapter{cfg: cfg}
}

var (
	diagnosticPattern = regexp.MustCompile(`^(.+\.java):(\d+): (error|warning|note): (.*)$`)
	summaryPattern    = regexp.MustCompile(`^\d+ (errors?|warnings?)$`)
)

// Compile runs javac -d outputDir on source.
func (a *JavacAdapter) Compile(ctx context.Context, source m.Path, outputDir m.Path) error {
	if err := os.MkdirAll(string(outputDir), 0o750); err != nil {
		return fmt.Errorf("failed to create compiler output dir %s: %w", outputDir, err)
	}

	args := []string{"-d", string(outputDir)}
	if len(a.cfg.Classpath) > 0 {
		args = append(args, "-cp", strings.Join(a.cfg.Classpath, string(os.PathListSeparator)))
	}

	args = append(args, a.cfg.Args...)
	args = append(args, string(source))

	res, err := runProcess(ctx, a.cfg.Timeout, "", a.cfg.Binary, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", m.ErrCompilerStart, a.cfg.Binary, err)
	}

	if res.TimedOut {
		return fmt.Errorf("%w: %s timed out after %s", m.ErrCompilerStart, a.cfg.Binary, a.cfg.Timeout)
	}

	if res.ExitCode == 0 {
		return nil
	}

	output := append(append([]string{}, res.Stderr...), res.Stdout...)

	return &m.CompileError{
		Source:      source,
		Diagnostics: ParseDiagnostics(output),
		Output:      output,
	}
}

// ParseDiagnostics extracts javac diagnostics from its textual output. Lines
// following a diagnostic header up to the next header are kept as context.
func ParseDiagnostics(lines []string) []m.Diagnostic {
	var (
		out     []m.Diagnostic
		current *m.Diagnostic
	)

	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, line := range lines {
		if match := diagnosticPattern.FindStringSubmatch(line); match != nil {
			flush()

			n, _ := strconv.Atoi(match[2])
			current = &m.Diagnostic{
				Severity: m.Severity(strings.ToUpper(match[3])),
				Source:   m.Path(match[1]),
				Line:     n,
				Message:  match[4],
			}

			continue
		}

		if summaryPattern.MatchString(line) || strings.HasPrefix(line, "Note: ") {
			flush()

			continue
		}

		if current != nil {
			current.Context = append(current.Context, line)
		}
	}

	flush()

	return out
}
