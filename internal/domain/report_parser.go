package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/deflake/internal/model"
)

// These patterns are a contract with the JUnitCore text report.
var (
	failureCountPattern  = regexp.MustCompile(`^There (?:was|were) (\d+) failures?:$`)
	failureHeaderPattern = regexp.MustCompile(`^\d+\) ([^(\s]+)\(`)
)

const initializationError = "initializationError"

// FailureParser recovers (method, line) pairs from a JUnit report.
type FailureParser struct {
	methodPattern *regexp.Regexp
}

// NewFailureParser returns a parser for methods named <prefix><digits>.
func NewFailureParser(prefix string) *FailureParser {
	if prefix == "" {
		prefix = DefaultTestPrefix
	}

	return &FailureParser{methodPattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `\d+$`)}
}

// Parse reads the failures reported in status.Stdout for class. Every
// failure must map to a line of class; anything else is a FilterError.
func (p *FailureParser) Parse(status m.ExecutionStatus, class m.ClassSource) ([]m.Failure, error) {
	cursor := NewLineCursor(status.Stdout)

	count, err := ParseFailureCount(cursor, status.ExitCode)
	if err != nil {
		return nil, err
	}

	failures := make([]m.Failure, 0, count)

	for i := 1; i <= count; i++ {
		failure, err := p.ParseFailure(cursor, class)
		if err != nil {
			var fe *FilterError
			if errors.As(err, &fe) {
				fe.Message = fmt.Sprintf("failure %d of %d: %s", i, count, fe.Message)
			}

			return nil, err
		}

		failures = append(failures, failure)
	}

	return failures, nil
}

// ParseFailureCount scans to the "There was/were N failure(s):" line.
func ParseFailureCount(cursor *LineCursor, exitCode int) (int, error) {
	match, line, ok := cursor.ScanTo(failureCountPattern)
	if !ok {
		if exitCode == m.ExitKilled {
			return 0, environmentError("test JVM was killed (exit %d), probably out of memory", exitCode)
		}

		return 0, internalError("runner exited with status %d but reported no failure count", exitCode)
	}

	count, err := strconv.Atoi(match[1])
	if err != nil || count <= 0 {
		return 0, internalError("invalid failure count in %q", line)
	}

	return count, nil
}

// ParseFailure consumes one numbered failure and its stack frame in class.
func (p *FailureParser) ParseFailure(cursor *LineCursor, class m.ClassSource) (m.Failure, error) {
	match, header, ok := cursor.ScanTo(failureHeaderPattern)
	if !ok {
		return m.Failure{}, internalError("numbered failure header not found before end of report")
	}

	method := match[1]
	if !p.methodPattern.MatchString(method) {
		if strings.Contains(header, initializationError) {
			return m.Failure{}, environmentError("runner could not initialize %s; check the classpath and runner: %s", class.QualifiedName(), header)
		}

		return m.Failure{}, internalError("failing method %q does not follow the test naming convention", method)
	}

	frame := framePattern(class, method)

	frameMatch, _, ok := cursor.ScanTo(frame)
	if !ok {
		fe := internalError("no stack frame in %s.java for failing method", class.Name)
		fe.Method = method

		return m.Failure{}, fe
	}

	line, err := strconv.Atoi(frameMatch[1])
	if err != nil || line < 1 || line > class.LineCount() {
		fe := internalError("stack frame line %s is outside the %d-line source", frameMatch[1], class.LineCount())
		fe.Method = method

		return m.Failure{}, fe
	}

	return m.Failure{Method: method, Line: line}, nil
}

func framePattern(class m.ClassSource, method string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*at ` +
		regexp.QuoteMeta(class.QualifiedName()+"."+method) +
		`\(` + regexp.QuoteMeta(class.Name) + `\.java:(\d+)\)\s*$`)
}
