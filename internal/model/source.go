// Package model defines the data structures shared by the flaky-assertion filter.
package model

import "strings"

// Path represents a file system path.
type Path string

// FixtureKind identifies one of the four JUnit fixture slots a class may carry.
type FixtureKind string

const (
	// FixtureBeforeAll runs once before any test method (@BeforeClass).
	FixtureBeforeAll FixtureKind = "before_all"
	// FixtureAfterAll runs once after all test methods (@AfterClass).
	FixtureAfterAll FixtureKind = "after_all"
	// FixtureBeforeEach runs before every test method (@Before).
	FixtureBeforeEach FixtureKind = "before_each"
	// FixtureAfterEach runs after every test method (@After).
	FixtureAfterEach FixtureKind = "after_each"
)

// FixtureKinds lists the fixture slots in the order they are emitted.
var FixtureKinds = []FixtureKind{FixtureBeforeAll, FixtureAfterAll, FixtureBeforeEach, FixtureAfterEach}

// Fixtures maps a fixture slot to the statements it runs. Missing or empty
// slots are not emitted.
type Fixtures map[FixtureKind][]string

// TestMethod is one rendered test method.
type TestMethod struct {
	Name string
	// Text is the full method text, one Java line per element.
	Text []string
}

// ClassSpec is everything the assembler needs to produce one test class.
type ClassSpec struct {
	Package   string
	Name      string
	DebugFlag string
	Fixtures  Fixtures
	Methods   []TestMethod
}

// QualifiedName returns the binary name used by the JVM to load the class.
func (c ClassSpec) QualifiedName() string {
	return QualifiedName(c.Package, c.Name)
}

// QualifiedName joins a package and a class name.
func QualifiedName(pkg, class string) string {
	if pkg == "" {
		return class
	}

	return pkg + "." + class
}

// ClassSource is an immutable snapshot of a class's source text. Every patch
// produces a new snapshot; line numbers are 1-based.
type ClassSource struct {
	Package string
	Name    string
	lines   []string
}

// NewClassSource splits text into lines and returns a snapshot.
func NewClassSource(pkg, name, text string) ClassSource {
	text = strings.TrimSuffix(text, "\n")

	return ClassSource{Package: pkg, Name: name, lines: strings.Split(text, "\n")}
}

// WithLines returns a snapshot of the same class with different lines.
func (s ClassSource) WithLines(lines []string) ClassSource {
	cp := make([]string, len(lines))
	copy(cp, lines)

	return ClassSource{Package: s.Package, Name: s.Name, lines: cp}
}

// Lines returns a copy of the source lines.
func (s ClassSource) Lines() []string {
	cp := make([]string, len(s.lines))
	copy(cp, s.lines)

	return cp
}

// Line returns the 1-based line n, or "" when out of range.
func (s ClassSource) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}

	return s.lines[n-1]
}

// LineCount returns the number of lines in the snapshot.
func (s ClassSource) LineCount() int {
	return len(s.lines)
}

// Text joins the lines back into compilable source.
func (s ClassSource) Text() string {
	return strings.Join(s.lines, "\n") + "\n"
}

// QualifiedName returns the binary class name.
func (s ClassSource) QualifiedName() string {
	return QualifiedName(s.Package, s.Name)
}
