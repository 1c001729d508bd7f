package domain

import (
	"sort"
	"strings"

	m "github.com/mouse-blink/deflake/internal/model"
)

type fixtureShape struct {
	annotation string
	method     string
	static     bool
}

var fixtureShapes = map[m.FixtureKind]fixtureShape{
	m.FixtureBeforeAll:  {annotation: "BeforeClass", method: "setUpAll", static: true},
	m.FixtureAfterAll:   {annotation: "AfterClass", method: "tearDownAll", static: true},
	m.FixtureBeforeEach: {annotation: "Before", method: "setUp"},
	m.FixtureAfterEach:  {annotation: "After", method: "tearDown"},
}

// AssembleClass builds the compilable source of a JUnit 4 test class. Methods
// run in name-ascending order so that report order matches source order
// regardless of the runner's default ordering.
func AssembleClass(spec m.ClassSpec) m.ClassSource {
	var lines []string

	if spec.Package != "" {
		lines = append(lines, "package "+spec.Package+";", "")
	}

	lines = append(lines, importLines(spec.Fixtures)...)
	lines = append(lines,
		"",
		"@FixMethodOrder(MethodSorters.NAME_ASCENDING)",
		"public class "+spec.Name+" {",
	)

	if spec.DebugFlag != "" {
		lines = append(lines, "", methodIndent+"public static boolean "+spec.DebugFlag+" = false;")
	}

	for _, kind := range m.FixtureKinds {
		statements := spec.Fixtures[kind]
		if len(statements) == 0 {
			continue
		}

		lines = append(lines, "")
		lines = append(lines, fixtureLines(fixtureShapes[kind], statements)...)
	}

	for _, method := range spec.Methods {
		lines = append(lines, "")
		lines = append(lines, method.Text...)
	}

	lines = append(lines, "}")

	return m.NewClassSource(spec.Package, spec.Name, strings.Join(lines, "\n"))
}

func importLines(fixtures m.Fixtures) []string {
	imports := []string{
		"org.junit.FixMethodOrder",
		"org.junit.Test",
		"org.junit.runners.MethodSorters",
	}

	for kind, statements := range fixtures {
		if len(statements) == 0 {
			continue
		}

		if shape, ok := fixtureShapes[kind]; ok {
			imports = append(imports, "org.junit."+shape.annotation)
		}
	}

	sort.Strings(imports)

	out := make([]string, 0, len(imports))
	for _, imp := range imports {
		out = append(out, "import "+imp+";")
	}

	return out
}

func fixtureLines(shape fixtureShape, statements []string) []string {
	modifier := "public "
	if shape.static {
		modifier += "static "
	}

	lines := []string{
		methodIndent + "@" + shape.annotation,
		methodIndent + modifier + "void " + shape.method + "() throws Throwable {",
	}

	for _, st := range statements {
		for _, line := range strings.Split(st, "\n") {
			lines = append(lines, bodyIndent+strings.TrimRight(line, " \t\r"))
		}
	}

	return append(lines, methodIndent+"}")
}

// AssembleSuite renders every sequence of suite and assembles the class.
func AssembleSuite(suite m.Suite, prefix string) (m.ClassSource, error) {
	methods, err := RenderMethods(suite.AsSequences(), suite.Class, prefix, suite.DebugFlag)
	if err != nil {
		return m.ClassSource{}, err
	}

	return AssembleClass(m.ClassSpec{
		Package:   suite.Package,
		Name:      suite.Class,
		DebugFlag: suite.DebugFlag,
		Fixtures:  suite.Fixtures,
		Methods:   methods,
	}), nil
}
