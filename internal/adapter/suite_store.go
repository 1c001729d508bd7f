package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/deflake/internal/model"
)

// SuiteStore loads recorded test suites.
type SuiteStore interface {
	Load(patterns []string) ([]m.Suite, error)
}

var (
	javaIdentifier  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	javaPackageName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

type yamlSuiteStore struct {
	fs FSAdapter
}

// NewSuiteStore returns a SuiteStore reading YAML suite files.
func NewSuiteStore(fs FSAdapter) SuiteStore {
	return &yamlSuiteStore{fs: fs}
}

// Load expands every pattern and decodes each matching file once.
func (s *yamlSuiteStore) Load(patterns []string) ([]m.Suite, error) {
	seen := make(map[m.Path]struct{})

	var suites []m.Suite

	for _, pattern := range patterns {
		paths, err := s.fs.Glob(pattern)
		if err != nil {
			return nil, err
		}

		if len(paths) == 0 {
			return nil, fmt.Errorf("no suite files match %q", pattern)
		}

		for _, path := range paths {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}

			suite, err := s.loadOne(path)
			if err != nil {
				return nil, err
			}

			suites = append(suites, suite)
		}
	}

	return suites, nil
}

func (s *yamlSuiteStore) loadOne(path m.Path) (m.Suite, error) {
	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Suite{}, fmt.Errorf("failed to read suite %s: %w", path, err)
	}

	suite, err := DecodeSuite(raw)
	if err != nil {
		return m.Suite{}, fmt.Errorf("invalid suite %s: %w", path, err)
	}

	suite.Origin = path

	return suite, nil
}

// DecodeSuite strictly decodes and validates one suite document.
func DecodeSuite(raw []byte) (m.Suite, error) {
	var suite m.Suite

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	if err := dec.Decode(&suite); err != nil {
		return m.Suite{}, err
	}

	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			return m.Suite{}, errors.New("yaml: multiple documents are not allowed")
		}

		return m.Suite{}, err
	}

	if err := validateSuite(suite); err != nil {
		return m.Suite{}, err
	}

	return suite, nil
}

func validateSuite(suite m.Suite) error {
	if !javaIdentifier.MatchString(suite.Class) {
		return fmt.Errorf("class %q is not a Java identifier", suite.Class)
	}

	if suite.Package != "" && !javaPackageName.MatchString(suite.Package) {
		return fmt.Errorf("package %q is not a Java package name", suite.Package)
	}

	if suite.DebugFlag != "" && !javaIdentifier.MatchString(suite.DebugFlag) {
		return fmt.Errorf("debug flag %q is not a Java identifier", suite.DebugFlag)
	}

	for kind := range suite.Fixtures {
		if !isFixtureKind(kind) {
			return fmt.Errorf("unknown fixture %q", kind)
		}
	}

	if len(suite.Sequences) == 0 {
		return errors.New("suite has no sequences")
	}

	for i, seq := range suite.Sequences {
		if _, err := seq.Render(); err != nil {
			return fmt.Errorf("sequence %d: %w", i+1, err)
		}
	}

	return nil
}

func isFixtureKind(kind m.FixtureKind) bool {
	for _, k := range m.FixtureKinds {
		if k == kind {
			return true
		}
	}

	return false
}
