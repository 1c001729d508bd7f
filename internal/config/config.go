// Package config loads the deflake configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = ".deflake.yaml"

const (
	defaultTimeout   = 2 * time.Minute
	defaultOutputDir = "deflake-out"
	defaultPrefix    = "test"
	defaultUI        = "auto"
)

var uiModes = map[string]bool{"auto": true, "tui": true, "plain": true}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// Config is the merged file configuration. Command-line flags are applied on
// top of it by the caller.
type Config struct {
	Javac     string   `yaml:"javac"`
	Java      string   `yaml:"java"`
	Classpath []string `yaml:"classpath"`
	JavacArgs []string `yaml:"javac_args"`
	JVMArgs   []string `yaml:"jvm_args"`
	// Runner is the JUnit entry point class.
	Runner string `yaml:"runner"`
	// Timeout bounds each compile and each test run.
	Timeout time.Duration `yaml:"timeout"`
	// ScratchDir is where per-iteration directories are created; empty means
	// the system temp directory.
	ScratchDir    string `yaml:"scratch_dir"`
	OutputDir     string `yaml:"output_dir"`
	TestPrefix    string `yaml:"test_prefix"`
	HaltOnFlaky   bool   `yaml:"halt_on_flaky"`
	Verbose       bool   `yaml:"verbose"`
	MaxIterations int    `yaml:"max_iterations"`
	Parallel      int    `yaml:"parallel"`
	// UI is the progress display: auto, tui or plain.
	UI string `yaml:"ui"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)

	return cfg
}

// Load reads path, or DefaultFileName when path is empty. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	// #nosec G304 - the operator chooses the config path
	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes one strict YAML document, fills in defaults and validates.
func Parse(raw []byte) (Config, error) {
	var cfg Config

	if len(bytes.TrimSpace(raw)) > 0 {
		if err := decodeYAMLStrict(raw, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decodeYAMLStrict(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		return err
	}

	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return errors.New("yaml: multiple documents are not allowed")
		}

		return err
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Javac) == "" {
		cfg.Javac = "javac"
	}

	if strings.TrimSpace(cfg.Java) == "" {
		cfg.Java = "java"
	}

	if strings.TrimSpace(cfg.Runner) == "" {
		cfg.Runner = "org.junit.runner.JUnitCore"
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = defaultOutputDir
	}

	if strings.TrimSpace(cfg.TestPrefix) == "" {
		cfg.TestPrefix = defaultPrefix
	}

	if strings.TrimSpace(cfg.UI) == "" {
		cfg.UI = defaultUI
	}

	if cfg.Parallel == 0 {
		cfg.Parallel = runtime.GOMAXPROCS(0)
	}

	cfg.Classpath = trimNonEmpty(cfg.Classpath)
	cfg.JavacArgs = trimNonEmpty(cfg.JavacArgs)
	cfg.JVMArgs = trimNonEmpty(cfg.JVMArgs)
}

// Validate rejects values the filter cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}

	if c.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("max_iterations must be >= 0, got %d", c.MaxIterations))
	}

	if c.Parallel < 0 {
		errs = append(errs, fmt.Errorf("parallel must not be negative, got %d", c.Parallel))
	}

	if !identifierPattern.MatchString(c.TestPrefix) {
		errs = append(errs, fmt.Errorf("test_prefix %q is not a Java identifier", c.TestPrefix))
	}

	if !uiModes[c.UI] {
		errs = append(errs, fmt.Errorf("ui must be auto, tui or plain, got %q", c.UI))
	}

	return errors.Join(errs...)
}

func trimNonEmpty(in []string) []string {
	var out []string

	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}
