// Package controller provides output adapters for displaying filtering
// progress and results.
package controller

import (
	m "github.com/mouse-blink/deflake/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	total     int
	interrupt func()
}

// WithTotal sets the number of classes that will be filtered.
func WithTotal(n int) StartOption {
	return func(c *StartConfig) {
		c.total = n
	}
}

// WithInterrupt registers a function called when the user aborts from the UI.
func WithInterrupt(fn func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = fn
	}
}

// UI displays filtering progress and results. Notify may be called from
// several goroutines at once.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	m.Observer
	Start(options ...StartOption) error
	Close()
	DisplayReport(report m.RunReport) error
	DisplayAssembled(classes []m.ClassReport) error
	DisplayNeutralized(path m.Path, lines []m.NeutralizedLine) error
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}
