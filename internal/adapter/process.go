// Package adapter contains the infrastructure adapters the filter drives:
// the Java compiler, the JUnit runner, and the filesystem.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// processWaitDelay bounds how long we wait for stdio to drain after the
// process was killed.
const processWaitDelay = 2 * time.Second

// processResult is the raw outcome of one external command.
type processResult struct {
	ExitCode int
	TimedOut bool
	Stdout   []string
	Stderr   []string
	Duration time.Duration
}

// runProcess executes binary with args in dir. A non-zero exit status is not
// an error; only a failure to start the process is.
func runProcess(ctx context.Context, timeout time.Duration, dir, binary string, args ...string) (processResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = processWaitDelay

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return processResult{}, err
	}

	waitErr := cmd.Wait()
	result := processResult{
		Duration: time.Since(start),
		Stdout:   splitLines(stdout.String()),
		Stderr:   splitLines(stderr.String()),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1

		return result, nil
	}

	result.ExitCode = exitCode(cmd, waitErr)

	return result, nil
}

func exitCode(cmd *exec.Cmd, waitErr error) int {
	if waitErr == nil {
		return 0
	}

	state := cmd.ProcessState
	if state == nil {
		return -1
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}

	return state.ExitCode()
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// absoluteClasspath resolves relative classpath entries against the current
// directory. The test JVM runs inside the scratch directory, where a relative
// entry would point somewhere else than it does for javac.
func absoluteClasspath(entries []string) []string {
	out := make([]string, 0, len(entries))

	for _, entry := range entries {
		if abs, err := filepath.Abs(entry); err == nil {
			entry = abs
		}

		out = append(out, entry)
	}

	return out
}
