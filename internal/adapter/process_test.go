package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProcess_CapturesOutputAndExitCode(t *testing.T) {
	res, err := runProcess(context.Background(), 0, "", "sh", "-c", "echo out1; echo out2; echo err1 >&2; exit 3")
	require.NoError(t, err)

	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.TimedOut)
	assert.Equal(t, []string{"out1", "out2"}, res.Stdout)
	assert.Equal(t, []string{"err1"}, res.Stderr)
}

func TestRunProcess_KilledBySignalReports137(t *testing.T) {
	res, err := runProcess(context.Background(), 0, "", "sh", "-c", "kill -9 $$")
	require.NoError(t, err)

	assert.Equal(t, 137, res.ExitCode)
	assert.False(t, res.TimedOut)
}

func TestRunProcess_Timeout(t *testing.T) {
	res, err := runProcess(context.Background(), 100*time.Millisecond, "", "sh", "-c", "exec sleep 5")
	require.NoError(t, err)

	assert.True(t, res.TimedOut)
}

func TestRunProcess_MissingBinary(t *testing.T) {
	_, err := runProcess(context.Background(), 0, "", "/definitely/not/a/binary")
	require.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}
