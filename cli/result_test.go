package cli

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCommandError(t *testing.T) {
	err := NewCommandError(2)
	assert.Equal(t, "command failed", err.Error())
	assert.Equal(t, 2, err.ExitCode())
}

func TestCommandError_ErrorsAs(t *testing.T) {
	wrapped := func() error {
		return NewCommandError(1)
	}()

	var cmdErr *CommandError
	assert.True(t, errors.As(wrapped, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode())
}
