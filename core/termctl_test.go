//go:build !windows

package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireTerminalNonInteractive(t *testing.T) {
	// A pipe is not a terminal, so acquisition must be a no-op: no
	// process-group changes, no saved modes, no prompt later.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	state, err := AcquireTerminal(int(r.Fd()))

	require.NoError(t, err)
	assert.False(t, state.Interactive)
	assert.Zero(t, state.ProcessGroup)
	assert.NoError(t, state.RestoreModes())
}

func TestAcquireTerminalRegularFile(t *testing.T) {
	fd, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer fd.Close()

	state, err := AcquireTerminal(int(fd.Fd()))

	require.NoError(t, err)
	assert.False(t, state.Interactive)
}
