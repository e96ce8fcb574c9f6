package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_RequiresOutputFlag(t *testing.T) {
	_, _, err := executeCommand("watch", simpleBook)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err))
	assert.Contains(t, err.Error(), "--output")
}

func TestWatch_InvalidPattern(t *testing.T) {
	_, _, err := executeCommand("watch", simpleBook, "-o", "out.json", "--pattern", "[")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(t, err))
}

func TestWatch_MissingBookFile(t *testing.T) {
	_, _, err := executeCommand("watch", "/nonexistent/book.txt", "-o", "out.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching book file")
}
