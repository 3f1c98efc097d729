package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, filepath.Join(home, "inbox"), expandPath("~/inbox"))

	abs := expandPath("some/relative/file.html")
	assert.True(t, filepath.IsAbs(abs))
	assert.True(t, strings.HasSuffix(abs, filepath.Join("some", "relative", "file.html")))
}

func TestExpandPaths(t *testing.T) {
	assert.Nil(t, expandPaths(nil))

	paths := expandPaths([]string{"a.html", "b.html"})
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.True(t, filepath.IsAbs(p))
	}
}

func TestRootCommandFlags(t *testing.T) {
	assert.Equal(t, "table", rootCmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "false", rootCmd.Flags().Lookup("include-attachments").DefValue)
	assert.NotNil(t, rootCmd.Flags().Lookup("watch"))
	assert.NotNil(t, rootCmd.Flags().Lookup("dir"))
}
