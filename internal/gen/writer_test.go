package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")

	files := []GeneratedFile{
		{Filename: "expressible_as.go", Content: []byte("package builders\n")},
		{Filename: "extra.go", Content: []byte("package builders\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, content)
	}
}

func TestWriteFilesBadDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteFiles([]GeneratedFile{{Filename: "a.go", Content: []byte("package a\n")}}, blocker)
	require.Error(t, err)
}
