package command

import (
	"bytes"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_Gofmt(t *testing.T) {
	// Project root is two levels up from internal/command.
	root, err := filepath.Abs("../../")
	require.NoError(t, err)

	var checked int
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted, err := format.Source(src)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		assert.True(t, bytes.Equal(src, formatted), "%s is not gofmt-formatted", rel)
		checked++
		return nil
	})
	require.NoError(t, err)
	assert.Greater(t, checked, 10)
}
