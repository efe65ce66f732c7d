package editor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileEditor_InsertLine(t *testing.T) {
	e := NewFileEditor("a.go", "one\ntwo\nthree\n", "go", nil)

	require.NoError(t, e.InsertLine("after-one", 0))
	require.NoError(t, e.InsertLine("after-three", 3))

	assert.Equal(t, "one\nafter-one\ntwo\nthree\nafter-three\n", e.Text())

	err := e.InsertLine("x", 99)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	err = e.InsertLine("x", -1)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestFileEditor_Selection(t *testing.T) {
	e := NewFileEditor("a.py", "x = compute(a, b)\r\ny = 2", "python", nil)

	t.Run("Explicit text", func(t *testing.T) {
		require.NoError(t, e.Select(1, "y"))
		assert.Equal(t, Selection{StartLine: 1, Text: "y"}, e.Selection())
	})

	t.Run("Columns", func(t *testing.T) {
		require.NoError(t, e.SelectColumns(0, 4, 17))
		assert.Equal(t, "compute(a, b)", e.Selection().Text)
		assert.Equal(t, 0, e.Selection().StartLine)
	})

	t.Run("Out of range", func(t *testing.T) {
		assert.ErrorIs(t, e.Select(2, "z"), ErrLineOutOfRange)
		assert.ErrorIs(t, e.SelectColumns(0, 4, 40), ErrLineOutOfRange)
		assert.ErrorIs(t, e.SelectColumns(0, 5, 4), ErrLineOutOfRange)
	})
}

func TestFileEditor_Document(t *testing.T) {
	e := NewFileEditor("App.vue", "<script>\n</script>", "vue", nil)
	want := Document{FileName: "App.vue", LanguageID: "vue", Text: "<script>\n</script>"}
	if diff := cmp.Diff(want, e.Document()); diff != "" {
		t.Errorf("Document() mismatch (-want +got):\n%s", diff)
	}
}

func TestFileEditor_OpenAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc main() {\n}\n"), 0o600))

	e, err := OpenFile(path, "go", nil)
	require.NoError(t, err)
	require.NoError(t, e.InsertLine("\tprintln()", 2))
	require.NoError(t, e.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n\nfunc main() {\n\tprintln()\n}\n", string(data))

	var buf bytes.Buffer
	_, err = e.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, string(data), buf.String())

	_, err = OpenFile(filepath.Join(t.TempDir(), "missing.go"), "go", nil)
	assert.ErrorContains(t, err, "failed to read file")
}

func TestFileEditor_Notify(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	e := NewFileEditor("a.txt", "", "plaintext", NewTerminalNotifier(&out))

	e.Notify("first")
	e.Notify("second")

	assert.Equal(t, []string{"first", "second"}, e.Notices())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestFileEditor_CRLF(t *testing.T) {
	e := NewFileEditor("a.js", "function f() {\r\n  let x = 1;\r\n}\r\n", "javascript", nil)
	assert.Equal(t, "\r\n", e.LineEnding())

	require.NoError(t, e.InsertLine("  log(x)", 1))
	assert.Equal(t, "function f() {\r\n  let x = 1;\r\n  log(x)\r\n}\r\n", e.Text())

	t.Run("Last line without terminator", func(t *testing.T) {
		e := NewFileEditor("a.js", "a\r\nb", "javascript", nil)
		require.NoError(t, e.InsertLine("c", 1))
		assert.Equal(t, "a\r\nb\r\nc", e.Text())
	})

	t.Run("LF documents stay LF", func(t *testing.T) {
		e := NewFileEditor("a.js", "a\nb\n", "javascript", nil)
		assert.Equal(t, "\n", e.LineEnding())
		require.NoError(t, e.InsertLine("c", 0))
		assert.Equal(t, "a\nc\nb\n", e.Text())
	})
}

func TestFileEditor_SaveKeepsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "win.py")
	require.NoError(t, os.WriteFile(path, []byte("def f():\r\n    x = 1\r\n"), 0o600))

	e, err := OpenFile(path, "python", nil)
	require.NoError(t, err)
	require.NoError(t, e.InsertLine("    print(x)", 1))
	require.NoError(t, e.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "def f():\r\n    x = 1\r\n    print(x)\r\n", string(data))
}
