package editor

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Notifier receives the messages an Editor surfaces to the user.
type Notifier interface {
	Notify(message string)
}

// FileEditor is an Editor over an in-memory copy of a file.
type FileEditor struct {
	path       string
	languageID string
	lines      []string
	eol        string
	selection  Selection
	notifier   Notifier
	notices    []string
}

// NewFileEditor wraps document text. notifier may be nil.
// A document containing any CRLF is treated as CRLF throughout: lines are
// held without the '\r' and rejoined with "\r\n".
func NewFileEditor(path, text, languageID string, notifier Notifier) *FileEditor {
	eol := "\n"
	if strings.Contains(text, "\r\n") {
		eol = "\r\n"
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return &FileEditor{
		path:       path,
		languageID: languageID,
		lines:      strings.Split(text, "\n"),
		eol:        eol,
		notifier:   notifier,
	}
}

// LineEnding returns the line terminator used when writing the buffer.
func (e *FileEditor) LineEnding() string {
	return e.eol
}

// OpenFile reads path from disk.
func OpenFile(path, languageID string, notifier Notifier) (*FileEditor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return NewFileEditor(path, string(data), languageID, notifier), nil
}

func (e *FileEditor) Document() Document {
	return Document{FileName: e.path, LanguageID: e.languageID, Text: e.Text()}
}

func (e *FileEditor) Selection() Selection {
	return e.selection
}

// Select sets the selection to text on a 0-based line.
func (e *FileEditor) Select(line int, text string) error {
	if line < 0 || line >= len(e.lines) {
		return fmt.Errorf("select line %d of %d: %w", line+1, len(e.lines), ErrLineOutOfRange)
	}
	e.selection = Selection{StartLine: line, Text: text}
	return nil
}

// SelectColumns selects the characters [from, to) of a 0-based line.
func (e *FileEditor) SelectColumns(line, from, to int) error {
	if line < 0 || line >= len(e.lines) {
		return fmt.Errorf("select line %d of %d: %w", line+1, len(e.lines), ErrLineOutOfRange)
	}
	runes := []rune(strings.TrimSuffix(e.lines[line], "\r"))
	if from < 0 || to > len(runes) || from > to {
		return fmt.Errorf("columns %d:%d outside line %d (length %d): %w", from, to, line+1, len(runes), ErrLineOutOfRange)
	}
	e.selection = Selection{StartLine: line, Text: string(runes[from:to])}
	return nil
}

func (e *FileEditor) InsertLine(text string, afterLine int) error {
	if afterLine < 0 || afterLine >= len(e.lines) {
		return fmt.Errorf("insert after line %d of %d: %w", afterLine+1, len(e.lines), ErrLineOutOfRange)
	}
	at := afterLine + 1
	e.lines = append(e.lines, "")
	copy(e.lines[at+1:], e.lines[at:])
	e.lines[at] = text
	return nil
}

func (e *FileEditor) Notify(message string) {
	e.notices = append(e.notices, message)
	if e.notifier != nil {
		e.notifier.Notify(message)
	}
}

// Notices returns every message passed to Notify, oldest first.
func (e *FileEditor) Notices() []string {
	return e.notices
}

// Text returns the current buffer.
func (e *FileEditor) Text() string {
	return strings.Join(e.lines, e.eol)
}

// WriteTo writes the current buffer to w.
func (e *FileEditor) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Text())
	return int64(n), err
}

// Save writes the buffer back to the file it was opened from.
func (e *FileEditor) Save() error {
	info, err := os.Stat(e.path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", e.path, err)
	}
	if err := os.WriteFile(e.path, []byte(e.Text()), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.path, err)
	}
	return nil
}
