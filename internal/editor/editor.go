package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ErrLineOutOfRange is returned when an edit targets a line the document
// does not have.
var ErrLineOutOfRange = errors.New("line out of range")

// Document is the editor's view of the file being edited.
type Document struct {
	FileName   string
	LanguageID string
	Text       string
}

// Selection is the user's selected text and the 0-based line it starts on.
type Selection struct {
	StartLine int
	Text      string
}

// Editor is the host the insert command runs against.
type Editor interface {
	Document() Document
	Selection() Selection
	// InsertLine inserts text as a new line directly below afterLine.
	InsertLine(text string, afterLine int) error
	// Notify shows a transient message to the user.
	Notify(message string)
}

// TerminalNotifier prints notifications to a terminal stream.
type TerminalNotifier struct {
	out   io.Writer
	color *color.Color
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out, color: color.New(color.FgYellow, color.Bold)}
}

func (n *TerminalNotifier) Notify(message string) {
	fmt.Fprintln(n.out, n.color.Sprint("⚠️  "+message))
}
