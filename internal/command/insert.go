package command

import (
	"fmt"
	"strings"

	"debuglog/internal/editor"
	"debuglog/internal/language"
	"debuglog/internal/resolver"
	"debuglog/internal/synth"

	"go.uber.org/zap"
)

// Messages shown to the user when nothing is inserted.
const (
	MsgEmptySelection = "Please select a variable, function, or class to log."
	MsgOutOfRegion    = "Please select content inside the <script> block of the Vue file."
	msgUnsupported    = "Unsupported content or language: %s"
)

// Result reports what InsertDebugLog did.
type Result int

const (
	ResultInserted Result = iota
	ResultEmpty
	ResultOutOfRegion
	ResultUnsupported
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultInserted:
		return "inserted"
	case ResultEmpty:
		return "empty"
	case ResultOutOfRegion:
		return "out-of-region"
	case ResultUnsupported:
		return "unsupported"
	case ResultFailed:
		return "failed"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Options configures the insert command.
type Options struct {
	PrefixStyle synth.PrefixStyle

	// EmbeddedExtensions lists file extensions whose code must sit inside
	// an embedded region (e.g. ".vue").
	EmbeddedExtensions []string
	Markers            resolver.Markers
	Resolver           *resolver.Resolver
	Logger             *zap.Logger
}

// DefaultOptions uses line prefixes and requires .vue selections to sit in
// the <script> block.
func DefaultOptions() Options {
	return Options{
		PrefixStyle:        synth.PrefixLine,
		EmbeddedExtensions: []string{".vue"},
		Markers:            resolver.ScriptMarkers,
	}
}

// MsgUnsupported is the notification for a language with no templates.
func MsgUnsupported(languageID string) string {
	return fmt.Sprintf(msgUnsupported, languageID)
}

// InsertDebugLog renders a debug statement for the editor's selection and
// inserts it below the selection's first line, indented like that line.
func InsertDebugLog(ed editor.Editor, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	doc := ed.Document()
	sel := ed.Selection()

	fragment := strings.TrimSpace(sel.Text)
	if fragment == "" {
		logger.Debug("empty selection", zap.String("file", doc.FileName))
		ed.Notify(MsgEmptySelection)
		return ResultEmpty, nil
	}

	if language.HasExtension(doc.FileName, opts.EmbeddedExtensions) &&
		!resolver.InEmbeddedRegion(doc.Text, sel.StartLine, opts.Markers) {
		logger.Debug("selection outside embedded region",
			zap.String("file", doc.FileName), zap.Int("line", sel.StartLine))
		ed.Notify(MsgOutOfRegion)
		return ResultOutOfRegion, nil
	}

	prefix := buildPrefix(doc.Text, sel.StartLine, opts)
	statement, ok := synth.Render(doc.LanguageID, fragment, prefix)
	if !ok {
		logger.Debug("unsupported language", zap.String("language", doc.LanguageID))
		ed.Notify(MsgUnsupported(doc.LanguageID))
		return ResultUnsupported, nil
	}

	indent := resolver.LineIndent(doc.Text, sel.StartLine)
	if err := ed.InsertLine(indent+statement, sel.StartLine); err != nil {
		return ResultFailed, fmt.Errorf("failed to insert debug statement: %w", err)
	}

	logger.Debug("inserted debug statement",
		zap.String("language", doc.LanguageID),
		zap.Int("after_line", sel.StartLine),
		zap.String("statement", statement))
	return ResultInserted, nil
}

func buildPrefix(text string, line int, opts Options) string {
	if opts.PrefixStyle != synth.PrefixContext {
		return synth.LinePrefix(line)
	}
	r := opts.Resolver
	if r == nil {
		r = resolver.DefaultResolver()
	}
	ctx := r.Resolve(text, line)
	return synth.ContextPrefix(ctx.Construct, ctx.Callable)
}
