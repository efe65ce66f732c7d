package resolver

import "strings"

// Markers delimit an embedded code region inside a markup document.
type Markers struct {
	Open  string
	Close string
}

// ScriptMarkers delimit the <script> block of a single-file component.
var ScriptMarkers = Markers{Open: "<script", Close: "</script>"}

// InEmbeddedRegion scans lines 0..line inclusive and reports whether the last
// marker seen was an opening one. Unbalanced markers are not an error.
func InEmbeddedRegion(text string, line int, m Markers) bool {
	lines := splitLines(text)
	inside := false
	for i := 0; i <= line && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case m.Open != "" && strings.HasPrefix(trimmed, m.Open):
			inside = true
		case m.Close != "" && strings.HasPrefix(trimmed, m.Close):
			inside = false
		}
	}
	return inside
}

// LineIndent returns the leading whitespace of a line, or "" when the line
// does not exist.
func LineIndent(text string, line int) string {
	lines := splitLines(text)
	if line < 0 || line >= len(lines) {
		return ""
	}
	l := strings.TrimSuffix(lines[line], "\r")
	return l[:len(l)-len(strings.TrimLeft(l, " \t"))]
}
