package synth

import (
	"fmt"
	"strings"
)

// PrefixStyle selects how a rendered message is annotated.
type PrefixStyle string

const (
	PrefixLine    PrefixStyle = "line"
	PrefixContext PrefixStyle = "context"
)

// Valid reports whether s is a known style.
func (s PrefixStyle) Valid() bool {
	return s == PrefixLine || s == PrefixContext
}

// LinePrefix annotates with the number of the line that receives the
// statement. line is the 0-based selection line; the statement goes on the
// next line, whose 1-based number is line+2.
func LinePrefix(line int) string {
	return fmt.Sprintf("%d line -> ", line+2)
}

// ContextPrefix annotates with the enclosing construct and callable names.
// Empty names are omitted; with neither the prefix is empty.
func ContextPrefix(construct, callable string) string {
	var b strings.Builder
	for _, name := range []string{construct, callable} {
		if name == "" {
			continue
		}
		b.WriteString(name)
		b.WriteString(" -> ")
	}
	return b.String()
}
