package resolver

import (
	"regexp"
	"strings"
)

// Kind is the slot a declaration fills in a Context.
type Kind string

const (
	KindConstruct Kind = "construct"
	KindCallable  Kind = "callable"
)

// Context is the lexical position of a line: the nearest class-like and
// function-like declarations above it. Empty means not found.
type Context struct {
	Construct string
	Callable  string
}

func (c Context) complete() bool {
	return c.Construct != "" && c.Callable != ""
}

// DeclarationMatcher recognizes one declaration form on a trimmed line.
type DeclarationMatcher interface {
	Name() string
	Kind() Kind
	Match(line string) (string, bool)
}

// PatternMatcher is a DeclarationMatcher backed by a regexp whose first
// capture group is the declared name.
type PatternMatcher struct {
	name    string
	kind    Kind
	pattern *regexp.Regexp
}

func NewPatternMatcher(name string, kind Kind, pattern string) *PatternMatcher {
	return &PatternMatcher{name: name, kind: kind, pattern: regexp.MustCompile(pattern)}
}

func (m *PatternMatcher) Name() string { return m.name }
func (m *PatternMatcher) Kind() Kind   { return m.kind }

func (m *PatternMatcher) Match(line string) (string, bool) {
	sub := m.pattern.FindStringSubmatch(line)
	if len(sub) < 2 || sub[1] == "" {
		return "", false
	}
	return sub[1], true
}

// DefaultMatchers covers `class Name`, `function name`, `name = function`,
// `name = (...) =>` and `def`/`defn name`.
func DefaultMatchers() []DeclarationMatcher {
	return []DeclarationMatcher{
		NewPatternMatcher("class", KindConstruct, `\bclass\s+(\w+)`),
		NewPatternMatcher("function", KindCallable, `\bfunction\s+(\w+)`),
		NewPatternMatcher("function-expression", KindCallable, `(\w+)\s*=\s*function\b`),
		NewPatternMatcher("arrow-function", KindCallable, `(\w+)\s*=\s*(?:async\s*)?\([^)]*\)\s*=>`),
		NewPatternMatcher("def", KindCallable, `\b(?:def|defn)\s+(\w+)`),
	}
}

// Resolver walks a document upward through a chain of matchers.
type Resolver struct {
	matchers []DeclarationMatcher
}

func NewResolver(matchers ...DeclarationMatcher) *Resolver {
	return &Resolver{matchers: matchers}
}

func DefaultResolver() *Resolver {
	return NewResolver(DefaultMatchers()...)
}

// Resolve scans from line (0-based, inclusive) back to the top of the
// document. The first name found for each kind wins; a construct match does
// not end the walk. The walk stops as soon as both kinds are filled.
func (r *Resolver) Resolve(text string, line int) Context {
	var ctx Context
	lines := splitLines(text)
	if line < 0 || len(lines) == 0 {
		return ctx
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}

	for i := line; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		for _, m := range r.matchers {
			slot := ctx.slot(m.Kind())
			if slot == nil || *slot != "" {
				continue
			}
			if name, ok := m.Match(trimmed); ok {
				*slot = name
			}
		}
		if ctx.complete() {
			break
		}
	}
	return ctx
}

func (c *Context) slot(k Kind) *string {
	switch k {
	case KindConstruct:
		return &c.Construct
	case KindCallable:
		return &c.Callable
	}
	return nil
}

// Resolve uses the default matcher chain.
func Resolve(text string, line int) Context {
	return DefaultResolver().Resolve(text, line)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
