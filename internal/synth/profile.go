package synth

import (
	"strings"

	"debuglog/internal/classify"
)

// Placeholders substituted into templates.
const (
	PrefixToken   = "{P}"
	FragmentToken = "{C}"
)

// Case binds a category to the template rendered for it.
type Case struct {
	Category classify.Category
	Template string
}

// Profile is the print idiom of one language: the categories it has a
// dedicated phrasing for, and the generic fallback.
type Profile struct {
	Language string
	Cases    []Case
	Generic  string
}

// Categories lists the categories with a dedicated template, in table order.
func (p *Profile) Categories() []classify.Category {
	out := make([]classify.Category, 0, len(p.Cases))
	for _, c := range p.Cases {
		out = append(out, c.Category)
	}
	return out
}

// Template returns the template used for the category, falling back to the
// generic one when the language has no dedicated case.
func (p *Profile) Template(cat classify.Category) string {
	for _, c := range p.Cases {
		if c.Category == cat {
			return c.Template
		}
	}
	return p.Generic
}

// Classify assigns the fragment a category this profile can render.
func (p *Profile) Classify(fragment string) classify.Category {
	return classify.ClassifyAmong(fragment, p.Categories())
}

// Render fills the matching template with the prefix and fragment.
func (p *Profile) Render(fragment, prefix string) string {
	fragment = Fold(fragment)
	tmpl := p.Template(p.Classify(fragment))
	return strings.NewReplacer(PrefixToken, prefix, FragmentToken, fragment).Replace(tmpl)
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Fold joins a multi-line fragment into one line so the rendered statement
// never spans lines.
func Fold(fragment string) string {
	if !strings.ContainsAny(fragment, "\r\n") {
		return fragment
	}
	var parts []string
	for _, line := range strings.Split(lineBreaks.Replace(fragment), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
