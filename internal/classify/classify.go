package classify

import "regexp"

// Category is the lexical shape assigned to a selected fragment.
type Category string

const (
	String   Category = "string"
	Number   Category = "number"
	Array    Category = "array"
	Object   Category = "object"
	Function Category = "function"
	Boolean  Category = "boolean"
	Generic  Category = "generic"
)

var (
	isString   = regexp.MustCompile("^[\"'`].*[\"'`]$")
	isNumber   = regexp.MustCompile(`^\d+$`)
	isArray    = regexp.MustCompile(`\[.*\]`)
	isObject   = regexp.MustCompile(`\{.*\}`)
	isFunction = regexp.MustCompile(`\w+\s*\(.*\)`)
	isBoolean  = regexp.MustCompile(`(?i)^(true|false)$`)
)

type rule struct {
	category Category
	pattern  *regexp.Regexp
}

// order is significant: Array and Object are presence tests, so `foo([1])`
// lands in Array before Function is considered.
var order = []rule{
	{String, isString},
	{Number, isNumber},
	{Array, isArray},
	{Object, isObject},
	{Function, isFunction},
	{Boolean, isBoolean},
}

// Order returns the categories in the order they are tested, Generic last.
func Order() []Category {
	out := make([]Category, 0, len(order)+1)
	for _, r := range order {
		out = append(out, r.category)
	}
	return append(out, Generic)
}

// Classify returns the first category whose pattern matches the fragment.
func Classify(fragment string) Category {
	for _, r := range order {
		if r.pattern.MatchString(fragment) {
			return r.category
		}
	}
	return Generic
}

// ClassifyAmong is Classify restricted to the supported categories.
// Categories a language does not support are skipped, so the fragment falls
// through to the next supported one or to Generic.
func ClassifyAmong(fragment string, supported []Category) Category {
	for _, r := range order {
		if !contains(supported, r.category) {
			continue
		}
		if r.pattern.MatchString(fragment) {
			return r.category
		}
	}
	return Generic
}

func contains(cats []Category, c Category) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}
