package synth

import (
	"sort"

	"debuglog/internal/classify"
)

// Vue single-file components are edited as plain JavaScript.
const vueAlias = "vue"

func consoleLog() *Profile {
	return &Profile{
		Cases: []Case{
			{classify.String, `console.log('{P}String value: {C}');`},
			{classify.Number, `console.log('{P}Number value: ', {C});`},
			{classify.Array, `console.log('{P}Array value: ', {C});`},
			{classify.Object, `console.log('{P}Object value: ', {C});`},
			{classify.Function, `console.log('{P}Function {C} executed');`},
		},
		Generic: `console.log('{P}{C}:', {C});`,
	}
}

var table = map[string]*Profile{
	"javascript": consoleLog(),
	"typescript": consoleLog(),
	"python": {
		Cases: []Case{
			{classify.String, `print("{P}String value: {C}")`},
			{classify.Number, `print("{P}Number value: ", {C})`},
			{classify.Array, `print("{P}Array value: ", {C})`},
			{classify.Object, `print("{P}Object value: ", {C})`},
			{classify.Function, `print("{P}Function {C} executed")`},
		},
		Generic: `print("{P}{C}: ", {C})`,
	},
	"java": {
		Cases: []Case{
			{classify.String, `System.out.println("{P}String value: " + {C});`},
			{classify.Number, `System.out.println("{P}Number value: " + {C});`},
			{classify.Boolean, `System.out.println("{P}Boolean value: " + {C});`},
			{classify.Function, `System.out.println("{P}Function {C} executed");`},
		},
		Generic: `System.out.println("{P}{C}: " + {C});`,
	},
	"ruby": {
		Cases: []Case{
			{classify.String, `puts "{P}String value: #{{C}}"`},
			{classify.Number, `puts "{P}Number value: #{{C}}"`},
			{classify.Boolean, `puts "{P}Boolean value: #{{C}}"`},
		},
		Generic: `puts "{C}: #{{C}}"`,
	},
	"php": {
		Cases: []Case{
			{classify.String, `echo "{P}String value: " . {C} . "\n";`},
			{classify.Number, `echo "{P}Number value: " . {C} . "\n";`},
			{classify.Boolean, `echo "{P}Boolean value: " . ({C} ? "true" : "false") . "\n";`},
		},
		Generic: `echo "{C}: " . {C} . "\n";`,
	},
	"go": {
		Cases: []Case{
			{classify.String, `fmt.Println("{P}String value: ", {C})`},
			{classify.Number, `fmt.Println("{P}Number value: ", {C})`},
			{classify.Boolean, `fmt.Println("{P}Boolean value: ", {C})`},
		},
		Generic: `fmt.Println("{C}: ", {C})`,
	},
	"rust": {
		Cases: []Case{
			{classify.String, `println!("{P}String value: {:?}", {C});`},
			{classify.Number, `println!("{P}Number value: {:?}", {C});`},
			{classify.Boolean, `println!("{P}Boolean value: {:?}", {C});`},
		},
		Generic: `println!("{C}: {:?}", {C});`,
	},
	"cpp": {
		Cases: []Case{
			{classify.String, `std::cout << "{P}String value: " << {C} << std::endl;`},
			{classify.Number, `std::cout << "{P}Number value: " << {C} << std::endl;`},
			{classify.Boolean, `std::cout << "{P}Boolean value: " << ({C} ? "true" : "false") << std::endl;`},
		},
		Generic: `std::cout << "{P}{C}: " << {C} << std::endl;`,
	},
}

func init() {
	for lang, p := range table {
		p.Language = lang
	}
}

// Normalize maps editor language ids onto table keys.
func Normalize(lang string) string {
	if lang == vueAlias {
		return "javascript"
	}
	return lang
}

// Lookup returns the profile for a language id, after normalization.
func Lookup(lang string) (*Profile, bool) {
	p, ok := table[Normalize(lang)]
	return p, ok
}

// Supported reports whether a language id has a template table entry.
func Supported(lang string) bool {
	_, ok := Lookup(lang)
	return ok
}

// Languages returns the table keys in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(table))
	for lang := range table {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Render produces the debug statement for a fragment. The second result is
// false when the language has no table entry; nothing should be inserted then.
func Render(lang, fragment, prefix string) (string, bool) {
	p, ok := Lookup(lang)
	if !ok {
		return "", false
	}
	return p.Render(fragment, prefix), true
}
