package language

import (
	"path/filepath"
	"strings"
)

// PlainText is the id of files with no known language.
const PlainText = "plaintext"

var defaultExtensions = map[string]string{
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".ts":   "typescript",
	".mts":  "typescript",
	".cts":  "typescript",
	".jsx":  "javascriptreact",
	".tsx":  "typescriptreact",
	".py":   "python",
	".java": "java",
	".rb":   "ruby",
	".php":  "php",
	".go":   "go",
	".rs":   "rust",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".hh":   "cpp",
	".c":    "c",
	".h":    "c",
	".vue":  "vue",
}

// Detector maps file names onto editor language ids.
type Detector struct {
	extensions map[string]string
}

// NewDetector builds a detector from the default table with overrides
// merged on top. Override keys may omit the leading dot.
func NewDetector(overrides map[string]string) *Detector {
	ext := make(map[string]string, len(defaultExtensions)+len(overrides))
	for k, v := range defaultExtensions {
		ext[k] = v
	}
	for k, v := range overrides {
		ext[normalizeExt(k)] = v
	}
	return &Detector{extensions: ext}
}

// Detect returns the language id for a file name.
func (d *Detector) Detect(filename string) string {
	if id, ok := d.extensions[normalizeExt(filepath.Ext(filename))]; ok {
		return id
	}
	return PlainText
}

// HasExtension reports whether the file name ends in one of exts.
func HasExtension(filename string, exts []string) bool {
	ext := normalizeExt(filepath.Ext(filename))
	for _, e := range exts {
		if normalizeExt(e) == ext {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
