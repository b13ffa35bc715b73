package syntax

import (
	"path/filepath"
	"strings"
)

// A Language ties a name and its file extensions to a highlighter
// configuration.
type Language struct {
	Name      string
	Filetypes []string // .v, .vsh, etc.
	Config    Config
}

// Matches reports whether path has one of the language's file extensions.
func (l *Language) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, ft := range l.Filetypes {
		if ext == ft {
			return true
		}
	}
	return false
}

// Languages lists every known language. V source files, V modules and V
// shell scripts all select the same classifier.
var Languages = []Language{
	{Name: "V", Filetypes: []string{".v", ".vv", ".vsh"}, Config: DefaultConfig()},
}

// Detect returns the language associated with path's extension.
func Detect(path string) (*Language, bool) {
	for i := range Languages {
		if Languages[i].Matches(path) {
			return &Languages[i], true
		}
	}
	return nil, false
}
