// Package syntax lexically classifies V source text for highlighting. It
// assigns display categories to substrings of a buffer by evaluating a fixed,
// ordered table of rules, gated by a per-character syntax table that keeps
// keyword and operator rules out of comments and strings.
package syntax

import "fmt"

// A KeywordClass is a named set of reserved words that all display with the
// same category. Classes are plain values: build one, hand it to Compile,
// and never mutate it afterwards. Duplicate words within or across classes
// are allowed; the rule table order decides which class wins.
type KeywordClass struct {
	Name     string
	Words    []string
	Category Category
}

// ConfigError reports an invalid keyword class or configuration value.
type ConfigError struct {
	Class  string // empty when the error is not tied to one class
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("config: class %q: %s", e.Class, e.Reason)
	}
	return "config: " + e.Reason
}

// NewKeywordClass validates a word set and returns it as an immutable class
// value. The words slice is copied so later changes by the caller cannot
// leak into a compiled table.
func NewKeywordClass(name string, words []string, cat Category) (KeywordClass, error) {
	if name == "" {
		return KeywordClass{}, &ConfigError{Reason: "keyword class has no name"}
	}
	if len(words) == 0 {
		return KeywordClass{}, &ConfigError{Class: name, Reason: "empty word set"}
	}
	copied := make([]string, len(words))
	for i, w := range words {
		if w == "" {
			return KeywordClass{}, &ConfigError{Class: name, Reason: "empty word in set"}
		}
		copied[i] = w
	}
	return KeywordClass{Name: name, Words: copied, Category: cat}, nil
}

// Config is the user-configurable surface of the highlighter: the six word
// sets that feed the keyword classes, plus optional extra patterns appended
// after the built-in structural rules. Replacing one set and recompiling
// changes only that class's matches; the structural precedence order never
// moves.
type Config struct {
	DeclarationKeywords  []string      `yaml:"declaration_keywords"`
	PreprocessorKeywords []string      `yaml:"preprocessor_keywords"`
	CarefulKeywords      []string      `yaml:"careful_keywords"`
	BuiltinKeywords      []string      `yaml:"builtin_keywords"`
	Constants            []string      `yaml:"constants"`
	OperatorFunctions    []string      `yaml:"operator_functions"`
	ExtraPatterns        []PatternSpec `yaml:"extra_patterns,omitempty"`
}

// PatternSpec describes one extra structural pattern in a configuration
// file. Group selects which capture of the regexp is classified; group 0 is
// the whole match.
type PatternSpec struct {
	Regexp   string `yaml:"regexp"`
	Group    int    `yaml:"group"`
	Category string `yaml:"category"`
}

// classes converts the word sets into keyword classes, validating each.
func (c *Config) classes() (declaration, preprocessor, careful, builtin, constants, opFuncs KeywordClass, err error) {
	if declaration, err = NewKeywordClass("declaration_keywords", c.DeclarationKeywords, CategoryDeclaration); err != nil {
		return
	}
	if preprocessor, err = NewKeywordClass("preprocessor_keywords", c.PreprocessorKeywords, CategoryPreprocessor); err != nil {
		return
	}
	if careful, err = NewKeywordClass("careful_keywords", c.CarefulKeywords, CategoryCareful); err != nil {
		return
	}
	if builtin, err = NewKeywordClass("builtin_keywords", c.BuiltinKeywords, CategoryBuiltinType); err != nil {
		return
	}
	if constants, err = NewKeywordClass("constants", c.Constants, CategoryKeyword); err != nil {
		return
	}
	opFuncs, err = NewKeywordClass("operator_functions", c.OperatorFunctions, CategoryFunctionName)
	return
}

// Validate checks every word set without compiling anything.
func (c *Config) Validate() error {
	_, _, _, _, _, _, err := c.classes()
	return err
}

// DefaultConfig returns the stock word sets for the V language.
func DefaultConfig() Config {
	return Config{
		DeclarationKeywords: []string{
			"enum", "fn", "interface", "struct", "type", "union",
		},
		PreprocessorKeywords: []string{
			"__global", "const", "import", "module", "pub", "static",
		},
		CarefulKeywords: []string{
			"as", "asm", "assert", "atomic", "break", "continue", "defer",
			"else", "for", "go", "goto", "if", "in", "is", "lock", "match",
			"mut", "or", "panic", "return", "rlock", "select", "shared",
			"spawn", "unsafe",
		},
		BuiltinKeywords: []string{
			"any", "bool", "byte", "byteptr", "char", "charptr", "f32",
			"f64", "i128", "i16", "i64", "i8", "int", "isize", "rune",
			"string", "u128", "u16", "u32", "u64", "u8", "usize", "voidptr",
		},
		Constants: []string{
			"false", "none", "true",
		},
		OperatorFunctions: []string{
			"dump", "isreftype", "sizeof", "typeof",
		},
	}
}
