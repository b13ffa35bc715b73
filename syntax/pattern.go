package syntax

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PatternError reports a structural pattern that could not be compiled.
// Rule table construction is all-or-nothing: one bad pattern and no table
// is produced.
type PatternError struct {
	Source string
	Err    error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Source, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// A Pattern is one ordered rule of the table. It is either a word-set
// matcher compiled from a KeywordClass, or a general regexp whose given
// capture group receives the category. Patterns are immutable once
// compiled.
type Pattern struct {
	re       *regexp.Regexp
	group    int
	category Category
	class    string // keyword class name, or "" for a structural rule
}

// Category returns the display category this rule assigns.
func (p *Pattern) Category() Category { return p.category }

// A RuleTable is the fixed ordered sequence of compiled Patterns used by a
// classification pass. Earlier rules win conflicts: once a rule claims a
// byte, no later rule may produce a span covering it.
type RuleTable struct {
	rules []Pattern
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int { return len(t.rules) }

type tableBuilder struct {
	rules []Pattern
	err   error
}

// words compiles a keyword class into a word-boundary-anchored alternation.
// Longer words come first in the alternation so that a word which prefixes
// another (e.g. "i8" and "i") cannot shadow the longer match.
func (b *tableBuilder) words(c KeywordClass) {
	if b.err != nil {
		return
	}
	sorted := make([]string, len(c.Words))
	copy(sorted, c.Words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	for i, w := range sorted {
		sorted[i] = regexp.QuoteMeta(w)
	}
	src := `\b(?:` + strings.Join(sorted, "|") + `)\b`
	re, err := regexp.Compile(src)
	if err != nil {
		b.err = &PatternError{Source: src, Err: err}
		return
	}
	b.rules = append(b.rules, Pattern{re: re, category: c.Category, class: c.Name})
}

// pattern compiles one structural rule. group must name an existing capture
// of the expression.
func (b *tableBuilder) pattern(src string, group int, cat Category) {
	if b.err != nil {
		return
	}
	re, err := regexp.Compile(src)
	if err != nil {
		b.err = &PatternError{Source: src, Err: err}
		return
	}
	if group < 0 || group > re.NumSubexp() {
		b.err = &PatternError{
			Source: src,
			Err:    fmt.Errorf("capture group %d out of range (pattern has %d)", group, re.NumSubexp()),
		}
		return
	}
	b.rules = append(b.rules, Pattern{re: re, group: group, category: cat})
}

// Character sets shared by the context-sensitive structural rules below.
// opChars are the characters that may form operator runs; numeric literals
// and the lone colon use them to decide what counts as operator context.
const opChars = `+\-*/%=<>!&|^~?`

// Compile validates the configuration and builds the rule table. The
// precedence order below is fixed; only the word sets inside the keyword
// class slots are configurable. Compilation either produces a complete
// table or fails with a *ConfigError / *PatternError, never a partial
// table.
func Compile(cfg Config) (*RuleTable, error) {
	declaration, preprocessor, careful, builtin, constants, opFuncs, err := cfg.classes()
	if err != nil {
		return nil, err
	}

	var b tableBuilder

	b.words(builtin)
	b.words(careful)
	// Attribute and compile-time tokens: a sigil followed by an identifier.
	b.pattern(`[@#$][A-Za-z_][A-Za-z0-9_]*`, 0, CategoryAttribute)
	b.words(declaration)
	b.words(preprocessor)
	// Multi-character operators: arrows, assignment-with-op, range, pipe.
	b.pattern(`->|=>|<-|\.\.|:=|\+\+|--|<<=|>>=|<<|>>|&&|\|\||[+\-*/%&|^]=|==|!=|<=|>=`, 0, CategoryOperator)
	// Statement separators.
	b.pattern(`[,;]|\.+`, 0, CategorySeparator)
	// Arithmetic and comparison operator runs.
	b.pattern(`[+\-*/%=<>!]+`, 0, CategoryOperator)
	// Prefix, unary and logical operator runs.
	b.pattern(`[!&~^?]+`, 0, CategoryOperator)
	// A single colon, only when neither neighbor is an operator character.
	b.pattern(`(?m)(?:^|[^:`+opChars+`])(:)(?:$|[^:`+opChars+`])`, 1, CategoryOperator)
	// Bracket, brace and paren delimiters.
	b.pattern(`[(){}\[\]]`, 0, CategoryDelimiter)
	// Numeric literals, only after whitespace, an operator, an opening
	// bracket or a separator. The context requirement keeps digit suffixes
	// of identifiers from classifying as numbers.
	b.pattern(`(?m)(?:^|[\s(\[{,;:`+opChars+`])(0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|[0-9][0-9_]*(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?)`, 1, CategoryNumericLiteral)
	// The identifier following the function introducer, with an optional
	// receiver in between.
	b.pattern(`\bfn\s+(?:\([^)]*\)\s*)?([a-z_][A-Za-z0-9_]*)`, 1, CategoryFunctionName)
	// Capitalized identifiers read as type names.
	b.pattern(`\b[A-Z][A-Za-z0-9_]*\b`, 0, CategoryTypeName)
	b.words(constants)
	b.words(opFuncs)
	// Character literals. The delimited-region scan usually claims quoted
	// text first, so this rule only sees text the scanner left behind.
	b.pattern("`(?:\\\\.|[^`\n])`|'(?:\\\\.|[^'\n])'", 0, CategoryCharLiteral)
	// Bare call sites: an identifier directly before an opening paren.
	b.pattern(`\b([a-z_][A-Za-z0-9_]*)\(`, 1, CategoryCallReference)
	// Parameter positions: an identifier after an open paren or comma.
	b.pattern(`[(,]\s*([a-z_][A-Za-z0-9_]*)`, 1, CategoryParameter)
	// Tuple and positional field references.
	b.pattern(`\.(_[0-9]+)`, 1, CategoryTupleReference)
	// Fallback: any remaining lowercase identifier is a variable reference.
	b.pattern(`\b[a-z_][A-Za-z0-9_]*\b`, 0, CategoryVariableReference)

	for _, spec := range cfg.ExtraPatterns {
		cat, err := ParseCategory(spec.Category)
		if err != nil {
			return nil, err
		}
		b.pattern(spec.Regexp, spec.Group, cat)
	}

	if b.err != nil {
		return nil, b.err
	}
	return &RuleTable{rules: b.rules}, nil
}
