package syntax

// CharClass is a set of lexical role flags for a single byte of input.
type CharClass uint8

const (
	ClassWhitespace   CharClass = 1 << iota
	ClassWord                   // may appear inside an identifier
	ClassPunct                  // operator or other punctuation
	ClassStringDelim            // opens and closes a string region
	ClassCommentStart           // two in a row open a line comment
	ClassCommentEnd             // closes a line comment
)

// A SyntaxTable assigns a CharClass to every byte value. It gates where the
// rule table is allowed to match: text between string delimiters or between
// a comment opener and its closer never reaches the structural rules. The
// table is immutable after construction, so one table may serve any number
// of concurrent classification passes.
type SyntaxTable struct {
	classes [256]CharClass
}

// NewSyntaxTable builds the default table: backtick, single and double
// quote are undifferentiated string delimiters, `//` opens a comment closed
// by the line terminator, and underscore counts as a word constituent so
// identifiers containing it are never split. Bytes with the high bit set
// belong to multibyte runes and count as word constituents too.
func NewSyntaxTable() *SyntaxTable {
	var t SyntaxTable
	for b := 0; b < 256; b++ {
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v':
			t.classes[b] = ClassWhitespace
		case b == '\n':
			t.classes[b] = ClassWhitespace | ClassCommentEnd
		case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
			t.classes[b] = ClassWord
		case b == '\'' || b == '"' || b == '`':
			t.classes[b] = ClassStringDelim
		case b == '/':
			t.classes[b] = ClassPunct | ClassCommentStart
		case b >= 0x80:
			t.classes[b] = ClassWord
		default:
			t.classes[b] = ClassPunct
		}
	}
	return &t
}

var defaultSyntaxTable = NewSyntaxTable()

// Class returns the full flag set for b.
func (t *SyntaxTable) Class(b byte) CharClass {
	return t.classes[b]
}

// Is reports whether b carries any of the flags in c.
func (t *SyntaxTable) Is(b byte, c CharClass) bool {
	return t.classes[b]&c != 0
}
