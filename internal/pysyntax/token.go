// Package pysyntax lexes and parses python source into a mutable token tree
// that can be printed back with its original layout.
package pysyntax

import "strings"

// Kind identifies the lexical class of a token.
type Kind int

// Token kinds.
const (
	EOF Kind = iota
	Name
	Number
	String
	Op
	Newline // end of a logical line
	NL      // non-logical line break (blank line, inside brackets)
	Comment
	Indent
	Dedent
)

var kindNames = map[Kind]string{
	EOF:     "EOF",
	Name:    "NAME",
	Number:  "NUMBER",
	String:  "STRING",
	Op:      "OP",
	Newline: "NEWLINE",
	NL:      "NL",
	Comment: "COMMENT",
	Indent:  "INDENT",
	Dedent:  "DEDENT",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "UNKNOWN"
}

// Token is one lexeme. Text starts out equal to Raw and is what the printer
// emits, so passes rewrite the tree by assigning Text.
type Token struct {
	Kind Kind
	Text string
	Raw  string
	// Start and End are byte offsets of Raw in the source.
	Start int
	End   int
	// Line is 1-based, Col is a 0-based byte column.
	Line int
	Col  int
	// Fields holds the lexed expressions of f-string replacement fields.
	Fields [][]*Token
}

// Is reports whether the token is an operator or name with the given text.
func (t *Token) Is(text string) bool {
	return (t.Kind == Op || t.Kind == Name) && t.Raw == text
}

// Changed reports whether a pass rewrote the token.
func (t *Token) Changed() bool {
	return t.Text != t.Raw
}

// StringPrefix returns the lower-cased prefix of a string token ("", "r", "b", "rb", "f", ...).
func (t *Token) StringPrefix() string {
	if t.Kind != String {
		return ""
	}

	i := strings.IndexAny(t.Raw, `'"`)
	if i <= 0 {
		return ""
	}

	return strings.ToLower(t.Raw[:i])
}

// IsBytes reports whether the token is a bytes literal.
func (t *Token) IsBytes() bool {
	return strings.Contains(t.StringPrefix(), "b")
}

// IsFormatted reports whether the token is an f-string or t-string.
func (t *Token) IsFormatted() bool {
	p := t.StringPrefix()
	return strings.Contains(p, "f") || strings.Contains(p, "t")
}

// IsRaw reports whether backslashes in the literal are kept verbatim.
func (t *Token) IsRaw() bool {
	return strings.Contains(t.StringPrefix(), "r")
}

// Keywords are the hard keywords of python 3.
var Keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// IsKeyword reports whether name is a hard keyword.
func IsKeyword(name string) bool {
	return Keywords[name]
}
