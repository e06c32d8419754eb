package pysyntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []*Token) []Kind {
	out := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}

	return out
}

func TestTokenize_IndentDedent(t *testing.T) {
	src := "def f(x):\n    return x\nprint(f(1))\n"

	toks, err := Tokenize(src)
	require.NoError(t, err)

	assert.Equal(t, []Kind{
		Name, Name, Op, Name, Op, Op, Newline,
		Indent, Name, Name, Newline,
		Dedent, Name, Op, Name, Op, Number, Op, Op, Newline,
		EOF,
	}, kinds(toks))
}

func TestTokenize_BlankAndCommentLinesKeepIndentation(t *testing.T) {
	src := "if x:\n    a = 1\n\n# note\n    b = 2\n"

	toks, err := Tokenize(src)
	require.NoError(t, err)

	indents := 0
	dedents := 0

	for _, tok := range toks {
		switch tok.Kind {
		case Indent:
			indents++
		case Dedent:
			dedents++
		}
	}

	assert.Equal(t, 1, indents)
	assert.Equal(t, 1, dedents)
}

func TestTokenize_BracketsSuppressNewline(t *testing.T) {
	src := "x = (1,\n     2)\n"

	toks, err := Tokenize(src)
	require.NoError(t, err)

	newlines := 0
	nls := 0

	for _, tok := range toks {
		switch tok.Kind {
		case Newline:
			newlines++
		case NL:
			nls++
		}
	}

	assert.Equal(t, 1, newlines)
	assert.Equal(t, 1, nls)
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		prefix string
		bytes  bool
		fmt    bool
	}{
		{"plain", `'hello'`, "", false, false},
		{"double", `"hello"`, "", false, false},
		{"triple", `"""a
b"""`, "", false, false},
		{"raw", `r'\d+'`, "r", false, false},
		{"bytes", `b'abc'`, "b", true, false},
		{"raw bytes", `Rb'abc'`, "rb", true, false},
		{"fstring", `f'{x}'`, "f", false, true},
		{"escaped quote", `'it\'s'`, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.src + "\n")
			require.NoError(t, err)
			require.Equal(t, String, toks[0].Kind)
			assert.Equal(t, tt.src, toks[0].Raw)
			assert.Equal(t, tt.prefix, toks[0].StringPrefix())
			assert.Equal(t, tt.bytes, toks[0].IsBytes())
			assert.Equal(t, tt.fmt, toks[0].IsFormatted())
		})
	}
}

func TestTokenize_FStringFields(t *testing.T) {
	src := `f"{name!r:>{width}} {obj.attr} {{literal}} {a == b=}"` + "\n"

	toks, err := Tokenize(src)
	require.NoError(t, err)
	require.Equal(t, String, toks[0].Kind)

	var names []string

	for _, field := range toks[0].Fields {
		for _, sub := range field {
			if sub.Kind == Name {
				names = append(names, sub.Raw)
			}
		}
	}

	assert.Equal(t, []string{"name", "width", "obj", "attr", "a", "b"}, names)
}

func TestTokenize_Numbers(t *testing.T) {
	for _, src := range []string{"0", "1_000", "0x1F", "0b101", "3.14", ".5", "1e10", "2.5E-3", "4j"} {
		toks, err := Tokenize(src + "\n")
		require.NoError(t, err, src)
		assert.Equal(t, Number, toks[0].Kind, src)
		assert.Equal(t, src, toks[0].Raw)
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unterminated string", "x = 'abc\n", 1},
		{"unterminated triple", "x = '''abc\n", 1},
		{"unclosed paren", "x = (1,\n2\n", 1},
		{"unmatched close", "x = 1)\n", 1},
		{"bad dedent", "if x:\n        a\n    b\n", 3},
		{"invalid char", "x = $\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.src)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, StageLex, syntaxErr.Stage)
			assert.Equal(t, tt.line, syntaxErr.Line)
			assert.Contains(t, syntaxErr.Snippet(), "^")
		})
	}
}

func TestTokenize_LineContinuation(t *testing.T) {
	toks, err := Tokenize("x = 1 + \\\n    2\n")
	require.NoError(t, err)

	assert.Equal(t, []Kind{Name, Op, Number, Op, Number, Newline, EOF}, kinds(toks))
	assert.Equal(t, 2, toks[4].Line)
}

func TestTokenize_TabsAndBOM(t *testing.T) {
	toks, err := Tokenize("\ufeffif x:\n\tpass\n")
	require.NoError(t, err)

	assert.Equal(t, "if", toks[0].Raw)
	assert.Contains(t, kinds(toks), Indent)
}
