package pysyntax

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	tabSize = 8
	bom     = "\ufeff"
)

// Three-character operators come first so the longest match wins.
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"->", ":=", "**", "//", "<<", ">>", "<=", ">=", "==", "!=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"(", ")", "[", "]", "{", "}", ",", ":", ";", ".",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">", "=", "@", "!",
}

var stringPrefixes = map[string]bool{
	"r": true, "u": true, "b": true, "f": true, "t": true,
	"br": true, "rb": true, "fr": true, "rf": true, "tr": true, "rt": true,
}

type lexer struct {
	src       string
	pos       int
	end       int
	line      int
	lineStart int

	indents     []int
	brackets    []*Token
	atLineStart bool
	hasContent  bool
	// inner lexers scan f-string replacement fields: no layout tokens.
	inner bool

	tokens []*Token
}

// Tokenize splits src into tokens, including layout tokens (NEWLINE, NL,
// INDENT, DEDENT) and comments. The stream always ends with EOF.
func Tokenize(src string) ([]*Token, error) {
	l := &lexer{
		src:         src,
		end:         len(src),
		line:        1,
		indents:     []int{0},
		atLineStart: true,
	}

	if strings.HasPrefix(src, bom) {
		l.pos = len(bom)
		l.lineStart = l.pos
	}

	if err := l.run(); err != nil {
		return nil, err
	}

	return l.tokens, nil
}

func (l *lexer) run() error {
	for {
		if l.atLineStart && len(l.brackets) == 0 && !l.inner {
			if err := l.indentation(); err != nil {
				return err
			}
		}

		if l.pos >= l.end {
			break
		}

		if err := l.step(); err != nil {
			return err
		}
	}

	if l.inner {
		return nil
	}

	return l.finish()
}

func (l *lexer) step() error {
	c := l.src[l.pos]

	switch {
	case c == ' ' || c == '\t' || c == '\f':
		l.pos++
	case c == '\\':
		return l.continuation()
	case c == '\n' || c == '\r':
		l.newline()
	case c == '#':
		l.comment()
	case c == '"' || c == '\'':
		return l.str(l.pos, l.pos)
	case isDigit(c) || (c == '.' && l.pos+1 < l.end && isDigit(l.src[l.pos+1])):
		l.number()
	default:
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if isIdentStart(r) {
			return l.name()
		}

		if r >= utf8.RuneSelf || size > 1 {
			return l.errorf(l.line, l.pos-l.lineStart, "invalid character '%c' (U+%04X)", r, r)
		}

		return l.operator()
	}

	return nil
}

func (l *lexer) finish() error {
	if len(l.brackets) > 0 {
		open := l.brackets[len(l.brackets)-1]
		return l.errorf(open.Line, open.Col, "'%s' was never closed", open.Raw)
	}

	if l.hasContent {
		l.emitEmpty(Newline)
		l.hasContent = false
	}

	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emitEmpty(Dedent)
	}

	l.emitEmpty(EOF)

	return nil
}

func (l *lexer) indentation() error {
	l.atLineStart = false

	col := 0
	p := l.pos

scan:
	for p < l.end {
		switch l.src[p] {
		case ' ':
			col++
		case '\t':
			col = (col/tabSize + 1) * tabSize
		case '\f':
			col = 0
		default:
			break scan
		}
		p++
	}

	l.pos = p
	if p >= l.end {
		return nil
	}

	switch l.src[p] {
	case '\n', '\r', '#':
		return nil
	case '\\':
		if p+1 < l.end && (l.src[p+1] == '\n' || l.src[p+1] == '\r') {
			return nil
		}
	}

	top := l.indents[len(l.indents)-1]

	switch {
	case col > top:
		l.indents = append(l.indents, col)
		l.emitEmpty(Indent)
	case col < top:
		for col < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.emitEmpty(Dedent)
		}

		if col != l.indents[len(l.indents)-1] {
			return l.errorf(l.line, p-l.lineStart, "unindent does not match any outer indentation level")
		}
	}

	return nil
}

func (l *lexer) continuation() error {
	p := l.pos + 1
	if p < l.end && l.src[p] == '\r' {
		p++
	}

	if p < l.end && l.src[p] == '\n' {
		p++
	}

	if p == l.pos+1 && l.pos+1 < l.end {
		return l.errorf(l.line, l.pos-l.lineStart, "unexpected character after line continuation character")
	}

	if p == l.pos+1 {
		return l.errorf(l.line, l.pos-l.lineStart, "unexpected EOF after line continuation character")
	}

	l.pos = p
	l.line++
	l.lineStart = p

	return nil
}

func (l *lexer) newline() {
	n := 1
	if l.src[l.pos] == '\r' && l.pos+1 < l.end && l.src[l.pos+1] == '\n' {
		n = 2
	}

	kind := NL
	if len(l.brackets) == 0 && l.hasContent && !l.inner {
		kind = Newline
		l.hasContent = false
	}

	l.emit(kind, l.pos, l.pos+n)
	l.pos += n
	l.line++
	l.lineStart = l.pos

	if len(l.brackets) == 0 {
		l.atLineStart = true
	}
}

func (l *lexer) comment() {
	p := l.pos
	for p < l.end && l.src[p] != '\n' && l.src[p] != '\r' {
		p++
	}

	l.emit(Comment, l.pos, p)
	l.pos = p
}

func (l *lexer) name() error {
	start := l.pos
	p := l.pos

	for p < l.end {
		r, size := utf8.DecodeRuneInString(l.src[p:])
		if !isIdentContinue(r) {
			break
		}
		p += size
	}

	if p < l.end && (l.src[p] == '"' || l.src[p] == '\'') && stringPrefixes[strings.ToLower(l.src[start:p])] {
		return l.str(start, p)
	}

	l.emit(Name, start, p)
	l.pos = p

	return nil
}

func (l *lexer) number() {
	start := l.pos
	p := l.pos

	if l.src[p] == '0' && p+1 < l.end && strings.IndexByte("xXoObB", l.src[p+1]) >= 0 {
		p += 2
		for p < l.end && (isHexDigit(l.src[p]) || l.src[p] == '_') {
			p++
		}
	} else {
		for p < l.end {
			c := l.src[p]
			if isDigit(c) || c == '_' || c == '.' {
				p++
				continue
			}

			if (c == 'e' || c == 'E') && p+1 < l.end {
				next := l.src[p+1]
				if isDigit(next) {
					p++
					continue
				}

				if (next == '+' || next == '-') && p+2 < l.end && isDigit(l.src[p+2]) {
					p += 2
					continue
				}
			}

			break
		}
	}

	if p < l.end && (l.src[p] == 'j' || l.src[p] == 'J') {
		p++
	}

	l.emit(Number, start, p)
	l.pos = p
}

// str lexes a string literal whose prefix starts at start and whose opening
// quote is at quote.
func (l *lexer) str(start, quote int) error {
	startLine, startCol := l.line, start-l.lineStart
	q := l.src[quote]
	triple := quote+2 < l.end && l.src[quote+1] == q && l.src[quote+2] == q
	delim := string(q)

	if triple {
		delim = strings.Repeat(string(q), 3)
	}

	p := quote + len(delim)
	bodyStart := p

	for {
		if p >= l.end {
			return l.errorf(startLine, startCol, "unterminated string literal")
		}

		c := l.src[p]

		switch {
		case c == '\\':
			p++
			if p < l.end {
				p = l.skipEscaped(p)
			}

			continue
		case c == '\n' || c == '\r':
			if !triple {
				return l.errorf(startLine, startCol, "unterminated string literal")
			}

			p = l.lineBreak(p)

			continue
		case strings.HasPrefix(l.src[p:], delim):
			bodyEnd := p
			p += len(delim)

			tok := &Token{
				Kind:  String,
				Text:  l.src[start:p],
				Raw:   l.src[start:p],
				Start: start,
				End:   p,
				Line:  startLine,
				Col:   startCol,
			}

			if tok.IsFormatted() {
				fields, err := l.fields(bodyStart, bodyEnd, startLine)
				if err != nil {
					return err
				}

				tok.Fields = fields
			}

			l.push(tok)
			l.pos = p

			return nil
		}

		p++
	}
}

// skipEscaped steps over the character following a backslash.
func (l *lexer) skipEscaped(p int) int {
	if l.src[p] == '\n' || l.src[p] == '\r' {
		return l.lineBreak(p)
	}

	return p + 1
}

func (l *lexer) lineBreak(p int) int {
	if l.src[p] == '\r' && p+1 < l.end && l.src[p+1] == '\n' {
		p++
	}

	p++
	l.line++
	l.lineStart = p

	return p
}

// fields extracts the replacement-field expressions of an f-string body.
func (l *lexer) fields(p, end, line int) ([][]*Token, error) {
	var out [][]*Token

	for p < end {
		c := l.src[p]

		switch {
		case c == '\\' && p+1 < end && l.src[p+1] != '{' && l.src[p+1] != '}':
			p += 2
		case c == '{' && p+1 < end && l.src[p+1] == '{':
			p += 2
		case c == '{':
			found, next, err := l.replacementField(p, end, line)
			if err != nil {
				return nil, err
			}

			out = append(out, found...)
			p = next
		default:
			p++
		}
	}

	return out, nil
}

// replacementField scans one "{expr!c:fmt}" starting at the brace and
// returns the expression tokens of it and of any nested format fields.
func (l *lexer) replacementField(p, end, line int) ([][]*Token, int, error) {
	exprStart := p + 1

	exprEnd, err := l.fieldExprEnd(exprStart, end, line)
	if err != nil {
		return nil, 0, err
	}

	toks, err := l.sublex(exprStart, exprEnd)
	if err != nil {
		return nil, 0, err
	}

	out := [][]*Token{toks}
	p = exprEnd

	if p < end && l.src[p] == '=' {
		p++
	}

	if p+1 < end && l.src[p] == '!' {
		p += 2
	}

	if p < end && l.src[p] == ':' {
		p++
		for p < end && l.src[p] != '}' {
			if l.src[p] == '{' {
				nested, next, err := l.replacementField(p, end, line)
				if err != nil {
					return nil, 0, err
				}

				out = append(out, nested...)
				p = next

				continue
			}
			p++
		}
	}

	if p >= end || l.src[p] != '}' {
		return nil, 0, l.errorf(line, 0, "f-string: expecting '}'")
	}

	return out, p + 1, nil
}

func (l *lexer) fieldExprEnd(p, end, line int) (int, error) {
	depth := 0

	for p < end {
		c := l.src[p]

		switch {
		case c == '"' || c == '\'':
			p = l.skipQuoted(p, end)
			continue
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == '}':
			if depth == 0 {
				return p, nil
			}
			depth--
		case depth == 0 && c == '!' && (p+1 >= end || l.src[p+1] != '='):
			return p, nil
		case depth == 0 && c == ':' && (p+1 >= end || l.src[p+1] != '='):
			return p, nil
		case depth == 0 && c == '=' && p+1 < end && strings.IndexByte("}!:", l.src[p+1]) >= 0 &&
			(p == 0 || strings.IndexByte("=!<>", l.src[p-1]) < 0):
			return p, nil
		case c == '=' || c == '!' || c == '<' || c == '>':
			if p+1 < end && l.src[p+1] == '=' {
				p += 2
				continue
			}
		}
		p++
	}

	return 0, l.errorf(line, 0, "f-string: expecting '}'")
}

// skipQuoted steps over a string nested inside a replacement field.
func (l *lexer) skipQuoted(p, end int) int {
	q := l.src[p]
	delim := string(q)

	if p+2 < end && l.src[p+1] == q && l.src[p+2] == q {
		delim = strings.Repeat(string(q), 3)
	}

	p += len(delim)
	for p < end {
		if l.src[p] == '\\' {
			p += 2
			continue
		}

		if strings.HasPrefix(l.src[p:], delim) {
			return p + len(delim)
		}
		p++
	}

	return end
}

func (l *lexer) sublex(start, end int) ([]*Token, error) {
	lineStart := strings.LastIndexByte(l.src[:start], '\n') + 1
	line := strings.Count(l.src[:start], "\n") + 1

	sub := &lexer{
		src:       l.src,
		pos:       start,
		end:       end,
		line:      line,
		lineStart: lineStart,
		indents:   []int{0},
		inner:     true,
	}

	if err := sub.run(); err != nil {
		return nil, err
	}

	out := make([]*Token, 0, len(sub.tokens))

	for _, tok := range sub.tokens {
		switch tok.Kind {
		case Name, Number, String, Op:
			out = append(out, tok)
		}
	}

	return out, nil
}

func (l *lexer) operator() error {
	rest := l.src[l.pos:]

	for _, op := range operators {
		if !strings.HasPrefix(rest, op) {
			continue
		}

		start := l.pos
		tok := l.emit(Op, start, start+len(op))
		l.pos += len(op)

		switch op {
		case "(", "[", "{":
			l.brackets = append(l.brackets, tok)
		case ")", "]", "}":
			if len(l.brackets) == 0 {
				return l.errorf(tok.Line, tok.Col, "unmatched '%s'", op)
			}

			open := l.brackets[len(l.brackets)-1]
			if closing[open.Raw] != op {
				return l.errorf(tok.Line, tok.Col, "closing parenthesis '%s' does not match opening parenthesis '%s'", op, open.Raw)
			}

			l.brackets = l.brackets[:len(l.brackets)-1]
		}

		return nil
	}

	return l.errorf(l.line, l.pos-l.lineStart, "invalid character '%c'", l.src[l.pos])
}

var closing = map[string]string{"(": ")", "[": "]", "{": "}"}

func (l *lexer) emit(kind Kind, start, end int) *Token {
	tok := &Token{
		Kind:  kind,
		Text:  l.src[start:end],
		Raw:   l.src[start:end],
		Start: start,
		End:   end,
		Line:  l.line,
		Col:   start - l.lineStart,
	}

	l.push(tok)

	return tok
}

func (l *lexer) emitEmpty(kind Kind) {
	l.emit(kind, l.pos, l.pos)
}

func (l *lexer) push(tok *Token) {
	switch tok.Kind {
	case Name, Number, String, Op:
		l.hasContent = true
	}

	l.tokens = append(l.tokens, tok)
}

func (l *lexer) errorf(line, col int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Stage: StageLex,
		Line:  line,
		Col:   col,
		Msg:   fmt.Sprintf(format, args...),
		Text:  lineAt(l.src, line),
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}
