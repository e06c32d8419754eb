package pysyntax

import (
	"fmt"
)

// StmtKind classifies statements in the tree.
type StmtKind int

// Statement kinds.
const (
	SimpleStmt StmtKind = iota
	FuncDef
	ClassDef
	CompoundStmt
)

// Stmt is one statement. Compound statements keep their header tokens and
// a nested body; simple statements keep their full token run.
type Stmt struct {
	Kind StmtKind
	// Keyword is the leading keyword ("if", "def", "import", ...) or "" for
	// expression and assignment statements. "async" is folded away.
	Keyword string
	Async   bool
	Line    int

	// Tokens of a simple statement, without the terminating NEWLINE or ';'.
	Tokens []*Token

	// Header holds a compound statement from its keyword up to the block colon.
	Header     []*Token
	Decorators [][]*Token
	Name       *Token
	// TypeParams holds PEP 695 parameters of a def or class.
	TypeParams []*Token
	Params     []*Token
	Returns    []*Token
	Bases      []*Token

	Body []*Stmt
}

// Tree is a parsed module. Tokens is the complete stream the printer walks;
// Body is the statement structure over the same tokens.
type Tree struct {
	Source string
	Tokens []*Token
	Body   []*Stmt
}

var compoundKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"try": true, "except": true, "finally": true, "with": true,
	"def": true, "class": true,
}

var simpleKeywords = map[string]bool{
	"import": true, "from": true, "global": true, "nonlocal": true,
	"return": true, "pass": true, "del": true, "raise": true, "assert": true,
	"break": true, "continue": true, "yield": true,
}

// Parse tokenizes and parses src.
func Parse(src string) (*Tree, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src}
	for _, tok := range tokens {
		if tok.Kind != Comment && tok.Kind != NL {
			p.toks = append(p.toks, tok)
		}
	}

	body, err := p.block(false)
	if err != nil {
		return nil, err
	}

	return &Tree{Source: src, Tokens: tokens, Body: body}, nil
}

type parser struct {
	src  string
	toks []*Token
	pos  int
}

func (p *parser) peek() *Token {
	return p.toks[p.pos]
}

func (p *parser) next() *Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}

	return tok
}

func (p *parser) errorf(tok *Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Stage: StageParse,
		Line:  tok.Line,
		Col:   tok.Col,
		Msg:   fmt.Sprintf(format, args...),
		Text:  lineAt(p.src, tok.Line),
	}
}

func (p *parser) block(nested bool) ([]*Stmt, error) {
	var out []*Stmt

	for {
		tok := p.peek()

		switch tok.Kind {
		case EOF:
			return out, nil
		case Dedent:
			if !nested {
				return nil, p.errorf(tok, "unexpected unindent")
			}

			p.next()

			return out, nil
		case Indent:
			return nil, p.errorf(tok, "unexpected indent")
		case Newline:
			p.next()
		default:
			stmts, err := p.statement()
			if err != nil {
				return nil, err
			}

			out = append(out, stmts...)
		}
	}
}

// logicalLine consumes tokens up to and including the next NEWLINE and
// returns them without it.
func (p *parser) logicalLine() []*Token {
	start := p.pos
	for p.peek().Kind != Newline && p.peek().Kind != EOF {
		p.next()
	}

	line := p.toks[start:p.pos]
	if p.peek().Kind == Newline {
		p.next()
	}

	return line
}

func (p *parser) upcomingLine() []*Token {
	end := p.pos
	for end < len(p.toks) && p.toks[end].Kind != Newline && p.toks[end].Kind != EOF {
		end++
	}

	return p.toks[p.pos:end]
}

func (p *parser) statement() ([]*Stmt, error) {
	var decorators [][]*Token

	for p.peek().Is("@") {
		at := p.next()

		expr := p.logicalLine()
		if len(expr) == 0 {
			return nil, p.errorf(at, "invalid decorator")
		}

		decorators = append(decorators, expr)
	}

	line := p.upcomingLine()

	if len(decorators) > 0 && !isDefinition(line) {
		return nil, p.errorf(p.peek(), "expected 'def' or 'class' after decorator")
	}

	if isCompound(line) {
		stmt, err := p.compound(decorators)
		if err != nil {
			return nil, err
		}

		return []*Stmt{stmt}, nil
	}

	return splitSimple(p.logicalLine()), nil
}

func isDefinition(line []*Token) bool {
	if len(line) == 0 {
		return false
	}

	if line[0].Is("async") && len(line) > 1 {
		return line[1].Is("def")
	}

	return line[0].Is("def") || line[0].Is("class")
}

func isCompound(line []*Token) bool {
	if len(line) == 0 || line[0].Kind != Name {
		return false
	}

	first := line[0].Raw

	switch {
	case compoundKeywords[first]:
		return true
	case first == "async":
		return len(line) > 1 && (line[1].Is("def") || line[1].Is("for") || line[1].Is("with"))
	case first == "match" || first == "case":
		return isSoftCompound(line)
	}

	return false
}

// isSoftCompound tells a match or case statement apart from an ordinary
// use of the name: the line must end in the block colon.
func isSoftCompound(line []*Token) bool {
	if len(line) < 3 {
		return false
	}

	second := line[1]
	if second.Kind == Op {
		switch second.Raw {
		case "(", "[", "{", "-", "*", "~":
		default:
			return false
		}
	}

	return headerColon(line) == len(line)-1
}

// headerColon finds the colon closing a compound header, skipping colons
// that belong to lambdas, slices and dict displays.
func headerColon(line []*Token) int {
	depth := 0
	lambdas := 0

	for i, tok := range line {
		if tok.Kind == Name && tok.Raw == "lambda" && depth == 0 {
			lambdas++
			continue
		}

		if tok.Kind != Op {
			continue
		}

		switch tok.Raw {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ":":
			if depth != 0 {
				continue
			}

			if lambdas > 0 {
				lambdas--
				continue
			}

			return i
		}
	}

	return -1
}

func (p *parser) compound(decorators [][]*Token) (*Stmt, error) {
	line := p.logicalLine()
	first := line[0]

	colon := headerColon(line)
	if colon < 0 {
		return nil, p.errorf(line[len(line)-1], "expected ':'")
	}

	stmt := &Stmt{
		Kind:       CompoundStmt,
		Keyword:    first.Raw,
		Line:       first.Line,
		Header:     line[:colon],
		Decorators: decorators,
	}

	header := stmt.Header
	if first.Raw == "async" {
		stmt.Async = true
		stmt.Keyword = line[1].Raw
		header = header[1:]
	}

	switch stmt.Keyword {
	case "def":
		if err := p.funcHeader(stmt, header, line[colon]); err != nil {
			return nil, err
		}
	case "class":
		if err := p.classHeader(stmt, header, line[colon]); err != nil {
			return nil, err
		}
	}

	if rest := line[colon+1:]; len(rest) > 0 {
		stmt.Body = splitSimple(rest)
		return stmt, nil
	}

	if p.peek().Kind != Indent {
		return nil, p.errorf(p.peek(), "expected an indented block after '%s' statement on line %d", stmt.Keyword, stmt.Line)
	}

	p.next()

	body, err := p.block(true)
	if err != nil {
		return nil, err
	}

	stmt.Body = body

	return stmt, nil
}

func (p *parser) funcHeader(stmt *Stmt, header []*Token, colon *Token) error {
	stmt.Kind = FuncDef

	if len(header) < 2 || header[1].Kind != Name || IsKeyword(header[1].Raw) {
		return p.errorf(tokenOr(header, 1, colon), "expected function name")
	}

	stmt.Name = header[1]
	i := 2

	if i < len(header) && header[i].Is("[") {
		end := Matching(header, i)
		if end < 0 {
			return p.errorf(header[i], "'[' was never closed")
		}

		stmt.TypeParams = header[i+1 : end]
		i = end + 1
	}

	if i >= len(header) || !header[i].Is("(") {
		return p.errorf(tokenOr(header, i, colon), "expected '('")
	}

	end := Matching(header, i)
	if end < 0 {
		return p.errorf(header[i], "'(' was never closed")
	}

	stmt.Params = header[i+1 : end]
	i = end + 1

	if i < len(header) {
		if !header[i].Is("->") {
			return p.errorf(header[i], "expected ':'")
		}

		stmt.Returns = header[i+1:]
	}

	return nil
}

func (p *parser) classHeader(stmt *Stmt, header []*Token, colon *Token) error {
	stmt.Kind = ClassDef

	if len(header) < 2 || header[1].Kind != Name || IsKeyword(header[1].Raw) {
		return p.errorf(tokenOr(header, 1, colon), "expected class name")
	}

	stmt.Name = header[1]
	i := 2

	if i < len(header) && header[i].Is("[") {
		end := Matching(header, i)
		if end < 0 {
			return p.errorf(header[i], "'[' was never closed")
		}

		stmt.TypeParams = header[i+1 : end]
		i = end + 1
	}

	if i < len(header) {
		if !header[i].Is("(") {
			return p.errorf(header[i], "expected ':'")
		}

		end := Matching(header, i)
		if end < 0 {
			return p.errorf(header[i], "'(' was never closed")
		}

		stmt.Bases = header[i+1 : end]
	}

	return nil
}

func tokenOr(toks []*Token, i int, fallback *Token) *Token {
	if i < len(toks) {
		return toks[i]
	}

	return fallback
}

// Matching returns the index of the bracket closing toks[open], or -1.
func Matching(toks []*Token, open int) int {
	depth := 0

	for i := open; i < len(toks); i++ {
		if toks[i].Kind != Op {
			continue
		}

		switch toks[i].Raw {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitSimple splits a logical line on top-level semicolons.
func splitSimple(line []*Token) []*Stmt {
	var out []*Stmt

	depth := 0
	start := 0

	flush := func(end int) {
		if end > start {
			seg := line[start:end]
			stmt := &Stmt{Kind: SimpleStmt, Tokens: seg, Line: seg[0].Line}

			if seg[0].Kind == Name && simpleKeywords[seg[0].Raw] {
				stmt.Keyword = seg[0].Raw
			}

			out = append(out, stmt)
		}

		start = end + 1
	}

	for i, tok := range line {
		if tok.Kind != Op {
			continue
		}

		switch tok.Raw {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ";":
			if depth == 0 {
				flush(i)
			}
		}
	}

	flush(len(line))

	return out
}

// Walk visits every statement depth-first in source order.
func (t *Tree) Walk(fn func(*Stmt)) {
	var walk func([]*Stmt)

	walk = func(stmts []*Stmt) {
		for _, s := range stmts {
			fn(s)
			walk(s.Body)
		}
	}

	walk(t.Body)
}

// EachToken visits every token, descending into f-string fields.
func (t *Tree) EachToken(fn func(*Token)) {
	var visit func(*Token)

	visit = func(tok *Token) {
		fn(tok)

		for _, field := range tok.Fields {
			for _, sub := range field {
				visit(sub)
			}
		}
	}

	for _, tok := range t.Tokens {
		visit(tok)
	}
}

// Identifiers returns the set of every name spelled in the source.
func (t *Tree) Identifiers() map[string]bool {
	names := make(map[string]bool)

	t.EachToken(func(tok *Token) {
		if tok.Kind == Name {
			names[tok.Raw] = true
		}
	})

	return names
}
