package domain

import (
	"fmt"

	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

// ScopeKind classifies a lexical scope.
type ScopeKind int

// Scope kinds.
const (
	ModuleScope ScopeKind = iota
	FunctionScope
	ClassScope
	LambdaScope
	ComprehensionScope
)

func (k ScopeKind) String() string {
	switch k {
	case ModuleScope:
		return "module"
	case FunctionScope:
		return "function"
	case ClassScope:
		return "class"
	case LambdaScope:
		return "lambda"
	case ComprehensionScope:
		return "comprehension"
	}

	return "unknown"
}

// Scope is one lexical scope. Scopes live in Resolution.Scopes and point at
// their parent by index; the module scope is index 0 with Parent -1.
type Scope struct {
	Kind      ScopeKind
	Name      string
	Parent    int
	Defined   map[string]bool
	Pinned    map[string]bool
	Globals   map[string]bool
	Nonlocals map[string]bool
	Renames   map[string]string
}

type occurrence struct {
	tok   *pysyntax.Token
	scope int
}

// Resolution is the scope structure of a tree plus every identifier
// occurrence, split into definitions and references.
type Resolution struct {
	Scopes []Scope
	// KeywordArgs holds every name used as a keyword argument in a call.
	KeywordArgs map[string]bool
	// CaseStrings holds string tokens that sit inside match-case patterns.
	CaseStrings map[*pysyntax.Token]bool

	defs    []occurrence
	refs    []occurrence
	params  []occurrence
	imports []occurrence
	// echoes are names printed by self-documenting f-string fields.
	echoes []occurrence
}

// ResolveOption configures ResolveScopes.
type ResolveOption func(*resolver)

// WithKeywordParams keeps the spelling of any parameter whose name is also
// passed as a keyword argument somewhere in the module.
func WithKeywordParams(preserve bool) ResolveOption {
	return func(r *resolver) {
		r.preserveKeywordParams = preserve
	}
}

type resolver struct {
	src                   string
	res                   *Resolution
	rawDefs               []occurrence
	preserveKeywordParams bool
}

// ResolveScopes builds the scope arena for tree. Definitions are collected
// for the whole module before any reference is resolved, so a name used
// above its definition still binds to it.
func ResolveScopes(tree *pysyntax.Tree, opts ...ResolveOption) (*Resolution, error) {
	r := &resolver{
		src: tree.Source,
		res: &Resolution{
			KeywordArgs: make(map[string]bool),
			CaseStrings: make(map[*pysyntax.Token]bool),
		},
		preserveKeywordParams: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	module := r.newScope(ModuleScope, "<module>", -1)

	if err := r.block(tree.Body, module); err != nil {
		return nil, err
	}

	r.finalize()

	return r.res, nil
}

// Lookup returns the scope that owns name as seen from scope, or -1 when the
// name is not defined anywhere in the module.
func (res *Resolution) Lookup(scope int, name string) int {
	return res.lookup(scope, name, false)
}

func (res *Resolution) lookup(scope int, name string, skipClass bool) int {
	for s := scope; s >= 0; {
		sc := &res.Scopes[s]

		if sc.Globals[name] {
			if res.Scopes[0].Defined[name] {
				return 0
			}

			return -1
		}

		if sc.Nonlocals[name] {
			s = sc.Parent
			skipClass = true

			continue
		}

		// Class bodies are not visible from the scopes nested inside them.
		if sc.Defined[name] && (sc.Kind != ClassScope || !skipClass) {
			return s
		}

		skipClass = true
		s = sc.Parent
	}

	return -1
}

func (r *resolver) finalize() {
	res := r.res

	owner := func(occ occurrence) int {
		sc := &res.Scopes[occ.scope]

		switch {
		case sc.Globals[occ.tok.Raw]:
			return 0
		case sc.Nonlocals[occ.tok.Raw]:
			if o := res.lookup(sc.Parent, occ.tok.Raw, true); o >= 0 {
				return o
			}
		}

		return occ.scope
	}

	var deferred []occurrence

	for _, occ := range r.rawDefs {
		if res.Scopes[occ.scope].Nonlocals[occ.tok.Raw] {
			deferred = append(deferred, occ)
			continue
		}

		o := owner(occ)
		res.Scopes[o].Defined[occ.tok.Raw] = true
		res.defs = append(res.defs, occurrence{tok: occ.tok, scope: o})
	}

	for _, occ := range deferred {
		o := owner(occ)
		res.Scopes[o].Defined[occ.tok.Raw] = true
		res.defs = append(res.defs, occurrence{tok: occ.tok, scope: o})
	}

	for _, occ := range res.imports {
		res.Scopes[owner(occ)].Pinned[occ.tok.Raw] = true
	}

	// A class body read of a name it binds falls through to the enclosing
	// binding until the class assigns it, so both keep the same spelling.
	for i := range res.Scopes {
		sc := &res.Scopes[i]
		if sc.Kind != ClassScope {
			continue
		}

		for name := range sc.Defined {
			sc.Pinned[name] = true

			if o := res.lookup(sc.Parent, name, true); o >= 0 {
				res.Scopes[o].Pinned[name] = true
			}
		}
	}

	// f"{x=}" prints the spelling of x.
	for _, occ := range res.echoes {
		if o := res.Lookup(occ.scope, occ.tok.Raw); o >= 0 {
			res.Scopes[o].Pinned[occ.tok.Raw] = true
		}
	}

	if r.preserveKeywordParams {
		for _, occ := range res.params {
			if res.KeywordArgs[occ.tok.Raw] {
				res.Scopes[occ.scope].Pinned[occ.tok.Raw] = true
			}
		}
	}
}

func (r *resolver) newScope(kind ScopeKind, name string, parent int) int {
	r.res.Scopes = append(r.res.Scopes, Scope{
		Kind:      kind,
		Name:      name,
		Parent:    parent,
		Defined:   make(map[string]bool),
		Pinned:    make(map[string]bool),
		Globals:   make(map[string]bool),
		Nonlocals: make(map[string]bool),
		Renames:   make(map[string]string),
	})

	return len(r.res.Scopes) - 1
}

func (r *resolver) define(tok *pysyntax.Token, scope int) {
	if tok.Kind != pysyntax.Name || pysyntax.IsKeyword(tok.Raw) {
		return
	}

	r.rawDefs = append(r.rawDefs, occurrence{tok: tok, scope: scope})
}

func (r *resolver) defineImport(tok *pysyntax.Token, scope int) {
	if tok.Kind != pysyntax.Name {
		return
	}

	r.define(tok, scope)
	r.res.imports = append(r.res.imports, occurrence{tok: tok, scope: scope})
}

func (r *resolver) reference(tok *pysyntax.Token, scope int) {
	r.res.refs = append(r.res.refs, occurrence{tok: tok, scope: scope})
}

func (r *resolver) errorf(tok *pysyntax.Token, format string, args ...any) error {
	return &pysyntax.SyntaxError{
		Stage: pysyntax.StageParse,
		Line:  tok.Line,
		Col:   tok.Col,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func (r *resolver) block(stmts []*pysyntax.Stmt, scope int) error {
	for _, s := range stmts {
		if err := r.stmt(s, scope); err != nil {
			return err
		}
	}

	return nil
}

func (r *resolver) stmt(s *pysyntax.Stmt, scope int) error {
	switch s.Kind {
	case pysyntax.SimpleStmt:
		return r.simple(s, scope)
	case pysyntax.FuncDef:
		return r.funcDef(s, scope)
	case pysyntax.ClassDef:
		return r.classDef(s, scope)
	}

	header := s.Header
	if s.Async {
		header = header[1:]
	}

	rest := header[1:]

	switch s.Keyword {
	case "if", "elif", "while", "match":
		r.expr(rest, scope, false)
	case "for":
		in := indexName(rest, "in")
		if in < 0 {
			return r.errorf(header[0], "expected 'in' in for statement")
		}

		r.targets(rest[:in], scope)
		r.expr(rest[in+1:], scope, false)
	case "with":
		r.withItems(rest, scope)
	case "except":
		if len(rest) > 0 && rest[0].Is("*") {
			rest = rest[1:]
		}

		if as := indexName(rest, "as"); as >= 0 {
			r.expr(rest[:as], scope, false)
			r.targets(rest[as+1:], scope)
		} else {
			r.expr(rest, scope, false)
		}
	case "case":
		r.casePattern(rest, scope)
	}

	return r.block(s.Body, scope)
}

func (r *resolver) funcDef(s *pysyntax.Stmt, scope int) error {
	for _, decorator := range s.Decorators {
		r.expr(decorator, scope, false)
	}

	r.define(s.Name, scope)

	fn := r.newScope(FunctionScope, s.Name.Raw, scope)
	r.typeParams(s.TypeParams, fn)
	r.params(s.Params, fn, scope)
	r.expr(s.Returns, scope, false)

	return r.block(s.Body, fn)
}

func (r *resolver) classDef(s *pysyntax.Stmt, scope int) error {
	for _, decorator := range s.Decorators {
		r.expr(decorator, scope, false)
	}

	r.define(s.Name, scope)

	cls := r.newScope(ClassScope, s.Name.Raw, scope)
	r.typeParams(s.TypeParams, cls)
	r.expr(s.Bases, scope, true)

	return r.block(s.Body, cls)
}

// params defines parameter names in fn; annotations and defaults are
// evaluated in the enclosing scope.
func (r *resolver) params(toks []*pysyntax.Token, fn, outer int) {
	for _, param := range splitTop(toks, ",") {
		for len(param) > 0 && (param[0].Is("*") || param[0].Is("**")) {
			param = param[1:]
		}

		if len(param) == 0 || param[0].Is("/") {
			continue
		}

		name := param[0]
		if name.Kind != pysyntax.Name {
			r.expr(param, outer, false)
			continue
		}

		r.define(name, fn)
		r.res.params = append(r.res.params, occurrence{tok: name, scope: fn})
		r.expr(param[1:], outer, false)
	}
}

func (r *resolver) typeParams(toks []*pysyntax.Token, scope int) {
	for _, param := range splitTop(toks, ",") {
		for len(param) > 0 && (param[0].Is("*") || param[0].Is("**")) {
			param = param[1:]
		}

		if len(param) == 0 {
			continue
		}

		r.define(param[0], scope)
		r.expr(param[1:], scope, false)
	}
}

func (r *resolver) simple(s *pysyntax.Stmt, scope int) error {
	toks := s.Tokens

	switch s.Keyword {
	case "import":
		r.importNames(toks[1:], scope)
		return nil
	case "from":
		imp := indexName(toks, "import")
		if imp < 0 {
			return r.errorf(toks[0], "expected 'import' in from statement")
		}

		names := toks[imp+1:]
		if len(names) > 0 && names[0].Is("(") && pysyntax.Matching(names, 0) == len(names)-1 {
			names = names[1 : len(names)-1]
		}

		r.importNames(names, scope)

		return nil
	case "global", "nonlocal":
		for _, tok := range toks[1:] {
			if tok.Kind != pysyntax.Name {
				continue
			}

			if s.Keyword == "global" {
				r.res.Scopes[scope].Globals[tok.Raw] = true
			} else {
				r.res.Scopes[scope].Nonlocals[tok.Raw] = true
			}

			r.reference(tok, scope)
		}

		return nil
	case "pass", "break", "continue":
		return nil
	case "":
	default:
		r.expr(toks[1:], scope, false)
		return nil
	}

	if isTypeAlias(toks) {
		r.define(toks[1], scope)

		rest := toks[2:]
		if rest[0].Is("[") {
			end := pysyntax.Matching(rest, 0)
			if end > 0 {
				r.typeParams(rest[1:end], scope)
				rest = rest[end+1:]
			}
		}

		r.expr(rest, scope, false)

		return nil
	}

	r.assignment(toks, scope)

	return nil
}

func isTypeAlias(toks []*pysyntax.Token) bool {
	return len(toks) >= 4 && toks[0].Is("type") && toks[1].Kind == pysyntax.Name &&
		(toks[2].Is("=") || toks[2].Is("["))
}

var augmentedOps = map[string]bool{
	"+=": true, "-=": true, "*=": true, "/=": true, "//=": true, "%=": true,
	"**=": true, ">>=": true, "<<=": true, "&=": true, "^=": true, "|=": true, "@=": true,
}

func (r *resolver) assignment(toks []*pysyntax.Token, scope int) {
	depth := 0
	lambdas := 0
	colon := -1

	var eqs []int

	for i, tok := range toks {
		switch {
		case tok.Kind == pysyntax.Name && tok.Raw == "lambda" && depth == 0:
			lambdas++
		case tok.Kind != pysyntax.Op:
		case tok.Raw == "(" || tok.Raw == "[" || tok.Raw == "{":
			depth++
		case tok.Raw == ")" || tok.Raw == "]" || tok.Raw == "}":
			depth--
		case depth != 0:
		case tok.Raw == ":" && lambdas > 0:
			lambdas--
		case tok.Raw == ":" && colon < 0 && len(eqs) == 0:
			colon = i
		case tok.Raw == "=" && lambdas == 0:
			eqs = append(eqs, i)
		case augmentedOps[tok.Raw] && colon < 0 && len(eqs) == 0:
			r.targets(toks[:i], scope)
			r.expr(toks[i+1:], scope, false)

			return
		}
	}

	if colon >= 0 {
		r.targets(toks[:colon], scope)

		end := len(toks)
		if len(eqs) > 0 {
			end = eqs[0]
			r.expr(toks[end+1:], scope, false)
		}

		r.expr(toks[colon+1:end], scope, false)

		return
	}

	prev := 0
	for _, eq := range eqs {
		r.targets(toks[prev:eq], scope)
		prev = eq + 1
	}

	r.expr(toks[prev:], scope, false)
}

func (r *resolver) importNames(toks []*pysyntax.Token, scope int) {
	for _, part := range splitTop(toks, ",") {
		if len(part) == 0 {
			continue
		}

		if as := indexName(part, "as"); as >= 0 && as+1 < len(part) {
			r.defineImport(part[as+1], scope)
			continue
		}

		r.defineImport(part[0], scope)
	}
}

func (r *resolver) withItems(toks []*pysyntax.Token, scope int) {
	if len(toks) > 1 && toks[0].Is("(") && pysyntax.Matching(toks, 0) == len(toks)-1 && hasTopName(toks[1:len(toks)-1], "as") {
		toks = toks[1 : len(toks)-1]
	}

	for _, item := range splitTop(toks, ",") {
		if as := indexName(item, "as"); as >= 0 {
			r.expr(item[:as], scope, false)
			r.targets(item[as+1:], scope)

			continue
		}

		r.expr(item, scope, false)
	}
}

// casePattern binds capture names. Dotted values and class names are
// references, keyword-pattern names are attributes.
func (r *resolver) casePattern(toks []*pysyntax.Token, scope int) {
	if guard := indexName(toks, "if"); guard >= 0 {
		r.expr(toks[guard+1:], scope, false)
		toks = toks[:guard]
	}

	for i, tok := range toks {
		switch tok.Kind {
		case pysyntax.String:
			r.res.CaseStrings[tok] = true
		case pysyntax.Name:
			if pysyntax.IsKeyword(tok.Raw) || tok.Raw == "_" {
				continue
			}

			if i > 0 && toks[i-1].Is(".") {
				continue
			}

			if i+1 < len(toks) && (toks[i+1].Is(".") || toks[i+1].Is("(")) {
				r.reference(tok, scope)
				continue
			}

			if i+1 < len(toks) && toks[i+1].Is("=") {
				continue
			}

			r.define(tok, scope)
		}
	}
}

// targets binds assignment targets. Starred and parenthesized names unpack;
// attribute and subscript targets only reference their base names.
func (r *resolver) targets(toks []*pysyntax.Token, scope int) {
	for _, el := range splitTop(toks, ",") {
		if len(el) > 0 && el[0].Is("*") {
			el = el[1:]
		}

		switch {
		case len(el) == 0:
		case len(el) == 1 && el[0].Kind == pysyntax.Name:
			r.define(el[0], scope)
		case (el[0].Is("(") || el[0].Is("[")) && pysyntax.Matching(el, 0) == len(el)-1:
			r.targets(el[1:len(el)-1], scope)
		default:
			r.expr(el, scope, false)
		}
	}
}

// expr records the names of an expression. call is true when toks are the
// argument list of a call, so "name=" marks a keyword argument.
func (r *resolver) expr(toks []*pysyntax.Token, scope int, call bool) {
	var open []string

	inCall := func() bool {
		if len(open) == 0 {
			return call
		}

		return open[len(open)-1] == "("
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]

		switch tok.Kind {
		case pysyntax.String:
			for _, field := range tok.Fields {
				r.expr(field, scope, false)

				if r.selfDocumenting(field) {
					for _, sub := range field {
						if sub.Kind == pysyntax.Name {
							r.res.echoes = append(r.res.echoes, occurrence{tok: sub, scope: scope})
						}
					}
				}
			}
		case pysyntax.Name:
			switch {
			case tok.Raw == "lambda":
				i = r.lambda(toks, i, scope)
			case pysyntax.IsKeyword(tok.Raw):
			case i > 0 && toks[i-1].Is("."):
			case i+1 < len(toks) && toks[i+1].Is("=") && inCall() && (i == 0 || toks[i-1].Is("(") || toks[i-1].Is(",")):
				r.res.KeywordArgs[tok.Raw] = true
			case i+1 < len(toks) && toks[i+1].Is(":="):
				r.define(tok, r.walrusScope(scope))
			default:
				r.reference(tok, scope)
			}
		case pysyntax.Op:
			switch tok.Raw {
			case "(", "[", "{":
				if end := pysyntax.Matching(toks, i); end > 0 && hasTopName(toks[i+1:end], "for") {
					r.comprehension(toks[i+1:end], scope)
					i = end

					continue
				}

				open = append(open, tok.Raw)
			case ")", "]", "}":
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
			}
		}
	}
}

// lambda resolves the lambda starting at toks[i] and returns the index of
// its last token.
func (r *resolver) lambda(toks []*pysyntax.Token, i, scope int) int {
	depth := 0
	colon := -1

	for j := i + 1; j < len(toks) && colon < 0; j++ {
		switch {
		case isOpen(toks[j]):
			depth++
		case isClose(toks[j]):
			depth--
		case depth == 0 && toks[j].Is(":"):
			colon = j
		}
	}

	if colon < 0 {
		return len(toks) - 1
	}

	lam := r.newScope(LambdaScope, "<lambda>", scope)
	r.params(toks[i+1:colon], lam, scope)

	end := len(toks)
	depth = 0

body:
	for j := colon + 1; j < len(toks); j++ {
		tok := toks[j]

		switch {
		case isOpen(tok):
			depth++
		case isClose(tok):
			if depth == 0 {
				end = j
				break body
			}
			depth--
		case depth == 0 && (tok.Is(",") || tok.Is("for") || tok.Is("async")):
			end = j
			break body
		}
	}

	r.expr(toks[colon+1:end], lam, false)

	return end - 1
}

// comprehension resolves the inside of a comprehension bracket. The first
// iterable is evaluated in the enclosing scope; everything else in a new one.
func (r *resolver) comprehension(inner []*pysyntax.Token, scope int) {
	comp := r.newScope(ComprehensionScope, "<comprehension>", scope)

	var cuts []int

	depth := 0

	for i, tok := range inner {
		switch {
		case isOpen(tok):
			depth++
		case isClose(tok):
			depth--
		case depth == 0 && (tok.Is("for") || tok.Is("if")):
			if tok.Is("if") && len(cuts) == 0 {
				continue
			}

			cuts = append(cuts, i)
		}
	}

	if len(cuts) == 0 {
		r.expr(inner, scope, false)
		return
	}

	elt := inner[:cuts[0]]
	if n := len(elt); n > 0 && elt[n-1].Is("async") {
		elt = elt[:n-1]
	}

	r.expr(elt, comp, false)

	first := true

	for k, cut := range cuts {
		end := len(inner)
		if k+1 < len(cuts) {
			end = cuts[k+1]
		}

		clause := inner[cut+1 : end]
		if n := len(clause); n > 0 && clause[n-1].Is("async") {
			clause = clause[:n-1]
		}

		if inner[cut].Is("if") {
			r.expr(clause, comp, false)
			continue
		}

		in := indexName(clause, "in")
		if in < 0 {
			r.expr(clause, comp, false)
			continue
		}

		r.targets(clause[:in], comp)

		iterScope := comp
		if first {
			iterScope = scope
			first = false
		}

		r.expr(clause[in+1:], iterScope, false)
	}
}

// selfDocumenting reports whether an f-string field ends in "=".
func (r *resolver) selfDocumenting(field []*pysyntax.Token) bool {
	if len(field) == 0 {
		return false
	}

	p := field[len(field)-1].End
	for p < len(r.src) && (r.src[p] == ' ' || r.src[p] == '\t') {
		p++
	}

	return p < len(r.src) && r.src[p] == '=' && (p+1 == len(r.src) || r.src[p+1] != '=')
}

func (r *resolver) walrusScope(scope int) int {
	for scope > 0 && r.res.Scopes[scope].Kind == ComprehensionScope {
		scope = r.res.Scopes[scope].Parent
	}

	return scope
}

func isOpen(tok *pysyntax.Token) bool {
	return tok.Kind == pysyntax.Op && (tok.Raw == "(" || tok.Raw == "[" || tok.Raw == "{")
}

func isClose(tok *pysyntax.Token) bool {
	return tok.Kind == pysyntax.Op && (tok.Raw == ")" || tok.Raw == "]" || tok.Raw == "}")
}

// splitTop splits toks on a separator operator outside brackets.
func splitTop(toks []*pysyntax.Token, sep string) [][]*pysyntax.Token {
	if len(toks) == 0 {
		return nil
	}

	var out [][]*pysyntax.Token

	depth := 0
	start := 0

	for i, tok := range toks {
		switch {
		case isOpen(tok):
			depth++
		case isClose(tok):
			depth--
		case depth == 0 && tok.Kind == pysyntax.Op && tok.Raw == sep:
			out = append(out, toks[start:i])
			start = i + 1
		}
	}

	return append(out, toks[start:])
}

// indexName returns the index of the first top-level name token spelled
// name, or -1.
func indexName(toks []*pysyntax.Token, name string) int {
	depth := 0

	for i, tok := range toks {
		switch {
		case isOpen(tok):
			depth++
		case isClose(tok):
			depth--
		case depth == 0 && tok.Kind == pysyntax.Name && tok.Raw == name:
			return i
		}
	}

	return -1
}

func hasTopName(toks []*pysyntax.Token, name string) bool {
	return indexName(toks, name) >= 0
}
