package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"

	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

// DefaultLiteralThreshold is the shortest string, in characters, that gets
// encoded.
const DefaultLiteralThreshold = 6

// LiteralEncoder replaces string literals with expressions that rebuild the
// same value at run time.
type LiteralEncoder struct {
	threshold int
}

// NewLiteralEncoder returns an encoder for strings of at least threshold
// characters. A threshold below 1 falls back to the default.
func NewLiteralEncoder(threshold int) *LiteralEncoder {
	if threshold < 1 {
		threshold = DefaultLiteralThreshold
	}

	return &LiteralEncoder{threshold: threshold}
}

// Encode rewrites eligible literals in tree and returns how many it replaced.
// Implicitly concatenated literals are treated as one value. Bytes,
// f-strings and match-case patterns stay as they are.
func (e *LiteralEncoder) Encode(tree *pysyntax.Tree, res *Resolution) (int, error) {
	skipDocstring := hasFutureImport(tree)
	count := 0

	for _, group := range stringGroups(tree.Tokens) {
		if skipDocstring && isModuleDocstring(tree, group[0]) {
			continue
		}

		value, ok := e.groupValue(group, res)
		if !ok || utf8.RuneCountInString(value) < e.threshold {
			continue
		}

		expr, err := literalExpr(value)
		if err != nil {
			return count, fmt.Errorf("encode literal on line %d: %w", group[0].Line, err)
		}

		group[0].Text = expr
		for _, tok := range group[1:] {
			tok.Text = ""
		}

		count++
	}

	slog.Debug("Encoded literals", "count", count, "threshold", e.threshold)

	return count, nil
}

func (e *LiteralEncoder) groupValue(group []*pysyntax.Token, res *Resolution) (string, bool) {
	var value []byte

	for _, tok := range group {
		if tok.IsBytes() || tok.IsFormatted() {
			return "", false
		}

		if res != nil && res.CaseStrings[tok] {
			return "", false
		}

		s, err := pysyntax.StringValue(tok)
		if err != nil {
			return "", false
		}

		value = append(value, s...)
	}

	if !utf8.Valid(value) {
		return "", false
	}

	return string(value), true
}

// literalExpr builds an expression evaluating to value.
func literalExpr(value string) (string, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", err
	}

	if _, err := w.Write([]byte(value)); err != nil {
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	return fmt.Sprintf("(__import__('zlib').decompress(__import__('base64').b64decode('%s')).decode('utf-8'))", encoded), nil
}

// stringGroups returns runs of adjacent string tokens. Only comments and
// non-logical newlines may sit between members of a run.
func stringGroups(toks []*pysyntax.Token) [][]*pysyntax.Token {
	var (
		groups  [][]*pysyntax.Token
		current []*pysyntax.Token
	)

	for _, tok := range toks {
		switch tok.Kind {
		case pysyntax.String:
			current = append(current, tok)
		case pysyntax.NL, pysyntax.Comment:
		default:
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
		}
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

func hasFutureImport(tree *pysyntax.Tree) bool {
	for _, s := range tree.Body {
		if s.Keyword == "from" && len(s.Tokens) > 1 && s.Tokens[1].Is("__future__") {
			return true
		}
	}

	return false
}

func isModuleDocstring(tree *pysyntax.Tree, tok *pysyntax.Token) bool {
	if len(tree.Body) == 0 {
		return false
	}

	first := tree.Body[0]

	return first.Kind == pysyntax.SimpleStmt && len(first.Tokens) > 0 && first.Tokens[0] == tok
}
