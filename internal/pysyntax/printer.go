package pysyntax

import "strings"

type printConfig struct {
	stripComments bool
}

// PrintOption configures Print.
type PrintOption func(*printConfig)

// WithoutComments drops comment tokens and the blanks before them.
func WithoutComments() PrintOption {
	return func(c *printConfig) {
		c.stripComments = true
	}
}

// Print re-emits the tree. Text between tokens is copied from the source,
// so layout survives and only rewritten tokens change.
func (t *Tree) Print(opts ...PrintOption) string {
	cfg := printConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder

	b.Grow(len(t.Source))

	prev := 0

	for _, tok := range t.Tokens {
		if tok.Start < prev {
			continue
		}

		gap := t.Source[prev:tok.Start]

		if tok.Kind == Comment && cfg.stripComments {
			b.WriteString(strings.TrimRight(gap, " \t"))
			prev = tok.End

			continue
		}

		b.WriteString(gap)
		b.WriteString(Render(t.Source, tok))
		prev = tok.End
	}

	b.WriteString(t.Source[prev:])

	return b.String()
}

// Render returns the current text of tok. F-strings whose own text was not
// replaced are rebuilt from their fields so renamed names inside
// replacement fields show up.
func Render(src string, tok *Token) string {
	if len(tok.Fields) == 0 || tok.Changed() {
		return tok.Text
	}

	var b strings.Builder

	pos := tok.Start

	for _, field := range tok.Fields {
		for _, sub := range field {
			b.WriteString(src[pos:sub.Start])
			b.WriteString(Render(src, sub))
			pos = sub.End
		}
	}

	b.WriteString(src[pos:tok.End])

	return b.String()
}
