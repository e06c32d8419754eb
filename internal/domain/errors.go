package domain

import (
	"errors"
	"fmt"

	m "pyobf.dev/pkg/pyobf/internal/model"
	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

// Error is a classified pipeline failure.
type Error struct {
	Kind   m.ErrorKind
	Path   m.Path
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	location := string(e.Path)
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d", location, e.Line, e.Column)
	}

	if location == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.detail())
	}

	return fmt.Sprintf("%s: %s: %s", e.Kind, location, e.detail())
}

// detail drops the position a syntax error carries once it is in the location.
func (e *Error) detail() string {
	var syntaxErr *pysyntax.SyntaxError
	if e.Line > 0 && errors.As(e.Err, &syntaxErr) {
		return fmt.Sprintf("%s: %s", syntaxErr.Stage, syntaxErr.Msg)
	}

	return fmt.Sprint(e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind m.ErrorKind, path m.Path, err error) *Error {
	out := &Error{Kind: kind, Path: path, Err: err}

	var syntaxErr *pysyntax.SyntaxError
	if errors.As(err, &syntaxErr) {
		out.Line = syntaxErr.Line
		out.Column = syntaxErr.Col + 1
	}

	return out
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (m.ErrorKind, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind, true
	}

	return "", false
}
