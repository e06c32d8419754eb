package domain_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

func TestError_Message(t *testing.T) {
	unclosed := &pysyntax.SyntaxError{Stage: pysyntax.StageLex, Line: 1, Col: 5, Msg: "'(' was never closed"}

	tests := []struct {
		name string
		err  *domain.Error
		want string
	}{
		{
			name: "path and position",
			err:  &domain.Error{Kind: m.ParseError, Path: "a.py", Line: 3, Column: 7, Err: errors.New("expected ':'")},
			want: "ParseError: a.py:3:7: expected ':'",
		},
		{
			name: "syntax error position is not repeated",
			err:  &domain.Error{Kind: m.ParseError, Path: "bad.py", Line: 1, Column: 6, Err: unclosed},
			want: "ParseError: bad.py:1:6: lexical error: '(' was never closed",
		},
		{
			name: "path only",
			err:  &domain.Error{Kind: m.InputError, Path: "a.py", Err: errors.New("missing")},
			want: "InputError: a.py: missing",
		},
		{
			name: "no location",
			err:  &domain.Error{Kind: m.EncodeError, Err: errors.New("boom")},
			want: "EncodeError: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	_, err := domain.NewObfuscator(nil).Obfuscate(context.Background(), "x.py", []byte("if True\n"), domain.DefaultOptions(m.ModeSimple))
	require.Error(t, err)

	wrapped := fmt.Errorf("batch: %w", err)

	kind, ok := domain.KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, m.ParseError, kind)

	var syntaxErr *pysyntax.SyntaxError
	require.ErrorAs(t, wrapped, &syntaxErr)

	var classified *domain.Error
	require.ErrorAs(t, wrapped, &classified)
	assert.Equal(t, syntaxErr.Line, classified.Line)
	assert.Equal(t, syntaxErr.Col+1, classified.Column)

	assert.Equal(t, 1, strings.Count(wrapped.Error(), fmt.Sprintf(":%d:%d", classified.Line, classified.Column)))

	_, ok = domain.KindOf(errors.New("plain"))
	assert.False(t, ok)
}
