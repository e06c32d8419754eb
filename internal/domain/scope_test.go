package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/domain"
)

func TestResolveScopes_Kinds(t *testing.T) {
	src := `import os

class Shape:
    sides = 0

    def area(self):
        return 0

square = lambda n: n * n
evens = [v for v in range(10) if v % 2 == 0]
`
	_, res := resolve(t, src)

	kinds := map[domain.ScopeKind]int{}
	for _, sc := range res.Scopes {
		kinds[sc.Kind]++
	}

	assert.Equal(t, 1, kinds[domain.ModuleScope])
	assert.Equal(t, 1, kinds[domain.ClassScope])
	assert.Equal(t, 1, kinds[domain.FunctionScope])
	assert.Equal(t, 1, kinds[domain.LambdaScope])
	assert.Equal(t, 1, kinds[domain.ComprehensionScope])

	assert.Equal(t, -1, res.Scopes[0].Parent)
	assert.Equal(t, scopeIndex(res, "Shape"), res.Scopes[scopeIndex(res, "area")].Parent)
	assert.Equal(t, "comprehension", domain.ComprehensionScope.String())
}

func TestResolution_Lookup(t *testing.T) {
	src := `x = 1
y = 2

def f():
    x = 3
    return x + y

class Box:
    size = 4

    def get(self):
        return size
`
	_, res := resolve(t, src)

	f := scopeIndex(res, "f")
	get := scopeIndex(res, "get")
	box := scopeIndex(res, "Box")
	require.Positive(t, f)
	require.Positive(t, get)

	tests := []struct {
		name  string
		scope int
		ident string
		want  int
	}{
		{"local shadows global", f, "x", f},
		{"global seen from function", f, "y", 0},
		{"undefined name", f, "missing", -1},
		{"builtin is not defined", 0, "print", -1},
		{"class body visible to itself", box, "size", box},
		{"class body hidden from methods", get, "size", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Lookup(tt.scope, tt.ident))
		})
	}
}

func TestResolveScopes_GlobalAndNonlocal(t *testing.T) {
	src := `counter = 0

def bump():
    global counter
    counter += 1

def outer():
    total = 0
    def inner():
        nonlocal total
        total += 2
    inner()
    return total
`
	_, res := resolve(t, src)

	bump := scopeIndex(res, "bump")
	inner := scopeIndex(res, "inner")
	outer := scopeIndex(res, "outer")

	assert.True(t, res.Scopes[bump].Globals["counter"])
	assert.False(t, res.Scopes[bump].Defined["counter"])
	assert.Equal(t, 0, res.Lookup(bump, "counter"))

	assert.True(t, res.Scopes[inner].Nonlocals["total"])
	assert.False(t, res.Scopes[inner].Defined["total"])
	assert.Equal(t, outer, res.Lookup(inner, "total"))
}

func TestResolveScopes_Pinned(t *testing.T) {
	src := `import json
from os import path as p

debug = True

class Config:
    debug = False

def scale(value, factor=2):
    return value * factor

label = "x"
print(f"{label=}", scale(3, factor=4), json, p)
`
	tests := []struct {
		name       string
		opts       []domain.ResolveOption
		scope      string
		ident      string
		wantPinned bool
	}{
		{"import", nil, "<module>", "json", true},
		{"import alias", nil, "<module>", "p", true},
		{"class body name", nil, "Config", "debug", true},
		{"outer binding of a class body name", nil, "<module>", "debug", true},
		{"keyword parameter", nil, "scale", "factor", true},
		{"positional parameter", nil, "scale", "value", false},
		{"self-documenting f-string", nil, "<module>", "label", true},
		{"plain function", nil, "<module>", "scale", false},
		{"keyword parameter not preserved", []domain.ResolveOption{domain.WithKeywordParams(false)}, "scale", "factor", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, res := resolve(t, src, tt.opts...)

			scope := scopeIndex(res, tt.scope)
			require.GreaterOrEqual(t, scope, 0)
			assert.True(t, res.Scopes[scope].Defined[tt.ident])
			assert.Equal(t, tt.wantPinned, res.Scopes[scope].Pinned[tt.ident])
		})
	}
}

func TestResolveScopes_KeywordArgsAndCaseStrings(t *testing.T) {
	src := `def run(cmd):
    match cmd:
        case "status":
            return dict(code=0)
        case _:
            return None
`
	_, res := resolve(t, src)

	assert.True(t, res.KeywordArgs["code"])
	assert.Len(t, res.CaseStrings, 1)
}
