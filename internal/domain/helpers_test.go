package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/adapter"
	"pyobf.dev/pkg/pyobf/internal/domain"
	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

func parse(t *testing.T, src string) *pysyntax.Tree {
	t.Helper()

	tree, err := pysyntax.Parse(src)
	require.NoError(t, err)

	return tree
}

func resolve(t *testing.T, src string, opts ...domain.ResolveOption) (*pysyntax.Tree, *domain.Resolution) {
	t.Helper()

	tree := parse(t, src)

	res, err := domain.ResolveScopes(tree, opts...)
	require.NoError(t, err)

	return tree, res
}

// renameSource runs the renamer over src and returns the printed result.
func renameSource(t *testing.T, src string, opts ...domain.ResolveOption) (string, []domain.RenameTable) {
	t.Helper()

	tree, res := resolve(t, src, opts...)
	gen := domain.NewNameGenerator(domain.NewRand(5), tree.Identifiers())

	tables, _ := domain.NewIdentifierRenamer(nil).Rename(res, gen)

	return tree.Print(), tables
}

func tableFor(tables []domain.RenameTable, name string) map[string]string {
	for _, table := range tables {
		if table.Name == name {
			return table.Renames
		}
	}

	return nil
}

func scopeIndex(res *domain.Resolution, name string) int {
	for i, sc := range res.Scopes {
		if sc.Name == name {
			return i
		}
	}

	return -1
}

func python(t *testing.T) *adapter.LocalPythonRuntimeAdapter {
	t.Helper()

	runtime := adapter.NewLocalPythonRuntimeAdapter("", 0)
	if !runtime.Available() {
		t.Skip("python3 not available")
	}

	return runtime
}

// assertSameOutput runs both programs and compares what they print.
func assertSameOutput(t *testing.T, original, transformed string) {
	t.Helper()

	runtime := python(t)

	want, err := runtime.Run(context.Background(), []byte(original))
	require.NoError(t, err)

	got, err := runtime.Run(context.Background(), []byte(transformed))
	require.NoError(t, err, transformed)

	assert.Equal(t, want, got)
}
