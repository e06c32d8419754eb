package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/domain"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

func fixtures(t *testing.T) map[string][]byte {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("..", "..", "examples", "*", "main.py"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	out := make(map[string][]byte, len(matches))

	for _, path := range matches {
		src, err := os.ReadFile(path)
		require.NoError(t, err)

		out[filepath.Base(filepath.Dir(path))] = src
	}

	return out
}

func TestObfuscator_Fixtures(t *testing.T) {
	runtime := python(t)

	for name, src := range fixtures(t) {
		if name == "invalid" {
			continue
		}

		for _, mode := range []m.Mode{m.ModeSimple, m.ModeASTRename, m.ModeMarshalXOR, m.ModeChunkShuffle} {
			t.Run(name+"/"+string(mode), func(t *testing.T) {
				opts := domain.DefaultOptions(mode)
				opts.Seed = 21

				result, err := domain.NewObfuscator(runtime).Obfuscate(context.Background(), m.Path(name+".py"), src, opts)
				require.NoError(t, err)

				assertSameOutput(t, string(src), result.Loader.Text)

				recovered := domain.NewRecoverer().Recover(result.Loader.Text)
				require.True(t, recovered.OK(), recovered.Failure)

				if mode == m.ModeMarshalXOR {
					assert.False(t, recovered.Readable)
					return
				}

				assert.Equal(t, result.Transformed, string(recovered.Data))
			})
		}
	}
}

func TestObfuscator_InvalidFixture(t *testing.T) {
	src := fixtures(t)["invalid"]
	require.NotNil(t, src)

	_, err := domain.NewObfuscator(nil).Obfuscate(context.Background(), "invalid.py", src, domain.DefaultOptions(m.ModeASTRename))

	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, m.ParseError, kind)
}
