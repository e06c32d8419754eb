package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/domain"
)

func encodeLiterals(t *testing.T, src string, threshold int) (string, int) {
	t.Helper()

	tree, res := resolve(t, src)

	count, err := domain.NewLiteralEncoder(threshold).Encode(tree, res)
	require.NoError(t, err)

	return tree.Print(), count
}

func TestLiteralEncoder_Encode(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		threshold int
		want      int
		kept      []string
	}{
		{
			name:      "at threshold",
			src:       "print('hello')\n",
			threshold: 5,
			want:      1,
		},
		{
			name:      "below threshold",
			src:       "print('hello')\n",
			threshold: 6,
			want:      0,
			kept:      []string{"'hello'"},
		},
		{
			name:      "zero threshold uses default",
			src:       "print('hello', 'world!')\n",
			threshold: 0,
			want:      1,
			kept:      []string{"'hello'"},
		},
		{
			name:      "implicit concatenation is one value",
			src:       "greeting = ('abc'\n    'def')\nprint(greeting)\n",
			threshold: 6,
			want:      1,
		},
		{
			name:      "bytes and f-strings stay",
			src:       "name = 'x'\nprint(b'bytes value', f'formatted {name}')\n",
			threshold: 3,
			want:      0,
			kept:      []string{"b'bytes value'", "f'formatted {name}'"},
		},
		{
			name: "case patterns stay",
			src: `def kind(value):
    match value:
        case "status":
            return "matched status"
        case _:
            return "other"

print(kind("status"), kind("nothing"))
`,
			threshold: 5,
			want:      4,
			kept:      []string{`case "status":`},
		},
		{
			name:      "docstring before future import stays",
			src:       "\"\"\"Module documentation.\"\"\"\nfrom __future__ import annotations\nprint('encoded text')\n",
			threshold: 6,
			want:      1,
			kept:      []string{`"""Module documentation."""`},
		},
		{
			name:      "docstring without future import",
			src:       "\"\"\"Module documentation.\"\"\"\nprint(1)\n",
			threshold: 6,
			want:      1,
		},
		{
			name:      "unicode and escapes",
			src:       "print('héllo wörld ✓', 'tab\\tseparated', r'raw\\npath')\n",
			threshold: 6,
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, count := encodeLiterals(t, tt.src, tt.threshold)

			assert.Equal(t, tt.want, count, out)

			for _, fragment := range tt.kept {
				assert.Contains(t, out, fragment)
			}

			if tt.want > 0 {
				assert.Contains(t, out, "__import__('zlib').decompress")
			}

			assertSameOutput(t, tt.src, out)
		})
	}
}

func TestLiteralEncoder_RemovesOriginalText(t *testing.T) {
	out, count := encodeLiterals(t, "secret = 'do not show this'\nprint(secret)\n", 6)

	assert.Equal(t, 1, count)
	assert.False(t, strings.Contains(out, "do not show this"), out)
}
