package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyobf.dev/pkg/pyobf/internal/domain"
)

func TestUnifiedDiff(t *testing.T) {
	diff, err := domain.UnifiedDiff("add.py", addProgram, "def _x(a, b):\n    return a + b\n\nprint(_x(2, 3))\n")
	require.NoError(t, err)

	assert.Contains(t, diff, "--- add.py")
	assert.Contains(t, diff, "+++ add.py (transformed)")
	assert.Contains(t, diff, "-def add(a, b):")
	assert.Contains(t, diff, "+def _x(a, b):")
	assert.Contains(t, diff, "+print(_x(2, 3))")
}

func TestUnifiedDiff_Unchanged(t *testing.T) {
	diff, err := domain.UnifiedDiff("add.py", addProgram, addProgram)
	require.NoError(t, err)

	assert.Empty(t, diff)
}
