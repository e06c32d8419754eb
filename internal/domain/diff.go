package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

const diffContext = 2

// UnifiedDiff returns a unified diff between a source and the text that
// went into its payload. Identical texts give an empty diff.
func UnifiedDiff(path m.Path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path),
		ToFile:   string(path) + " (transformed)",
		Context:  diffContext,
	})
}
