package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pyobf.dev/pkg/pyobf/internal/domain"
)

func TestNameGenerator_Next(t *testing.T) {
	gen := domain.NewNameGenerator(domain.NewRand(1), map[string]bool{"taken": true})

	seen := make(map[string]bool)

	for range 500 {
		name := gen.Next()

		assert.Regexp(t, `^_[A-Za-z0-9]{8}$`, name)
		assert.False(t, seen[name], "duplicate %s", name)

		seen[name] = true
	}
}

func TestNameGenerator_AvoidsTakenNames(t *testing.T) {
	first := domain.NewNameGenerator(domain.NewRand(8), nil).Next()

	gen := domain.NewNameGenerator(domain.NewRand(8), map[string]bool{first: true})
	assert.NotEqual(t, first, gen.Next())

	gen = domain.NewNameGenerator(domain.NewRand(8), nil)
	gen.Reserve(first)
	assert.NotEqual(t, first, gen.Next())
}

func TestNewRand_Seeded(t *testing.T) {
	a := domain.NewNameGenerator(domain.NewRand(99), nil)
	b := domain.NewNameGenerator(domain.NewRand(99), nil)

	for range 10 {
		assert.Equal(t, a.Next(), b.Next())
	}
}
