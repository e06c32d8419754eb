package domain

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"
)

const (
	defaultNameLength = 8
	nameAlphabet      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewRand returns the generator that drives every random choice of one run.
// A zero seed draws a seed from the operating system.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		var buf [16]byte
		if _, err := crand.Read(buf[:]); err == nil {
			return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])))
		}
	}

	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NameGenerator hands out identifiers of the form "_" + N alphanumerics,
// never repeating a name and never colliding with a taken one.
type NameGenerator struct {
	rng    *rand.Rand
	length int
	used   map[string]bool
}

// NewNameGenerator creates a generator that avoids every name in taken.
func NewNameGenerator(rng *rand.Rand, taken map[string]bool) *NameGenerator {
	used := make(map[string]bool, len(taken))
	for name := range taken {
		used[name] = true
	}

	return &NameGenerator{rng: rng, length: defaultNameLength, used: used}
}

// Next returns a fresh name.
func (g *NameGenerator) Next() string {
	var b strings.Builder

	for {
		b.Reset()
		b.WriteByte('_')

		for range g.length {
			b.WriteByte(nameAlphabet[g.rng.IntN(len(nameAlphabet))])
		}

		name := b.String()
		if !g.used[name] {
			g.used[name] = true
			return name
		}
	}
}

// Reserve marks name as taken.
func (g *NameGenerator) Reserve(name string) {
	g.used[name] = true
}
