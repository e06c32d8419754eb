package encoders

import (
	"context"
	"fmt"
	"math/rand/v2"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

// DefaultChunks is the number of pieces a chunked payload aims for.
const DefaultChunks = 30

// ChunkEncoder splits the program into pieces of random length and emits
// them in shuffled order.
type ChunkEncoder struct {
	rng    *rand.Rand
	chunks int
}

// NewChunkEncoder returns the chunk_shuffle scheme. Fewer than two chunks
// are raised to two.
func NewChunkEncoder(rng *rand.Rand, chunks int) *ChunkEncoder {
	return &ChunkEncoder{rng: rng, chunks: max(2, chunks)}
}

// Scheme returns chunk_shuffle.
func (e *ChunkEncoder) Scheme() m.Scheme {
	return m.SchemeChunk
}

// Encode cuts blob into pieces and shuffles them.
func (e *ChunkEncoder) Encode(_ context.Context, blob []byte) (m.PayloadArtifact, error) {
	avg := max(1, len(blob)/e.chunks)
	lo := max(1, avg/2)
	hi := max(1, avg*2)

	var pieces [][]byte

	for rest := blob; len(rest) > 0; {
		size := min(len(rest), lo+e.rng.IntN(hi-lo+1))
		pieces = append(pieces, rest[:size])
		rest = rest[size:]
	}

	order := make([]int, len(pieces))
	for i := range order {
		order[i] = i
	}

	e.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	out := make([]byte, 0, len(blob))
	bounds := make([]int, len(order))

	for i, slot := range order {
		out = append(out, pieces[slot]...)
		bounds[i] = len(pieces[slot])
	}

	return m.PayloadArtifact{
		Scheme:   m.SchemeChunk,
		Blob:     out,
		Metadata: m.Metadata{Order: order, Bounds: bounds},
	}, nil
}

// Decode puts emitted piece i back into slot Order[i].
func (e *ChunkEncoder) Decode(artifact m.PayloadArtifact) ([]byte, error) {
	if err := checkScheme(artifact, m.SchemeChunk); err != nil {
		return nil, err
	}

	return Reassemble(artifact.Pieces(), artifact.Metadata.Order, len(artifact.Blob))
}

// Reassemble orders pieces by their slots. It fails unless order is a
// permutation of the piece indexes.
func Reassemble(pieces [][]byte, order []int, size int) ([]byte, error) {
	if pieces == nil && size > 0 {
		return nil, fmt.Errorf("%w: piece bounds do not cover the payload", ErrCorrupt)
	}

	if len(order) != len(pieces) {
		return nil, fmt.Errorf("%w: %d pieces but %d order entries", ErrCorrupt, len(pieces), len(order))
	}

	slots := make([][]byte, len(pieces))
	seen := make([]bool, len(pieces))

	for i, slot := range order {
		if slot < 0 || slot >= len(slots) || seen[slot] {
			return nil, fmt.Errorf("%w: order is not a permutation", ErrCorrupt)
		}

		seen[slot] = true
		slots[slot] = pieces[i]
	}

	out := make([]byte, 0, size)
	for _, piece := range slots {
		out = append(out, piece...)
	}

	return out, nil
}
