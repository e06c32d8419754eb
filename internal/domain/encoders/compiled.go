package encoders

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

// DefaultKeyLen is the XOR key length of compiled payloads.
const DefaultKeyLen = 16

// ErrKeyLen is returned for a key length below one byte.
var ErrKeyLen = errors.New("key length must be at least 1")

// CompiledEncoder compiles the program and XORs the compiled bytes with a
// repeating random key.
type CompiledEncoder struct {
	compiler Compiler
	rng      *rand.Rand
	keyLen   int
	filename string
}

// NewCompiledEncoder returns the compiled_encrypt scheme.
func NewCompiledEncoder(compiler Compiler, rng *rand.Rand, keyLen int) *CompiledEncoder {
	return &CompiledEncoder{compiler: compiler, rng: rng, keyLen: keyLen, filename: "<obf>"}
}

// Scheme returns compiled_encrypt.
func (e *CompiledEncoder) Scheme() m.Scheme {
	return m.SchemeCompiled
}

// Encode compiles blob and encrypts the result.
func (e *CompiledEncoder) Encode(ctx context.Context, blob []byte) (m.PayloadArtifact, error) {
	if e.keyLen < 1 {
		return m.PayloadArtifact{}, fmt.Errorf("%w: got %d", ErrKeyLen, e.keyLen)
	}

	if e.compiler == nil {
		return m.PayloadArtifact{}, errors.New("no compiler configured")
	}

	code, err := e.compiler.Compile(ctx, blob, e.filename)
	if err != nil {
		return m.PayloadArtifact{}, fmt.Errorf("compile program: %w", err)
	}

	key := make([]byte, e.keyLen)
	for i := range key {
		key[i] = byte(e.rng.UintN(256))
	}

	return m.PayloadArtifact{
		Scheme:   m.SchemeCompiled,
		Blob:     XOR(code, key),
		Metadata: m.Metadata{Key: key},
	}, nil
}

// Decode removes the XOR layer and returns the compiled bytes.
func (e *CompiledEncoder) Decode(artifact m.PayloadArtifact) ([]byte, error) {
	if err := checkScheme(artifact, m.SchemeCompiled); err != nil {
		return nil, err
	}

	if len(artifact.Metadata.Key) == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrCorrupt)
	}

	return XOR(artifact.Blob, artifact.Metadata.Key), nil
}

// XOR returns data XORed with key repeated cyclically. It is its own inverse.
func XOR(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}

	return out
}
