// Package encoders implements the payload encoding schemes.
package encoders

import (
	"context"
	"errors"
	"fmt"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

// ErrCorrupt marks an artifact whose blob or metadata cannot be decoded.
var ErrCorrupt = errors.New("corrupt payload")

// Encoder turns a program into a payload artifact and back.
type Encoder interface {
	Scheme() m.Scheme
	// Encode never modifies blob.
	Encode(ctx context.Context, blob []byte) (m.PayloadArtifact, error)
	// Decode returns the program in its pre-execution form.
	Decode(artifact m.PayloadArtifact) ([]byte, error)
}

// Compiler produces the interpreter's native compiled form of a program.
type Compiler interface {
	Compile(ctx context.Context, src []byte, filename string) ([]byte, error)
}

func checkScheme(artifact m.PayloadArtifact, want m.Scheme) error {
	if artifact.Scheme != want {
		return fmt.Errorf("%w: scheme %q, expected %q", ErrCorrupt, artifact.Scheme, want)
	}

	return nil
}
