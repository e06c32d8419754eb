package model

// Scheme names a payload encoding strategy.
type Scheme string

const (
	// SchemeCompress is zlib followed by base64.
	SchemeCompress Scheme = "compress_encode"
	// SchemeCompiled is compiled bytes XORed with a repeating key.
	SchemeCompiled Scheme = "compiled_encrypt"
	// SchemeChunk is the program split into shuffled pieces.
	SchemeChunk Scheme = "chunk_shuffle"
	// SchemePlain is a bare base64 block. Only produced by recovery of
	// loaders that skipped compression.
	SchemePlain Scheme = "plain_base64"
)

// Metadata carries what a loader needs besides the blob itself.
type Metadata struct {
	// Key is the XOR key of a compiled payload.
	Key []byte `yaml:"key,omitempty"`
	// Order maps emitted piece i to its original slot Order[i].
	Order []int `yaml:"order,omitempty"`
	// Bounds holds the length of each emitted piece.
	Bounds []int `yaml:"bounds,omitempty"`
}

// PayloadArtifact is the encoded program. It is not modified after an
// encoder returns it.
type PayloadArtifact struct {
	Scheme   Scheme
	Blob     []byte
	Metadata Metadata
}

// Pieces splits Blob along Metadata.Bounds. It returns nil when the bounds
// do not cover the blob exactly.
func (a PayloadArtifact) Pieces() [][]byte {
	total := 0
	for _, n := range a.Metadata.Bounds {
		if n < 0 {
			return nil
		}

		total += n
	}

	if total != len(a.Blob) {
		return nil
	}

	pieces := make([][]byte, 0, len(a.Metadata.Bounds))
	offset := 0

	for _, n := range a.Metadata.Bounds {
		pieces = append(pieces, a.Blob[offset:offset+n])
		offset += n
	}

	return pieces
}

// LoaderProgram is the self-decoding script that embeds one artifact.
type LoaderProgram struct {
	Scheme Scheme
	Style  LoaderStyle
	Text   string
}
