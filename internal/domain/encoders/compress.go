package encoders

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

// CompressEncoder stores the program zlib-compressed.
type CompressEncoder struct{}

// NewCompressEncoder returns the compress_encode scheme.
func NewCompressEncoder() *CompressEncoder {
	return &CompressEncoder{}
}

// Scheme returns compress_encode.
func (e *CompressEncoder) Scheme() m.Scheme {
	return m.SchemeCompress
}

// Encode compresses blob at the best compression level.
func (e *CompressEncoder) Encode(_ context.Context, blob []byte) (m.PayloadArtifact, error) {
	data, err := Compress(blob)
	if err != nil {
		return m.PayloadArtifact{}, err
	}

	return m.PayloadArtifact{Scheme: m.SchemeCompress, Blob: data}, nil
}

// Decode inflates the artifact blob.
func (e *CompressEncoder) Decode(artifact m.PayloadArtifact) ([]byte, error) {
	if err := checkScheme(artifact, m.SchemeCompress); err != nil {
		return nil, err
	}

	return Decompress(artifact.Blob)
}

// Compress returns data as a zlib stream.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flush zlib stream: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream.
func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return out, nil
}
