package model

import "fmt"

// ErrorKind classifies pipeline failures.
type ErrorKind string

const (
	// InputError covers unreadable or non-UTF-8 input.
	InputError ErrorKind = "InputError"
	// ParseError covers source that does not form a valid tree.
	ParseError ErrorKind = "ParseError"
	// EncodeError covers failures while building a payload.
	EncodeError ErrorKind = "EncodeError"
	// DecodeError covers malformed or corrupted payloads.
	DecodeError ErrorKind = "DecodeError"
	// ExecutionError covers a loader that fails when run.
	ExecutionError ErrorKind = "ExecutionError"
)

// Report summarizes one obfuscated or recovered file.
type Report struct {
	Source         Path        `yaml:"source"`
	Output         Path        `yaml:"output,omitempty"`
	Mode           Mode        `yaml:"mode,omitempty"`
	Scheme         Scheme      `yaml:"scheme,omitempty"`
	Style          LoaderStyle `yaml:"style,omitempty"`
	OriginalSize   int         `yaml:"original_size"`
	ArtifactSize   int         `yaml:"artifact_size"`
	CompressedSize int         `yaml:"compressed_size,omitempty"`
	Renamed        int         `yaml:"renamed,omitempty"`
	Literals       int         `yaml:"literals,omitempty"`
	Error          string      `yaml:"error,omitempty"`
}

// Failed reports whether the file produced no artifact.
func (r Report) Failed() bool {
	return r.Error != ""
}

// SizeChange returns the artifact growth relative to the original, in percent.
func (r Report) SizeChange() float64 {
	if r.OriginalSize == 0 {
		return 0
	}

	return float64(r.ArtifactSize-r.OriginalSize) / float64(r.OriginalSize) * 100
}

// Compression returns the zlib saving over the original, in percent, and
// false when the scheme does not compress.
func (r Report) Compression() (float64, bool) {
	if r.CompressedSize == 0 || r.OriginalSize == 0 {
		return 0, false
	}

	return (1 - float64(r.CompressedSize)/float64(r.OriginalSize)) * 100, true
}

// Failure describes why recovery could not produce a program.
type Failure struct {
	Kind    ErrorKind `yaml:"kind"`
	Message string    `yaml:"message"`
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Recovery is the outcome of decoding a loader.
type Recovery struct {
	Scheme Scheme
	Data   []byte
	// Readable is true when Data is UTF-8 source text.
	Readable bool
	Failure  *Failure
}

// OK reports whether recovery produced data.
func (r Recovery) OK() bool {
	return r.Failure == nil
}
