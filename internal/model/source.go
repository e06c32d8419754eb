// Package model defines the data structures shared by the obfuscation pipeline.
package model

// Path represents a file system path.
type Path string

// File represents a python source file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source pairs an input program with the location its artifact is written to.
type Source struct {
	Origin *File
	Output Path
}

// Mode selects which transforms run over a source.
type Mode string

const (
	// ModeSimple compresses and encodes the program without touching the tree.
	ModeSimple Mode = "simple"
	// ModeASTRename renames identifiers and encodes string literals before compression.
	ModeASTRename Mode = "ast_rename"
	// ModeMarshalXOR compiles the program and XORs the compiled bytes with a random key.
	ModeMarshalXOR Mode = "marshal_xor"
	// ModeChunkShuffle splits the program into shuffled pieces.
	ModeChunkShuffle Mode = "chunk_shuffle"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeSimple, ModeASTRename, ModeMarshalXOR, ModeChunkShuffle}

// Valid reports whether the mode is one of Modes.
func (md Mode) Valid() bool {
	for _, known := range Modes {
		if md == known {
			return true
		}
	}

	return false
}

// Scheme returns the payload encoding scheme the mode ends with.
func (md Mode) Scheme() Scheme {
	switch md {
	case ModeMarshalXOR:
		return SchemeCompiled
	case ModeChunkShuffle:
		return SchemeChunk
	default:
		return SchemeCompress
	}
}

// TreePasses reports whether the mode rewrites the source tree by default.
func (md Mode) TreePasses() bool {
	return md == ModeASTRename
}

// LoaderStyle controls how a generated loader reads.
type LoaderStyle string

const (
	// StyleStandard emits readable names and explicit error handling.
	StyleStandard LoaderStyle = "standard"
	// StyleCompact folds the inverse chain into a single expression.
	StyleCompact LoaderStyle = "compact"
	// StyleObfuscated uses random local names.
	StyleObfuscated LoaderStyle = "obfuscated"
)

// LoaderStyles lists every supported loader style.
var LoaderStyles = []LoaderStyle{StyleStandard, StyleCompact, StyleObfuscated}

// Valid reports whether the style is one of LoaderStyles.
func (s LoaderStyle) Valid() bool {
	for _, known := range LoaderStyles {
		if s == known {
			return true
		}
	}

	return false
}
