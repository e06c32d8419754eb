package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"pyobf.dev/pkg/pyobf/internal/domain/encoders"
	m "pyobf.dev/pkg/pyobf/internal/model"
	"pyobf.dev/pkg/pyobf/internal/pysyntax"
)

// ObfuscateOptions controls one obfuscation run.
type ObfuscateOptions struct {
	Mode  m.Mode
	Style m.LoaderStyle

	Rename         bool
	EncodeLiterals bool
	Threshold      int

	KeyLen int
	Chunks int
	Wrap   int
	// Seed fixes every random choice of the run. Zero means unseeded.
	Seed int64

	KeepComments          bool
	PreserveKeywordParams bool
	Reserved              ReservedSet
}

// DefaultOptions returns the options a mode runs with when nothing is
// overridden.
func DefaultOptions(mode m.Mode) ObfuscateOptions {
	return ObfuscateOptions{
		Mode:                  mode,
		Style:                 m.StyleStandard,
		Rename:                mode.TreePasses(),
		EncodeLiterals:        mode.TreePasses(),
		Threshold:             DefaultLiteralThreshold,
		KeyLen:                encoders.DefaultKeyLen,
		Chunks:                encoders.DefaultChunks,
		Wrap:                  DefaultWrap,
		PreserveKeywordParams: true,
	}
}

// Result is everything one run produced.
type Result struct {
	Loader   m.LoaderProgram
	Artifact m.PayloadArtifact
	// Transformed is the program text that went into the payload.
	Transformed string
	Renames     []RenameTable
	Renamed     int
	Literals    int
}

// Obfuscator runs the forward pipeline: parse, rename, encode literals,
// print, encode the payload and generate the loader.
type Obfuscator struct {
	compiler encoders.Compiler
}

// NewObfuscator creates an Obfuscator. compiler is only needed for the
// marshal_xor mode.
func NewObfuscator(compiler encoders.Compiler) *Obfuscator {
	return &Obfuscator{compiler: compiler}
}

// Obfuscate transforms src. Failures are *Error values classified by kind.
func (o *Obfuscator) Obfuscate(ctx context.Context, path m.Path, src []byte, opts ObfuscateOptions) (Result, error) {
	runID := uuid.New().String()
	log := slog.With("run", runID, "path", path, "mode", opts.Mode)

	if !opts.Mode.Valid() {
		return Result{}, newError(m.InputError, path, fmt.Errorf("unknown mode %q", opts.Mode))
	}

	if !utf8.Valid(src) {
		return Result{}, newError(m.InputError, path, errors.New("source is not valid UTF-8"))
	}

	text := strings.TrimPrefix(string(src), "\ufeff")

	tree, err := pysyntax.Parse(text)
	if err != nil {
		log.Error("Failed to parse source", "error", err)
		return Result{}, newError(m.ParseError, path, err)
	}

	rng := NewRand(opts.Seed)
	names := NewNameGenerator(rng, tree.Identifiers())
	result := Result{Transformed: text}

	if opts.Rename || opts.EncodeLiterals {
		if err := o.transform(path, tree, names, opts, &result); err != nil {
			log.Error("Failed to transform source", "error", err)
			return Result{}, err
		}
	}

	encoder, err := o.encoder(opts, rng)
	if err != nil {
		return Result{}, newError(m.EncodeError, path, err)
	}

	artifact, err := encoder.Encode(ctx, []byte(result.Transformed))
	if err != nil {
		log.Error("Failed to encode payload", "scheme", encoder.Scheme(), "error", err)
		return Result{}, newError(m.EncodeError, path, err)
	}

	loader, err := NewLoaderGenerator(opts.Wrap, names).Generate(artifact, opts.Style)
	if err != nil {
		log.Error("Failed to generate loader", "style", opts.Style, "error", err)
		return Result{}, newError(m.EncodeError, path, err)
	}

	result.Artifact = artifact
	result.Loader = loader

	log.Debug("Obfuscated source", "scheme", artifact.Scheme, "renamed", result.Renamed, "literals", result.Literals,
		"original", len(src), "artifact", len(loader.Text))

	return result, nil
}

func (o *Obfuscator) transform(path m.Path, tree *pysyntax.Tree, names *NameGenerator, opts ObfuscateOptions, result *Result) error {
	res, err := ResolveScopes(tree, WithKeywordParams(opts.PreserveKeywordParams))
	if err != nil {
		return newError(m.ParseError, path, fmt.Errorf("resolve scopes: %w", err))
	}

	if opts.Rename {
		result.Renames, result.Renamed = NewIdentifierRenamer(opts.Reserved).Rename(res, names)
	}

	if opts.EncodeLiterals {
		count, err := NewLiteralEncoder(opts.Threshold).Encode(tree, res)
		if err != nil {
			return newError(m.EncodeError, path, err)
		}

		result.Literals = count
	}

	var printOpts []pysyntax.PrintOption
	if !opts.KeepComments {
		printOpts = append(printOpts, pysyntax.WithoutComments())
	}

	result.Transformed = tree.Print(printOpts...)

	return nil
}

func (o *Obfuscator) encoder(opts ObfuscateOptions, rng *rand.Rand) (encoders.Encoder, error) {
	switch opts.Mode.Scheme() {
	case m.SchemeCompiled:
		if o.compiler == nil {
			return nil, errors.New("marshal_xor needs a python runtime")
		}

		return encoders.NewCompiledEncoder(o.compiler, rng, opts.KeyLen), nil
	case m.SchemeChunk:
		return encoders.NewChunkEncoder(rng, opts.Chunks), nil
	default:
		return encoders.NewCompressEncoder(), nil
	}
}
