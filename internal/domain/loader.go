package domain

import (
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	m "pyobf.dev/pkg/pyobf/internal/model"
)

// DefaultWrap is the column at which base64 blocks are broken.
const DefaultWrap = 76

//go:embed templates/*.py.tmpl
var loaderTemplates embed.FS

var loaderFuncs = template.FuncMap{
	"join": strings.Join,
	"ints": func(values []int, sep string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}

		return strings.Join(parts, sep)
	},
}

var loaders = template.Must(template.New("loaders").Funcs(loaderFuncs).ParseFS(loaderTemplates, "templates/*.py.tmpl"))

// loaderNames are the local names an obfuscated loader needs.
var loaderNames = []string{
	"b64", "zlib", "marshal", "fn", "data", "src", "key", "byte", "i",
	"pieces", "order", "slots", "piece",
}

type loaderData struct {
	Scheme  m.Scheme
	Payload string
	Key     string
	Pieces  []string
	Order   []int
	N       map[string]string
}

// LoaderGenerator renders the self-decoding script for an artifact.
type LoaderGenerator struct {
	wrap  int
	names *NameGenerator
}

// NewLoaderGenerator creates a generator. wrap is the block width in
// columns, 0 disables wrapping. names supplies locals for the obfuscated
// style.
func NewLoaderGenerator(wrap int, names *NameGenerator) *LoaderGenerator {
	if wrap < 0 {
		wrap = 0
	}

	return &LoaderGenerator{wrap: wrap, names: names}
}

// Generate renders artifact in the given style. Style never changes what
// the loader decodes.
func (g *LoaderGenerator) Generate(artifact m.PayloadArtifact, style m.LoaderStyle) (m.LoaderProgram, error) {
	if !style.Valid() {
		return m.LoaderProgram{}, fmt.Errorf("unknown loader style %q", style)
	}

	wrap := g.wrap
	if style == m.StyleCompact {
		wrap = 0
	}

	data := loaderData{Scheme: artifact.Scheme}

	switch artifact.Scheme {
	case m.SchemeCompress:
		data.Payload = block(artifact.Blob, wrap)
	case m.SchemeCompiled:
		if len(artifact.Metadata.Key) == 0 {
			return m.LoaderProgram{}, errors.New("compiled artifact has no key")
		}

		data.Key = block(artifact.Metadata.Key, wrap)
		data.Payload = block(artifact.Blob, wrap)
	case m.SchemeChunk:
		pieces := artifact.Pieces()
		if pieces == nil {
			return m.LoaderProgram{}, errors.New("chunk bounds do not cover the payload")
		}

		for _, piece := range pieces {
			data.Pieces = append(data.Pieces, block(piece, wrap))
		}

		data.Order = artifact.Metadata.Order
	default:
		return m.LoaderProgram{}, fmt.Errorf("no loader for scheme %q", artifact.Scheme)
	}

	if style == m.StyleObfuscated {
		data.N = g.localNames()
	}

	var b strings.Builder

	name := fmt.Sprintf("%s.%s.py.tmpl", artifact.Scheme, style)
	if err := loaders.ExecuteTemplate(&b, name, data); err != nil {
		return m.LoaderProgram{}, fmt.Errorf("render %s: %w", name, err)
	}

	return m.LoaderProgram{Scheme: artifact.Scheme, Style: style, Text: b.String()}, nil
}

func (g *LoaderGenerator) localNames() map[string]string {
	if g.names == nil {
		g.names = NewNameGenerator(NewRand(0), nil)
	}

	names := make(map[string]string, len(loaderNames))
	for _, role := range loaderNames {
		names[role] = g.names.Next()
	}

	return names
}

// block renders data as a base64 bytes literal. Wrapped blocks put every
// line of the encoding on its own source line.
func block(data []byte, wrap int) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	if wrap == 0 || len(encoded) <= wrap {
		return `b"""` + encoded + `"""`
	}

	var b strings.Builder

	b.WriteString("b\"\"\"\n")

	for len(encoded) > wrap {
		b.WriteString(encoded[:wrap])
		b.WriteByte('\n')

		encoded = encoded[wrap:]
	}

	b.WriteString(encoded)
	b.WriteString("\n\"\"\"")

	return b.String()
}
