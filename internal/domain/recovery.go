package domain

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"pyobf.dev/pkg/pyobf/internal/domain/encoders"
	m "pyobf.dev/pkg/pyobf/internal/model"
)

var (
	tripleBlockRe = regexp.MustCompile(`b"""([^"]*)"""`)
	quotedBlockRe = regexp.MustCompile(`['"]([A-Za-z0-9+/=]{4,})['"]`)
	headerRe      = regexp.MustCompile(`(?im)^#\s*obfuscated by [\w.]+ \((\w+)(?: mode)?\)`)
	intListRe     = regexp.MustCompile(`\[\s*(\d+(?:\s*,\s*\d+)*)?\s*,?\s*\]`)
)

// headerSchemes maps the scheme named in a loader header comment. Older
// loaders named the mode instead of the scheme.
var headerSchemes = map[string]m.Scheme{
	string(m.SchemeCompress): m.SchemeCompress,
	string(m.SchemeCompiled): m.SchemeCompiled,
	string(m.SchemeChunk):    m.SchemeChunk,
	string(m.ModeSimple):     m.SchemeCompress,
	string(m.ModeASTRename):  m.SchemeCompress,
	string(m.ModeMarshalXOR): m.SchemeCompiled,
}

// Recoverer extracts the embedded program from loader text.
type Recoverer struct{}

// NewRecoverer creates a Recoverer.
func NewRecoverer() *Recoverer {
	return &Recoverer{}
}

// Recover decodes a loader. Problems are reported in the returned
// Recovery, never as a Go error.
func (r *Recoverer) Recover(text string) m.Recovery {
	blocks, err := findBlocks(text)
	if err != nil {
		return failed(m.DecodeError, err.Error())
	}

	scheme := detectScheme(text, len(blocks))
	slog.Debug("Recovering payload", "scheme", scheme, "blocks", len(blocks))

	if len(blocks) == 0 && scheme != m.SchemeChunk {
		return failed(m.DecodeError, "no payload block found")
	}

	switch scheme {
	case m.SchemeCompiled:
		return recoverCompiled(blocks)
	case m.SchemeChunk:
		return recoverChunks(text, blocks)
	case m.SchemeCompress:
		data, err := encoders.Decompress(blocks[0])
		if err != nil {
			return failed(m.DecodeError, fmt.Sprintf("decompress payload: %v", err))
		}

		return readable(m.SchemeCompress, data)
	}

	return readable(m.SchemePlain, blocks[0])
}

func recoverCompiled(blocks [][]byte) m.Recovery {
	if len(blocks) < 2 {
		return failed(m.DecodeError, "compiled loader needs a key block and a payload block")
	}

	key, payload := blocks[0], blocks[1]
	if len(key) == 0 {
		return failed(m.DecodeError, "empty key block")
	}

	code := encoders.XOR(payload, key)
	if len(code) == 0 || (code[0]&0x7f) != 'c' {
		return failed(m.DecodeError, "payload is not a compiled code object")
	}

	return m.Recovery{Scheme: m.SchemeCompiled, Data: code}
}

func recoverChunks(text string, blocks [][]byte) m.Recovery {
	order, ok := findOrder(text, len(blocks))
	if !ok {
		return failed(m.DecodeError, fmt.Sprintf("no order list for %d pieces", len(blocks)))
	}

	size := 0
	for _, b := range blocks {
		size += len(b)
	}

	data, err := encoders.Reassemble(blocks, order, size)
	if err != nil {
		return failed(m.DecodeError, err.Error())
	}

	return readable(m.SchemeChunk, data)
}

func readable(scheme m.Scheme, data []byte) m.Recovery {
	return m.Recovery{Scheme: scheme, Data: data, Readable: utf8.Valid(data)}
}

func failed(kind m.ErrorKind, msg string) m.Recovery {
	return m.Recovery{Failure: &m.Failure{Kind: kind, Message: msg}}
}

// findBlocks returns the decoded data blocks. Triple-quoted bytes blocks
// win; quoted strings are only considered when there are none.
func findBlocks(text string) ([][]byte, error) {
	var blocks [][]byte

	for _, match := range tripleBlockRe.FindAllStringSubmatch(text, -1) {
		data, err := decodeBlock(match[1])
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, data)
	}

	if len(blocks) > 0 {
		return blocks, nil
	}

	for _, loc := range quotedBlockRe.FindAllStringSubmatchIndex(text, -1) {
		candidate := text[loc[2]:loc[3]]
		if len(candidate)%4 != 0 {
			continue
		}

		// Short unpadded words are only taken as pieces of a list literal.
		if len(candidate) < 8 && !strings.Contains(candidate, "=") && !inListLiteral(text, loc[0]) {
			continue
		}

		data, err := decodeBlock(candidate)
		if err != nil {
			continue
		}

		blocks = append(blocks, data)
	}

	return blocks, nil
}

// inListLiteral reports whether the innermost open bracket before start is
// a list bracket.
func inListLiteral(text string, start int) bool {
	depth := 0

	for i := start - 1; i >= 0; i-- {
		switch text[i] {
		case ')', ']', '}':
			depth++
		case '(', '{':
			if depth == 0 {
				return false
			}

			depth--
		case '[':
			if depth == 0 {
				return true
			}

			depth--
		}
	}

	return false
}

func decodeBlock(raw string) ([]byte, error) {
	cleaned := strings.NewReplacer("\r", "", "\n", "").Replace(raw)

	data, err := base64.StdEncoding.Strict().DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 block: %w", err)
	}

	return data, nil
}

func detectScheme(text string, blocks int) m.Scheme {
	if match := headerRe.FindStringSubmatch(text); match != nil {
		if scheme, ok := headerSchemes[strings.ToLower(match[1])]; ok {
			return scheme
		}
	}

	switch {
	case strings.Contains(text, "marshal"):
		return m.SchemeCompiled
	case strings.Contains(text, "zlib"):
		return m.SchemeCompress
	}

	if _, ok := findOrder(text, blocks); ok && blocks > 1 {
		return m.SchemeChunk
	}

	return m.SchemePlain
}

// findOrder returns the last integer list in text with n entries.
func findOrder(text string, n int) ([]int, bool) {
	var (
		order []int
		found bool
	)

	for _, match := range intListRe.FindAllStringSubmatch(text, -1) {
		var values []int

		if match[1] != "" {
			for _, field := range strings.Split(match[1], ",") {
				v, err := strconv.Atoi(strings.TrimSpace(field))
				if err != nil {
					values = nil
					break
				}

				values = append(values, v)
			}
		}

		if len(values) == n {
			order, found = values, true
		}
	}

	return order, found
}
