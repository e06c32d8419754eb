package pysyntax

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedEscape is returned for escapes that need the unicode name
// database, such as \N{...}.
var ErrUnsupportedEscape = errors.New("unsupported escape sequence")

// StringValue decodes a non-bytes, non-formatted string literal token to its
// runtime value.
func StringValue(tok *Token) (string, error) {
	raw := tok.Raw

	i := strings.IndexAny(raw, `'"`)
	if i < 0 {
		return "", errors.New("not a string literal")
	}

	prefix := strings.ToLower(raw[:i])
	body := raw[i:]

	quote := 1
	if len(body) >= 6 && (strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`)) {
		quote = 3
	}

	body = body[quote : len(body)-quote]

	if strings.Contains(prefix, "r") {
		return normalizeNewlines(body), nil
	}

	return unescape(body)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func unescape(body string) (string, error) {
	if !strings.Contains(body, `\`) {
		return normalizeNewlines(body), nil
	}

	var b strings.Builder

	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			if c == '\r' {
				b.WriteByte('\n')
				if i+1 < len(body) && body[i+1] == '\n' {
					i++
				}
			} else {
				b.WriteByte(c)
			}
			i++

			continue
		}

		if i+1 >= len(body) {
			return "", errors.New("trailing backslash")
		}

		esc := body[i+1]
		i += 2

		switch esc {
		case '\n':
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\\', '\'', '"':
			b.WriteByte(esc)
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case 'x', 'u', 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[esc]
			if i+width > len(body) {
				return "", errors.New("truncated escape")
			}

			n, err := strconv.ParseUint(body[i:i+width], 16, 32)
			if err != nil {
				return "", err
			}

			r := rune(n)
			if !utf8.ValidRune(r) {
				return "", errors.New("escape is not a valid code point")
			}

			b.WriteRune(r)
			i += width
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i - 1
			end := j
			for end < len(body) && end < j+3 && body[end] >= '0' && body[end] <= '7' {
				end++
			}

			n, err := strconv.ParseUint(body[j:end], 8, 32)
			if err != nil {
				return "", err
			}

			b.WriteRune(rune(n))
			i = end
		case 'N':
			return "", ErrUnsupportedEscape
		default:
			b.WriteByte('\\')
			b.WriteByte(esc)
		}
	}

	return b.String(), nil
}
