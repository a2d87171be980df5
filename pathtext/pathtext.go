// Package pathtext converts arbitrary path strings to valid UTF-8 text and back.
//
// Paths on most platforms are byte strings that need not be valid UTF-8.
// Encode produces text that can be embedded in JSON or YAML without loss:
// valid UTF-8 passes through unchanged, a backslash is doubled, and every byte
// of an ill-formed sequence is written as \xNN. Decode reverses the mapping
// exactly.
package pathtext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/go/fspath/errors"
)

const hex = "0123456789abcdef"

// Encode returns the text form of s. The result is always valid UTF-8 and
// Decode(Encode(s)) == s.
func Encode(s string) string {
	if utf8.ValidString(s) && !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(`\x`)
			b.WriteByte(hex[s[i]>>4])
			b.WriteByte(hex[s[i]&0x0f])
		case r == '\\':
			b.WriteString(`\\`)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Decode returns the path encoded by text. It fails with CodeInvalidInput on
// an unknown or truncated escape.
func Decode(text string) (string, error) {
	if !strings.Contains(text, `\`) {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(text) {
			return "", invalid(text, i, "trailing backslash")
		}
		switch text[i+1] {
		case '\\':
			b.WriteByte('\\')
			i++
		case 'x':
			if i+3 >= len(text) {
				return "", invalid(text, i, "truncated \\x escape")
			}
			hi, ok1 := unhex(text[i+2])
			lo, ok2 := unhex(text[i+3])
			if !ok1 || !ok2 {
				return "", invalid(text, i, "malformed \\x escape")
			}
			b.WriteByte(hi<<4 | lo)
			i += 3
		default:
			return "", invalid(text, i, fmt.Sprintf("unknown escape \\%c", text[i+1]))
		}
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func invalid(text string, offset int, reason string) error {
	return errors.WithContextMap(
		errors.Newf(errors.CodeInvalidInput, "cannot decode path text: %s", reason),
		map[string]interface{}{"offset": offset, "text": text},
	)
}
