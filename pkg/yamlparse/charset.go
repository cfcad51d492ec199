package yamlparse

import (
	"fmt"
	"unicode/utf8"
)

// checkCharacters reports the first invalid UTF-8 sequence or character
// outside the YAML printable set, positioned at its 1-based line and column.
func checkCharacters(data []byte) error {
	line, column := 1, 1
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return &SyntaxError{
				Message: fmt.Sprintf("invalid UTF-8 byte %#02x", data[i]),
				Line:    line,
				Column:  column,
			}
		}
		if !isPrintable(r) {
			return &SyntaxError{
				Message: fmt.Sprintf("control characters are not allowed (found %U)", r),
				Line:    line,
				Column:  column,
			}
		}

		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i += size
	}
	return nil
}

// isPrintable matches the YAML 1.2 c-printable production.
func isPrintable(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == 0x85:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
