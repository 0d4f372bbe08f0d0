// asciibin.go
// Package asciibin converts between text and its space-separated 8-bit
// binary representation.
package asciibin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedBinary reports a token that is not a base-2 number.
var ErrMalformedBinary = errors.New("asciibin: malformed binary token")

// StringToBinary renders each byte of s as eight '0'/'1' characters,
// big-endian, with a single space between groups and no trailing space.
func StringToBinary(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 9)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%08b", s[i])
	}
	return b.String()
}

// BinaryToString splits s on whitespace and interprets every token as an
// unsigned base-2 number, concatenating the resulting bytes. Tokens are
// evaluated positionally; lengths other than 8 are accepted, so the
// round-trip law only holds for pure 8-bit groups.
func BinaryToString(s string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(s) {
		v, err := strconv.ParseUint(tok, 2, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrMalformedBinary, tok)
		}
		b.WriteByte(byte(v))
	}
	return b.String(), nil
}
