// xorcipher.go
// Package xorcipher implements the repeating-key XOR cipher along with
// the helpers needed to attack it: a hex dump, a printable-text filter,
// and exhaustive and dictionary key searches.
package xorcipher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyKey reports an encode request with a zero-length key.
var ErrEmptyKey = errors.New("xorcipher: empty key")

// dictionary holds weak keys commonly found in the wild.
var dictionary = []string{
	"clave", "admin", "1234", "root", "test", "abc", "hola", "user",
	"pass", "12345", "0000", "password", "default",
}

// Encode XORs every input byte with the key byte at the same position,
// repeating the key as needed. Applying it twice with the same key
// recovers the input.
func Encode(input, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(input))
	for i, c := range input {
		out[i] = c ^ key[i%len(key)]
	}
	return out, nil
}

// HexToBytes parses space-separated hex tokens. Single-digit tokens are
// accepted as if left-padded with a zero; tokens wider than one byte
// are an error rather than being truncated.
func HexToBytes(s string) ([]byte, error) {
	var out []byte
	for _, tok := range strings.Fields(s) {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("xorcipher: bad hex token %q: %w", tok, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// HexDump renders data as space-separated lowercase hex pairs.
func HexDump(data []byte) string {
	return fmt.Sprintf("% x", data)
}

// IsPrintable reports whether every byte is a printable ASCII character
// or whitespace. It is the filter the brute-force attacks apply before
// keeping a candidate.
func IsPrintable(data []byte) bool {
	for _, c := range data {
		if c >= 0x20 && c < 0x7f {
			continue
		}
		switch c {
		case '\t', '\n', '\v', '\f', '\r':
			continue
		}
		return false
	}
	return true
}

// Candidate pairs a trial key with the plaintext it produced.
type Candidate struct {
	Key       []byte
	Plaintext []byte
}

// BruteForce1Byte tries all 256 single-byte keys and keeps the
// candidates whose plaintext is printable.
func BruteForce1Byte(ciphertext []byte) []Candidate {
	var out []Candidate
	for k := 0; k <= 0xff; k++ {
		pt := make([]byte, len(ciphertext))
		for i, c := range ciphertext {
			pt[i] = c ^ byte(k)
		}
		if IsPrintable(pt) {
			out = append(out, Candidate{Key: []byte{byte(k)}, Plaintext: pt})
		}
	}
	return out
}

// BruteForce2Byte tries all 65536 two-byte keys, applied cyclically, and
// keeps the candidates whose plaintext is printable.
func BruteForce2Byte(ciphertext []byte) []Candidate {
	var out []Candidate
	for b1 := 0; b1 <= 0xff; b1++ {
		for b2 := 0; b2 <= 0xff; b2++ {
			key := [2]byte{byte(b1), byte(b2)}
			pt := make([]byte, len(ciphertext))
			for i, c := range ciphertext {
				pt[i] = c ^ key[i%2]
			}
			if IsPrintable(pt) {
				out = append(out, Candidate{Key: key[:], Plaintext: pt})
			}
		}
	}
	return out
}

// BruteForceDictionary tries each key in the built-in weak-key list and
// keeps the candidates whose plaintext is printable.
func BruteForceDictionary(ciphertext []byte) []Candidate {
	var out []Candidate
	for _, k := range dictionary {
		key := []byte(k)
		pt := make([]byte, len(ciphertext))
		for i, c := range ciphertext {
			pt[i] = c ^ key[i%len(key)]
		}
		if IsPrintable(pt) {
			out = append(out, Candidate{Key: key, Plaintext: pt})
		}
	}
	return out
}
