// cryptogen.go
// Package cryptogen generates passwords, keys, IVs and salts from a
// seeded PRNG, and provides hex/Base64 codecs, best-effort wiping and a
// password-policy check.
//
// The engine is a Mersenne Twister seeded once from the OS entropy
// source. That matches the tool's heritage but is NOT a cryptographically
// secure generator; the output is for demonstrations, not for protecting
// real secrets.
package cryptogen

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	uppers  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowers  = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*()-_=+[]{}|;:',.<>?/"
)

var (
	// ErrEmptyPool reports a password request with every character
	// class disabled.
	ErrEmptyPool = errors.New("cryptogen: no character classes enabled")

	// ErrKeyBits reports a key size that is not a positive whole
	// number of bytes.
	ErrKeyBits = errors.New("cryptogen: key size must be a positive multiple of 8 bits")

	// ErrNegativeSize reports a request for a negative number of
	// bytes or characters.
	ErrNegativeSize = errors.New("cryptogen: negative size")

	// ErrMalformedHex reports hex input that cannot be decoded.
	ErrMalformedHex = errors.New("cryptogen: malformed hex input")

	// ErrMalformedBase64 reports Base64 input that cannot be decoded.
	ErrMalformedBase64 = errors.New("cryptogen: malformed base64 input")
)

// Generator draws from its own PRNG state. A Generator is not safe for
// concurrent use; callers that share one must serialize access.
type Generator struct {
	engine *mt19937
}

// New seeds a generator from the OS entropy source.
func New() (*Generator, error) {
	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("cryptogen: reading entropy: %w", err)
	}
	return &Generator{engine: newMT19937(binary.LittleEndian.Uint32(seed[:]))}, nil
}

// Password draws length characters uniformly, with replacement, from the
// pool built out of the enabled character classes.
func (g *Generator) Password(length int, useUpper, useLower, useDigits, useSymbols bool) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSize, length)
	}
	var pool string
	if useUpper {
		pool += uppers
	}
	if useLower {
		pool += lowers
	}
	if useDigits {
		pool += digits
	}
	if useSymbols {
		pool += symbols
	}
	if pool == "" {
		return "", ErrEmptyPool
	}

	out := make([]byte, length)
	for i := range out {
		out[i] = pool[g.engine.intn(len(pool))]
	}
	return string(out), nil
}

// Bytes returns n uniformly random bytes. Negative n is rejected.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(g.engine.intn(256))
	}
	return out, nil
}

// Key returns a symmetric key of the given size in bits.
func (g *Generator) Key(bits int) ([]byte, error) {
	if bits <= 0 || bits%8 != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrKeyBits, bits)
	}
	return g.Bytes(bits / 8)
}

// IV returns a random initialization vector of blockSize bytes.
func (g *Generator) IV(blockSize int) ([]byte, error) {
	return g.Bytes(blockSize)
}

// Salt returns length random bytes for key derivation.
func (g *Generator) Salt(length int) ([]byte, error) {
	return g.Bytes(length)
}

// ToHex encodes data as lowercase hex, two digits per byte.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hex string. Odd-length or non-hex input fails.
func FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHex, len(s))
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return data, nil
}

// ToBase64 encodes data as standard Base64 with '=' padding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard Base64. Invalid characters fail.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	return data, nil
}

// SecureWipe overwrites every byte with zero. Best effort only: the
// compiler is free to elide stores to memory it can prove dead.
func SecureWipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// ValidatePassword reports whether s is at least 8 characters long and
// contains an upper-case letter, a lower-case letter, a digit and a
// punctuation character.
func ValidatePassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasPunct bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case c > 0x20 && c < 0x7f:
			hasPunct = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasPunct
}
