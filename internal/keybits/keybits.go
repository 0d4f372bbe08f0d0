// keybits.go
// Package keybits bridges 8-character strings and the 64-bit blocks the
// block cipher operates on, and generates random 8-byte keys.
package keybits

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// KeySize is the string key length in bytes.
const KeySize = 8

// ErrShortKey reports a key shorter than a full block.
var ErrShortKey = errors.New("keybits: key must be 8 bytes")

// RandomKey draws 8 random bytes from the OS entropy source.
func RandomKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("keybits: reading entropy: %w", err)
	}
	return key, nil
}

// StringToBlock packs the first 8 bytes of s into a 64-bit word: bit j
// of byte i lands at word position 8i+j. Shorter inputs are zero
// padded, which makes the packing plain little-endian byte order.
func StringToBlock(s string) uint64 {
	var block uint64
	for i := 0; i < len(s) && i < KeySize; i++ {
		block |= uint64(s[i]) << (8 * i)
	}
	return block
}

// BlockToString unpacks a 64-bit word into the 8-byte string that
// StringToBlock would have produced it from.
func BlockToString(block uint64) string {
	out := make([]byte, KeySize)
	for i := range out {
		out[i] = byte(block >> (8 * i))
	}
	return string(out)
}

// KeyBlock converts an exactly 8-character key into its block form.
func KeyBlock(s string) (uint64, error) {
	if len(s) != KeySize {
		return 0, fmt.Errorf("%w, got %d", ErrShortKey, len(s))
	}
	return StringToBlock(s), nil
}

// KeyHex renders a key as space-separated uppercase hex pairs.
func KeyHex(key []byte) string {
	return fmt.Sprintf("% X", key)
}
