// demo.go
// Package demo produces the canned cipher demonstrations shown in menu
// mode: a fixed plaintext, a fixed key, and the intermediate values a
// student should see. Each demo returns its transcript as lines so the
// caller decides how to display them.
package demo

import (
	"fmt"

	"github.com/drewwalton19216801/goingsecure/internal/asciibin"
	"github.com/drewwalton19216801/goingsecure/internal/caesar"
	"github.com/drewwalton19216801/goingsecure/internal/deslite"
	"github.com/drewwalton19216801/goingsecure/internal/keybits"
	"github.com/drewwalton19216801/goingsecure/internal/xorcipher"
)

// Caesar encrypts a fixed phrase with shift 3, decrypts it back, and
// shows what brute force and frequency analysis make of the ciphertext.
func Caesar() []string {
	const plaintext = "Hola Mundo"
	const shift = 3

	ct := caesar.Encode(plaintext, shift)
	lines := []string{
		"--- Caesar cipher ---",
		fmt.Sprintf("Plaintext : %s", plaintext),
		fmt.Sprintf("Shift     : %d", shift),
		fmt.Sprintf("Ciphertext: %s", ct),
		fmt.Sprintf("Decoded   : %s", caesar.Decode(ct, shift)),
		"",
		"Brute force attempts:",
	}
	for _, c := range caesar.BruteForce(ct) {
		lines = append(lines, fmt.Sprintf("  key %2d: %s", c.Key, c.Plaintext))
	}
	lines = append(lines, "",
		fmt.Sprintf("Frequency analysis suggests key %d", caesar.GuessKey(ct)))
	return lines
}

// XOR encrypts a fixed phrase with a repeating key, dumps the result in
// hex, and shows that applying the key again recovers the phrase.
func XOR() []string {
	const plaintext = "Hola Mundo"
	const key = "clave"

	ct, err := xorcipher.Encode([]byte(plaintext), []byte(key))
	if err != nil {
		return []string{fmt.Sprintf("xor demo failed: %v", err)}
	}
	pt, err := xorcipher.Encode(ct, []byte(key))
	if err != nil {
		return []string{fmt.Sprintf("xor demo failed: %v", err)}
	}
	lines := []string{
		"--- Repeating-key XOR ---",
		fmt.Sprintf("Plaintext : %s", plaintext),
		fmt.Sprintf("Key       : %s", key),
		fmt.Sprintf("Ciphertext: %s", xorcipher.HexDump(ct)),
		fmt.Sprintf("Re-applied: %s", pt),
		"",
		"Dictionary attack on the ciphertext:",
	}
	for _, c := range xorcipher.BruteForceDictionary(ct) {
		lines = append(lines, fmt.Sprintf("  key %q: %s", c.Key, c.Plaintext))
	}
	return lines
}

// AsciiBinary converts a short string to binary groups and back.
func AsciiBinary() []string {
	const text = "Hi"

	bin := asciibin.StringToBinary(text)
	back, err := asciibin.BinaryToString(bin)
	if err != nil {
		return []string{fmt.Sprintf("binary demo failed: %v", err)}
	}
	return []string{
		"--- ASCII <-> binary ---",
		fmt.Sprintf("Text   : %s", text),
		fmt.Sprintf("Binary : %s", bin),
		fmt.Sprintf("Decoded: %s", back),
	}
}

// DES runs one block through the toy Feistel cipher, showing the key,
// the first subkey, the ciphertext and the decoded block.
func DES() []string {
	const key = uint64(0x133457799BBCDFF1)
	const plaintext = uint64(0x123456789ABCDEF1)

	c := deslite.New(key)
	ct := c.Encode(plaintext)
	return []string{
		"--- DES-style Feistel cipher ---",
		fmt.Sprintf("Key       : %016X", key),
		fmt.Sprintf("Key bytes : %s (string form, low byte first)", keybits.KeyHex([]byte(keybits.BlockToString(key)))),
		fmt.Sprintf("Subkey 0  : %012X", key&(1<<48-1)),
		fmt.Sprintf("Plaintext : %016X", plaintext),
		fmt.Sprintf("Ciphertext: %016X", ct),
		fmt.Sprintf("Decoded   : %016X", c.Decode(ct)),
		fmt.Sprintf("Rounds    : %d", deslite.Rounds),
	}
}
