// vigenere.go
// Package vigenere implements the repeating-key alphabetic shift cipher
// with a fitness-guided exhaustive key search.
package vigenere

import (
	"errors"
	"math"
	"strings"
)

// ErrEmptyKey reports a key with no letters in it.
var ErrEmptyKey = errors.New("vigenere: key has no letters")

// commonWords are frequent Spanish words, wrapped in spaces so that only
// whole-word occurrences score. Each hit is worth the length of the
// wrapped word.
var commonWords = []string{
	" DE ", " LA ", " EL ", " QUE ", " Y ",
	" A ", " EN ", " UN ", " PARA ", " CON ",
	" POR ", " COMO ", " SU ", " AL ", " DEL ",
	" LOS ", " SE ", " NO ", " MAS ", " O ",
	" SI ", " YA ", " TODO ", " ESTA ", " HAY ",
	" ESTO ", " SON ", " TIENE ", " HACE ", " SUS ",
	" VIDA ", " NOS ", " TE ", " LO ", " ME ",
	" ESTE ", " ESA ", " ESE ", " BIEN ", " MUY ",
	" PUEDE ", " TAMBIEN ", " AUN ", " MI ", " DOS ",
	" UNO ", " OTRO ", " NUEVO ", " SIN ", " ENTRE ",
	" SOBRE ",
}

// Cipher holds a normalized (uppercase, letters-only) key.
type Cipher struct {
	key string
}

// New builds a Cipher from a raw key. The key is normalized first; a key
// that normalizes to the empty string is rejected.
func New(rawKey string) (*Cipher, error) {
	key := NormalizeKey(rawKey)
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Cipher{key: key}, nil
}

// NormalizeKey drops non-letters and folds the rest to upper case.
func NormalizeKey(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// Key returns the normalized key.
func (c *Cipher) Key() string {
	return c.key
}

// Encode shifts each letter of text by the next key letter, preserving
// case. Non-letters pass through and do not advance the key.
func (c *Cipher) Encode(text string) string {
	out := []byte(text)
	i := 0
	for pos, ch := range out {
		base, ok := letterBase(ch)
		if !ok {
			continue
		}
		shift := c.key[i%len(c.key)] - 'A'
		out[pos] = base + (ch-base+shift)%26
		i++
	}
	return string(out)
}

// Decode reverses Encode with the same key walk.
func (c *Cipher) Decode(text string) string {
	out := []byte(text)
	i := 0
	for pos, ch := range out {
		base, ok := letterBase(ch)
		if !ok {
			continue
		}
		shift := c.key[i%len(c.key)] - 'A'
		out[pos] = base + (ch-base+26-shift)%26
		i++
	}
	return string(out)
}

func letterBase(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A', true
	case c >= 'a' && c <= 'z':
		return 'a', true
	}
	return 0, false
}

// Fitness scores text by scanning its uppercased form, padded with a
// space on both ends, for non-overlapping occurrences of the common
// words. Higher is more Spanish-looking.
func Fitness(text string) float64 {
	padded := " " + strings.ToUpper(text) + " "
	var score float64
	for _, w := range commonWords {
		pos := 0
		for {
			idx := strings.Index(padded[pos:], w)
			if idx < 0 {
				break
			}
			score += float64(len(w))
			pos += idx + len(w)
		}
	}
	return score
}

// BreakResult is the best candidate found by Break.
type BreakResult struct {
	Key       string
	Plaintext string
	Score     float64
}

// Break searches every uppercase key of length 1 through maxKeyLen,
// depth first, and keeps the key whose decoding scores highest. Cost is
// exponential in maxKeyLen; callers bound it.
func Break(text string, maxKeyLen int) BreakResult {
	best := BreakResult{Score: math.Inf(-1)}

	trial := make([]byte, 0, maxKeyLen)
	var dfs func(length int)
	dfs = func(length int) {
		if len(trial) == length {
			c := Cipher{key: string(trial)}
			decoded := c.Decode(text)
			if score := Fitness(decoded); score > best.Score {
				best = BreakResult{Key: c.key, Plaintext: decoded, Score: score}
			}
			return
		}
		for ch := byte('A'); ch <= 'Z'; ch++ {
			trial = append(trial, ch)
			dfs(length)
			trial = trial[:len(trial)-1]
		}
	}
	for length := 1; length <= maxKeyLen; length++ {
		dfs(length)
	}
	return best
}
