// caesar.go
// Package caesar implements the classical shift cipher over letters and
// digits, together with two recovery tools: an exhaustive 26-key brute
// force and a frequency-analysis key guess tuned for Spanish text.
package caesar

import "strings"

// referenceLetters are the most frequent letters in Spanish, most
// common first.
var referenceLetters = []byte{'e', 'a', 'o', 's', 'r', 'n', 'i', 'd', 'l', 'c'}

// commonWords are short Spanish words used to score candidate plaintexts.
var commonWords = []string{"el", "de", "la", "que", "en", "y", "los", "se"}

// Encode shifts letters by k mod 26 within their case and digits by
// k mod 10; every other byte passes through unchanged. k must be
// non-negative.
func Encode(text string, k int) string {
	letterShift := byte(k % 26)
	digitShift := byte(k % 10)
	out := []byte(text)
	for i, c := range out {
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+letterShift)%26
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+letterShift)%26
		case c >= '0' && c <= '9':
			out[i] = '0' + (c-'0'+digitShift)%10
		}
	}
	return string(out)
}

// Decode reverses Encode by applying the complementary letter shift.
// Digits are shifted by (26-k)%26 mod 10 as well, which is not the
// inverse of the encoding shift; texts containing digits do not round
// trip. This mirrors the historical behavior of the tool and is kept
// so that previously produced files decode identically.
func Decode(text string, k int) string {
	return Encode(text, 26-(k%26))
}

// Candidate pairs a shift with the plaintext it produces.
type Candidate struct {
	Key       int
	Plaintext string
}

// BruteForce decodes text under every shift 0..25. Deciding which
// candidate reads best is left to the caller.
func BruteForce(text string) []Candidate {
	out := make([]Candidate, 26)
	for k := 0; k < 26; k++ {
		out[k] = Candidate{Key: k, Plaintext: Decode(text, k)}
	}
	return out
}

// Frequencies tallies occurrences of the 26 letters in text, case-folded.
func Frequencies(text string) [26]int {
	var freq [26]int
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			freq[c-'a']++
		case c >= 'A' && c <= 'Z':
			freq[c-'A']++
		}
	}
	return freq
}

// GuessKey estimates the shift of a Spanish ciphertext. The most frequent
// ciphertext letter is matched against each reference letter to form a
// candidate shift, and the candidate whose decoding contains the most
// common-word occurrences wins. Ties keep the earliest candidate.
func GuessKey(text string) int {
	freq := Frequencies(text)

	maxIdx := 0
	for i := 1; i < 26; i++ {
		if freq[i] > freq[maxIdx] {
			maxIdx = i
		}
	}

	bestKey := 0
	bestScore := -1
	for _, ref := range referenceLetters {
		key := (maxIdx - int(ref-'a') + 26) % 26
		decoded := Decode(text, key)

		score := 0
		for _, w := range commonWords {
			score += countOccurrences(decoded, w)
		}
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}
	return bestKey
}

// countOccurrences counts substring matches of w in s, overlaps included.
func countOccurrences(s, w string) int {
	n := 0
	for i := 0; i+len(w) <= len(s); i++ {
		if strings.HasPrefix(s[i:], w) {
			n++
		}
	}
	return n
}
