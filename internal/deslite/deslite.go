// deslite.go
// Package deslite implements a teaching variant of DES: a 16-round
// Feistel network over one 64-bit block with the standard E and P boxes
// but a single reduced S-box, identity initial/final permutations, and a
// shift-only subkey schedule. It demonstrates the structure of a block
// cipher; it is not secure, and its quirks are contractual so that
// blocks produced by earlier versions keep decrypting.
//
// Bit positions follow the little-endian convention throughout: bit i of
// a word is (word >> i) & 1.
package deslite

// Rounds is the number of Feistel rounds.
const Rounds = 16

const subkeyMask = (1 << 48) - 1

// expansionTable is the standard DES E-box (1-based positions).
var expansionTable = [48]int{
	32, 1, 2, 3, 4, 5,
	4, 5, 6, 7, 8, 9,
	8, 9, 10, 11, 12, 13,
	12, 13, 14, 15, 16, 17,
	16, 17, 18, 19, 20, 21,
	20, 21, 22, 23, 24, 25,
	24, 25, 26, 27, 28, 29,
	28, 29, 30, 31, 32, 1,
}

// pTable is the standard DES P-box (1-based positions).
var pTable = [32]int{
	16, 7, 20, 21, 29, 12, 28, 17,
	1, 15, 23, 26, 5, 18, 31, 10,
	2, 8, 24, 14, 32, 27, 3, 9,
	19, 13, 30, 6, 22, 11, 4, 25,
}

// sbox is the first four rows of DES S1. A real DES uses eight distinct
// 4x16 boxes.
var sbox = [4][16]uint32{
	{14, 4, 13, 1, 2, 15, 11, 8, 3, 10, 6, 12, 5, 9, 0, 7},
	{0, 15, 7, 4, 14, 2, 13, 1, 10, 6, 12, 11, 9, 5, 3, 8},
	{4, 1, 14, 8, 13, 6, 2, 11, 15, 12, 9, 7, 3, 10, 5, 0},
	{15, 12, 8, 2, 4, 9, 1, 7, 5, 11, 3, 14, 10, 0, 6, 13},
}

// Cipher holds a 64-bit key and its derived round subkeys.
type Cipher struct {
	key     uint64
	subkeys [Rounds]uint64
}

// New derives the 16 round subkeys from key. The schedule is a plain
// shift: subkey i is the low 48 bits of key >> i.
func New(key uint64) *Cipher {
	c := &Cipher{key: key}
	for i := 0; i < Rounds; i++ {
		c.subkeys[i] = (key >> i) & subkeyMask
	}
	return c
}

// initialPermutation mirrors the DES IP slot; here it is the identity.
func initialPermutation(block uint64) uint64 {
	return block
}

// finalPermutation mirrors the DES FP slot; here it is the identity.
func finalPermutation(block uint64) uint64 {
	return block
}

// expand widens a 32-bit half to 48 bits through the E-box. Table
// entries index the half from its high end: output bit i is input bit
// 32-expansionTable[i].
func expand(half uint32) uint64 {
	var out uint64
	for i := 0; i < 48; i++ {
		bit := uint64(half>>(32-expansionTable[i])) & 1
		out |= bit << i
	}
	return out
}

// substitute compresses 48 bits back to 32 through the reduced S-box,
// six input bits per four output bits. The row is formed from the outer
// pair of each group and the column from the inner four; the looked-up
// value lands in the output MSB-first.
func substitute(x uint64) uint32 {
	var out uint32
	for i := 0; i < 8; i++ {
		g := x >> (i * 6)
		row := (g&1)<<1 | (g >> 5 & 1)
		col := (g>>1&1)<<3 | (g>>2&1)<<2 | (g>>3&1)<<1 | (g >> 4 & 1)
		v := sbox[row%4][col%16]
		for j := 0; j < 4; j++ {
			out |= (v >> (3 - j) & 1) << (i*4 + j)
		}
	}
	return out
}

// permuteP shuffles 32 bits through the P-box, again indexing from the
// high end.
func permuteP(x uint32) uint32 {
	var out uint32
	for i := 0; i < 32; i++ {
		out |= (x >> (32 - pTable[i]) & 1) << i
	}
	return out
}

// feistel is the round function: expand, mix in the subkey, substitute,
// permute.
func (c *Cipher) feistel(half uint32, subkey uint64) uint32 {
	return permuteP(substitute(expand(half) ^ subkey))
}

// Encode encrypts one 64-bit block. The block splits into L (high 32
// bits) and R (low 32 bits); after the last round the halves recombine
// as R||L without the usual final swap.
func (c *Cipher) Encode(block uint64) uint64 {
	data := initialPermutation(block)
	left := uint32(data >> 32)
	right := uint32(data)

	for round := 0; round < Rounds; round++ {
		left, right = right, left^c.feistel(right, c.subkeys[round])
	}

	combined := uint64(right)<<32 | uint64(left)
	return finalPermutation(combined)
}

// Decode inverts Encode by running the rounds in reverse. Because
// Encode stores its final L in the low half, Decode reads L from the
// low half and R from the high half.
func (c *Cipher) Decode(block uint64) uint64 {
	data := initialPermutation(block)
	left := uint32(data)
	right := uint32(data >> 32)

	for round := Rounds - 1; round >= 0; round-- {
		left, right = right^c.feistel(left, c.subkeys[round]), left
	}

	combined := uint64(left)<<32 | uint64(right)
	return finalPermutation(combined)
}
