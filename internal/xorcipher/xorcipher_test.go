// xorcipher_test.go
package xorcipher

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	ct, err := Encode([]byte("Hola Mundo"), []byte("clave"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := HexDump(ct), "2b 03 0d 17 45 2e 19 0f 12 0a"; got != want {
		t.Errorf("hex dump == %q, want %q", got, want)
	}

	pt, err := Encode(ct, []byte("clave"))
	if err != nil {
		t.Fatal(err)
	}
	if string(pt) != "Hola Mundo" {
		t.Errorf("double encode == %q, want the original", pt)
	}
}

func TestEncodeEmptyKey(t *testing.T) {
	if _, err := Encode([]byte("x"), nil); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("got %v, want ErrEmptyKey", err)
	}
}

func TestSelfInverse(t *testing.T) {
	keys := [][]byte{{0x00}, {0xff}, []byte("k"), []byte("clave"), {0x01, 0x02, 0x03}}
	input := []byte("The quick brown fox\x00\xff jumps")
	for _, key := range keys {
		once, err := Encode(input, key)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Encode(once, key)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(twice, input) {
			t.Errorf("key % x: double encode did not recover the input", key)
		}
	}
}

func TestHexToBytes(t *testing.T) {
	cases := []struct {
		s    string
		want []byte
	}{
		{"2b 0a 27", []byte{0x2b, 0x0a, 0x27}},
		// Single-digit tokens are zero-padded.
		{"a 5 ff", []byte{0x0a, 0x05, 0xff}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := HexToBytes(c.s)
		if err != nil {
			t.Fatalf("HexToBytes(%q): %v", c.s, err)
		}
		if !bytes.Equal(got, c.want) {
			t.Errorf("HexToBytes(%q) == % x, want % x", c.s, got, c.want)
		}
	}
	if _, err := HexToBytes("2b zz"); err == nil {
		t.Error("expected an error for a non-hex token")
	}
	if _, err := HexToBytes("2b1f"); err == nil {
		t.Error("expected an error for a token wider than one byte")
	}
}

func TestIsPrintable(t *testing.T) {
	cases := []struct {
		data []byte
		want bool
	}{
		{[]byte("Hola Mundo"), true},
		{[]byte("line\nbreak\ttab"), true},
		{[]byte{0x00}, false},
		{[]byte{0x80}, false},
		{[]byte("ok\x1b"), false},
		{nil, true},
	}
	for _, c := range cases {
		if got := IsPrintable(c.data); got != c.want {
			t.Errorf("IsPrintable(% x) == %v, want %v", c.data, got, c.want)
		}
	}
}

func TestBruteForce1Byte(t *testing.T) {
	plain := []byte("Hello there, this is a test")
	ct, err := Encode(plain, []byte{0x5a})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, c := range BruteForce1Byte(ct) {
		if !IsPrintable(c.Plaintext) {
			t.Fatalf("candidate % x is not printable", c.Key)
		}
		if len(c.Key) == 1 && c.Key[0] == 0x5a {
			found = true
			if !bytes.Equal(c.Plaintext, plain) {
				t.Errorf("key 5a recovered %q", c.Plaintext)
			}
		}
	}
	if !found {
		t.Error("the true key is missing from the candidates")
	}
}

func TestBruteForce2Byte(t *testing.T) {
	plain := []byte("attack at dawn")
	ct, err := Encode(plain, []byte{0x13, 0x37})
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, c := range BruteForce2Byte(ct) {
		if bytes.Equal(c.Key, []byte{0x13, 0x37}) {
			found = true
			if !bytes.Equal(c.Plaintext, plain) {
				t.Errorf("true key recovered %q", c.Plaintext)
			}
		}
	}
	if !found {
		t.Error("the true key is missing from the candidates")
	}
}

func TestBruteForceDictionary(t *testing.T) {
	plain := []byte("nos vemos en la plaza")
	ct, err := Encode(plain, []byte("hola"))
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, c := range BruteForceDictionary(ct) {
		if string(c.Key) == "hola" {
			found = true
			if !bytes.Equal(c.Plaintext, plain) {
				t.Errorf("dictionary key recovered %q", c.Plaintext)
			}
		}
	}
	if !found {
		t.Error("the dictionary key is missing from the candidates")
	}
}
