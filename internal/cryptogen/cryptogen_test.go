// cryptogen_test.go
package cryptogen

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMT19937ReferenceVector(t *testing.T) {
	// First outputs of the reference MT19937 for the canonical seed.
	mt := newMT19937(5489)
	want := []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}
	for i, w := range want {
		if got := mt.uint32(); got != w {
			t.Fatalf("output %d == %d, want %d", i, got, w)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	mt := newMT19937(1)
	for _, n := range []int{1, 2, 26, 256, 1000} {
		for i := 0; i < 1000; i++ {
			if v := mt.intn(n); v < 0 || v >= n {
				t.Fatalf("intn(%d) == %d", n, v)
			}
		}
	}
}

func TestPassword(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	pw, err := g.Password(32, true, true, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(pw) != 32 {
		t.Fatalf("password length == %d", len(pw))
	}
	pool := uppers + lowers + digits + symbols
	for i := 0; i < len(pw); i++ {
		if !strings.ContainsRune(pool, rune(pw[i])) {
			t.Errorf("character %q outside the enabled pool", pw[i])
		}
	}

	// Digits only.
	pw, err = g.Password(16, false, false, true, false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(pw); i++ {
		if pw[i] < '0' || pw[i] > '9' {
			t.Errorf("digit-only password contains %q", pw[i])
		}
	}
}

func TestPasswordEmptyPool(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Password(8, false, false, false, false); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("got %v, want ErrEmptyPool", err)
	}
}

func TestPasswordPolicyHolds(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	// With all classes enabled the policy holds with overwhelming
	// probability for a long password; a few retries absorb the rest.
	ok := false
	for try := 0; try < 5 && !ok; try++ {
		pw, err := g.Password(64, true, true, true, true)
		if err != nil {
			t.Fatal(err)
		}
		ok = ValidatePassword(pw)
	}
	if !ok {
		t.Error("a 64-character all-classes password kept failing the policy")
	}
}

func TestKey(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	key, err := g.Key(128)
	if err != nil {
		t.Fatal(err)
	}
	if len(key) != 16 {
		t.Errorf("128-bit key has %d bytes", len(key))
	}
	if _, err := g.Key(12); !errors.Is(err, ErrKeyBits) {
		t.Errorf("got %v, want ErrKeyBits", err)
	}
	if _, err := g.Key(0); !errors.Is(err, ErrKeyBits) {
		t.Errorf("Key(0): got %v, want ErrKeyBits", err)
	}
	if _, err := g.Key(-8); !errors.Is(err, ErrKeyBits) {
		t.Errorf("Key(-8): got %v, want ErrKeyBits", err)
	}
}

func TestBytesHelpers(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if got, err := g.Bytes(0); err != nil || len(got) != 0 {
		t.Errorf("Bytes(0) == %d bytes, %v", len(got), err)
	}
	if got, err := g.IV(16); err != nil || len(got) != 16 {
		t.Errorf("IV(16) == %d bytes, %v", len(got), err)
	}
	if got, err := g.Salt(32); err != nil || len(got) != 32 {
		t.Errorf("Salt(32) == %d bytes, %v", len(got), err)
	}
}

func TestNegativeSizes(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Bytes(-1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("Bytes(-1): got %v, want ErrNegativeSize", err)
	}
	if _, err := g.IV(-1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("IV(-1): got %v, want ErrNegativeSize", err)
	}
	if _, err := g.Salt(-1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("Salt(-1): got %v, want ErrNegativeSize", err)
	}
	if _, err := g.Password(-1, true, true, true, true); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("Password(-1): got %v, want ErrNegativeSize", err)
	}
}

func TestHexCodec(t *testing.T) {
	data := []byte{0x00, 0x0f, 0xde, 0xad}
	s := ToHex(data)
	if s != "000fdead" {
		t.Errorf("ToHex == %q", s)
	}
	back, err := FromHex(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Errorf("round trip == % x", back)
	}

	if _, err := FromHex("abc"); !errors.Is(err, ErrMalformedHex) {
		t.Errorf("odd length: got %v, want ErrMalformedHex", err)
	}
	if _, err := FromHex("zz"); !errors.Is(err, ErrMalformedHex) {
		t.Errorf("bad digit: got %v, want ErrMalformedHex", err)
	}
}

func TestBase64Codec(t *testing.T) {
	cases := []struct {
		data []byte
		want string
	}{
		{[]byte("Man"), "TWFu"},
		{[]byte("Ma"), "TWE="},
		{[]byte("M"), "TQ=="},
		{nil, ""},
	}
	for _, c := range cases {
		s := ToBase64(c.data)
		if s != c.want {
			t.Errorf("ToBase64(%q) == %q, want %q", c.data, s, c.want)
		}
		back, err := FromBase64(s)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(back, c.data) {
			t.Errorf("round trip of %q == %q", c.data, back)
		}
	}

	if _, err := FromBase64("TW!u"); !errors.Is(err, ErrMalformedBase64) {
		t.Errorf("got %v, want ErrMalformedBase64", err)
	}
}

func TestSecureWipe(t *testing.T) {
	data := []byte{1, 2, 3, 255}
	SecureWipe(data)
	for i, b := range data {
		if b != 0 {
			t.Errorf("byte %d == %d after wipe", i, b)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"Abcdef1!", true},
		{"abcdef1!", false}, // no upper
		{"ABCDEF1!", false}, // no lower
		{"Abcdefg!", false}, // no digit
		{"Abcdefg1", false}, // no punctuation
		{"Ab1!", false},     // too short
		{"", false},
	}
	for _, c := range cases {
		if got := ValidatePassword(c.s); got != c.want {
			t.Errorf("ValidatePassword(%q) == %v, want %v", c.s, got, c.want)
		}
	}
}
