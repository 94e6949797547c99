package sss256

import (
	"bytes"
	"testing"
)

func TestEncodeSharesScenario(t *testing.T) {
	// t=3, two random coefficients per secret byte (deg=2), secret length 3.
	secret := []byte{0x00, 0x10, 0x11}
	coeffs := []byte{
		0x01, 0x02, // row for secret[0]: degree-2 coeffs, highest first
		0x03, 0x04, // row for secret[1]
		0x05, 0x06, // row for secret[2]
	}

	var buf bytes.Buffer
	if err := EncodeShares(secret, coeffs, 5, &buf); err != nil {
		t.Fatalf("EncodeShares: %v", err)
	}

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		wantIdx := byte(i + 1)
		hi, _ := hexVal(line[0])
		lo, _ := hexVal(line[1])
		if hi<<4|lo != wantIdx {
			t.Fatalf("line %d: index = 0x%02x, want 0x%02x", i, hi<<4|lo, wantIdx)
		}
		if line[2] != '-' {
			t.Fatalf("line %d: missing separator: %q", i, line)
		}
		if len(line) != 3+2*len(secret) {
			t.Fatalf("line %d: wrong length %d: %q", i, len(line), line)
		}
	}
}

func TestEncodeSharesEmptySecret(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeShares(nil, nil, 3, &buf)
	if err != ErrEmptySecret {
		t.Fatalf("got %v, want ErrEmptySecret", err)
	}
}

func TestEncodeSharesInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
		coeffs []byte
		n      int
	}{
		{"coeffs not a multiple of secret length", []byte{1, 2, 3}, []byte{1, 2}, 5},
		{"n less than threshold", []byte{1}, []byte{1, 2}, 2},
		{"n too large", []byte{1}, []byte{1}, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeShares(tt.secret, tt.coeffs, tt.n, &buf); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

// zero-coefficient shares degenerate to a constant polynomial, so every
// share should carry the secret bytes unchanged regardless of index.
func TestEncodeSharesZeroCoefficients(t *testing.T) {
	secret := []byte{0xde, 0xad, 0xbe, 0xef}
	coeffs := make([]byte, len(secret)) // t=2, one zero coefficient per byte

	var buf bytes.Buffer
	if err := EncodeShares(secret, coeffs, 4, &buf); err != nil {
		t.Fatalf("EncodeShares: %v", err)
	}

	for i, line := range bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n")) {
		data := line[3:]
		for p, s := range secret {
			got, _ := hexVal(data[2*p])
			got2, _ := hexVal(data[2*p+1])
			if got<<4|got2 != s {
				t.Fatalf("share %d byte %d: got 0x%02x, want 0x%02x", i, p, got<<4|got2, s)
			}
		}
	}
}
