package sss256

import (
	"fmt"
	"io"

	"github.com/wbrc/sss256/gf256"
)

const hexDigits = "0123456789abcdef"

// EncodeShares evaluates one degree-(T-1) polynomial per secret byte at
// indices 1..n and writes the resulting shares to w, one per line, in the
// wire format "ii-hh...hh\n" (lowercase hex, LF-terminated).
//
// coeffs must have length len(secret)*(t-1) for some t with 2 <= t <= n <=
// 255; coeffs[p*(t-1):(p+1)*(t-1)] holds the non-constant coefficients
// (highest degree first, per Horner's method) of the polynomial for secret
// byte p.
func EncodeShares(secret, coeffs []byte, n int, w io.Writer) error {
	if len(secret) == 0 {
		return ErrEmptySecret
	}
	if len(coeffs)%len(secret) != 0 {
		return fmt.Errorf("sss256: coefficient buffer length %d is not a multiple of secret length %d", len(coeffs), len(secret))
	}

	t := len(coeffs)/len(secret) + 1
	if t < 2 || n < t || n > 255 {
		return fmt.Errorf("sss256: invalid threshold/share parameters (t=%d, n=%d)", t, n)
	}
	deg := t - 1

	line := make([]byte, 0, 3+2*len(secret))
	for i := 1; i <= n; i++ {
		idx := byte(i)
		line = append(line[:0], hexDigits[idx>>4], hexDigits[idx&0xf], '-')

		for p, s := range secret {
			row := coeffs[p*deg : (p+1)*deg]
			var y byte
			for k := 0; k < deg; k++ {
				y = gf256.Mul(gf256.Add(y, row[k]), idx)
			}
			y = gf256.Add(y, s)
			line = append(line, hexDigits[y>>4], hexDigits[y&0xf])
		}
		line = append(line, '\n')

		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
