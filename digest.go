package sss256

import (
	"fmt"
	"io"
	"math/bits"
)

// Digest writes a short, human-readable summary of coeffs to w: a sample
// of its leading and trailing bytes in hex (with the middle elided if the
// buffer is longer than the sample), and the mean number of set bits per
// byte. It is meant for a one-line progress notice, not for recovering
// any of coeffs — only up to six of its bytes are ever shown.
func Digest(w io.Writer, coeffs []byte) error {
	if _, err := io.WriteString(w, "Random coefficients are 0x"); err != nil {
		return err
	}

	m := len(coeffs)
	if m > 6 {
		m = 6
	}
	for k := 0; k < m; k++ {
		if len(coeffs) > m && k == m/2 {
			if _, err := io.WriteString(w, ".."); err != nil {
				return err
			}
		}
		off := 0
		if k >= m/2 {
			off = len(coeffs) - m
		}
		if _, err := fmt.Fprintf(w, "%02x", coeffs[off+k]); err != nil {
			return err
		}
	}

	var pop int
	for _, b := range coeffs {
		pop += bits.OnesCount8(b)
	}
	var percent int
	if len(coeffs) > 0 {
		// half-up rounding to centi-units: (100*pop)/(8*len), rounded.
		percent = (100*pop + 4*len(coeffs)) / (8 * len(coeffs))
	}

	_, err := fmt.Fprintf(w, " with a bit average of %d.%02d.\n", percent/100, percent%100)
	return err
}
