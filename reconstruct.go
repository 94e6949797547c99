package sss256

import (
	"fmt"
	"io"

	"github.com/wbrc/sss256/gf256"
)

// Reconstruct performs Lagrange interpolation at x=0 over coord — a
// CoordArray of length t*(1+L), as produced by ParseShares — and writes the
// L resulting secret bytes to w in column order.
func Reconstruct(coord []byte, t int, w io.Writer) error {
	if t < 2 {
		return fmt.Errorf("sss256: invalid threshold %d", t)
	}
	if len(coord) < 2*t || len(coord)%t != 0 {
		return fmt.Errorf("sss256: malformed coordinate array (len=%d, t=%d)", len(coord), t)
	}

	xs := coord[:t]
	assertDistinctNonzero(xs)

	l := len(coord)/t - 1
	secret := make([]byte, l)
	for col := 0; col < l; col++ {
		ys := coord[t*(1+col) : t*(1+col)+t]
		secret[col] = interpolateAtZero(xs, ys)
	}

	_, err := w.Write(secret)
	return err
}

// interpolateAtZero evaluates the unique degree-(t-1) polynomial through
// (xs[i], ys[i]) at x=0, via the standard Lagrange basis.
func interpolateAtZero(xs, ys []byte) byte {
	var s byte
	for i := range xs {
		term := ys[i]
		for j := range xs {
			if j == i {
				continue
			}
			denom := gf256.Add(xs[j], xs[i])
			term = gf256.Mul(term, gf256.Mul(xs[j], gf256.Inv(denom)))
		}
		s = gf256.Add(s, term)
	}
	return s
}

// assertDistinctNonzero re-checks the two invariants the parser is
// supposed to already guarantee. A violation here is a programming error,
// not a malformed-input condition — ParseShares never hands out such a
// coordinate array — so it panics rather than returning an error.
func assertDistinctNonzero(xs []byte) {
	seen := make(map[byte]bool, len(xs))
	for _, x := range xs {
		if x == 0 {
			panic("sss256: reconstruct precondition violated: zero share index")
		}
		if seen[x] {
			panic("sss256: reconstruct precondition violated: duplicate share index")
		}
		seen[x] = true
	}
}
