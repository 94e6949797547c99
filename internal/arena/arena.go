// Package arena implements a minimal allocation scope for the secrets and
// coefficient buffers that flow through sss256's two drivers: every buffer
// handed out is tracked so that a single Release call can zero all of them
// before the process exits, instead of threading individual zeroize calls
// through every return path.
package arena

import (
	"errors"
	"math"
)

// ErrOOM is returned when an allocation cannot be satisfied, or when a
// size computation would overflow a platform int.
var ErrOOM = errors.New("arena: out of memory")

// Arena is an allocation scope: each Alloc makes its own buffer and records
// it for Release.
type Arena struct {
	bufs [][]byte
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Alloc returns a freshly zeroed buffer of length n, tracked for Release.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOOM
	}
	buf, err := safeMake(n)
	if err != nil {
		return nil, err
	}
	a.bufs = append(a.bufs, buf)
	return buf, nil
}

// Release zeroes every buffer this arena has handed out and drops its
// references to them, so sensitive material does not linger in memory
// after the caller is done with it.
func (a *Arena) Release() {
	for _, b := range a.bufs {
		for i := range b {
			b[i] = 0
		}
	}
	a.bufs = nil
}

// safeMake recovers from the runtime panic make() raises for an
// unsatisfiable length, turning it into ErrOOM.
func safeMake(n int) (buf []byte, err error) {
	defer func() {
		if recover() != nil {
			buf, err = nil, ErrOOM
		}
	}()
	return make([]byte, n), nil
}

// CheckedMul returns a*b, or ErrOOM if the product would overflow a
// platform int. Used to size the coefficient buffer (L * (T-1)) before
// allocating it.
func CheckedMul(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrOOM
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/a != b || p > math.MaxInt-1 {
		return 0, ErrOOM
	}
	return p, nil
}
