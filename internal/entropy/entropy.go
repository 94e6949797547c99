// Package entropy draws cryptographically secure random bytes from the
// operating system in bounded chunks, distinguishing a partial fill or an
// interrupted call from an ordinary success — a distinction
// crypto/rand.Reader deliberately hides by retrying internally.
package entropy

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// ErrUnavailable is returned when the operating system's entropy source
// could not fill a request: a short read, or an interrupted (EINTR)
// getrandom(2) call, which this package treats as "the entropy pool is not
// yet seeded" rather than retrying.
var ErrUnavailable = errors.New("entropy: operating system entropy source unavailable")

// chunkSize bounds each individual getrandom(2) call.
const chunkSize = 256

// Read fills buf with random bytes drawn from the operating system CSPRNG,
// in chunks of at most chunkSize bytes.
func Read(buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > chunkSize {
			n = chunkSize
		}

		got, err := unix.Getrandom(buf[:n], 0)
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				return ErrUnavailable
			}
			return err
		}
		if got != n {
			return ErrUnavailable
		}

		buf = buf[n:]
	}
	return nil
}
