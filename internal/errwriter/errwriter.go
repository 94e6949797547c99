// Package errwriter implements the error-retaining writer adapter used for
// this system's stderr: every Write call appears to succeed to the caller,
// while the first real failure is latched and retrievable at teardown.
package errwriter

import "io"

// Writer wraps an io.Writer so that Write is infallible from the caller's
// perspective. This lets progress notices and diagnostics be emitted along
// the main control-flow path without branching on their own write errors;
// the failure, if any, is surfaced once via Err, at the end of main.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write always reports success to the caller; see the type doc for why.
func (w *Writer) Write(p []byte) (int, error) {
	if _, err := w.w.Write(p); err != nil && w.err == nil {
		w.err = err
	}
	return len(p), nil
}

// Err returns the first write error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}
