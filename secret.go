package sss256

import (
	"bufio"
	"io"
)

// ReadSecret reads r until EOF and returns the bytes read as the secret to
// split. The secret must be non-empty; an empty read returns ErrEmptySecret
// rather than an empty slice.
func ReadSecret(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptySecret
	}
	return data, nil
}
