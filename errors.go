package sss256

import "errors"

// ErrEmptySecret indicates a secret of zero length, which Shamir's Secret
// Sharing has no defined behavior for.
var ErrEmptySecret = errors.New("sss256: secret must not be empty")

// ErrShareTooLong indicates a share's data field ran past the parser's
// sizing bound without a terminating newline — the input is either
// corrupted or hostile.
var ErrShareTooLong = errors.New("sss256: share line too long")

// ErrParse is returned, after a diagnostic has already been written to the
// parser's log writer, for any other malformed share: a bad hex digit, a
// missing or wrong separator, a bad or missing terminator, a duplicate
// share index, or a zero share index.
var ErrParse = errors.New("sss256: parse error")
