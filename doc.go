// Package sss256 implements Shamir's Secret Sharing over GF(2^8), the
// finite field the Rijndael cipher uses (x^8 + x^4 + x^3 + x + 1). It
// provides the byte-parallel polynomial evaluation that turns a secret into
// N shares, the strict wire-format parser that reads T of them back with
// column-accurate diagnostics, the Lagrange interpolation that recovers the
// secret from those shares, and a short digest of a coefficient buffer for
// progress reporting.
//
// Argument parsing, help rendering, exit-code mapping, and entropy
// acquisition live in the sss256-split and sss256-combine commands and
// their internal collaborators, not in this package: sss256 reads and
// writes only through the io.Reader and io.Writer values its caller passes
// in.
package sss256
