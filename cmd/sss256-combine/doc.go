// sss256-combine reconstructs a secret from Shamir secret shares read from
// stdin.
//
// Usage:
//
//	sss256-combine -t <threshold>
//
// Exactly <threshold> lines are read from stdin, each matching the
// "ii-hh..hh" format produced by sss256-split; any further input is
// ignored. The reconstructed secret's raw bytes are written to stdout.
//
// Flags:
//
//	-t, --threshold   number of shares to read and combine (2-255)
//
// Example:
//
//	$ sss256-combine -t 3 < shares.txt
package main
