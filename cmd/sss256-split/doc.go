// sss256-split splits a secret read from stdin into Shamir secret shares,
// written to stdout one per line.
//
// Usage:
//
//	sss256-split -t <threshold> -n <shares>
//
// The secret is read from stdin until EOF and must be non-empty. Each of
// the -n generated shares is written to stdout as a line "ii-hh..hh",
// where ii is the share's hexadecimal index and hh..hh is its hexadecimal
// data, matching the length of the secret. A digest of the random
// coefficients used is written to stderr as a progress notice.
//
// Flags:
//
//	-t, --threshold   number of shares required to reconstruct the secret (2-255)
//	-n, --shares      total number of shares to produce (threshold-255)
//
// Example:
//
//	$ printf 'correct horse battery staple' | sss256-split -t 3 -n 5 > shares.txt
package main
