// Package gf256 implements arithmetic over GF(2^8), the finite field with
// 256 elements defined by the Rijndael reducing polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b). A field element is just a byte; addition
// is XOR and multiplication is carried out through a precomputed log/exp
// table keyed on the generator {03}.
package gf256

// logExpLen is the length of the combined log/exp table: 256 entries for
// the discrete log of every nonzero byte (entry 0 is an unused sentinel),
// followed by 509 entries giving exp(e) for e in [0,508]. The duplicated
// upper half of the exponent cycle means mul never has to reduce the sum
// of two logarithms modulo 255 — log(x)+log(y) is at most 254+254=508,
// which always lands inside the table.
const logExpLen = 256 + 509

// table is addressed two ways: table[x] for x in [1,255] is log_03(x);
// table[256+e] for e in [0,508] is exp_03(e). table[0] is a sentinel and
// must never be read — doing so is a programming error (logging a zero
// byte makes no sense in a field where 0 has no multiplicative inverse).
var table [logExpLen]byte

func init() {
	var a byte = 1
	for e := 0; e < 255; e++ {
		table[a] = byte(e)
		table[256+e] = a
		if e < 254 {
			table[256+e+255] = a
		}

		hi := a&0x80 != 0
		a = a ^ (a << 1)
		if hi {
			a ^= 0x1b
		}
	}
	if a != 1 {
		panic("gf256: generator {03} did not cycle back to 1 after 255 steps")
	}
}

// Add returns x+y in GF(2^8), which is bitwise XOR.
func Add(x, y byte) byte {
	return x ^ y
}

// Mul returns x*y in GF(2^8) using the log/exp table. Mul(x, 0) and
// Mul(0, y) are both 0, matching the field's zero-divisor behavior.
func Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return table[256+int(table[x])+int(table[y])]
}

// Inv returns the multiplicative inverse of x. Calling Inv(0) is a contract
// violation — zero has no inverse in any field — and panics rather than
// returning a nonsense value.
func Inv(x byte) byte {
	if x == 0 {
		panic("gf256: Inv(0) is undefined")
	}
	return table[256+255-int(table[x])]
}

// Log returns log_03(x). Calling Log(0) is a contract violation and panics.
func Log(x byte) byte {
	if x == 0 {
		panic("gf256: Log(0) is undefined")
	}
	return table[x]
}

// Exp returns exp_03(e) for e in [0,508].
func Exp(e int) byte {
	return table[256+e]
}
