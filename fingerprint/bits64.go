package fingerprint

import "math/bits"

// mul64 returns the 128-bit product hi:lo of a*b.
func mul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// div128by64 divides the 128-bit dividend hi:lo by mod, returning the
// quotient and remainder. mod must exceed hi (true here since every
// modulus used in this package is a 61-bit prime and hi never reaches
// even 2^58 for our bounded operands), which is bits.Div64's precondition
// against quotient overflow.
func div128by64(hi, lo, mod uint64) (quo, rem uint64) {
	return bits.Div64(hi, lo, mod)
}
