package fractions

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of base types a Fraction can be instantiated over.
// Unsigned integers are excluded: the sign of a fraction lives in its
// numerator, so the base type must be able to carry one.
type Number interface {
	constraints.Signed | constraints.Float
}

// Abs returns v if v >= 0 and -v otherwise.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the non-negative greatest common divisor of m and n using
// Euclid's algorithm. GCD(0, n) == Abs(n), GCD(m, 0) == Abs(m), and
// GCD(0, 0) == 0.
func GCD[T Number](m, n T) T {
	if m == 0 {
		return Abs(n)
	}
	return gcdRecur(m, n)
}

func gcdRecur[T Number](m, n T) T {
	if n == 0 {
		return Abs(m)
	}
	return gcdRecur(n, mod(m, n))
}

// LCM returns the non-negative least common multiple of m and n. By
// definition LCM is 0 when either operand is 0; the algebraic formula
// would divide by zero there.
func LCM[T Number](m, n T) T {
	if m == 0 || n == 0 {
		return 0
	}
	return (Abs(m) / GCD(m, n)) * Abs(n)
}

// mod is the truncated-division remainder. Go's % operator is not
// defined on float types, so the remainder is recovered from the
// truncated quotient instead. For integer T the division already
// truncates and the int64 round trip is exact; for float T the
// quotient must fit in an int64.
func mod[T Number](m, n T) T {
	return m - n*T(int64(m/n))
}
