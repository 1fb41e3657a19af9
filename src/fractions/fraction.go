package fractions

import (
	"fmt"
	"math"
)

// Fraction is the ratio numer/denom over a numeric base type T. The
// zero value is the indeterminate form (0, 0); use FromScalar(0) for a
// rational zero. Copies are independent values.
type Fraction[T Number] struct {
	numer T
	denom T
}

// New constructs the fraction numer/denom in normalized form. A zero
// denominator is permitted: New(n, 0) yields a signed infinity for
// nonzero n and the indeterminate (0, 0) otherwise.
func New[T Number](numer, denom T) Fraction[T] {
	f := Fraction[T]{numer: numer, denom: denom}
	f.Normalize()
	return f
}

// FromScalar constructs the fraction numer/1. The result is already
// canonical, so no normalization pass runs.
func FromScalar[T Number](numer T) Fraction[T] {
	return Fraction[T]{numer: numer, denom: 1}
}

// Numer returns the numerator.
func (f Fraction[T]) Numer() T { return f.numer }

// Denom returns the denominator.
func (f Fraction[T]) Denom() T { return f.denom }

// Normalize restores the canonical form: non-negative denominator, with
// numerator and denominator coprime whenever their gcd is nonzero. It
// returns the gcd of the previous numerator and denominator so callers
// can reuse it. The indeterminate (0, 0) is left untouched.
func (f *Fraction[T]) Normalize() T {
	f.keepDenomPositive()
	return f.reduce()
}

func (f *Fraction[T]) keepDenomPositive() {
	if f.denom < 0 {
		f.numer = -f.numer
		f.denom = -f.denom
	}
}

// reduce divides out the gcd of numerator and denominator. The gcd == 0
// guard keeps (0, 0) intact.
func (f *Fraction[T]) reduce() T {
	common := GCD(f.numer, f.denom)
	if common != 1 && common != 0 {
		f.numer /= common
		f.denom /= common
	}
	return common
}

// Cross returns the cross product f.numer*other.denom - f.denom*other.numer,
// the determinant of the 2x2 matrix formed by the two fractions. It has
// no normalization side effect.
func (f Fraction[T]) Cross(other Fraction[T]) T {
	return f.numer*other.denom - f.denom*other.numer
}

// Reciprocal swaps numerator and denominator in place. The two were
// already coprime, so only the denominator sign needs re-establishing.
func (f *Fraction[T]) Reciprocal() {
	f.numer, f.denom = f.denom, f.numer
	f.keepDenomPositive()
}

// Inc adds one denominator unit to the fraction in place.
func (f *Fraction[T]) Inc() { f.numer += f.denom }

// Dec subtracts one denominator unit from the fraction in place.
func (f *Fraction[T]) Dec() { f.numer -= f.denom }

// IsNaN reports whether f is the indeterminate form (0, 0).
func (f Fraction[T]) IsNaN() bool {
	return f.denom == 0 && f.numer == 0
}

// IsInf reports whether f is a signed infinity, a zero denominator with
// a nonzero numerator.
func (f Fraction[T]) IsInf() bool {
	return f.denom == 0 && f.numer != 0
}

// Sign returns -1, 0, or 1 according to the sign of the numerator,
// which is the sign of the fraction in normalized form.
func (f Fraction[T]) Sign() int {
	switch {
	case f.numer > 0:
		return 1
	case f.numer < 0:
		return -1
	}
	return 0
}

// Float64 converts f to a float64. Infinities map to ±Inf and the
// indeterminate form maps to NaN.
func (f Fraction[T]) Float64() float64 {
	if f.denom == 0 {
		if f.numer == 0 {
			return math.NaN()
		}
		return math.Inf(f.Sign())
	}
	return float64(f.numer) / float64(f.denom)
}

// String renders f as "(numer/denom)".
func (f Fraction[T]) String() string {
	return fmt.Sprintf("(%v/%v)", f.numer, f.denom)
}

// GoString renders f in a diagnostic form that names the base type.
func (f Fraction[T]) GoString() string {
	return fmt.Sprintf("Fraction[%T](%v, %v)", f.numer, f.numer, f.denom)
}
