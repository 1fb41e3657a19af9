package fractions

// Equal reports whether f and other are structurally identical. For
// normalized fractions this coincides with value equality; the special
// forms (infinities, the indeterminate (0, 0)) compare equal only to
// themselves.
func (f Fraction[T]) Equal(other Fraction[T]) bool {
	return f.numer == other.numer && f.denom == other.denom
}

// NotEqual is the negation of Equal.
func (f Fraction[T]) NotEqual(other Fraction[T]) bool {
	return !f.Equal(other)
}

// LessThan reports whether f < other. With equal denominators the
// numerators compare directly. Otherwise both sides are put over a
// common representation by swapping f's denominator with other's
// numerator, reducing each pair, and swapping back; the final
// cross-multiplication then runs on the reduced terms, which bounds the
// intermediate magnitudes.
func (f Fraction[T]) LessThan(other Fraction[T]) bool {
	if f.denom == other.denom {
		return f.numer < other.numer
	}
	lhs, rhs := f, other
	lhs.denom, rhs.numer = rhs.numer, lhs.denom
	lhs.reduce()
	rhs.reduce()
	lhs.denom, rhs.numer = rhs.numer, lhs.denom
	return lhs.numer*rhs.denom < lhs.denom*rhs.numer
}

// GreaterThan reports whether f > other.
func (f Fraction[T]) GreaterThan(other Fraction[T]) bool {
	return other.LessThan(f)
}

// LessOrEqualTo reports whether f <= other.
func (f Fraction[T]) LessOrEqualTo(other Fraction[T]) bool {
	return f.Equal(other) || f.LessThan(other)
}

// GreaterOrEqualTo reports whether f >= other.
func (f Fraction[T]) GreaterOrEqualTo(other Fraction[T]) bool {
	return f.Equal(other) || f.GreaterThan(other)
}

// EqualScalar reports whether f equals the whole number s, which holds
// only when the denominator is 1.
func (f Fraction[T]) EqualScalar(s T) bool {
	return f.denom == 1 && f.numer == s
}

// NotEqualScalar is the negation of EqualScalar.
func (f Fraction[T]) NotEqualScalar(s T) bool {
	return !f.EqualScalar(s)
}

// LessThanScalar reports whether f < s. The scalar is treated as a
// denominator-1 fraction, short-circuited when f's denominator is 1 or
// s is 0.
func (f Fraction[T]) LessThanScalar(s T) bool {
	if f.denom == 1 || s == 0 {
		return f.numer < s
	}
	lhs := f
	lhs.denom, s = s, lhs.denom
	lhs.reduce()
	return lhs.numer < lhs.denom*s
}

// GreaterThanScalar reports whether f > s, i.e. s < f.
func (f Fraction[T]) GreaterThanScalar(s T) bool {
	if f.denom == 1 || s == 0 {
		return s < f.numer
	}
	rhs := f
	rhs.denom, s = s, rhs.denom
	rhs.reduce()
	return rhs.denom*s < rhs.numer
}

// LessOrEqualToScalar reports whether f <= s.
func (f Fraction[T]) LessOrEqualToScalar(s T) bool {
	return f.EqualScalar(s) || f.LessThanScalar(s)
}

// GreaterOrEqualToScalar reports whether f >= s.
func (f Fraction[T]) GreaterOrEqualToScalar(s T) bool {
	return f.EqualScalar(s) || f.GreaterThanScalar(s)
}
