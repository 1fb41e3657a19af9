package fractions

// Neg returns -f. Only the numerator flips; the denominator never
// carries sign.
func (f Fraction[T]) Neg() Fraction[T] {
	f.numer = -f.numer
	return f
}

// Add returns f + other. Equal denominators add numerators directly.
// Otherwise the sum is built over the least common denominator
// b*(d/gcd(b,d)) rather than the full product b*d. When both
// denominators are zero the gcd is zero and the combination rule
// New(d*a + b*c, 0) applies, which never divides by zero.
func (f Fraction[T]) Add(other Fraction[T]) Fraction[T] {
	if f.denom == other.denom {
		return New(f.numer+other.numer, f.denom)
	}
	common := GCD(f.denom, other.denom)
	if common == 0 {
		return New(other.denom*f.numer+f.denom*other.numer, 0)
	}
	left := f.denom / common
	right := other.denom / common
	denom := f.denom * right
	numer := right*f.numer + left*other.numer
	return New(numer, denom)
}

// AddScalar returns f + s.
func (f Fraction[T]) AddScalar(s T) Fraction[T] {
	if f.denom == 1 {
		return FromScalar(f.numer + s)
	}
	return New(f.numer+s*f.denom, f.denom)
}

// Sub returns f - other.
func (f Fraction[T]) Sub(other Fraction[T]) Fraction[T] {
	return f.Add(other.Neg())
}

// SubScalar returns f - s.
func (f Fraction[T]) SubScalar(s T) Fraction[T] {
	return f.AddScalar(-s)
}

// ScalarSub returns s - f.
func ScalarSub[T Number](s T, f Fraction[T]) Fraction[T] {
	return f.Neg().AddScalar(s)
}

// Mul returns f * other. Each numerator is cancelled against the other
// operand's denominator before multiplying, keeping the intermediate
// products small.
func (f Fraction[T]) Mul(other Fraction[T]) Fraction[T] {
	lhs, rhs := f, other
	lhs.numer, rhs.numer = rhs.numer, lhs.numer
	lhs.reduce()
	rhs.reduce()
	return New(lhs.numer*rhs.numer, lhs.denom*rhs.denom)
}

// MulScalar returns f * s, cancelling s against f's denominator first.
func (f Fraction[T]) MulScalar(s T) Fraction[T] {
	lhs := f
	lhs.numer, s = s, lhs.numer
	lhs.reduce()
	return New(lhs.numer*s, lhs.denom)
}

// Div returns f / other. Zero divided by zero is zero: when both
// numerators are zero the result is 0/1, overriding the reciprocal
// formula that would produce (0, 0) again. Otherwise division is
// multiplication by the reciprocal with the same cross-cancellation as
// Mul.
func (f Fraction[T]) Div(other Fraction[T]) Fraction[T] {
	if f.numer == 0 && other.numer == 0 {
		return FromScalar[T](0)
	}
	lhs, rhs := f, other
	lhs.denom, rhs.numer = rhs.numer, lhs.denom
	lhs.Normalize()
	rhs.reduce()
	return New(lhs.numer*rhs.denom, lhs.denom*rhs.numer)
}

// DivScalar returns f / s.
func (f Fraction[T]) DivScalar(s T) Fraction[T] {
	lhs := f
	lhs.denom, s = s, lhs.denom
	lhs.Normalize()
	return New(lhs.numer, lhs.denom*s)
}

// ScalarDiv returns s / f.
func ScalarDiv[T Number](s T, f Fraction[T]) Fraction[T] {
	rhs := f
	rhs.Reciprocal()
	return rhs.MulScalar(s)
}

// AddAssign sets f to f + other.
func (f *Fraction[T]) AddAssign(other Fraction[T]) {
	if f.denom == other.denom {
		f.numer += other.numer
		f.reduce()
		return
	}
	*f = f.Add(other)
}

// AddAssignScalar sets f to f + s.
func (f *Fraction[T]) AddAssignScalar(s T) {
	if f.denom == 1 {
		f.numer += s
		return
	}
	*f = f.AddScalar(s)
}

// SubAssign sets f to f - other.
func (f *Fraction[T]) SubAssign(other Fraction[T]) {
	f.AddAssign(other.Neg())
}

// SubAssignScalar sets f to f - s.
func (f *Fraction[T]) SubAssignScalar(s T) {
	f.AddAssignScalar(-s)
}

// MulAssign sets f to f * other.
func (f *Fraction[T]) MulAssign(other Fraction[T]) {
	*f = f.Mul(other)
}

// MulAssignScalar sets f to f * s.
func (f *Fraction[T]) MulAssignScalar(s T) {
	*f = f.MulScalar(s)
}

// DivAssign sets f to f / other.
func (f *Fraction[T]) DivAssign(other Fraction[T]) {
	*f = f.Div(other)
}

// DivAssignScalar sets f to f / s.
func (f *Fraction[T]) DivAssignScalar(s T) {
	*f = f.DivScalar(s)
}
