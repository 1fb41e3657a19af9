// Package fractions implements exact rational arithmetic over a generic
// numeric base type.
//
// Unlike most rational types, a Fraction never rejects a zero
// denominator: (n, 0) with n != 0 is a signed infinity and (0, 0) is an
// indeterminate value. Both are ordinary data and flow through the
// arithmetic operators without panicking.
//
// Every fraction is kept in a normalized form where the denominator is
// non-negative and coprime with the numerator whenever their gcd is
// nonzero. The sign of a fraction is carried entirely by the numerator.
//
// Arithmetic on a fixed-width base type inherits that type's overflow
// behavior unmodified. Cross-multiplication during comparison and the
// scaled numerators built by addition can exceed the base type's range
// even when operands and result are individually representable; callers
// that need headroom should instantiate Fraction over a wider type.
package fractions
