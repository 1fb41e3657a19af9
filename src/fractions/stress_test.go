package fractions

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// stressIterations should give every operation a wide spread of operand
// shapes (signs, shared factors, whole numbers) in a reasonable time.
const stressIterations = 20000

// randFraction draws a fraction with a nonzero denominator so the
// big.Rat oracle can represent it.
func randFraction(rng *rand.Rand) Fraction[int64] {
	n := rng.Int63n(2001) - 1000
	d := rng.Int63n(2000) - 1000
	if d >= 0 {
		d++
	}
	return New(n, d)
}

func toRat(f Fraction[int64]) *big.Rat {
	return big.NewRat(f.Numer(), f.Denom())
}

// requireMatchesRat relies on big.Rat keeping the same canonical form
// as Fraction: positive denominator, coprime terms.
func requireMatchesRat(t *testing.T, want *big.Rat, got Fraction[int64]) {
	t.Helper()
	require.Equal(t, want.Num().Int64(), got.Numer())
	require.Equal(t, want.Denom().Int64(), got.Denom())
}

func TestStressAgainstBigRat(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	for i := 0; i < stressIterations; i++ {
		a := randFraction(rng)
		b := randFraction(rng)
		ra := toRat(a)
		rb := toRat(b)

		requireMatchesRat(t, new(big.Rat).Add(ra, rb), a.Add(b))
		requireMatchesRat(t, new(big.Rat).Sub(ra, rb), a.Sub(b))
		requireMatchesRat(t, new(big.Rat).Mul(ra, rb), a.Mul(b))
		requireMatchesRat(t, new(big.Rat).Neg(ra), a.Neg())

		if b.Numer() != 0 {
			requireMatchesRat(t, new(big.Rat).Quo(ra, rb), a.Div(b))
		}

		cmp := ra.Cmp(rb)
		require.Equal(t, cmp < 0, a.LessThan(b), "%s < %s", a, b)
		require.Equal(t, cmp == 0, a.Equal(b), "%s == %s", a, b)
		require.Equal(t, cmp > 0, a.GreaterThan(b), "%s > %s", a, b)
	}
}

func TestStressScalarAgainstBigRat(t *testing.T) {
	rng := rand.New(rand.NewSource(0xca11))
	for i := 0; i < stressIterations; i++ {
		a := randFraction(rng)
		s := rng.Int63n(201) - 100
		ra := toRat(a)
		rs := new(big.Rat).SetInt64(s)

		requireMatchesRat(t, new(big.Rat).Add(ra, rs), a.AddScalar(s))
		requireMatchesRat(t, new(big.Rat).Sub(ra, rs), a.SubScalar(s))
		requireMatchesRat(t, new(big.Rat).Sub(rs, ra), ScalarSub(s, a))
		requireMatchesRat(t, new(big.Rat).Mul(ra, rs), a.MulScalar(s))
		if s != 0 {
			requireMatchesRat(t, new(big.Rat).Quo(ra, rs), a.DivScalar(s))
		}
		if a.Numer() != 0 {
			requireMatchesRat(t, new(big.Rat).Quo(rs, ra), ScalarDiv(s, a))
		}

		cmp := ra.Cmp(rs)
		require.Equal(t, cmp < 0, a.LessThanScalar(s), "%s < %d", a, s)
		require.Equal(t, cmp == 0, a.EqualScalar(s), "%s == %d", a, s)
		require.Equal(t, cmp > 0, a.GreaterThanScalar(s), "%s > %d", a, s)
	}
}

func TestStressInPlaceAgainstValueOps(t *testing.T) {
	rng := rand.New(rand.NewSource(0xdeed))
	for i := 0; i < stressIterations; i++ {
		a := randFraction(rng)
		b := randFraction(rng)

		f := a
		f.AddAssign(b)
		require.Equal(t, a.Add(b), f, "%s += %s", a, b)

		f = a
		f.SubAssign(b)
		require.Equal(t, a.Sub(b), f, "%s -= %s", a, b)

		f = a
		f.MulAssign(b)
		require.Equal(t, a.Mul(b), f, "%s *= %s", a, b)

		f = a
		f.DivAssign(b)
		require.Equal(t, a.Div(b), f, "%s /= %s", a, b)
	}
}

func TestStressNormalizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(0xf00d))
	for i := 0; i < stressIterations; i++ {
		f := randFraction(rng).Add(randFraction(rng))
		require.GreaterOrEqual(t, f.Denom(), int64(0), "%s", f)
		g := GCD(f.Numer(), f.Denom())
		require.True(t, g == 0 || g == 1, "%s has gcd %d", f, g)
	}
}
