package factor

import (
	"testing"

	"github.com/eulertools/primetab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorize360(t *testing.T) {
	f, err := Factorize(360, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{2, 3}, {3, 2}, {5, 1}}, f)
}

func TestFactorizePrime(t *testing.T) {
	f, err := Factorize(97, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{97, 1}}, f)
}

func TestFactorizeTrivial(t *testing.T) {
	f, err := Factorize(0, Odds(3))
	require.NoError(t, err)
	assert.Empty(t, f)

	f, err = Factorize(1, Odds(3))
	require.NoError(t, err)
	assert.Empty(t, f)

	f, err = Factorize(2, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{2, 1}}, f)
}

func TestFactorizeNegative(t *testing.T) {
	_, err := Factorize(-6, Odds(3))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFactorizeLargePrimeCofactor(t *testing.T) {
	// Trial division stops at the square root; the surviving cofactor is
	// appended as a prime without ever being yielded by the source.
	f, err := Factorize(2*1_000_003, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{2, 1}, {1_000_003, 1}}, f)
}

func TestFactorizePowerOfTwo(t *testing.T) {
	f, err := Factorize(1024, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{2, 10}}, f)
}

func TestFactorizeWithTableSource(t *testing.T) {
	tb := primetab.New()

	f, err := Factorize(360, Primes(tb))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{2, 3}, {3, 2}, {5, 1}}, f)

	f, err = Factorize(7919*7919, Primes(tb))
	require.NoError(t, err)
	assert.Equal(t, Factorization{{7919, 2}}, f)
}

func TestFactorizeReconstructs(t *testing.T) {
	for n := int64(2); n <= 2000; n++ {
		f, err := Factorize(n, Odds(3))
		require.NoError(t, err)
		assert.Equal(t, uint64(n), f.Value(), "n=%d", n)
		for i := 1; i < len(f); i++ {
			assert.Less(t, f[i-1].Prime, f[i].Prime, "n=%d: primes not ascending", n)
		}
		for _, term := range f {
			assert.GreaterOrEqual(t, term.Exp, 1, "n=%d", n)
		}
	}
}

func TestFactorizationString(t *testing.T) {
	f, err := Factorize(360, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, "2^3 * 3^2 * 5", f.String())

	assert.Equal(t, "1", Factorization(nil).String())
}

func TestNumDivisors(t *testing.T) {
	f, err := Factorize(360, Odds(3))
	require.NoError(t, err)
	assert.Equal(t, 24, f.NumDivisors()) // (3+1)*(2+1)*(1+1)

	assert.Equal(t, 1, Factorization(nil).NumDivisors())
}
