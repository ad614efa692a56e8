package factor

import (
	"testing"

	"github.com/eulertools/primetab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(src DivisorSource, n int) []uint64 {
	out := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestOdds(t *testing.T) {
	assert.Equal(t, []uint64{3, 5, 7, 9, 11}, drain(Odds(0), 5))
	assert.Equal(t, []uint64{3, 5, 7}, drain(Odds(3), 3))
	assert.Equal(t, []uint64{9, 11, 13}, drain(Odds(9), 3))

	// Even starting points round up to the next odd.
	assert.Equal(t, []uint64{11, 13}, drain(Odds(10), 2))
}

func TestPrimesSource(t *testing.T) {
	tb := primetab.New()
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17}, drain(Primes(tb), 7))
}

func TestPrimesSourceFallsBackToOdds(t *testing.T) {
	// A capacity-bounded table exhausts after five primes; the source
	// continues with odd numbers past the last prime.
	tb := primetab.New(primetab.WithCapacity(5))
	src := Primes(tb)

	got := drain(src, 9)
	require.Len(t, got, 9)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 15, 17, 19}, got)
}

func TestEngine(t *testing.T) {
	e := NewEngine(primetab.New())

	f, err := e.Factorize(360)
	require.NoError(t, err)
	assert.Equal(t, Factorization{{2, 3}, {3, 2}, {5, 1}}, f)

	divs, err := e.Divisors(28)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 4, 7, 14, 28}, divs)

	it, err := e.Pairs(12, false)
	require.NoError(t, err)
	count := 0
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		assert.Equal(t, uint64(12), p.A*p.B)
		count++
	}
	assert.Equal(t, 3, count)

	_, err = e.Factorize(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
