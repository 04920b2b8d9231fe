package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmst/matrix"
)

// wrapped hides the *Dense concrete type so FloydWarshall takes the interface fallback.
type wrapped struct{ matrix.Matrix }

// undirected sets a symmetric pair (i,j) and (j,i) to w.
func undirected(t *testing.T, d *matrix.Dense, i, j int, w float64) {
	t.Helper()
	require.NoError(t, d.Set(i, j, w))
	require.NoError(t, d.Set(j, i, w))
}

// sixNodeFixture is the A..F graph used across the module:
// A-B=3, A-C=5, A-D=1, B-E=9, C-D=7, C-E=7, C-F=1, D-F=4.
func sixNodeFixture(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDistanceDense(6)
	require.NoError(t, err)
	const a, b, c, dd, e, f = 0, 1, 2, 3, 4, 5
	undirected(t, d, a, b, 3)
	undirected(t, d, a, c, 5)
	undirected(t, d, a, dd, 1)
	undirected(t, d, b, e, 9)
	undirected(t, d, c, dd, 7)
	undirected(t, d, c, e, 7)
	undirected(t, d, c, f, 1)
	undirected(t, d, dd, f, 4)

	return d
}

func TestFloydWarshall_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.FloydWarshall(typedNil), matrix.ErrNilMatrix)

	ns, _ := matrix.NewDense(3, 4)
	assert.ErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrNonSquare)
}

func TestFloydWarshall_SixNodes(t *testing.T) {
	t.Parallel()

	d := sixNodeFixture(t)
	require.NoError(t, matrix.FloydWarshall(d))

	cases := []struct {
		i, j int
		want float64
	}{
		{0, 3, 1},  // A-D direct
		{2, 3, 5},  // C-D via F is shorter than the direct 7
		{0, 4, 12}, // A-E
		{3, 4, 12}, // D-E via F,C
		{4, 5, 8},  // E-F via C
		{1, 5, 8},  // B-F via A,D
	}
	for _, tc := range cases {
		got, err := d.At(tc.i, tc.j)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "dist[%d,%d]", tc.i, tc.j)
		sym, _ := d.At(tc.j, tc.i)
		assert.Equal(t, got, sym, "dist must stay symmetric")
	}

	diameter, err := matrix.Diameter(d)
	require.NoError(t, err)
	assert.Equal(t, 12.0, diameter)
}

func TestFloydWarshall_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	fast := sixNodeFixture(t)
	slow := sixNodeFixture(t)
	require.NoError(t, matrix.FloydWarshall(fast))
	require.NoError(t, matrix.FloydWarshall(wrapped{slow}))

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			a, _ := fast.At(i, j)
			b, _ := slow.At(i, j)
			assert.Equal(t, a, b, "cell (%d,%d)", i, j)
		}
	}

	df, _ := matrix.Diameter(fast)
	ds, _ := matrix.Diameter(wrapped{slow})
	assert.Equal(t, df, ds)
}

func TestFloydWarshall_Disconnected(t *testing.T) {
	t.Parallel()

	d, _ := matrix.NewDistanceDense(4)
	undirected(t, d, 0, 1, 2)
	undirected(t, d, 2, 3, 5)
	require.NoError(t, matrix.FloydWarshall(d))

	v, _ := d.At(0, 3)
	assert.True(t, math.IsInf(v, 1), "components stay unreachable")

	diameter, err := matrix.Diameter(d)
	require.NoError(t, err)
	assert.Equal(t, 5.0, diameter, "diameter ignores +Inf entries")
}
