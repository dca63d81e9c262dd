package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/core"
)

// edgePairs lists edges as "From-To" in insertion order.
func edgePairs(g *core.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.From+"-"+e.To)
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantPairs []string
	}{
		{"Cycle(4)", builder.Cycle(4), 4, 4, []string{"0-1", "1-2", "2-3", "3-0"}},
		{"Path(4)", builder.Path(4), 4, 3, []string{"0-1", "1-2", "2-3"}},
		{"Complete(3)", builder.Complete(3), 3, 3, []string{"0-1", "0-2", "1-2"}},
		{"Complete(1)", builder.Complete(1), 1, 0, []string{}},
		{"RandomSparse(4,1)", builder.RandomSparse(4, 1), 4, 6, nil},
		{"RandomSparse(4,0)", builder.RandomSparse(4, 0), 4, 0, []string{}},
		{"Connected(5,0)", builder.Connected(5, 0), 5, 4, []string{"0-1", "1-2", "2-3", "3-4"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.wantPairs != nil {
				assert.Equal(t, tc.wantPairs, edgePairs(g))
			}
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"Connected(no rng)", builder.Connected(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestBuilders_Compose checks that a second constructor over the same IDs
// surfaces the core multi-edge error instead of silently merging.
func TestBuilders_Compose(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestConnected_IsConnected(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 9)},
			builder.Connected(12, 0.15),
		)
		require.NoError(t, err)

		// Flood from the first vertex; every vertex must be reached.
		seen := map[string]bool{"0": true}
		stack := []string{"0"}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbs, err := g.NeighborIDs(id)
			require.NoError(t, err)
			for _, nb := range nbs {
				if !seen[nb] {
					seen[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		assert.Len(t, seen, 12, "seed %d", seed)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(1))
			assert.LessOrEqual(t, e.Weight, int64(9))
		}
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithLetterIDs(), builder.WithWeightRange(1, 20)},
			builder.RandomSparse(10, 0.4),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, "A", a.Vertices()[0])
	assert.Equal(t, "J", a.Vertices()[9])
}

func TestRandomArray(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomArray(builder.DefaultArraySize, builder.DefaultArrayMax, 7)
	require.NoError(t, err)
	assert.Len(t, a, builder.DefaultArraySize)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, int64(1))
		assert.LessOrEqual(t, v, builder.DefaultArrayMax)
	}

	b, err := builder.RandomArray(builder.DefaultArraySize, builder.DefaultArrayMax, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	empty, err := builder.RandomArray(0, 10, 1)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = builder.RandomArray(-1, 10, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomArray(3, 0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}
