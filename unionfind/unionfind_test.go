package unionfind_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepwise/unionfind"
)

func TestUnionFind_Basic(t *testing.T) {
	uf := unionfind.New("A", "B", "C", "D", "A")
	assert.Equal(t, 4, uf.Len())
	assert.Equal(t, 4, uf.Count())

	assert.True(t, uf.Union("A", "B"))
	assert.True(t, uf.Union("C", "D"))
	assert.False(t, uf.Union("B", "A"), "already joined")
	assert.True(t, uf.Connected("A", "B"))
	assert.False(t, uf.Connected("A", "C"))
	assert.Equal(t, 2, uf.Count())

	assert.True(t, uf.Union("B", "C"))
	assert.True(t, uf.Connected("A", "D"))
	assert.Equal(t, 1, uf.Count())
}

func TestUnionFind_LazyAdd(t *testing.T) {
	uf := unionfind.New()
	assert.Equal(t, "X", uf.Find("X"))
	assert.True(t, uf.Union("X", "Y"))
	assert.Equal(t, 2, uf.Len())
	assert.Equal(t, 1, uf.Count())
}

func TestUnionFind_Sets(t *testing.T) {
	uf := unionfind.New("A", "B", "C", "D", "E")
	uf.Union("D", "B")
	uf.Union("E", "A")

	want := [][]string{{"A", "E"}, {"B", "D"}, {"C"}}
	if diff := cmp.Diff(want, uf.Sets()); diff != "" {
		t.Errorf("Sets() mismatch (-want +got):\n%s", diff)
	}
}

// TestUnionFind_LongChain exercises path compression on a degenerate chain.
func TestUnionFind_LongChain(t *testing.T) {
	uf := unionfind.New()
	ids := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		ids = append(ids, string(rune('a'+i%26))+string(rune('0'+i/26%10))+string(rune('A'+i/260)))
	}
	for i := 1; i < len(ids); i++ {
		uf.Union(ids[i-1], ids[i])
	}
	assert.Equal(t, 1, uf.Count())
	assert.True(t, uf.Connected(ids[0], ids[len(ids)-1]))
}
