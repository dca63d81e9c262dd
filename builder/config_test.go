package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithLetterIDs(), WithDefaultIDs())
	assert.Equal(t, "3", cfg.idFn(3))

	cfg = newBuilderConfig(WithDefaultIDs(), WithLetterIDs())
	assert.Equal(t, "D", cfg.idFn(3))
}

func TestNewBuilderConfig_Seed(t *testing.T) {
	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(99))))
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
}

// TestWeight_ClampsNonPositive keeps custom generators inside core's domain.
func TestWeight_ClampsNonPositive(t *testing.T) {
	cfg := newBuilderConfig(WithWeightFn(func(*rand.Rand) int64 { return -3 }))
	assert.Equal(t, DefaultEdgeWeight, cfg.weight())
}
