package randomboard

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildZeroDensityIsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b, err := Build(rng, 5, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestBuildFullDensityFillsEveryCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b, err := Build(rng, 4, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Len())
}

func TestBuildPartialDensityStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	b, err := Build(rng, 6, 6, 0.5)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, b.Len(), 0)
	assert.LessOrEqual(t, b.Len(), 36)
	for _, e := range b.Entries() {
		assert.GreaterOrEqual(t, e.Cell.Row, 0)
		assert.Less(t, e.Cell.Row, 6)
		assert.GreaterOrEqual(t, e.Cell.Col, 0)
		assert.Less(t, e.Cell.Col, 6)
	}
}

func TestBuildRejectsInvalidDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Build(rng, 0, 3, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestBuildRejectsInvalidDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Build(rng, 3, 3, 1.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDensity)
}
