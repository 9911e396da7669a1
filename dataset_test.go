package exposure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuttersAreOrdered(t *testing.T) {
	require.Len(t, Shutters, 52)
	assert.Equal(t, "   4000", Shutters[0].String())
	assert.Equal(t, "   30\"0", Shutters[len(Shutters)-1].String())
	for i := 1; i < len(Shutters); i++ {
		assert.Greater(t, Shutters[i].Time, Shutters[i-1].Time, "shutter %d", i)
	}
}

func TestCombinations(t *testing.T) {
	require.Len(t, Combinations, 12)
	assert.Equal(t, "4", Combinations[0].Label)
	assert.Equal(t, 18, Combinations[len(Combinations)-1].Stops)
}
