package exposure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	a := Filter{Stops: 10, Label: "1k"}
	b := Filter{Stops: 2, Label: "4"}

	ab := Combine(a, b)
	assert.Equal(t, 12, ab.Stops)
	assert.Equal(t, "1k 4", ab.Label)

	ba := Combine(b, a)
	assert.Equal(t, ab.Stops, ba.Stops)
	assert.Equal(t, "4 1k", ba.Label)

	// operands are untouched
	assert.Equal(t, Filter{Stops: 10, Label: "1k"}, a)
}

func TestCombineSumsStops(t *testing.T) {
	for _, a := range BaseFilters {
		for _, b := range BaseFilters {
			assert.Equal(t, a.Stops+b.Stops, Combine(a, b).Stops)
		}
	}
}

func TestStack(t *testing.T) {
	assert.Equal(t, Filter{}, Stack())
	assert.Equal(t, BaseFilters[2], Stack(BaseFilters[2]))
	assert.Equal(t, Filter{Stops: 18, Label: "1k 64 4"},
		Stack(BaseFilters[0], BaseFilters[1], BaseFilters[3]))
}

func TestByStops(t *testing.T) {
	l := FilterList{
		{Stops: 6, Label: "64"},
		{Stops: 2, Label: "4"},
		{Stops: 6, Label: "8 8"},
		{Stops: 3, Label: "8"},
	}
	sort.Stable(ByStops(l))
	assert.Equal(t, []string{"4", "8", "64", "8 8"}, l.Labels())
	assert.False(t, l[2].Less(l[3]))
	assert.False(t, l[3].Less(l[2]))
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, "     1k", Filter{Stops: 10, Label: "1k"}.String())
	assert.Equal(t, "1k 64 4", Filter{Stops: 18, Label: "1k 64 4"}.String())
	assert.Equal(t, "1k(10), 4(2)", FilterList{BaseFilters[0], BaseFilters[3]}.String())
}
