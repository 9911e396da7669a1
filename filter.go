// Package exposure works out shutter times behind stacked neutral density
// filters, and printing them as a reference table.
package exposure

import (
	"fmt"
	"strings"
)

// Filter is a neutral density filter, or a stack of them, described by
// how many stops of light it removes.
type Filter struct {
	Stops int    `json:"stops"`
	Label string `json:"label"`
}

// Combine stacks b behind a. Stops add up and labels are joined left to
// right with a single space, so Combine(a, b) and Combine(b, a) differ
// only in their label.
func Combine(a, b Filter) Filter {
	return Filter{
		Stops: a.Stops + b.Stops,
		Label: a.Label + " " + b.Label,
	}
}

// Stack combines filters left to right.
func Stack(filters ...Filter) Filter {
	if len(filters) == 0 {
		return Filter{}
	}
	f := filters[0]
	for _, next := range filters[1:] {
		f = Combine(f, next)
	}
	return f
}

// Less orders filters by stops only.
func (f Filter) Less(other Filter) bool {
	return f.Stops < other.Stops
}

func (f Filter) String() string {
	return padLeft(f.Label)
}

type FilterList []Filter

type ByStops FilterList

func (a ByStops) Len() int           { return len(a) }
func (a ByStops) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByStops) Less(i, j int) bool { return a[i].Less(a[j]) }

func (l FilterList) Labels() []string {
	labels := make([]string, 0, len(l))
	for _, f := range l {
		labels = append(labels, f.Label)
	}
	return labels
}

func (l FilterList) String() string {
	parts := make([]string, 0, len(l))
	for _, f := range l {
		parts = append(parts, fmt.Sprintf("%s(%d)", f.Label, f.Stops))
	}
	return strings.Join(parts, ", ")
}
