package exposure

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Pick is a hand chosen stack of base filters. Index lists positions in
// the base list, combined left to right. Labels, when set, are the labels
// expected at those positions; a mismatch means the base list was
// reordered and the pick no longer describes the stack it was written
// for.
type Pick struct {
	Index  []int
	Labels []string
}

// Policy decides which filter stacks end up as table columns.
type Policy struct {
	// StackSizes lists the stack sizes to enumerate exhaustively over the
	// base list, in order. 1 yields the single filters, 2 every pair.
	StackSizes []int
	// HandPicked stacks are appended after the enumerated ones.
	HandPicked []Pick
}

// DefaultPolicy is every single filter, every pair, and the two triples
// that are actually carried in the bag: 1k+64+4 and 1k+8+4.
var DefaultPolicy = Policy{
	StackSizes: []int{1, 2},
	HandPicked: []Pick{
		{Index: []int{0, 1, 3}, Labels: []string{"1k", "64", "4"}},
		{Index: []int{0, 2, 3}, Labels: []string{"1k", "8", "4"}},
	},
}

// Choose returns every k-element subset of the indices 0..n-1 in
// lexicographic order. Each subset is ascending, so the lower base index
// is always combined first.
func Choose(n, k int) [][]int {
	if k < 1 || k > n {
		return nil
	}

	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make([]int, k)
		copy(subset, idx)
		out = append(out, subset)

		// Find the rightmost position that can still move forward
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Validate checks that base satisfies every hand picked stack in the
// policy.
func (p Policy) Validate(base FilterList) error {
	for _, size := range p.StackSizes {
		if size < 1 {
			return fmt.Errorf("invalid stack size %d", size)
		}
	}
	for _, pick := range p.HandPicked {
		if len(pick.Labels) != 0 && len(pick.Labels) != len(pick.Index) {
			return fmt.Errorf("hand picked stack %v has %d labels",
				pick.Index, len(pick.Labels))
		}
		for i, idx := range pick.Index {
			if idx < 0 || idx >= len(base) {
				return fmt.Errorf("hand picked stack %v needs at least %d base filters, have %d",
					pick.Index, idx+1, len(base))
			}
			if len(pick.Labels) != 0 && base[idx].Label != pick.Labels[i] {
				return fmt.Errorf("hand picked stack %v expects %q at position %d, found %q",
					pick.Index, pick.Labels[i], idx, base[idx].Label)
			}
		}
	}
	return nil
}

// Generate builds the stacks described by the policy and sorts them by
// stops. The sort is stable: stacks with equal stops keep their
// generation order.
func (p Policy) Generate(base FilterList) (FilterList, error) {
	if err := p.Validate(base); err != nil {
		return nil, err
	}

	var combined FilterList
	for _, size := range p.StackSizes {
		for _, subset := range Choose(len(base), size) {
			combined = append(combined, stackOf(base, subset))
		}
	}
	for _, pick := range p.HandPicked {
		combined = append(combined, stackOf(base, pick.Index))
	}

	sort.Stable(ByStops(combined))

	log.WithFields(log.Fields{
		"action":  "generate_combinations",
		"base":    len(base),
		"count":   len(combined),
		"filters": combined.String(),
	}).Debug("Generated filter combinations")

	return combined, nil
}

// MustGenerate is like Generate but panics if base does not satisfy the
// policy. It is meant for fixed, definition time filter lists.
func (p Policy) MustGenerate(base FilterList) FilterList {
	combined, err := p.Generate(base)
	if err != nil {
		panic("exposure: " + err.Error())
	}
	return combined
}

// GenerateCombinations applies DefaultPolicy to base.
func GenerateCombinations(base FilterList) (FilterList, error) {
	return DefaultPolicy.Generate(base)
}

func stackOf(base FilterList, indices []int) Filter {
	filters := make([]Filter, 0, len(indices))
	for _, i := range indices {
		filters = append(filters, base[i])
	}
	return Stack(filters...)
}
