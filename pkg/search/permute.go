package search

import (
	"slices"
	"strings"
)

// nextPermutation rearranges p into the next ordering in lexicographic order.
// At the last ordering it wraps p back to ascending order and returns false.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		slices.Reverse(p)
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// joinFragments concatenates fragments in the order given by perm.
func joinFragments(fragments []string, perm []int, size int) string {
	var b strings.Builder
	b.Grow(size)
	for _, idx := range perm {
		b.WriteString(fragments[idx])
	}
	return b.String()
}
