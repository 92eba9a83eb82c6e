package search

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNextPermutationCycle(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			p := make([]int, n)
			for i := range p {
				p[i] = i
			}
			identity := slices.Clone(p)

			seen := map[string]bool{fmt.Sprint(p): true}
			prev := slices.Clone(p)
			for nextPermutation(p) {
				key := fmt.Sprint(p)
				if seen[key] {
					t.Fatalf("ordering %v repeated", p)
				}
				if slices.Compare(prev, p) >= 0 {
					t.Fatalf("ordering %v does not follow %v", p, prev)
				}
				seen[key] = true
				prev = slices.Clone(p)
			}

			if want := factorial(n); len(seen) != want {
				t.Errorf("saw %d orderings, want %d", len(seen), want)
			}
			if diff := cmp.Diff(identity, p); diff != "" {
				t.Errorf("did not wrap to ascending order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinFragments(t *testing.T) {
	fragments := []string{"qvu", "bma", "e"}
	testCases := []struct {
		perm []int
		want string
	}{
		{[]int{0, 1, 2}, "qvubmae"},
		{[]int{2, 0, 1}, "eqvubma"},
		{[]int{1, 2, 0}, "bmaeqvu"},
	}
	for _, tc := range testCases {
		got := joinFragments(fragments, tc.perm, 7)
		if got != tc.want {
			t.Errorf("joinFragments(%v) = %q, want %q", tc.perm, got, tc.want)
		}
		if len(got) != 7 {
			t.Errorf("joinFragments(%v) has length %d, want 7", tc.perm, len(got))
		}
	}
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
