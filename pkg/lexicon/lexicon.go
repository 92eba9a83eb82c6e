// Package lexicon holds the immutable word list used both to propose key words
// and to validate decoded text.
//
// A Lexicon exposes the same words three ways: a membership set with a stable
// iteration order, an ascending list with a per-letter alphabet index, and a
// patricia trie for length-bounded prefix queries.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// alphabetSize is the number of letters in the cipher alphabet.
const alphabetSize = 26

var (
	// ErrEmpty is returned when a lexicon would hold no words.
	ErrEmpty = errors.New("lexicon: no words")
)

var errStopVisit = errors.New("stop visit")

// Lexicon is safe for concurrent reads; nothing mutates it after New returns.
type Lexicon struct {
	order  []string
	pos    map[string]int
	sorted []string
	index  [alphabetSize + 1]int
	trie   *patricia.Trie
}

// New builds a lexicon from clean entries: every word must be non-empty and
// made of lowercase ASCII letters only. Duplicates keep their first position
// in the iteration order but stay in the sorted list.
func New(words []string) (*Lexicon, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}

	lx := &Lexicon{
		order:  make([]string, 0, len(words)),
		pos:    make(map[string]int, len(words)),
		sorted: make([]string, 0, len(words)),
		trie:   patricia.NewTrie(),
	}
	for _, w := range words {
		if !IsLowerAlpha(w) {
			return nil, fmt.Errorf("lexicon: invalid entry %q", w)
		}
		lx.sorted = append(lx.sorted, w)
		if _, seen := lx.pos[w]; seen {
			continue
		}
		lx.pos[w] = len(lx.order)
		lx.order = append(lx.order, w)
		lx.trie.Insert(patricia.Prefix(w), len(w))
	}
	sort.Strings(lx.sorted)

	lx.index = buildAlphabetIndex(lx.sorted)
	return lx, nil
}

// buildAlphabetIndex records where each first letter's run starts. Letters
// with no words take the start of the next present run, so every slot after
// the first occupied letter is positive and the index never decreases.
// words must be sorted and non-empty.
func buildAlphabetIndex(words []string) [alphabetSize + 1]int {
	var index [alphabetSize + 1]int
	var present [alphabetSize]bool

	next := byte('a')
	for i, w := range words {
		if first := w[0]; first >= next {
			index[first-'a'] = i
			present[first-'a'] = true
			next = first + 1
		}
	}
	index[alphabetSize] = len(words)
	for c := alphabetSize - 1; c >= 0; c-- {
		if !present[c] {
			index[c] = index[c+1]
		}
	}
	return index
}

// Contains reports whether w is a lexicon entry.
func (lx *Lexicon) Contains(w string) bool {
	_, ok := lx.pos[w]
	return ok
}

// Words returns the deduplicated entries in iteration order. The order is
// fixed for the lifetime of the lexicon. Callers must not modify the slice.
func (lx *Lexicon) Words() []string {
	return lx.order
}

// Position returns the index of w in Words.
func (lx *Lexicon) Position(w string) (int, bool) {
	i, ok := lx.pos[w]
	return i, ok
}

// Sorted returns all entries in ascending order. Callers must not modify the
// slice.
func (lx *Lexicon) Sorted() []string {
	return lx.sorted
}

// Len returns the number of distinct entries.
func (lx *Lexicon) Len() int {
	return len(lx.order)
}

// Range returns the half-open range of Sorted holding the words that start
// with letter. Letters outside a-z yield an empty range.
func (lx *Lexicon) Range(letter byte) (lo, hi int) {
	if letter < 'a' || letter > 'z' {
		return 0, 0
	}
	c := letter - 'a'
	return lx.index[c], lx.index[c+1]
}

// HasPrefix reports whether some entry starts with prefix, scanning only the
// alphabet-index bucket of its first letter.
func (lx *Lexicon) HasPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	lo, hi := lx.Range(prefix[0])
	for _, w := range lx.sorted[lo:hi] {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

// HasContinuation reports whether some entry starts with prefix and is at
// most maxLen letters long.
func (lx *Lexicon) HasContinuation(prefix string, maxLen int) bool {
	if prefix == "" || len(prefix) > maxLen {
		return false
	}
	err := lx.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		if item.(int) <= maxLen {
			return errStopVisit
		}
		return nil
	})
	return errors.Is(err, errStopVisit)
}

// IsLowerAlpha reports whether s is non-empty and made of a-z only.
func IsLowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
