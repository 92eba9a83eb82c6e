package search

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/bastiangx/wordcrack/pkg/lexicon"
	"github.com/charmbracelet/log"
)

// progressEvery is how many orderings pass between progress log lines.
const progressEvery = 100

// ErrNoFragments is returned by New when there is nothing to decode.
var ErrNoFragments = errors.New("search: no fragments")

// Stats summarizes the work a Decoder has done so far.
type Stats struct {
	Orderings int
	Results   int
	Target    int
}

// Decoder produces every match lazily: each call to Next runs the search
// until the following match and stops there.
type Decoder struct {
	fragments []string
	perm      []int
	target    int
	gen       *keyGen

	encoded string
	started bool
	inPerm  bool
	done    bool
	current Result
	stats   Stats
}

// New prepares a Decoder for fragments, which must be non-empty lowercase
// a-z strings. Nothing is searched until the first call to Next.
func New(fragments []string, lex *lexicon.Lexicon, opts Options) (*Decoder, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}
	if lex == nil {
		return nil, errors.New("search: nil lexicon")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	target := 0
	perm := make([]int, len(fragments))
	for i, f := range fragments {
		if !lexicon.IsLowerAlpha(f) {
			return nil, fmt.Errorf("search: fragment %d (%q) is not lowercase a-z", i, f)
		}
		target += len(f)
		perm[i] = i
	}

	return &Decoder{
		fragments: slices.Clone(fragments),
		perm:      perm,
		target:    target,
		gen:       newKeyGen(lex, opts, target),
		stats:     Stats{Target: target},
	}, nil
}

// Target returns the total ciphertext length.
func (d *Decoder) Target() int {
	return d.target
}

// Next advances to the next match. It returns false once every ordering of
// the fragments has been searched.
func (d *Decoder) Next() bool {
	for !d.done {
		var (
			r  Result
			ok bool
		)
		switch {
		case !d.started:
			d.started = true
			d.beginOrdering()
			r, ok = d.gen.generate(d.encoded, 0)
		case d.inPerm:
			r, ok = d.gen.resume(d.encoded)
		default:
			if !nextPermutation(d.perm) {
				d.done = true
				log.Debugf("Search done: %d orderings, %d matches", d.stats.Orderings, d.stats.Results)
				return false
			}
			d.beginOrdering()
			r, ok = d.gen.generate(d.encoded, 0)
		}

		if ok {
			d.inPerm = true
			d.current = r
			d.stats.Results++
			return true
		}
		d.inPerm = false
	}
	return false
}

// Result returns the match found by the last successful call to Next.
func (d *Decoder) Result() Result {
	return d.current
}

// Stats returns counters for the search so far.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// All returns the remaining matches as a sequence. Breaking out of the loop
// leaves the Decoder positioned after the last yielded match.
func (d *Decoder) All() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for d.Next() {
			if !yield(d.Result()) {
				return
			}
		}
	}
}

func (d *Decoder) beginOrdering() {
	d.encoded = joinFragments(d.fragments, d.perm, d.target)
	d.gen.reset()
	d.stats.Orderings++
	if d.stats.Orderings%progressEvery == 0 {
		log.Debugf("orderings: %d", d.stats.Orderings)
	}
}
