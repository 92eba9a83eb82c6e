// Package search cracks a repeating-key cipher whose key and plaintext are
// both made of lexicon words, given the ciphertext as fragments in unknown
// order.
//
// Three nested searches run inside one Decoder: every ordering of the
// fragments, every sequence of lexicon words whose lengths add up to the
// ciphertext length (the candidate keys), and every split of the decoded text
// into lexicon words. Matches are produced one at a time, on demand:
//
//	dec, err := search.New(fragments, lex, search.DefaultOptions())
//	for dec.Next() {
//		r := dec.Result()
//		fmt.Println(r.Text, r.Words, r.KeyWords)
//	}
//
// All search state lives in the Decoder; it is not safe for concurrent use.
package search

import (
	"fmt"
	"strings"
)

// SegmentMode selects how the segmentation check treats a decoded prefix
// whose last letters do not form a complete word yet.
type SegmentMode int

const (
	// ModeHeuristic accepts the trailing letters when any lexicon word
	// starts with them.
	ModeHeuristic SegmentMode = iota
	// ModeBounded also requires that word to fit in the remaining length.
	ModeBounded
	// ModeExhaustive never accepts trailing letters; complete words must
	// cover the text.
	ModeExhaustive
)

var modeNames = map[SegmentMode]string{
	ModeHeuristic:  "heuristic",
	ModeBounded:    "bounded",
	ModeExhaustive: "exhaustive",
}

func (m SegmentMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SegmentMode(%d)", int(m))
}

// ParseSegmentMode maps a mode name back to its SegmentMode.
func ParseSegmentMode(name string) (SegmentMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return ModeHeuristic, fmt.Errorf("unknown segment mode %q", name)
}

// Options tunes the search.
type Options struct {
	// MinWordLen is the shortest word a segmentation may use. It also stops
	// key extension when fewer letters than this remain. A value above
	// MaxWordLen or the ciphertext length is allowed and finds nothing.
	MinWordLen int
	// MaxWordLen is the longest word a segmentation may use.
	MaxWordLen int
	// MaxTrigrams caps the number of 3-letter words in one segmentation.
	MaxTrigrams int
	Mode        SegmentMode
	// DeepResume continues the key search from the deepest frame instead
	// of rewinding exactly two key words after each match. It reaches keys
	// the two-frame rewind skips.
	DeepResume bool
}

// DefaultOptions returns the reference settings.
func DefaultOptions() Options {
	return Options{
		MinWordLen:  1,
		MaxWordLen:  10,
		MaxTrigrams: 4,
		Mode:        ModeHeuristic,
	}
}

// Validate reports settings the search cannot run with.
func (o Options) Validate() error {
	if o.MinWordLen < 1 {
		return fmt.Errorf("min word length must be at least 1, got %d", o.MinWordLen)
	}
	if o.MaxWordLen < 1 {
		return fmt.Errorf("max word length must be at least 1, got %d", o.MaxWordLen)
	}
	if o.MaxTrigrams < 0 {
		return fmt.Errorf("trigram cap must not be negative, got %d", o.MaxTrigrams)
	}
	if _, ok := modeNames[o.Mode]; !ok {
		return fmt.Errorf("unknown segment mode %d", int(o.Mode))
	}
	return nil
}

// Result is one accepted (ordering, key, segmentation) triple.
type Result struct {
	// Encoded is the ciphertext for the current fragment ordering.
	Encoded  string
	KeyWords []string
	// Text is Encoded decoded with the concatenated key words.
	Text string
	// Words is the segmentation of Text.
	Words []string
	// Num counts matches for the current ordering, starting at 1.
	Num int
}

// Key returns the concatenated key words.
func (r Result) Key() string {
	return strings.Join(r.KeyWords, "")
}
