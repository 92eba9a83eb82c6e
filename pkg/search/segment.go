package search

import (
	"slices"

	"github.com/bastiangx/wordcrack/pkg/lexicon"
)

// trigramLen is the word length counted against Options.MaxTrigrams.
const trigramLen = 3

// Verifier splits decoded text into lexicon words.
type Verifier struct {
	lex      *lexicon.Lexicon
	opts     Options
	target   int
	words    []string
	trigrams int
}

// NewVerifier returns a Verifier over lex. Options are used as given; call
// Options.Validate first.
func NewVerifier(lex *lexicon.Lexicon, opts Options) *Verifier {
	return &Verifier{lex: lex, opts: opts}
}

// Verify reports whether text can be split into lexicon words, treating text
// as the first len(text) letters of a target-letter message. When text is
// shorter than target, its trailing letters may be left as the start of a
// word, according to the segment mode. The returned words are the complete
// words found.
func (v *Verifier) Verify(text string, target int) ([]string, bool) {
	if !v.verify(text, target) {
		return nil, false
	}
	return slices.Clone(v.words), true
}

// verify is Verify without the copy; v.words holds the words until the next
// call.
func (v *Verifier) verify(text string, target int) bool {
	v.words = v.words[:0]
	v.trigrams = 0
	v.target = target
	if text == "" || len(text) > target {
		return false
	}
	return v.find(text, 0)
}

// find splits text, the part left after covered letters of the message.
func (v *Verifier) find(text string, covered int) bool {
	if len(text) < v.opts.MinWordLen {
		return false
	}

	final := len(text)+covered == v.target
	longest := min(v.opts.MaxWordLen, len(text))
	if final && longest < v.opts.MinWordLen {
		return false
	}
	for n := v.opts.MinWordLen; n <= longest; n++ {
		if n == trigramLen && v.trigrams == v.opts.MaxTrigrams {
			continue
		}
		w := text[:n]
		if !v.lex.Contains(w) {
			continue
		}
		v.push(w)
		if covered+n == v.target || (v.opts.Mode == ModeExhaustive && n == len(text)) {
			return true
		}
		if v.find(text[n:], covered+n) {
			return true
		}
		v.pop()
	}

	// The last word of the message must be complete.
	if final {
		return false
	}
	// Nothing this long can be the start of a single word.
	if len(text) >= v.opts.MaxWordLen {
		return false
	}

	switch v.opts.Mode {
	case ModeBounded:
		return v.lex.HasContinuation(text, v.target-covered)
	case ModeExhaustive:
		return false
	default:
		return v.lex.HasPrefix(text)
	}
}

func (v *Verifier) push(w string) {
	if len(w) == trigramLen {
		v.trigrams++
	}
	v.words = append(v.words, w)
}

func (v *Verifier) pop() {
	if len(v.words[len(v.words)-1]) == trigramLen {
		v.trigrams--
	}
	v.words = v.words[:len(v.words)-1]
}
