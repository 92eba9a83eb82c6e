package search

import (
	"slices"
	"strings"

	"github.com/bastiangx/wordcrack/pkg/cipher"
	"github.com/bastiangx/wordcrack/pkg/lexicon"
)

// keyGen backtracks over sequences of lexicon words whose lengths add up to
// target. A word joins the key only if the ciphertext decoded so far still
// splits into lexicon words, so dead branches are cut at the first bad word.
type keyGen struct {
	lex    *lexicon.Lexicon
	ver    *Verifier
	target int
	minLen int
	deep   bool

	stack     []string
	resultNum int
}

func newKeyGen(lex *lexicon.Lexicon, opts Options, target int) *keyGen {
	return &keyGen{
		lex:    lex,
		ver:    NewVerifier(lex, opts),
		target: target,
		minLen: opts.MinWordLen,
		deep:   opts.DeepResume,
		stack:  make([]string, 0, target),
	}
}

// reset clears the per-ordering state.
func (g *keyGen) reset() {
	g.stack = g.stack[:0]
	g.resultNum = 0
}

// generate looks for the first complete key extending the stack, whose words
// cover the first start letters. On failure the stack is left as it was.
func (g *keyGen) generate(encoded string, start int) (Result, bool) {
	if start == g.target {
		key := g.key()
		decoded := cipher.Decode(encoded, key)
		if !g.ver.verify(decoded, g.target) {
			return Result{}, false
		}
		g.resultNum++
		return Result{
			Encoded:  encoded,
			KeyWords: slices.Clone(g.stack),
			Text:     decoded,
			Words:    slices.Clone(g.ver.words),
			Num:      g.resultNum,
		}, true
	}

	if g.target-start < g.minLen {
		return Result{}, false
	}
	return g.extend(encoded, start, 0)
}

// resume finds the match after the one the stack currently holds.
//
// The default rewind drops the last two key words and tries the words that
// follow the second-to-last one in iteration order. Alternatives for the last
// word alone, or three or more words back, are never revisited.
func (g *keyGen) resume(encoded string) (Result, bool) {
	if g.deep {
		return g.resumeDeep(encoded)
	}
	if len(g.stack) < 2 {
		return Result{}, false
	}

	covered := g.target - len(g.pop())
	prev := g.pop()
	covered -= len(prev)
	pos, _ := g.lex.Position(prev)
	return g.extend(encoded, covered, pos+1)
}

// resumeDeep unwinds one frame at a time, continuing each frame's loop after
// the word it had chosen.
func (g *keyGen) resumeDeep(encoded string) (Result, bool) {
	covered := g.target
	for len(g.stack) > 0 {
		w := g.pop()
		covered -= len(w)
		pos, _ := g.lex.Position(w)
		if r, ok := g.extend(encoded, covered, pos+1); ok {
			return r, true
		}
	}
	return Result{}, false
}

// extend tries the words from position from onward as the next key word.
func (g *keyGen) extend(encoded string, covered, from int) (Result, bool) {
	remaining := g.target - covered
	for _, w := range g.lex.Words()[from:] {
		if len(w) > remaining {
			continue
		}
		if g.accept(w, encoded) {
			if r, ok := g.generate(encoded, covered+len(w)); ok {
				return r, true
			}
		}
		g.pop()
	}
	return Result{}, false
}

// accept pushes w and checks that the ciphertext prefix decoded with the key
// so far still splits into lexicon words. The caller pops w on failure.
func (g *keyGen) accept(w, encoded string) bool {
	g.stack = append(g.stack, w)
	key := g.key()
	return g.ver.verify(cipher.Decode(encoded[:len(key)], key), g.target)
}

func (g *keyGen) pop() string {
	w := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	return w
}

func (g *keyGen) key() string {
	return strings.Join(g.stack, "")
}
