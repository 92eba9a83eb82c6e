package lexicon

import "strings"

// ShortWords are added to every built lexicon regardless of the filter.
var ShortWords = []string{
	"a", "in", "on", "of", "by", "to", "up", "at", "or",
	"it", "an", "no", "do", "be", "go", "is", "as",
}

// minEntryLen is the shortest raw entry Build keeps.
const minEntryLen = 3

const vowels = "aeiouy"

// Filter trims raw word-list lines and keeps the ones Build would accept, in
// input order. Proper nouns and anything with uppercase letters are dropped
// since the cipher alphabet is lowercase.
func Filter(raw []string) []string {
	words := make([]string, 0, len(raw))
	for _, line := range raw {
		w := strings.TrimSpace(line)
		if len(w) < minEntryLen || !IsLowerAlpha(w) || !strings.ContainsAny(w, vowels) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Build filters raw word-list lines, appends ShortWords and indexes the
// result.
func Build(raw []string) (*Lexicon, error) {
	words := Filter(raw)
	words = append(words, ShortWords...)
	return New(words)
}
