/*
Package report writes search results for people or for other programs.

The text format mirrors the classic console output: the ciphertext is shown
once per fragment ordering, followed by one block per match.

	Encoded: yycc
	Decoded: cdab: cd ab
	   keys: ab cd

The msgpack format writes one Record per match to the stream, followed by a
single Summary when the search is exhausted. Records carry the ciphertext only
on the first match of each ordering, like the text format:

	{"n": 1, "e": "yycc", "t": "cdab", "w": ["cd", "ab"], "k": ["ab", "cd"]}
	{"orderings": 2, "results": 2, "target": 4}
*/
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordcrack/internal/utils"
	"github.com/bastiangx/wordcrack/pkg/search"
	"github.com/vmihailenco/msgpack/v5"
)

// Writer receives matches one at a time.
type Writer interface {
	// Write emits one match.
	Write(r search.Result) error
	// Summary emits the final counters and flushes the output.
	Summary(stats search.Stats) error
}

// Record is the msgpack form of one match.
type Record struct {
	Num      int      `msgpack:"n"`
	Encoded  string   `msgpack:"e,omitempty"`
	Text     string   `msgpack:"t"`
	Words    []string `msgpack:"w"`
	KeyWords []string `msgpack:"k"`
}

// Summary is the msgpack form of the final counters.
type Summary struct {
	Orderings int `msgpack:"orderings"`
	Results   int `msgpack:"results"`
	Target    int `msgpack:"target"`
}

// NewWriter returns the writer for format, "text" or "msgpack".
func NewWriter(format string, w io.Writer) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextWriter(w), nil
	case "msgpack":
		return NewMsgpackWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextWriter writes the human-readable format.
type TextWriter struct {
	w *bufio.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

func (t *TextWriter) Write(r search.Result) error {
	if r.Num == 1 {
		fmt.Fprintf(t.w, "Encoded: %s\n", r.Encoded)
	}
	fmt.Fprintf(t.w, "Decoded: %s: %s\n", r.Text, strings.Join(r.Words, " "))
	fmt.Fprintf(t.w, "   keys: %s\n", strings.Join(r.KeyWords, " "))
	// Flushed per match so that slow searches still show progress.
	return t.w.Flush()
}

func (t *TextWriter) Summary(stats search.Stats) error {
	fmt.Fprintf(t.w, "Searched %s orderings of %d letters: %s matches\n",
		utils.FormatWithCommas(stats.Orderings), stats.Target, utils.FormatWithCommas(stats.Results))
	return t.w.Flush()
}

// MsgpackWriter writes the msgpack stream.
type MsgpackWriter struct {
	w   *bufio.Writer
	enc *msgpack.Encoder
}

func NewMsgpackWriter(w io.Writer) *MsgpackWriter {
	bw := bufio.NewWriter(w)
	return &MsgpackWriter{w: bw, enc: msgpack.NewEncoder(bw)}
}

func (m *MsgpackWriter) Write(r search.Result) error {
	rec := Record{
		Num:      r.Num,
		Text:     r.Text,
		Words:    r.Words,
		KeyWords: r.KeyWords,
	}
	if r.Num == 1 {
		rec.Encoded = r.Encoded
	}
	if err := m.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return m.w.Flush()
}

func (m *MsgpackWriter) Summary(stats search.Stats) error {
	sum := Summary{Orderings: stats.Orderings, Results: stats.Results, Target: stats.Target}
	if err := m.enc.Encode(sum); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return m.w.Flush()
}
