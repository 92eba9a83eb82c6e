// Package cli steps through search results interactively, one match per Enter.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcrack/internal/utils"
	"github.com/bastiangx/wordcrack/pkg/report"
	"github.com/bastiangx/wordcrack/pkg/search"
	"github.com/charmbracelet/log"
)

// Pager pulls results from a decoder only when the user asks for them.
// Pressing Enter shows the next match, "a" shows all remaining matches and
// "q" stops the search.
type Pager struct {
	dec    *search.Decoder
	out    report.Writer
	in     *bufio.Reader
	logger *log.Logger
	shown  int
}

// NewPager handles initialization of the Pager.
func NewPager(dec *search.Decoder, out report.Writer, in io.Reader, logger *log.Logger) *Pager {
	return &Pager{
		dec:    dec,
		out:    out,
		in:     bufio.NewReader(in),
		logger: logger,
	}
}

// Start begins the prompt loop. It returns nil when the search is exhausted,
// the user quits or the input ends.
func (p *Pager) Start() error {
	p.logger.Printf("Searching %d letters. Enter: next match, a: all, q: quit", p.dec.Target())

	for {
		p.logger.Print("> ")
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return p.finish("stopped")
		}
		cmd := strings.ToLower(strings.TrimSpace(line))

		switch cmd {
		case "q", "quit":
			return p.finish("stopped")
		case "a", "all":
			for p.dec.Next() {
				if werr := p.show(); werr != nil {
					return werr
				}
			}
			return p.finish("exhausted")
		case "":
			more, werr := p.step()
			if werr != nil {
				return werr
			}
			if !more {
				return p.finish("exhausted")
			}
		default:
			p.logger.Warnf("Unknown command: %q", cmd)
		}

		if errors.Is(err, io.EOF) {
			return p.finish("stopped")
		}
	}
}

// step shows the next match, reporting false when there is none.
func (p *Pager) step() (bool, error) {
	start := time.Now()
	if !p.dec.Next() {
		return false, nil
	}
	log.Debugf("Took [ %v ] for match %d", time.Since(start), p.shown+1)
	return true, p.show()
}

func (p *Pager) show() error {
	p.shown++
	return p.out.Write(p.dec.Result())
}

func (p *Pager) finish(how string) error {
	stats := p.dec.Stats()
	p.logger.Printf("Search %s after %s orderings, %s matches shown",
		how, utils.FormatWithCommas(stats.Orderings), utils.FormatWithCommas(p.shown))
	return p.out.Summary(stats)
}
