/*
Package dictionary reads word lists from disk and turns them into a lexicon.

Two formats are supported. Plain text files hold one candidate word per line;
they are trimmed and filtered by lexicon.Build on every load. Snapshots hold
the already filtered list, short words included, encoded with msgpack behind
a small magic header, and load without filtering:

	words, err := dictionary.Compile("words", "words.bin")
	lex, err := dictionary.Load("words.bin")

Loading either file yields the same lexicon, iteration order included.
*/
package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordcrack/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	snapshotMagic   = "WCLX"
	snapshotVersion = 1
)

// Snapshot is the msgpack body of a snapshot file.
type Snapshot struct {
	Version int      `msgpack:"v"`
	Words   []string `msgpack:"w"`
}

// ReadLines returns every line of r with line endings removed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// LoadText reads the raw lines of a plain text word list.
func LoadText(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	log.Debugf("Read %d lines from %s", len(lines), path)
	return lines, nil
}

// SaveSnapshot writes words to path as a snapshot.
func SaveSnapshot(path string, words []string) error {
	var buf bytes.Buffer
	buf.WriteString(snapshotMagic)
	if err := msgpack.NewEncoder(&buf).Encode(Snapshot{Version: snapshotVersion, Words: words}); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	log.Debugf("Wrote snapshot %s: %d words", path, len(words))
	return nil
}

// LoadSnapshot reads the word list stored in a snapshot.
func LoadSnapshot(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if !bytes.HasPrefix(data, []byte(snapshotMagic)) {
		return nil, fmt.Errorf("%w: %s has no snapshot header", ErrUnknownFormat, path)
	}

	var snap Snapshot
	if err := msgpack.Unmarshal(data[len(snapshotMagic):], &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot %s has version %d, want %d", path, snap.Version, snapshotVersion)
	}
	return snap.Words, nil
}

// Compile filters the text word list at textPath, adds the short words and
// stores the result as a snapshot at snapPath. It returns the stored words.
func Compile(textPath, snapPath string) ([]string, error) {
	lines, err := LoadText(textPath)
	if err != nil {
		return nil, err
	}
	words := append(lexicon.Filter(lines), lexicon.ShortWords...)
	if err := SaveSnapshot(snapPath, words); err != nil {
		return nil, err
	}
	return words, nil
}

// Load reads the word list at path in whichever format it is stored and
// builds the lexicon.
func Load(path string) (*lexicon.Lexicon, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	var lex *lexicon.Lexicon
	switch format {
	case FormatSnapshot:
		words, err := LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		lex, err = lexicon.New(words)
		if err != nil {
			return nil, fmt.Errorf("failed to index snapshot %s: %w", path, err)
		}
	default:
		lines, err := LoadText(path)
		if err != nil {
			return nil, err
		}
		lex, err = lexicon.Build(lines)
		if err != nil {
			return nil, fmt.Errorf("failed to index word list %s: %w", path, err)
		}
	}

	log.Debugf("Loaded %s (%s): %d words", path, format, lex.Len())
	return lex, nil
}
