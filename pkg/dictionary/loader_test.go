package dictionary

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordcrack/pkg/lexicon"
	"github.com/google/go-cmp/cmp"
)

const sampleList = "apple\n  banana \nPfft\nrhythm\nit's\nox\napple\r\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\r\nb\n\nc"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "", "c"}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "words", sampleList)

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := append([]string{"apple", "banana", "rhythm"}, lexicon.ShortWords...)
	if diff := cmp.Diff(want, lex.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotMatchesText(t *testing.T) {
	textPath := writeFile(t, "words.txt", sampleList)
	snapPath := filepath.Join(t.TempDir(), "words.bin")

	stored, err := Compile(textPath, snapPath)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if format, err := DetectFileFormat(snapPath); err != nil || format != FormatSnapshot {
		t.Fatalf("DetectFileFormat(snapshot) = %v, %v", format, err)
	}

	fromText, err := Load(textPath)
	if err != nil {
		t.Fatalf("Load(text): %v", err)
	}
	fromSnap, err := Load(snapPath)
	if err != nil {
		t.Fatalf("Load(snapshot): %v", err)
	}
	if diff := cmp.Diff(fromText.Words(), fromSnap.Words()); diff != "" {
		t.Errorf("iteration order differs (-text +snapshot):\n%s", diff)
	}
	if diff := cmp.Diff(fromText.Sorted(), fromSnap.Sorted()); diff != "" {
		t.Errorf("sorted list differs (-text +snapshot):\n%s", diff)
	}
	if len(stored) != len(fromSnap.Sorted()) {
		t.Errorf("Compile stored %d words, snapshot indexes %d", len(stored), len(fromSnap.Sorted()))
	}
}

func TestLoadFailures(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}

	fake := writeFile(t, "fake.bin", "not a snapshot")
	if _, err := Load(fake); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load(fake.bin) error = %v, want ErrUnknownFormat", err)
	}

	if _, err := LoadSnapshot(fake); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadSnapshot(fake.bin) error = %v, want ErrUnknownFormat", err)
	}
}
