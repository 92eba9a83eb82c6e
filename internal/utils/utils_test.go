package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitFragments(t *testing.T) {
	testCases := []struct {
		input string
		want  []string
	}{
		{"qvu,bma,aps", []string{"qvu", "bma", "aps"}},
		{" qvu  BMA\te ", []string{"qvu", "bma", "e"}},
		{"ab, cd", []string{"ab", "cd"}},
		{"", []string{}},
	}
	for _, tc := range testCases {
		got := SplitFragments(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("SplitFragments(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		362880:   "362,880",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range testCases {
		if got := FormatWithCommas(n); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestResolveWordList(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := EnsureDir(configDir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "words"), []byte("apple\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	pr := &PathResolver{
		executableDir: filepath.Join(dir, "bin"),
		workDir:       filepath.Join(dir, "work"),
		configDir:     configDir,
	}
	if got, want := pr.ResolveWordList("words"), filepath.Join(configDir, "words"); got != want {
		t.Errorf("ResolveWordList(words) = %q, want %q", got, want)
	}
	if got, want := pr.ResolveWordList("missing"), filepath.Join(dir, "work", "missing"); got != want {
		t.Errorf("ResolveWordList(missing) = %q, want %q", got, want)
	}
	if got := pr.ResolveWordList("/abs/words"); got != "/abs/words" {
		t.Errorf("ResolveWordList(/abs/words) = %q", got)
	}
}

func TestSaveTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	type section struct {
		Name  string   `toml:"name"`
		Items []string `toml:"items"`
	}
	in := struct {
		S section `toml:"s"`
	}{S: section{Name: "x", Items: []string{"a", "b"}}}

	if err := SaveTOMLFile(in, path); err != nil {
		t.Fatalf("SaveTOMLFile: %v", err)
	}
	data, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery: %v", err)
	}
	s, ok := ExtractSection(data, "s")
	if !ok {
		t.Fatal("section s missing")
	}
	if name, _ := ExtractString(s, "name"); name != "x" {
		t.Errorf("name = %q, want x", name)
	}
	items, ok := ExtractStrings(s, "items")
	if !ok {
		t.Fatal("items missing")
	}
	if diff := cmp.Diff([]string{"a", "b"}, items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}
