package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bastiangx/wordcrack/internal/utils"
	"github.com/bastiangx/wordcrack/pkg/search"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfigOptions(t *testing.T) {
	opts, err := DefaultConfig().SearchOptions()
	if err != nil {
		t.Fatalf("SearchOptions: %v", err)
	}
	if diff := cmp.Diff(search.DefaultOptions(), opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[search]
min_word_len = 2
segment_mode = "bounded"
fragments = ["ab", "cd"]

[lexicon]
path = "/usr/share/dict/words"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.Search.MinWordLen = 2
	want.Search.SegmentMode = "bounded"
	want.Search.Fragments = []string{"ab", "cd"}
	want.Lexicon.Path = "/usr/share/dict/words"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	opts, err := cfg.SearchOptions()
	if err != nil {
		t.Fatalf("SearchOptions: %v", err)
	}
	if opts.Mode != search.ModeBounded || opts.MinWordLen != 2 {
		t.Errorf("SearchOptions() = %+v", opts)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_word_len has the wrong type, so the strict decode fails and the
	// remaining keys are recovered one by one.
	path := writeConfig(t, `
[search]
max_word_len = "ten"
deep_resume = true

[output]
format = "msgpack"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Search.MaxWordLen != DefaultConfig().Search.MaxWordLen {
		t.Errorf("MaxWordLen = %d, want default", cfg.Search.MaxWordLen)
	}
	if !cfg.Search.DeepResume {
		t.Error("DeepResume not recovered")
	}
	if cfg.Output.Format != "msgpack" {
		t.Errorf("Format = %q, want msgpack", cfg.Output.Format)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff(cfg, reloaded); diff != "" {
		t.Errorf("saved config differs (-created +reloaded):\n%s", diff)
	}
}

func TestSearchOptionsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.SegmentMode = "greedy"
	if _, err := cfg.SearchOptions(); err == nil {
		t.Error("unknown segment mode accepted")
	}

	cfg = DefaultConfig()
	cfg.Search.MaxWordLen = 0
	if _, err := cfg.SearchOptions(); err == nil {
		t.Error("max word length 0 accepted")
	}
}

func TestSearchOptionsLongMinimum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.MinWordLen = 27
	opts, err := cfg.SearchOptions()
	if err != nil {
		t.Fatalf("SearchOptions with min word length 27: %v", err)
	}
	if opts.MinWordLen != 27 || opts.MaxWordLen != 10 {
		t.Errorf("SearchOptions() = %+v, want min 27 and max 10", opts)
	}
}

func TestConfigDirMatchesPathResolver(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir: %v", err)
	}
	if want := filepath.Join(xdg, "wordcrack"); got != want {
		t.Errorf("GetConfigDir() = %q, want %q", got, want)
	}

	pr, err := utils.NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver: %v", err)
	}
	if pr.GetConfigDir() != got {
		t.Errorf("PathResolver config dir %q differs from GetConfigDir %q", pr.GetConfigDir(), got)
	}
}
