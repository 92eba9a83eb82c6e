/*
Package main implements the wordcrack command line tool.

wordcrack recovers messages enciphered with a repeating-key subtraction cipher
when both the key and the message are made of dictionary words, and the
ciphertext is only known as fragments in an unknown order. Every ordering of
the fragments is tried, every key built from dictionary words is tried against
each ordering, and a key is reported when the text it decodes to splits into
dictionary words too.

# Usage

Search the fragments from the config file with the default word list:

	wordcrack

Search other fragments with a minimum word length of 2:

	wordcrack -fragments "yy,cc" 2

Step through matches one at a time:

	wordcrack -i

Encipher a message for testing:

	wordcrack -encode gotoat:dogcat

# Word lists

The word list is a plain text file with one word per line. Entries are trimmed,
and only lowercase alphabetic words of three letters or more with a vowel are
kept; a fixed set of short words is always added. Filtering a large list takes
a while, so it can be stored once as a msgpack snapshot and loaded from there:

	wordcrack -words words -snapshot words.bin
	wordcrack -words words.bin

# Configuration

Search settings live in a TOML file, created with defaults on first run at
~/.config/wordcrack/config.toml. Flags override the file:

	[search]
	min_word_len = 1
	max_word_len = 10
	max_trigrams = 4
	segment_mode = "heuristic"
	deep_resume = false
	fragments = ["qvu", "bma", "aps", "e", "tn", "sc", "nc", "xzfdq", "ngqzp"]

	[lexicon]
	path = "./words"
	snapshot = ""

	[output]
	format = "text"
	interactive = false

# Output

Matches are written to stdout as text, or as a msgpack stream of records
with -format msgpack. Logs go to stderr.

	Encoded: yycc
	Decoded: cdab: cd ab
	   keys: ab cd
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/bastiangx/wordcrack/internal/cli"
	"github.com/bastiangx/wordcrack/internal/logger"
	"github.com/bastiangx/wordcrack/internal/utils"
	"github.com/bastiangx/wordcrack/pkg/cipher"
	"github.com/bastiangx/wordcrack/pkg/config"
	"github.com/bastiangx/wordcrack/pkg/dictionary"
	"github.com/bastiangx/wordcrack/pkg/lexicon"
	"github.com/bastiangx/wordcrack/pkg/report"
	"github.com/bastiangx/wordcrack/pkg/search"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordcrack"
	gh      = "https://github.com/bastiangx/wordcrack"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the packages together and manages the flow only.
func main() {
	sigHandler()
	log.SetOutput(os.Stderr)
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a config.toml (default ~/.config/wordcrack/config.toml)")
	wordsPath := flag.String("words", defaultConfig.Lexicon.Path, "Word list, plain text or snapshot")
	snapshotPath := flag.String("snapshot", "", "Write the filtered word list as a snapshot to this path")
	fragments := flag.String("fragments", "", "Ciphertext fragments separated by commas or spaces")
	format := flag.String("format", defaultConfig.Output.Format, "Output format: text or msgpack")
	mode := flag.String("mode", defaultConfig.Search.SegmentMode, "Segmentation mode: heuristic, bounded or exhaustive")
	deep := flag.Bool("deep", defaultConfig.Search.DeepResume, "Resume from every key word instead of the last two")
	interactive := flag.Bool("i", defaultConfig.Output.Interactive, "Show one match per Enter")
	encode := flag.String("encode", "", "Encipher plaintext:key and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [min word length]\n", AppName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *encode != "" {
		out, err := encodeArg(*encode)
		if err != nil {
			log.Fatalf("Invalid -encode value: %v", err)
		}
		fmt.Println(out)
		return
	}

	appConfig, loadedFrom, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", loadedFrom)

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "words":
			appConfig.Lexicon.Path = *wordsPath
		case "snapshot":
			appConfig.Lexicon.Snapshot = *snapshotPath
		case "fragments":
			appConfig.Search.Fragments = utils.SplitFragments(*fragments)
		case "format":
			appConfig.Output.Format = *format
		case "mode":
			appConfig.Search.SegmentMode = *mode
		case "deep":
			appConfig.Search.DeepResume = *deep
		case "i":
			appConfig.Output.Interactive = *interactive
		}
	})
	if flag.NArg() > 0 {
		minLen, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			log.Fatalf("Minimum word length must be an integer: %q", flag.Arg(0))
		}
		appConfig.Search.MinWordLen = minLen
	}

	opts, err := appConfig.SearchOptions()
	if err != nil {
		log.Fatalf("%v", err)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	listPath := pathResolver.ResolveWordList(appConfig.Lexicon.Path)
	log.Debugf("Using word list at: %s (config dir %s)", listPath, pathResolver.GetConfigDir())

	if appConfig.Lexicon.Snapshot != "" {
		words, err := dictionary.Compile(listPath, appConfig.Lexicon.Snapshot)
		if err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Infof("Wrote %s words to %s", utils.FormatWithCommas(len(words)), appConfig.Lexicon.Snapshot)
	}

	lex, err := dictionary.Load(listPath)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}

	dec, err := search.New(appConfig.Search.Fragments, lex, opts)
	if err != nil {
		log.Fatalf("Failed to start search: %v", err)
	}
	out, err := report.NewWriter(appConfig.Output.Format, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Debug("Search info:",
		"fragments", len(appConfig.Search.Fragments),
		"target", dec.Target(),
		"words", lex.Len(),
		"mode", opts.Mode,
		"deep", opts.DeepResume)

	if appConfig.Output.Interactive {
		log.SetReportTimestamp(false)
		pager := cli.NewPager(dec, out, os.Stdin, logger.New(AppName))
		if err := pager.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	for r := range dec.All() {
		if err := out.Write(r); err != nil {
			log.Fatalf("Failed to write result: %v", err)
		}
	}
	if err := out.Summary(dec.Stats()); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
}

// encodeArg enciphers a "plaintext:key" pair.
func encodeArg(arg string) (string, error) {
	plain, key, ok := strings.Cut(arg, ":")
	if !ok {
		return "", fmt.Errorf("want plaintext:key, got %q", arg)
	}
	if !lexicon.IsLowerAlpha(plain) || !lexicon.IsLowerAlpha(key) {
		return "", fmt.Errorf("plaintext and key must be lowercase a-z")
	}
	return cipher.Encode(plain, key), nil
}

// printVersion shows the version banner.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordCrack ] Finds dictionary keys for scrambled ciphertext")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
