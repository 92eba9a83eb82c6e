/*
Package config manages TOML config for wordcrack runs.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcrack/internal/utils"
	"github.com/bastiangx/wordcrack/pkg/search"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Lexicon LexiconConfig `toml:"lexicon"`
	Output  OutputConfig  `toml:"output"`
}

// SearchConfig has the search tuning and the ciphertext fragments.
type SearchConfig struct {
	MinWordLen  int      `toml:"min_word_len"`
	MaxWordLen  int      `toml:"max_word_len"`
	MaxTrigrams int      `toml:"max_trigrams"`
	SegmentMode string   `toml:"segment_mode"`
	DeepResume  bool     `toml:"deep_resume"`
	Fragments   []string `toml:"fragments"`
}

// LexiconConfig points at the word list.
type LexiconConfig struct {
	Path     string `toml:"path"`
	Snapshot string `toml:"snapshot"`
}

// OutputConfig holds result display options.
type OutputConfig struct {
	Format      string `toml:"format"`
	Interactive bool   `toml:"interactive"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. the platform config dir from utils.ConfigDirFor ($XDG_CONFIG_HOME/wordcrack or ~/.config/wordcrack on linux)
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := utils.ConfigDirFor(homeDir)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: ~/.config/wordcrack/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	opts := search.DefaultOptions()
	return &Config{
		Search: SearchConfig{
			MinWordLen:  opts.MinWordLen,
			MaxWordLen:  opts.MaxWordLen,
			MaxTrigrams: opts.MaxTrigrams,
			SegmentMode: opts.Mode.String(),
			DeepResume:  opts.DeepResume,
			Fragments:   []string{"qvu", "bma", "aps", "e", "tn", "sc", "nc", "xzfdq", "ngqzp"},
		},
		Lexicon: LexiconConfig{
			Path: "./words",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that still parses and falls back to
// defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "lexicon"); ok {
		extractLexiconConfig(section, &config.Lexicon)
	}
	if section, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(section, &config.Output)
	}
	return config, nil
}

func extractSearchConfig(data map[string]any, s *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "min_word_len"); ok {
		s.MinWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		s.MaxWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_trigrams"); ok {
		s.MaxTrigrams = val
	}
	if val, ok := utils.ExtractString(data, "segment_mode"); ok {
		s.SegmentMode = val
	}
	if val, ok := utils.ExtractBool(data, "deep_resume"); ok {
		s.DeepResume = val
	}
	if val, ok := utils.ExtractStrings(data, "fragments"); ok {
		s.Fragments = val
	}
}

func extractLexiconConfig(data map[string]any, l *LexiconConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		l.Path = val
	}
	if val, ok := utils.ExtractString(data, "snapshot"); ok {
		l.Snapshot = val
	}
}

func extractOutputConfig(data map[string]any, o *OutputConfig) {
	if val, ok := utils.ExtractString(data, "format"); ok {
		o.Format = val
	}
	if val, ok := utils.ExtractBool(data, "interactive"); ok {
		o.Interactive = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// SearchOptions converts the search section into validated search options.
func (c *Config) SearchOptions() (search.Options, error) {
	mode, err := search.ParseSegmentMode(c.Search.SegmentMode)
	if err != nil {
		return search.Options{}, err
	}
	opts := search.Options{
		MinWordLen:  c.Search.MinWordLen,
		MaxWordLen:  c.Search.MaxWordLen,
		MaxTrigrams: c.Search.MaxTrigrams,
		Mode:        mode,
		DeepResume:  c.Search.DeepResume,
	}
	if err := opts.Validate(); err != nil {
		return search.Options{}, fmt.Errorf("invalid [search] config: %w", err)
	}
	return opts, nil
}
