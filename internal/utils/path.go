package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds word lists relative to the places wordcrack is usually
// run from.
type PathResolver struct {
	executableDir string
	workDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workDir:       workDir,
		configDir:     ConfigDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, workDir=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr, nil
}

// ConfigDirFor returns the wordcrack config directory for the platform,
// honoring XDG_CONFIG_HOME on linux and APPDATA on windows.
func ConfigDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordcrack")
		}
		return filepath.Join(homeDir, ".config", "wordcrack")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordcrack")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordcrack")
	default:
		return filepath.Join(homeDir, ".config", "wordcrack")
	}
}

// ResolveWordList returns the first existing file among:
// 1. the path itself when absolute
// 2. relative to the working directory
// 3. relative to the executable directory
// 4. relative to the config directory
//
// When none exists the working-directory candidate is returned so that the
// caller reports the path the user most likely meant.
func (pr *PathResolver) ResolveWordList(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	candidates := []string{
		filepath.Join(pr.workDir, path),
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			log.Debugf("Found word list: %s", candidate)
			return candidate
		}
		log.Debugf("Word list candidate not found: %s", candidate)
	}
	return candidates[0]
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
