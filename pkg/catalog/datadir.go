package catalog

import (
	"os"
	"path/filepath"
	"runtime"
)

// DirEnv overrides the data directory when set.
const DirEnv = "PACE_DIR"

// ResolveDataDir picks the data directory: an explicit flag value wins, then
// $PACE_DIR, then the per-OS default.
func ResolveDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	return DefaultDataDir()
}

// DefaultDataDir returns the per-OS location of the stage catalog.
//
//   - macOS:   ~/Library/Application Support/pace
//   - Linux:   $XDG_DATA_HOME/pace, else ~/.local/share/pace
//   - Windows: %LOCALAPPDATA%\pace, else %APPDATA%\pace
func DefaultDataDir() string {
	return dataDirFor(runtime.GOOS, os.Getenv)
}

func dataDirFor(goos string, getenv func(string) string) string {
	home, _ := os.UserHomeDir()

	var candidates []string
	switch goos {
	case "darwin":
		candidates = []string{filepath.Join(home, "Library", "Application Support")}
	case "windows":
		candidates = []string{getenv("LOCALAPPDATA"), getenv("APPDATA"), home}
	default:
		candidates = []string{getenv("XDG_DATA_HOME"), filepath.Join(home, ".local", "share")}
	}

	for _, base := range candidates {
		if base != "" {
			return filepath.Join(base, "pace")
		}
	}
	return "pace"
}
