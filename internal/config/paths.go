package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetHome returns LETTERCOUNT_HOME or ~/.lettercount default
func GetHome() string {
	home := os.Getenv("LETTERCOUNT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".lettercount"
		}
		return filepath.Join(homeDir, ".lettercount")
	}
	return ExpandPath(home)
}

// GetLogDir returns the OS-specific log directory.
// LETTERCOUNT_HOME, when set, takes precedence and logs go to $LETTERCOUNT_HOME/logs.
func GetLogDir() (string, error) {
	if home := os.Getenv("LETTERCOUNT_HOME"); home != "" {
		return filepath.Join(ExpandPath(home), "logs"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Logs/lettercount
		return filepath.Join(homeDir, "Library", "Logs", "lettercount"), nil
	case "linux":
		// Linux: ~/.local/state/lettercount or XDG_STATE_HOME
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "lettercount"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "lettercount", "logs"), nil
	default:
		return filepath.Join(GetHome(), "logs"), nil
	}
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
