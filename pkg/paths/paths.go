// Package paths provides centralized path handling for hiper.
// It implements XDG Base Directory compliance and keeps all
// environment-derived locations in one place so the rest of the
// codebase receives resolved paths as plain data.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for hiper
	EnvDataDir = "HIPER_DATA_DIR"

	// EnvShell is the standard login shell variable
	EnvShell = "SHELL"
)

// Default directories and files
const (
	// AppDirName is the directory name for hiper-specific files
	AppDirName = "hiper"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.json"

	// SessionsFileName holds recorded focus sessions
	SessionsFileName = "sessions.csv"

	// GoalsFileName holds planned goals
	GoalsFileName = "goals.csv"

	// LogFileName holds timestamped log entries
	LogFileName = "log.csv"

	// ReadFileName holds the reading list
	ReadFileName = "read.csv"
)

// DefaultDataDir returns the default hiper data directory, honoring
// HIPER_DATA_DIR before falling back to the XDG data home.
func DefaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ConfigFile returns the path to the config file inside dir.
// The config file always lives in the default data directory, even when
// a custom savedir relocates the CSV files.
func ConfigFile(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// StartupFileFor maps a shell name (the basename of $SHELL) to the
// startup file hiper appends its PATH export to, relative to home.
func StartupFileFor(shell string) string {
	switch shell {
	case "bash":
		return ".bashrc"
	case "zsh":
		return ".zshrc"
	default:
		return ".profile"
	}
}

// DetectShell returns the basename of the given SHELL value, or "bash"
// when it is empty.
func DetectShell(shellEnv string) string {
	if shellEnv == "" {
		return "bash"
	}
	return filepath.Base(shellEnv)
}

// ExecutableRepoRoot infers the repository root from the running binary,
// assuming the standard layout <root>/bin/hiper. It returns an empty
// string when the location cannot be determined.
func ExecutableRepoRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return ""
	}
	binDir := filepath.Dir(exe)
	if filepath.Base(binDir) != "bin" {
		return ""
	}
	return filepath.Dir(binDir)
}
