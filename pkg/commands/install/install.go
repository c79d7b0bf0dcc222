// Package install puts a built hiper binary on the user's PATH. It
// marks the binary executable and appends a PATH export to the shell
// startup file, skipping the append when the entry is already
// registered so repeated runs leave the file unchanged.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/paths"
)

// DefaultBinaryName is the binary installed when none is given.
const DefaultBinaryName = "hiper"

// InstallOptions defines the options for the Install command. All paths
// are resolved by the caller; this package reads no environment.
type InstallOptions struct {
	// RepoRoot is the absolute path to the repository root containing bin/.
	RepoRoot string
	// HomeDir is the user's home directory.
	HomeDir string
	// BinaryName overrides the installed binary name. Defaults to "hiper".
	BinaryName string
	// Shell is the shell name (basename of $SHELL), used to pick the
	// startup file when StartupFile is empty.
	Shell string
	// StartupFile overrides the shell startup file to register the PATH
	// entry in, relative to HomeDir unless absolute.
	StartupFile string
}

// InstallResult reports what Install did.
type InstallResult struct {
	BinaryPath  string
	PathEntry   string
	StartupFile string
	// AlreadyPresent is true when the startup file already registered the
	// PATH entry and nothing was appended.
	AlreadyPresent bool
	// CreatedStartupFile is true when the startup file did not exist before.
	CreatedStartupFile bool
}

// ExportLine returns the export statement registering entry on the PATH.
func ExportLine(entry string) string {
	return fmt.Sprintf(`export PATH="%s:$PATH"`, entry)
}

// Install verifies the binary exists, marks it executable and
// idempotently appends the PATH export to the startup file. A missing
// binary is fatal and performs no work; everything else is normal
// control flow.
func Install(opts InstallOptions) (*InstallResult, error) {
	log := logging.GetLogger("commands.install")

	binName := opts.BinaryName
	if binName == "" {
		binName = DefaultBinaryName
	}

	binPath := filepath.Join(opts.RepoRoot, "bin", binName)
	info, err := os.Stat(binPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrBinaryNotFound, "binary not found at %s", binPath).
				WithDetail("path", binPath)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", binPath)
	}

	// Always re-apply the executable bits, regardless of prior state.
	if err := os.Chmod(binPath, info.Mode().Perm()|0o111); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot make %s executable", binPath)
	}
	log.Debug().Str("binary", binPath).Msg("Marked binary executable")

	startupFile := opts.StartupFile
	if startupFile == "" {
		startupFile = paths.StartupFileFor(opts.Shell)
	}
	if !filepath.IsAbs(startupFile) {
		startupFile = filepath.Join(opts.HomeDir, startupFile)
	}

	result := &InstallResult{
		BinaryPath:  binPath,
		PathEntry:   filepath.Join(opts.RepoRoot, "bin"),
		StartupFile: startupFile,
	}

	registered, exists, err := hasPathEntry(startupFile, result.PathEntry)
	if err != nil {
		return nil, err
	}
	if registered {
		log.Info().Str("file", startupFile).Str("entry", result.PathEntry).Msg("PATH entry already registered")
		result.AlreadyPresent = true
		return result, nil
	}

	if err := appendExport(startupFile, result.PathEntry, exists); err != nil {
		return nil, err
	}
	log.Info().Str("file", startupFile).Str("entry", result.PathEntry).Msg("Appended PATH entry")
	result.CreatedStartupFile = !exists
	return result, nil
}

// hasPathEntry reports whether the startup file already contains the
// exact export statement for entry. Matching is line-by-line against the
// expected statement rather than by substring, so a comment mentioning
// the path does not count as registered.
func hasPathEntry(startupFile, entry string) (registered, exists bool, err error) {
	content, err := os.ReadFile(startupFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", startupFile)
	}

	want := ExportLine(entry)
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == want {
			return true, true, nil
		}
	}
	return false, true, nil
}

// appendExport appends the export statement to the startup file,
// creating it when absent. A file that does not end in a newline gets
// one first so the export always lands on its own line.
func appendExport(startupFile, entry string, exists bool) error {
	var needsLeadingNewline bool
	if exists {
		content, err := os.ReadFile(startupFile)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", startupFile)
		}
		needsLeadingNewline = len(content) > 0 && content[len(content)-1] != '\n'
	}

	f, err := os.OpenFile(startupFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot open %s", startupFile)
	}
	defer func() { _ = f.Close() }()

	line := ExportLine(entry) + "\n"
	if needsLeadingNewline {
		line = "\n" + line
	}
	if _, err := f.WriteString(line); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot append to %s", startupFile)
	}
	return nil
}
