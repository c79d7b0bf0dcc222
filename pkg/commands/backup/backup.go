// Package backup copies the data directory to a timestamped sibling
// folder so a bad edit or migration never loses recorded sessions.
package backup

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
)

// BackupPrefix names backup directories; existing backups are never
// recursed into when creating a new one.
const BackupPrefix = "backup_"

const timestampLayout = "20060102T150405"

// BackupOptions defines the options for the Backup command.
type BackupOptions struct {
	DataDir string
	Now     time.Time
}

// BackupResult reports where the backup was written.
type BackupResult struct {
	Path string
}

// Backup copies the data directory into <dataDir>/backup_<timestamp>,
// skipping prior backups.
func Backup(opts BackupOptions) (*BackupResult, error) {
	log := logging.GetLogger("commands.backup")

	if _, err := os.Stat(opts.DataDir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "data directory %s does not exist", opts.DataDir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", opts.DataDir)
	}

	backupPath := filepath.Join(opts.DataDir, BackupPrefix+opts.Now.Format(timestampLayout))
	if _, err := os.Stat(backupPath); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "backup path already exists: %s", backupPath)
	}

	if err := copyTree(opts.DataDir, backupPath); err != nil {
		return nil, err
	}

	log.Info().Str("path", backupPath).Msg("Backup created")
	return &BackupResult{Path: backupPath}, nil
}

// copyTree copies src into dst recursively, skipping backup_* directories.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", path)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot relativize %s", path)
		}
		if rel == "." {
			return os.MkdirAll(dst, 0755)
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), BackupPrefix) {
			return filepath.SkipDir
		}

		target := filepath.Join(dst, rel)
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", target)
			}
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", dst)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot copy %s", dst)
	}
	return nil
}
