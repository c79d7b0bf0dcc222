// Package storage persists hiper's data as CSV files in the data
// directory: sessions.csv, goals.csv, log.csv and read.csv. Every file
// carries a header row. Malformed rows are skipped on load rather than
// failing the whole read, so a damaged line never locks the user out of
// their data.
package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
)

// ensureDir creates the data directory if it does not exist.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create data directory %s", dir)
	}
	return nil
}

// readRecords loads all CSV records from path, returning (nil, nil) when
// the file does not exist or is empty.
func readRecords(path string) ([][]string, error) {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageRead, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageRead, "cannot parse %s", path)
	}
	return records, nil
}

// appendRecord appends a single row to the CSV at path, writing the
// header first when the file is new or empty.
func appendRecord(dir, name string, header, row []string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		if err := writeAll(path, header, nil); err != nil {
			return "", err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrStorageWrite, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return "", errors.Wrapf(err, errors.ErrStorageWrite, "cannot append to %s", path)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrapf(err, errors.ErrStorageWrite, "cannot append to %s", path)
	}
	return path, nil
}

// writeAll rewrites the CSV at path with a header and rows.
func writeAll(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStorageWrite, "cannot create %s", path)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, errors.ErrStorageWrite, "cannot write header to %s", path)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, errors.ErrStorageWrite, "cannot write row to %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, errors.ErrStorageWrite, "cannot write %s", path)
	}
	return nil
}

// rewriteFile rewrites name in dir with header and rows, creating dir
// when needed.
func rewriteFile(dir, name string, header []string, rows [][]string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := writeAll(path, header, rows); err != nil {
		return "", err
	}
	return path, nil
}

func logSkippedRow(file string, line int) {
	log := logging.GetLogger("storage")
	log.Warn().Str("file", file).Int("line", line).Msg("Skipping malformed row")
}
