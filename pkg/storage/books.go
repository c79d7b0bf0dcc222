package storage

import (
	"path/filepath"
	"strconv"

	"github.com/mroximut/hiper/pkg/paths"
)

var readHeader = []string{"title", "length", "current_page"}

// Book is one entry in the reading list.
type Book struct {
	Title       string
	Length      int
	CurrentPage int
}

// LoadBooks reads the reading list. Rows that cannot be parsed are skipped.
func LoadBooks(dir string) ([]Book, error) {
	records, err := readRecords(filepath.Join(dir, paths.ReadFileName))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	var books []Book
	for i, row := range records[1:] {
		if len(row) < 3 || row[0] == "" {
			logSkippedRow(paths.ReadFileName, i+2)
			continue
		}
		length, err1 := strconv.Atoi(row[1])
		current, err2 := strconv.Atoi(row[2])
		if err1 != nil || err2 != nil {
			logSkippedRow(paths.ReadFileName, i+2)
			continue
		}
		books = append(books, Book{Title: row[0], Length: length, CurrentPage: current})
	}
	return books, nil
}

// SaveBooks rewrites the reading list and returns the file path.
func SaveBooks(dir string, books []Book) (string, error) {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			b.Title,
			strconv.Itoa(b.Length),
			strconv.Itoa(b.CurrentPage),
		})
	}
	return rewriteFile(dir, paths.ReadFileName, readHeader, rows)
}
