// Package read manages the reading list: adding books, tracking page
// progress and reporting how far along each book is.
package read

import (
	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

// AddOptions defines the options for adding a book.
type AddOptions struct {
	DataDir string
	Title   string
	// Length is the total number of pages, must be positive.
	Length int
}

// Add registers a new book at page zero. Duplicate titles are rejected.
func Add(opts AddOptions) (*storage.Book, error) {
	log := logging.GetLogger("commands.read")

	if opts.Length <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "length must be > 0, got %d", opts.Length)
	}

	books, err := storage.LoadBooks(opts.DataDir)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.Title == opts.Title {
			return nil, errors.Newf(errors.ErrAlreadyExists, "book %q already exists", opts.Title)
		}
	}

	book := storage.Book{Title: opts.Title, Length: opts.Length}
	books = append(books, book)
	if _, err := storage.SaveBooks(opts.DataDir, books); err != nil {
		return nil, err
	}

	log.Info().Str("title", opts.Title).Int("length", opts.Length).Msg("Added book")
	return &book, nil
}

// UpdateOptions defines the options for updating reading progress.
// Exactly one of Plus or At must be set.
type UpdateOptions struct {
	DataDir string
	Title   string
	// Plus increments the current page by this amount when non-nil.
	Plus *int
	// At sets the current page to this value when non-nil.
	At *int
}

// Update moves the bookmark for a book, clamping the page into
// [0, length].
func Update(opts UpdateOptions) (*storage.Book, error) {
	log := logging.GetLogger("commands.read")

	books, err := storage.LoadBooks(opts.DataDir)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, b := range books {
		if b.Title == opts.Title {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.Newf(errors.ErrNotFound, "book %q not found", opts.Title)
	}

	book := &books[idx]
	switch {
	case opts.Plus != nil:
		book.CurrentPage += *opts.Plus
	case opts.At != nil:
		book.CurrentPage = *opts.At
	default:
		return nil, errors.New(errors.ErrInvalidInput, "either --plus or --at is required")
	}

	if book.CurrentPage < 0 {
		book.CurrentPage = 0
	}
	if book.CurrentPage > book.Length {
		book.CurrentPage = book.Length
	}

	if _, err := storage.SaveBooks(opts.DataDir, books); err != nil {
		return nil, err
	}

	log.Info().Str("title", opts.Title).Int("page", book.CurrentPage).Msg("Updated reading progress")
	return book, nil
}

// Progress returns the book with the given title.
func Progress(dataDir, title string) (*storage.Book, error) {
	books, err := storage.LoadBooks(dataDir)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.Title == title {
			if b.Length <= 0 {
				return nil, errors.Newf(errors.ErrInvalidInput, "book %q has invalid length", title)
			}
			return &b, nil
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "book %q not found", title)
}

// Percent is the completed share of the book, capped at 100.
func Percent(b storage.Book) float64 {
	if b.Length <= 0 {
		return 0
	}
	pct := float64(b.CurrentPage) / float64(b.Length) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
