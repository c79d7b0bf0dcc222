package read

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/storage"
)

func intPtr(v int) *int { return &v }

func TestAdd(t *testing.T) {
	dir := t.TempDir()

	book, err := Add(AddOptions{DataDir: dir, Title: "SICP", Length: 657})
	require.NoError(t, err)
	assert.Equal(t, storage.Book{Title: "SICP", Length: 657}, *book)

	books, err := storage.LoadBooks(dir)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 0, books[0].CurrentPage, "new books start at page zero")
}

func TestAdd_RejectsDuplicateTitle(t *testing.T) {
	dir := t.TempDir()
	_, err := Add(AddOptions{DataDir: dir, Title: "SICP", Length: 657})
	require.NoError(t, err)

	_, err = Add(AddOptions{DataDir: dir, Title: "SICP", Length: 100})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestAdd_RejectsInvalidLength(t *testing.T) {
	for _, length := range []int{0, -10} {
		_, err := Add(AddOptions{DataDir: t.TempDir(), Title: "x", Length: length})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		startAt  int
		plus     *int
		at       *int
		wantPage int
	}{
		{name: "plus_increments", startAt: 10, plus: intPtr(5), wantPage: 15},
		{name: "at_sets", startAt: 10, at: intPtr(42), wantPage: 42},
		{name: "clamps_to_length", startAt: 90, plus: intPtr(50), wantPage: 100},
		{name: "clamps_to_zero", startAt: 5, plus: intPtr(-20), wantPage: 0},
		{name: "at_beyond_length_clamps", at: intPtr(500), wantPage: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := storage.SaveBooks(dir, []storage.Book{{Title: "b", Length: 100, CurrentPage: tt.startAt}})
			require.NoError(t, err)

			book, err := Update(UpdateOptions{DataDir: dir, Title: "b", Plus: tt.plus, At: tt.at})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, book.CurrentPage)

			books, err := storage.LoadBooks(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, books[0].CurrentPage)
		})
	}
}

func TestUpdate_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := storage.SaveBooks(dir, []storage.Book{{Title: "b", Length: 100}})
	require.NoError(t, err)

	_, err = Update(UpdateOptions{DataDir: dir, Title: "missing", Plus: intPtr(1)})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = Update(UpdateOptions{DataDir: dir, Title: "b"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestProgress(t *testing.T) {
	dir := t.TempDir()
	_, err := storage.SaveBooks(dir, []storage.Book{{Title: "b", Length: 100, CurrentPage: 25}})
	require.NoError(t, err)

	book, err := Progress(dir, "b")
	require.NoError(t, err)
	assert.Equal(t, 25, book.CurrentPage)

	_, err = Progress(dir, "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		book storage.Book
		want float64
	}{
		{storage.Book{Length: 100, CurrentPage: 25}, 25},
		{storage.Book{Length: 100, CurrentPage: 0}, 0},
		{storage.Book{Length: 100, CurrentPage: 100}, 100},
		{storage.Book{Length: 3, CurrentPage: 1}, 100.0 / 3},
		{storage.Book{Length: 0, CurrentPage: 10}, 0},
		{storage.Book{Length: 10, CurrentPage: 20}, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Percent(tt.book), 0.001)
	}
}
