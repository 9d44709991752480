package catalog_test

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/testutil/testdoubles"
)

func Test_NewBook_Success(t *testing.T) {
	book, err := catalog.NewBook("Rich dad", "Robert Kiyosaki", 400)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, book.ID(), "book should get a generated id")
	assert.Equal(t, "Rich dad", book.Title())
	assert.Equal(t, "Robert Kiyosaki", book.Author())
	assert.Equal(t, 400, book.Pages())
	assert.Nil(t, book.Borrower(), "new book should not have a borrower")
	assert.False(t, book.IsLent())
	assert.Equal(t, catalog.StatusAvailable, book.Status())
}

func Test_NewBook_GeneratesUniqueIDs(t *testing.T) {
	seen := make(map[uuid.UUID]struct{})

	for range 1000 {
		book, err := catalog.NewBook("Things fall apart", "Chinua Achebe", 200)
		require.NoError(t, err)

		_, duplicate := seen[book.ID()]
		require.False(t, duplicate, "book ids must be unique")
		seen[book.ID()] = struct{}{}
	}
}

func Test_NewBook_InvalidArguments(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		author      string
		pages       int
		errContains string
	}{
		{name: "empty_title", title: "", author: "Chinua Achebe", pages: 200, errContains: "title"},
		{name: "empty_author", title: "Things fall apart", author: "", pages: 200, errContains: "author"},
		{name: "zero_pages", title: "Things fall apart", author: "Chinua Achebe", pages: 0, errContains: "pages"},
		{name: "negative_pages", title: "Things fall apart", author: "Chinua Achebe", pages: -3, errContains: "pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := catalog.NewBook(tt.title, tt.author, tt.pages)

			assert.Nil(t, book)
			assert.ErrorIs(t, err, catalog.ErrInvalidArgument)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func Test_NewBook_EmitsCreationNotification(t *testing.T) {
	handlerSpy := testdoubles.NewLogHandlerSpy(false)

	book, err := catalog.NewBook("Rich dad", "Robert Kiyosaki", 400, catalog.WithCreationLogger(slog.New(handlerSpy)))
	require.NoError(t, err)

	assert.True(t, handlerSpy.HasRecord(slog.LevelInfo, "new book created"))

	loggedID, found := handlerSpy.AttrValue("new book created", "book_id")
	assert.True(t, found)
	assert.Equal(t, book.ID().String(), loggedID)
}

func Test_Book_Lend_Success(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	borrower := catalog.NewBorrower("Vic")

	err := book.Lend(borrower)

	require.NoError(t, err)
	assert.Same(t, borrower, book.Borrower())
	assert.Equal(t, catalog.StatusLent, book.Status())
	assert.Equal(t, []*catalog.Book{book}, borrower.Books())
}

func Test_Book_Lend_AlreadyLent(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	vic := catalog.NewBorrower("Vic")
	chijioke := catalog.NewBorrower("Chijioke")
	require.NoError(t, book.Lend(vic))

	err := book.Lend(chijioke)

	assert.ErrorIs(t, err, catalog.ErrAlreadyLent)
	assert.Same(t, vic, book.Borrower(), "borrower must not change")
	assert.Empty(t, chijioke.Books())
	assert.Len(t, vic.Books(), 1)
}

func Test_Book_Lend_NilBorrower(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)

	err := book.Lend(nil)

	assert.ErrorIs(t, err, catalog.ErrInvalidArgument)
	assert.False(t, book.IsLent())
}

func Test_Book_Retract_Success(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	borrower := catalog.NewBorrower("Vic")
	require.NoError(t, book.Lend(borrower))

	err := book.Retract()

	require.NoError(t, err)
	assert.Nil(t, book.Borrower())
	assert.Equal(t, catalog.StatusAvailable, book.Status())
	assert.Empty(t, borrower.Books(), "retracted book must leave the held list")
}

func Test_Book_Retract_NotLent(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)

	err := book.Retract()

	assert.ErrorIs(t, err, catalog.ErrNotLent)
}

func Test_Book_Retract_AfterBorrowerReturnedDirectly(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	borrower := catalog.NewBorrower("Vic")
	require.NoError(t, book.Lend(borrower))
	require.NoError(t, borrower.ReturnBook(book.ID()))

	err := book.Retract()

	require.NoError(t, err)
	assert.False(t, book.IsLent())
	assert.Empty(t, borrower.Books())
}

func Test_Book_CanBeLentAgainAfterRetract(t *testing.T) {
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	vic := catalog.NewBorrower("Vic")
	chijioke := catalog.NewBorrower("Chijioke")
	require.NoError(t, book.Lend(vic))
	require.NoError(t, book.Retract())

	err := book.Lend(chijioke)

	require.NoError(t, err)
	assert.Same(t, chijioke, book.Borrower())
	assert.Empty(t, vic.Books())
	assert.Len(t, chijioke.Books(), 1)
}

func mustBuildBook(t *testing.T, title string, author string, pages int) *catalog.Book {
	t.Helper()

	book, err := catalog.NewBook(title, author, pages)
	require.NoError(t, err, "should build a valid book")

	return book
}
