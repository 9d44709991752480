package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

func Test_NewBorrower(t *testing.T) {
	borrower := catalog.NewBorrower("Vic")

	assert.NotEqual(t, uuid.Nil, borrower.ID())
	assert.Equal(t, "Vic", borrower.Name())
	assert.Empty(t, borrower.Books())
	assert.NotEqual(t, borrower.ID(), catalog.NewBorrower("Vic").ID(), "borrowers with the same name get different ids")
}

func Test_Borrower_Books_ReturnsCopy(t *testing.T) {
	borrower := catalog.NewBorrower("Vic")
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	require.NoError(t, book.Lend(borrower))

	books := borrower.Books()
	books[0] = nil

	assert.Same(t, book, borrower.Books()[0], "changing the returned slice must not change the held list")
}

func Test_Borrower_Books_KeepsLendingOrder(t *testing.T) {
	borrower := catalog.NewBorrower("Vic")
	first := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	second := mustBuildBook(t, "Half of a yellow sun", "Chimamanda", 170)
	require.NoError(t, second.Lend(borrower))
	require.NoError(t, first.Lend(borrower))

	assert.Equal(t, []*catalog.Book{second, first}, borrower.Books())
}

func Test_Borrower_ReturnBook_Success(t *testing.T) {
	borrower := catalog.NewBorrower("Vic")
	first := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)
	second := mustBuildBook(t, "Things fall apart", "Chinua Achebe", 200)
	require.NoError(t, first.Lend(borrower))
	require.NoError(t, second.Lend(borrower))

	err := borrower.ReturnBook(first.ID())

	require.NoError(t, err)
	assert.Equal(t, []*catalog.Book{second}, borrower.Books())
	assert.False(t, borrower.HoldsBook(first.ID()))
	assert.True(t, borrower.HoldsBook(second.ID()))
}

func Test_Borrower_ReturnBook_NotHeld(t *testing.T) {
	borrower := catalog.NewBorrower("Vic")
	book := mustBuildBook(t, "Rich dad", "Robert Kiyosaki", 400)

	err := borrower.ReturnBook(book.ID())

	assert.ErrorIs(t, err, catalog.ErrBookNotHeld)
	assert.ErrorContains(t, err, "Vic does not have book with id")
}
