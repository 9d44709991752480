package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Borrower holds the books currently lent to them, in lending order.
type Borrower struct {
	id    uuid.UUID
	name  string
	books []*Book
}

// NewBorrower creates a Borrower with a fresh random identifier and no held books.
func NewBorrower(name string) *Borrower {
	return &Borrower{
		id:    uuid.New(),
		name:  name,
		books: make([]*Book, 0),
	}
}

// ID returns the borrower identifier.
func (b *Borrower) ID() uuid.UUID {
	return b.id
}

// Name returns the borrower name.
func (b *Borrower) Name() string {
	return b.name
}

// Books returns a copy of the held list.
func (b *Borrower) Books() []*Book {
	books := make([]*Book, len(b.books))
	copy(books, b.books)

	return books
}

// HoldsBook reports whether a book with the given id is in the held list.
func (b *Borrower) HoldsBook(id uuid.UUID) bool {
	return b.indexOf(id) > -1
}

// ReturnBook removes the first held book with the given id.
// Returns ErrBookNotHeld if the borrower does not hold such a book.
//
// It only touches the held list. Use Book.Retract or Catalog.Retract to
// also make the book available again.
func (b *Borrower) ReturnBook(id uuid.UUID) error {
	if !b.release(id) {
		return fmt.Errorf("%w: %s does not have book with id: %s", ErrBookNotHeld, b.name, id)
	}

	return nil
}

func (b *Borrower) String() string {
	return fmt.Sprintf("%s (%d books)", b.name, len(b.books))
}

func (b *Borrower) hold(book *Book) {
	if b.HoldsBook(book.id) {
		return
	}

	b.books = append(b.books, book)
}

func (b *Borrower) release(id uuid.UUID) bool {
	index := b.indexOf(id)
	if index < 0 {
		return false
	}

	b.books = append(b.books[:index], b.books[index+1:]...)

	return true
}

func (b *Borrower) indexOf(id uuid.UUID) int {
	for i, book := range b.books {
		if book.id == id {
			return i
		}
	}

	return -1
}
