// Package catalog provides an in-memory library catalog: books, borrowers,
// and a Catalog that owns the books and mediates lending.
//
// A Book is either available or lent. Book.Lend and Book.Retract are the only
// transitions, and they keep the book's borrower reference and the borrower's
// held list in sync. The Catalog wraps them with identity lookup, validation,
// observability, and a journal of what happened.
//
// Key types:
//   - Book: a lendable record with a generated identifier
//   - Borrower: holds the books currently lent to them
//   - Catalog: the owner of all known books
//   - LendResult: the explicit outcome of Catalog.Lend
//   - JournalEntry: a serialized domain event recorded by the Catalog
//
// Common usage pattern:
//
//	lib, err := catalog.New(catalog.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	book, err := catalog.NewBook("Things fall apart", "Chinua Achebe", 200)
//	if err != nil {
//		// handle error
//	}
//
//	id, _ := lib.Add(ctx, book)
//	result, err := lib.Lend(ctx, catalog.NewBorrower("Vic"), id)
//	if err != nil {
//		// invalid input or unknown book
//	}
//	if rejected := result.HasError(); rejected != nil {
//		// the book was already lent, nothing changed
//	}
//
// A Catalog is constructed explicitly. Applications that want one shared
// instance create it once at their composition root and pass it around.
package catalog
