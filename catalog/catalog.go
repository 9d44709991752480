package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Catalog owns the known books and mediates lending between books and borrowers.
//
// A book that was not added to the Catalog cannot be found by identifier.
// Catalog mutations are serialized. Borrower values are not safe for concurrent use
// outside the Catalog.
type Catalog struct {
	mu               sync.RWMutex
	books            []*Book
	journal          JournalEntries
	now              func() time.Time
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// New creates an empty Catalog with optional configuration.
func New(options ...Option) (*Catalog, error) {
	c := &Catalog{
		books:   make([]*Book, 0),
		journal: make(JournalEntries, 0),
		now:     time.Now,
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add appends the book to the catalog and returns its identifier.
// Returns an error wrapping ErrInvalidArgument for a nil book and ErrDuplicateBook if the book is already known.
func (c *Catalog) Add(ctx context.Context, book *Book) (uuid.UUID, error) {
	observer, ctx := c.startOperation(ctx, operationAdd, nil)

	if book == nil {
		err := fmt.Errorf("%w: book must not be nil", ErrInvalidArgument)
		observer.finishError(err)

		return uuid.Nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(book.ID()) > -1 {
		err := fmt.Errorf("%w: %s", ErrDuplicateBook, book.ID())
		observer.finishError(err, logAttrBookID, book.ID().String())

		return uuid.Nil, err
	}

	entry, err := c.journalEntryFor(BuildBookAddedToCatalog(book, c.now()))
	if err != nil {
		observer.finishError(err, logAttrBookID, book.ID().String())

		return uuid.Nil, err
	}

	c.books = append(c.books, book)
	c.appendToJournal(entry)
	c.recordLendingGauges(ctx)

	observer.finishSuccess(logAttrBookID, book.ID().String(), logAttrTitle, book.Title(), logAttrBookCount, len(c.books))

	return book.ID(), nil
}

// Remove deletes the book with the given identifier from the catalog.
// A lent book is retracted from its borrower first.
// Returns an error wrapping ErrInvalidArgument for uuid.Nil and ErrBookNotFound if no book matches.
func (c *Catalog) Remove(ctx context.Context, id uuid.UUID) error {
	observer, ctx := c.startOperation(ctx, operationRemove, map[string]string{logAttrBookID: id.String()})

	if id == uuid.Nil {
		err := fmt.Errorf("%w: book id must not be empty", ErrInvalidArgument)
		observer.finishError(err)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	index := c.indexOf(id)
	if index < 0 {
		err := fmt.Errorf("%w: %s", ErrBookNotFound, id)
		observer.finishError(err, logAttrBookID, id.String())

		return err
	}

	book := c.books[index]

	entries := make(JournalEntries, 0, 2)
	if borrower := book.Borrower(); borrower != nil {
		retracted, err := c.journalEntryFor(BuildBookRetractedFromBorrower(book, borrower, c.now()))
		if err != nil {
			observer.finishError(err, logAttrBookID, id.String())

			return err
		}

		entries = append(entries, retracted)
	}

	removed, err := c.journalEntryFor(BuildBookRemovedFromCatalog(book, c.now()))
	if err != nil {
		observer.finishError(err, logAttrBookID, id.String())

		return err
	}

	entries = append(entries, removed)

	if book.IsLent() {
		_ = book.Retract() // cannot fail, the book is lent
	}

	c.books = append(c.books[:index], c.books[index+1:]...)
	c.appendToJournal(entries...)
	c.recordLendingGauges(ctx)

	observer.finishSuccess(logAttrBookID, id.String(), logAttrBookCount, len(c.books))

	return nil
}

// Lend lends the book with the given identifier to the borrower.
//
// Returns an error wrapping ErrInvalidArgument for a nil borrower or uuid.Nil,
// and ErrBookNotFound if no book matches.
// Lending a book that is already lent does not return an error: the state is left unchanged,
// the rejection is logged, and the returned LendResult carries ErrAlreadyLent.
func (c *Catalog) Lend(ctx context.Context, borrower *Borrower, id uuid.UUID) (LendResult, error) {
	observer, ctx := c.startOperation(ctx, operationLend, map[string]string{logAttrBookID: id.String()})

	if borrower == nil {
		err := fmt.Errorf("%w: borrower must not be nil", ErrInvalidArgument)
		observer.finishError(err, logAttrBookID, id.String())

		return LendResult{}, err
	}

	if id == uuid.Nil {
		err := fmt.Errorf("%w: book id must not be empty", ErrInvalidArgument)
		observer.finishError(err, logAttrBorrowerID, borrower.ID().String())

		return LendResult{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	book := c.find(id)
	if book == nil {
		err := fmt.Errorf("%w: %s", ErrBookNotFound, id)
		observer.finishError(err, logAttrBookID, id.String(), logAttrBorrowerID, borrower.ID().String())

		return LendResult{}, err
	}

	lent, err := c.journalEntryFor(BuildBookLentToBorrower(book, borrower, c.now()))
	if err != nil {
		observer.finishError(err, logAttrBookID, id.String())

		return LendResult{}, err
	}

	if lendErr := book.Lend(borrower); lendErr != nil {
		if !errors.Is(lendErr, ErrAlreadyLent) {
			observer.finishError(lendErr, logAttrBookID, id.String())

			return LendResult{}, lendErr
		}

		failed, err := c.journalEntryFor(BuildLendingBookToBorrowerFailed(book, borrower, lendErr.Error(), c.now()))
		if err != nil {
			observer.finishError(err, logAttrBookID, id.String())

			return LendResult{}, err
		}

		c.appendToJournal(failed)
		observer.finishRejected(
			lendErr,
			logAttrBookID, id.String(),
			logAttrBorrowerID, borrower.ID().String(),
			logAttrBorrowerName, borrower.Name(),
		)

		return alreadyLentResult(book, borrower, lendErr), nil
	}

	c.appendToJournal(lent)
	c.recordLendingGauges(ctx)

	observer.finishSuccess(
		logAttrBookID, id.String(),
		logAttrBorrowerID, borrower.ID().String(),
		logAttrBorrowerName, borrower.Name(),
	)

	return lentResult(book, borrower), nil
}

// Retract makes the lent book with the given identifier available again and
// removes it from its borrower's held list.
// Returns an error wrapping ErrInvalidArgument for uuid.Nil, ErrBookNotFound if no book matches,
// and ErrNotLent if the book is available.
func (c *Catalog) Retract(ctx context.Context, id uuid.UUID) error {
	observer, ctx := c.startOperation(ctx, operationRetract, map[string]string{logAttrBookID: id.String()})

	if id == uuid.Nil {
		err := fmt.Errorf("%w: book id must not be empty", ErrInvalidArgument)
		observer.finishError(err)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	book := c.find(id)
	if book == nil {
		err := fmt.Errorf("%w: %s", ErrBookNotFound, id)
		observer.finishError(err, logAttrBookID, id.String())

		return err
	}

	borrower := book.Borrower()
	if borrower == nil {
		observer.finishError(ErrNotLent, logAttrBookID, id.String())

		return ErrNotLent
	}

	entry, err := c.journalEntryFor(BuildBookRetractedFromBorrower(book, borrower, c.now()))
	if err != nil {
		observer.finishError(err, logAttrBookID, id.String())

		return err
	}

	if err := book.Retract(); err != nil {
		observer.finishError(err, logAttrBookID, id.String())

		return err
	}

	c.appendToJournal(entry)
	c.recordLendingGauges(ctx)

	observer.finishSuccess(
		logAttrBookID, id.String(),
		logAttrBorrowerID, borrower.ID().String(),
		logAttrBorrowerName, borrower.Name(),
	)

	return nil
}

// FindByID returns the book with the given identifier.
// Returns an error wrapping ErrInvalidArgument for uuid.Nil and ErrBookNotFound if no book matches.
func (c *Catalog) FindByID(ctx context.Context, id uuid.UUID) (*Book, error) {
	observer, ctx := c.startOperation(ctx, operationFind, map[string]string{logAttrBookID: id.String()})

	if id == uuid.Nil {
		err := fmt.Errorf("%w: book id must not be empty", ErrInvalidArgument)
		observer.finishError(err)

		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	book := c.find(id)
	if book == nil {
		err := fmt.Errorf("%w: %s", ErrBookNotFound, id)
		observer.finishError(err, logAttrBookID, id.String())

		return nil, err
	}

	c.logDebug(ctx, logMsgOperation+operationFind, logAttrBookID, id.String())
	observer.recordCallMetrics(StatusSuccess, time.Since(observer.start))
	observer.finishSpan(StatusSuccess, nil)

	return book, nil
}

// BookCount returns the number of books in the catalog.
func (c *Catalog) BookCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.books)
}

// AllBooks returns a snapshot of the books in insertion order.
// Changing the returned slice does not change the catalog.
func (c *Catalog) AllBooks() []*Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]*Book, len(c.books))
	copy(books, c.books)

	return books
}

// BorrowedBookCount returns the number of lent books.
func (c *Catalog) BorrowedBookCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.countLent()
}

// AvailableBookCount returns the number of books that can be lent.
func (c *Catalog) AvailableBookCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.books) - c.countLent()
}

// BooksLentTo returns the catalog books currently lent to the borrower with the given identifier, in insertion order.
func (c *Catalog) BooksLentTo(borrowerID uuid.UUID) []*Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]*Book, 0)
	for _, book := range c.books {
		if borrower := book.Borrower(); borrower != nil && borrower.ID() == borrowerID {
			books = append(books, book)
		}
	}

	return books
}

// Journal returns a copy of the lending journal in recording order.
func (c *Catalog) Journal() JournalEntries {
	c.mu.RLock()
	defer c.mu.RUnlock()

	journal := make(JournalEntries, len(c.journal))
	copy(journal, c.journal)

	return journal
}

// journalEntryFor serializes a domain event. The caller must hold the lock.
func (c *Catalog) journalEntryFor(event DomainEvent) (JournalEntry, error) {
	messageID := uuid.New()

	return JournalEntryFrom(event, BuildEntryMetadata(messageID, messageID, messageID))
}

// appendToJournal assigns sequence numbers and appends. The caller must hold the lock.
func (c *Catalog) appendToJournal(entries ...JournalEntry) {
	for _, entry := range entries {
		entry.SequenceNumber = uint(len(c.journal)) + 1
		c.journal = append(c.journal, entry)
	}
}

func (c *Catalog) find(id uuid.UUID) *Book {
	if index := c.indexOf(id); index > -1 {
		return c.books[index]
	}

	return nil
}

func (c *Catalog) indexOf(id uuid.UUID) int {
	for i, book := range c.books {
		if book.ID() == id {
			return i
		}
	}

	return -1
}

func (c *Catalog) countLent() int {
	lent := 0
	for _, book := range c.books {
		if book.IsLent() {
			lent++
		}
	}

	return lent
}
