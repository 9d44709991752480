package catalog

import (
	"time"
)

const (
	// BookAddedToCatalogEventType is the event type identifier.
	BookAddedToCatalogEventType = "BookAddedToCatalog"

	// BookRemovedFromCatalogEventType is the event type identifier.
	BookRemovedFromCatalogEventType = "BookRemovedFromCatalog"

	// BookLentToBorrowerEventType is the event type identifier.
	BookLentToBorrowerEventType = "BookLentToBorrower"

	// LendingBookToBorrowerFailedEventType is the event type identifier.
	LendingBookToBorrowerFailedEventType = "LendingBookToBorrowerFailed"

	// BookRetractedFromBorrowerEventType is the event type identifier.
	BookRetractedFromBorrowerEventType = "BookRetractedFromBorrower"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents something that happened to the catalog.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// IsErrorEvent returns true if this event represents a rejected operation.
	IsErrorEvent() bool
}

// BookAddedToCatalog represents when a book becomes known to the catalog.
type BookAddedToCatalog struct {
	BookID     string
	Title      string
	Author     string
	Pages      int
	OccurredAt OccurredAt
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(book *Book, occurredAt time.Time) BookAddedToCatalog {
	return BookAddedToCatalog{
		BookID:     book.ID().String(),
		Title:      book.Title(),
		Author:     book.Author(),
		Pages:      book.Pages(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAddedToCatalog) IsEventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}

// BookRemovedFromCatalog represents when a book is no longer known to the catalog.
type BookRemovedFromCatalog struct {
	BookID     string
	OccurredAt OccurredAt
}

// BuildBookRemovedFromCatalog creates a new BookRemovedFromCatalog event.
func BuildBookRemovedFromCatalog(book *Book, occurredAt time.Time) BookRemovedFromCatalog {
	return BookRemovedFromCatalog{
		BookID:     book.ID().String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRemovedFromCatalog) IsEventType() string {
	return BookRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRemovedFromCatalog) IsErrorEvent() bool {
	return false
}

// BookLentToBorrower represents when a book is lent to a borrower.
type BookLentToBorrower struct {
	BookID       string
	BorrowerID   string
	BorrowerName string
	OccurredAt   OccurredAt
}

// BuildBookLentToBorrower creates a new BookLentToBorrower event.
func BuildBookLentToBorrower(book *Book, borrower *Borrower, occurredAt time.Time) BookLentToBorrower {
	return BookLentToBorrower{
		BookID:       book.ID().String(),
		BorrowerID:   borrower.ID().String(),
		BorrowerName: borrower.Name(),
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookLentToBorrower) IsEventType() string {
	return BookLentToBorrowerEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToBorrower) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToBorrower) IsErrorEvent() bool {
	return false
}

// LendingBookToBorrowerFailed represents when lending a book was rejected, e.g. because it is already lent.
type LendingBookToBorrowerFailed struct {
	BookID      string
	BorrowerID  string
	FailureInfo string
	OccurredAt  OccurredAt
}

// BuildLendingBookToBorrowerFailed creates a new LendingBookToBorrowerFailed event.
func BuildLendingBookToBorrowerFailed(
	book *Book,
	borrower *Borrower,
	failureInfo string,
	occurredAt time.Time,
) LendingBookToBorrowerFailed {

	return LendingBookToBorrowerFailed{
		BookID:      book.ID().String(),
		BorrowerID:  borrower.ID().String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LendingBookToBorrowerFailed) IsEventType() string {
	return LendingBookToBorrowerFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookToBorrowerFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e LendingBookToBorrowerFailed) IsErrorEvent() bool {
	return true
}

// BookRetractedFromBorrower represents when a lent book becomes available again.
type BookRetractedFromBorrower struct {
	BookID     string
	BorrowerID string
	OccurredAt OccurredAt
}

// BuildBookRetractedFromBorrower creates a new BookRetractedFromBorrower event.
func BuildBookRetractedFromBorrower(book *Book, borrower *Borrower, occurredAt time.Time) BookRetractedFromBorrower {
	return BookRetractedFromBorrower{
		BookID:     book.ID().String(),
		BorrowerID: borrower.ID().String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRetractedFromBorrower) IsEventType() string {
	return BookRetractedFromBorrowerEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRetractedFromBorrower) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRetractedFromBorrower) IsErrorEvent() bool {
	return false
}
