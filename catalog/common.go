package catalog

import (
	"errors"
	"time"
)

var ErrInvalidArgument = errors.New("invalid argument")
var ErrAlreadyLent = errors.New("book is already lent")
var ErrNotLent = errors.New("book is not lent")
var ErrBookNotHeld = errors.New("borrower does not hold the book")
var ErrBookNotFound = errors.New("book not found in catalog")
var ErrDuplicateBook = errors.New("book is already in the catalog")
var ErrNilOption = errors.New("nil value supplied to option")

// OccurredAt represents when a journal entry was recorded.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
