package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	logMsgBookCreated = "new book created"
	logAttrBookID     = "book_id"
	logAttrTitle      = "title"
)

// LendingStatus is the lending state of a Book.
type LendingStatus string

const (
	// StatusAvailable means the book can be lent.
	StatusAvailable LendingStatus = "available"

	// StatusLent means the book is currently held by a borrower.
	StatusLent LendingStatus = "lent"
)

var bookValidate = validator.New()

// bookInput carries the constructor arguments through struct validation.
type bookInput struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Pages  int    `validate:"gt=0"`
}

// Book is a lendable catalog record.
//
// The borrower is a plain reference: a Book never owns its Borrower.
// A Book is lent exactly when it appears in its borrower's held list,
// which Lend and Retract keep in sync.
type Book struct {
	id       uuid.UUID
	title    string
	author   string
	pages    int
	borrower *Borrower
}

// BookOption configures the construction of a Book.
type BookOption func(*bookOptions)

type bookOptions struct {
	logger Logger
}

// WithCreationLogger makes NewBook emit a creation notification to the given logger.
func WithCreationLogger(logger Logger) BookOption {
	return func(o *bookOptions) {
		o.logger = logger
	}
}

// NewBook validates the input and creates an available Book with a fresh random identifier.
// Returns an error wrapping ErrInvalidArgument if title or author are empty or pages is not positive.
func NewBook(title string, author string, pages int, opts ...BookOption) (*Book, error) {
	input := bookInput{Title: title, Author: author, Pages: pages}
	if err := bookValidate.Struct(input); err != nil {
		return nil, invalidBookInput(err)
	}

	options := bookOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	book := &Book{
		id:     uuid.New(),
		title:  title,
		author: author,
		pages:  pages,
	}

	if options.logger != nil {
		options.logger.Info(logMsgBookCreated, logAttrBookID, book.id.String(), logAttrTitle, book.title)
	}

	return book, nil
}

func invalidBookInput(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Join(ErrInvalidArgument, err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(fields, ", "))
}

// ID returns the book identifier.
func (b *Book) ID() uuid.UUID {
	return b.id
}

// Title returns the book title.
func (b *Book) Title() string {
	return b.title
}

// Author returns the book author.
func (b *Book) Author() string {
	return b.author
}

// Pages returns the page count.
func (b *Book) Pages() int {
	return b.pages
}

// Borrower returns the current borrower or nil if the book is available.
func (b *Book) Borrower() *Borrower {
	return b.borrower
}

// IsLent reports whether the book is currently held by a borrower.
func (b *Book) IsLent() bool {
	return b.borrower != nil
}

// Status returns the lending status derived from the borrower reference.
func (b *Book) Status() LendingStatus {
	if b.IsLent() {
		return StatusLent
	}

	return StatusAvailable
}

// Lend transitions the book from available to lent.
// It sets the borrower reference and appends the book to the borrower's held list.
func (b *Book) Lend(borrower *Borrower) error {
	if borrower == nil {
		return fmt.Errorf("%w: borrower must not be nil", ErrInvalidArgument)
	}

	if b.borrower != nil {
		return ErrAlreadyLent
	}

	b.borrower = borrower
	borrower.hold(b)

	return nil
}

// Retract transitions the book from lent back to available.
// It removes the book from the borrower's held list and clears the borrower reference.
func (b *Book) Retract() error {
	if b.borrower == nil {
		return ErrNotLent
	}

	// The held list may already miss the book if ReturnBook was called directly.
	b.borrower.release(b.id)
	b.borrower = nil

	return nil
}

func (b *Book) String() string {
	return fmt.Sprintf("%q by %s (%d pages) [%s]", b.title, b.author, b.pages, b.Status())
}
