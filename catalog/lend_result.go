package catalog

// LendOutcome classifies the result of a Catalog.Lend call.
type LendOutcome string

const (
	// LendOutcomeLent means the book was available and is now lent.
	LendOutcomeLent LendOutcome = "lent"

	// LendOutcomeAlreadyLent means the book was already lent and nothing changed.
	LendOutcomeAlreadyLent LendOutcome = "already_lent"
)

// LendResult represents the outcome of a Catalog.Lend call.
//
// A rejected lend is a business outcome, not a broken call: the catalog state is unchanged,
// the rejection is logged and journaled, and Err carries ErrAlreadyLent.
// Callers that only care about the happy path can ignore it.
//
// LendResult should only be constructed with lentResult or alreadyLentResult.
type LendResult struct {
	Outcome  LendOutcome
	Book     *Book
	Borrower *Borrower
	Err      error
}

func lentResult(book *Book, borrower *Borrower) LendResult {
	return LendResult{
		Outcome:  LendOutcomeLent,
		Book:     book,
		Borrower: borrower,
	}
}

func alreadyLentResult(book *Book, borrower *Borrower, err error) LendResult {
	return LendResult{
		Outcome:  LendOutcomeAlreadyLent,
		Book:     book,
		Borrower: borrower,
		Err:      err,
	}
}

// Lent returns true if the call changed the book from available to lent.
func (r LendResult) Lent() bool {
	return r.Outcome == LendOutcomeLent
}

// HasError returns the rejection error if there is one, otherwise nil.
func (r LendResult) HasError() error {
	if r.Outcome == LendOutcomeAlreadyLent {
		return r.Err
	}

	return nil
}
