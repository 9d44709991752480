package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

type bookInput struct {
	title  string
	author string
	pages  int
}

var scenarioBooks = []bookInput{
	{title: "Rich dad", author: "Robert Kiyosaki", pages: 400},
	{title: "Things fall apart", author: "Chinua Achebe", pages: 200},
	{title: "Half of a yellow sun", author: "Chimamanda", pages: 170},
}

// ScenarioReport captures what the demo scenario did, so it can be asserted on.
type ScenarioReport struct {
	BookIDs           []uuid.UUID
	Vic               *catalog.Borrower
	Chijioke          *catalog.Borrower
	BorrowerOfThird   string
	BookCount         int
	BorrowedBookCount int

	BorrowedBeforeLending  int
	BorrowedAfterFirstLend int
}

// RunScenario adds three books, lends two of them, retracts the first one, and
// prints the borrowed counts along the way to out.
func RunScenario(ctx context.Context, lib *catalog.Catalog, logger *slog.Logger, out io.Writer) (ScenarioReport, error) {
	report := ScenarioReport{
		Vic:      catalog.NewBorrower("Vic"),
		Chijioke: catalog.NewBorrower("Chijioke"),
	}

	for _, input := range scenarioBooks {
		book, err := catalog.NewBook(input.title, input.author, input.pages, catalog.WithCreationLogger(logger))
		if err != nil {
			return report, err
		}

		id, err := lib.Add(ctx, book)
		if err != nil {
			return report, err
		}

		report.BookIDs = append(report.BookIDs, id)
	}

	report.BorrowedBeforeLending = lib.BorrowedBookCount()
	_, _ = fmt.Fprintf(out, "borrowed before lending: %d\n", report.BorrowedBeforeLending)

	if err := lendTo(ctx, lib, report.Vic, report.BookIDs[0]); err != nil {
		return report, err
	}

	report.BorrowedAfterFirstLend = lib.BorrowedBookCount()
	_, _ = fmt.Fprintf(out, "borrowed after lending %q to %s: %d\n",
		scenarioBooks[0].title, report.Vic.Name(), report.BorrowedAfterFirstLend)

	if err := lendTo(ctx, lib, report.Chijioke, report.BookIDs[2]); err != nil {
		return report, err
	}

	third, err := lib.FindByID(ctx, report.BookIDs[2])
	if err != nil {
		return report, err
	}

	if borrower := third.Borrower(); borrower != nil {
		report.BorrowerOfThird = borrower.Name()
	}
	_, _ = fmt.Fprintf(out, "%q is lent to %s\n", third.Title(), report.BorrowerOfThird)

	if err := lib.Retract(ctx, report.BookIDs[0]); err != nil {
		return report, err
	}

	report.BookCount = lib.BookCount()
	report.BorrowedBookCount = lib.BorrowedBookCount()
	_, _ = fmt.Fprintf(out, "books in catalog: %d, borrowed: %d, available: %d\n",
		report.BookCount, report.BorrowedBookCount, lib.AvailableBookCount())

	for _, book := range lib.AllBooks() {
		_, _ = fmt.Fprintln(out, book)
	}

	return report, nil
}

func lendTo(ctx context.Context, lib *catalog.Catalog, borrower *catalog.Borrower, id uuid.UUID) error {
	result, err := lib.Lend(ctx, borrower, id)
	if err != nil {
		return err
	}

	if !result.Lent() {
		return result.HasError()
	}

	return nil
}
