package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/testutil/testdoubles"
)

func Test_GetInstance_ReturnsSameCatalog(t *testing.T) {
	first, err := GetInstance()
	require.NoError(t, err)

	second, err := GetInstance()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func Test_RunScenario(t *testing.T) {
	lib, err := catalog.New()
	require.NoError(t, err)

	handler := testdoubles.NewLogHandlerSpy(false)
	var out bytes.Buffer

	report, err := RunScenario(context.Background(), lib, slog.New(handler), &out)
	require.NoError(t, err)

	assert.Len(t, report.BookIDs, 3)
	assert.Equal(t, "Chijioke", report.BorrowerOfThird)
	assert.Equal(t, 0, report.BorrowedBeforeLending)
	assert.Equal(t, 1, report.BorrowedAfterFirstLend)
	assert.Equal(t, 3, report.BookCount)
	assert.Equal(t, 1, report.BorrowedBookCount)

	first, err := lib.FindByID(context.Background(), report.BookIDs[0])
	require.NoError(t, err)
	assert.False(t, first.IsLent())
	assert.Empty(t, report.Vic.Books(), "retracting removes the book from the borrower")
	assert.True(t, report.Chijioke.HoldsBook(report.BookIDs[2]))

	assert.Contains(t, out.String(), "borrowed before lending: 0")
	assert.Contains(t, out.String(), `borrowed after lending "Rich dad" to Vic: 1`)
	assert.Contains(t, out.String(), `"Half of a yellow sun" is lent to Chijioke`)
	assert.Contains(t, out.String(), "books in catalog: 3, borrowed: 1, available: 2")
	assert.True(t, handler.HasRecord(slog.LevelInfo, "new book created"))
}
