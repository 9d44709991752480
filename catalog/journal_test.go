package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

func Test_Catalog_Journal_RecordsLendingHistory(t *testing.T) {
	ctx := context.Background()
	fakeClock := time.Date(2025, 3, 14, 9, 30, 0, 123456789, time.UTC)
	lib := mustBuildCatalog(t, catalog.WithClock(func() time.Time { return fakeClock }))

	book := mustAddBook(t, lib, "Rich dad", "Robert Kiyosaki", 400)
	vic := catalog.NewBorrower("Vic")
	chijioke := catalog.NewBorrower("Chijioke")

	_, err := lib.Lend(ctx, vic, book.ID())
	require.NoError(t, err)
	_, err = lib.Lend(ctx, chijioke, book.ID())
	require.NoError(t, err)
	require.NoError(t, lib.Retract(ctx, book.ID()))
	require.NoError(t, lib.Remove(ctx, book.ID()))

	journal := lib.Journal()
	require.Len(t, journal, 5)

	expectedTypes := []string{
		catalog.BookAddedToCatalogEventType,
		catalog.BookLentToBorrowerEventType,
		catalog.LendingBookToBorrowerFailedEventType,
		catalog.BookRetractedFromBorrowerEventType,
		catalog.BookRemovedFromCatalogEventType,
	}
	for i, entry := range journal {
		assert.Equal(t, expectedTypes[i], entry.EventType)
		assert.Equal(t, uint(i+1), entry.SequenceNumber)
		assert.True(t, catalog.ToOccurredAt(fakeClock).Equal(entry.OccurredAt))
	}

	events, err := catalog.DomainEventsFrom(journal)
	require.NoError(t, err)

	added, ok := events[0].(catalog.BookAddedToCatalog)
	require.True(t, ok)
	assert.Equal(t, book.ID().String(), added.BookID)
	assert.Equal(t, "Rich dad", added.Title)
	assert.Equal(t, 400, added.Pages)

	lent, ok := events[1].(catalog.BookLentToBorrower)
	require.True(t, ok)
	assert.Equal(t, vic.ID().String(), lent.BorrowerID)
	assert.Equal(t, "Vic", lent.BorrowerName)

	failed, ok := events[2].(catalog.LendingBookToBorrowerFailed)
	require.True(t, ok)
	assert.True(t, failed.IsErrorEvent())
	assert.Equal(t, chijioke.ID().String(), failed.BorrowerID)
	assert.Equal(t, catalog.ErrAlreadyLent.Error(), failed.FailureInfo)

	retracted, ok := events[3].(catalog.BookRetractedFromBorrower)
	require.True(t, ok)
	assert.Equal(t, vic.ID().String(), retracted.BorrowerID)
}

func Test_Catalog_Journal_RemovingLentBookRecordsRetractFirst(t *testing.T) {
	ctx := context.Background()
	lib := mustBuildCatalog(t)
	book := mustAddBook(t, lib, "Rich dad", "Robert Kiyosaki", 400)
	_, err := lib.Lend(ctx, catalog.NewBorrower("Vic"), book.ID())
	require.NoError(t, err)

	require.NoError(t, lib.Remove(ctx, book.ID()))

	journal := lib.Journal()
	require.Len(t, journal, 4)
	assert.Equal(t, catalog.BookRetractedFromBorrowerEventType, journal[2].EventType)
	assert.Equal(t, catalog.BookRemovedFromCatalogEventType, journal[3].EventType)
}

func Test_Catalog_Journal_FailedOperationsRecordNothing(t *testing.T) {
	ctx := context.Background()
	lib := mustBuildCatalog(t)

	_, _ = lib.Add(ctx, nil)
	_ = lib.Remove(ctx, uuid.New())
	_, _ = lib.Lend(ctx, catalog.NewBorrower("Vic"), uuid.New())
	_ = lib.Retract(ctx, uuid.New())

	assert.Empty(t, lib.Journal())
}

func Test_Catalog_Journal_ReturnsCopy(t *testing.T) {
	lib := mustBuildCatalog(t)
	mustAddBook(t, lib, "Rich dad", "Robert Kiyosaki", 400)

	journal := lib.Journal()
	journal[0].EventType = "tampered"

	assert.Equal(t, catalog.BookAddedToCatalogEventType, lib.Journal()[0].EventType)
}

func Test_EntryMetadataFrom(t *testing.T) {
	lib := mustBuildCatalog(t)
	mustAddBook(t, lib, "Rich dad", "Robert Kiyosaki", 400)

	metadata, err := catalog.EntryMetadataFrom(lib.Journal()[0])

	require.NoError(t, err)
	_, parseErr := uuid.Parse(metadata.MessageID)
	assert.NoError(t, parseErr, "message id should be a uuid")
	assert.Equal(t, metadata.MessageID, metadata.CorrelationID)
}

func Test_BuildJournalEntry_InvalidJSON(t *testing.T) {
	_, err := catalog.BuildJournalEntry("SomethingHappened", time.Now(), []byte("{not json"), []byte("{}"))
	assert.ErrorIs(t, err, catalog.ErrInvalidPayloadJSON)

	_, err = catalog.BuildJournalEntry("SomethingHappened", time.Now(), []byte("{}"), []byte("nope"))
	assert.ErrorIs(t, err, catalog.ErrInvalidMetadataJSON)
}

func Test_DomainEventFrom_UnknownEventType(t *testing.T) {
	entry, err := catalog.BuildJournalEntry("SomethingHappened", time.Now(), []byte("{}"), []byte("{}"))
	require.NoError(t, err)

	_, err = catalog.DomainEventFrom(entry)

	assert.ErrorIs(t, err, catalog.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, err, catalog.ErrUnknownEventType)
}
