package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
var ErrMappingToJournalEntryFailed = errors.New("mapping to journal entry failed")
var ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")
var ErrUnknownEventType = errors.New("unknown event type")

var journalJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// JournalEntries is an alias type for a slice of JournalEntry.
type JournalEntries = []JournalEntry

// JournalEntry is the serialized form of a DomainEvent as recorded by the Catalog.
//
// It is built on scalars, like a row in an event store, so that the journal can be
// inspected or exported without knowing the domain event types.
type JournalEntry struct {
	SequenceNumber uint
	EventType      string
	OccurredAt     time.Time
	PayloadJSON    []byte
	MetadataJSON   []byte
}

// EntryMetadata contains tracking information for a journal entry.
type EntryMetadata struct {
	MessageID     string
	CausationID   string
	CorrelationID string
}

// BuildEntryMetadata creates EntryMetadata from UUID values.
func BuildEntryMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EntryMetadata {
	return EntryMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// BuildJournalEntry is a factory method for JournalEntry.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildJournalEntry(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (JournalEntry, error) {
	if !journalJSON.Valid(payloadJSON) {
		return JournalEntry{}, ErrInvalidPayloadJSON
	}

	if !journalJSON.Valid(metadataJSON) {
		return JournalEntry{}, ErrInvalidMetadataJSON
	}

	return JournalEntry{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// JournalEntryFrom converts a DomainEvent and EntryMetadata to a JournalEntry.
func JournalEntryFrom(event DomainEvent, metadata EntryMetadata) (JournalEntry, error) {
	payloadJSON, err := journalJSON.Marshal(event)
	if err != nil {
		return JournalEntry{}, errors.Join(ErrMappingToJournalEntryFailed, err)
	}

	metadataJSON, err := journalJSON.Marshal(metadata)
	if err != nil {
		return JournalEntry{}, errors.Join(ErrMappingToJournalEntryFailed, err)
	}

	entry, err := BuildJournalEntry(event.IsEventType(), event.HasOccurredAt(), payloadJSON, metadataJSON)
	if err != nil {
		return JournalEntry{}, errors.Join(ErrMappingToJournalEntryFailed, err)
	}

	return entry, nil
}

// EntryMetadataFrom extracts EntryMetadata from a JournalEntry.
func EntryMetadataFrom(entry JournalEntry) (EntryMetadata, error) {
	metadata := new(EntryMetadata)
	if err := journalJSON.Unmarshal(entry.MetadataJSON, metadata); err != nil {
		return EntryMetadata{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *metadata, nil
}

// DomainEventsFrom converts multiple JournalEntries to DomainEvents.
func DomainEventsFrom(entries JournalEntries) (DomainEvents, error) {
	domainEvents := make(DomainEvents, 0, len(entries))

	for _, entry := range entries {
		domainEvent, err := DomainEventFrom(entry)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a JournalEntry back to its DomainEvent.
func DomainEventFrom(entry JournalEntry) (DomainEvent, error) {
	switch entry.EventType {
	case BookAddedToCatalogEventType:
		return unmarshalPayload[BookAddedToCatalog](entry.PayloadJSON)

	case BookRemovedFromCatalogEventType:
		return unmarshalPayload[BookRemovedFromCatalog](entry.PayloadJSON)

	case BookLentToBorrowerEventType:
		return unmarshalPayload[BookLentToBorrower](entry.PayloadJSON)

	case LendingBookToBorrowerFailedEventType:
		return unmarshalPayload[LendingBookToBorrowerFailed](entry.PayloadJSON)

	case BookRetractedFromBorrowerEventType:
		return unmarshalPayload[BookRetractedFromBorrower](entry.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrUnknownEventType)
}

func unmarshalPayload[E DomainEvent](payloadJSON []byte) (DomainEvent, error) {
	var payload E

	if err := journalJSON.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
