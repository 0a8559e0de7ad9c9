package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-events/internal/events/store"
	"ms-events/internal/models"
)

func sampleEvent(title string) models.Event {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "A sample event used by the store tests.",
		Date:        now.Add(24 * time.Hour),
		Location:    "Convention Center",
		Capacity:    100,
		OrganizerID: uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestStoreStartsEmpty(t *testing.T) {
	db := store.NewEventStore()

	assert.Equal(t, 0, db.Len())
	assert.Empty(t, db.List())
}

func TestStoreAppendGrows(t *testing.T) {
	db := store.NewEventStore()

	db.Append(sampleEvent("First"))
	db.Append(sampleEvent("Second"))

	require.Equal(t, 2, db.Len())
	listed := db.List()
	assert.Equal(t, "First", listed[0].Title)
	assert.Equal(t, "Second", listed[1].Title)
}

func TestStoreListReturnsCopy(t *testing.T) {
	db := store.NewEventStore()
	db.Append(sampleEvent("Original"))

	listed := db.List()
	listed[0].Title = "Mutated"

	assert.Equal(t, "Original", db.List()[0].Title)
}

func TestStoreReset(t *testing.T) {
	db := store.NewEventStore()
	db.Append(sampleEvent("Gone"))

	db.Reset()

	assert.Equal(t, 0, db.Len())
	assert.Empty(t, db.List())
}
