package models

import (
	"time"
)

// Event is a stored event record. Generated fields (ID, timestamps,
// RegisteredCount) are assigned once at creation and never change.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Capacity        int       `json:"capacity"`
	OrganizerID     string    `json:"organizerId"`
	RegisteredCount int       `json:"registeredCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewEvent holds the canonical validated field set for a creation request:
// strings trimmed, date parsed and normalized to UTC millisecond resolution.
type NewEvent struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Capacity    int
	OrganizerID string
}
