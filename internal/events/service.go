package events

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ms-events/internal/apperror"
	"ms-events/internal/models"
)

// Store is the event collection the service appends to.
type Store interface {
	List() []models.Event
	Append(event models.Event)
}

// Service runs the event creation pipeline: validate, duplicate-check,
// construct, append.
type Service struct {
	DB Store

	// mu serializes the duplicate check and the append so two parallel
	// creates cannot both pass the scan. The uniqueness invariant depends
	// on this.
	mu sync.Mutex
}

func NewService(db Store) *Service {
	return &Service{DB: db}
}

// Create validates the raw request body and stores a new event. It returns a
// *apperror.AppError for validation failures (400) and duplicates (409); the
// caller maps errors to wire responses.
func (s *Service) Create(input map[string]any) (*models.Event, error) {
	canonical, details := ValidateCreate(input, time.Now())
	if len(details) > 0 {
		return nil, apperror.BadRequest(apperror.ValidationMessage, details)
	}

	// Defensive re-check: a zero date must never reach the store.
	if canonical.Date.IsZero() {
		return nil, apperror.BadRequest(apperror.ValidationMessage, []apperror.FieldError{
			{Field: "date", Message: "Date must be a valid ISO 8601 datetime"},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if findDuplicate(s.DB.List(), canonical.Title, canonical.Date) {
		return nil, apperror.Conflict("Event with same title and date already exists", apperror.CodeDuplicate)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	event := models.Event{
		ID:              uuid.NewString(),
		Title:           canonical.Title,
		Description:     canonical.Description,
		Date:            canonical.Date,
		Location:        canonical.Location,
		Capacity:        canonical.Capacity,
		OrganizerID:     canonical.OrganizerID,
		RegisteredCount: 0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.DB.Append(event)

	return &event, nil
}

// findDuplicate scans the existing records for a case-insensitive title match
// on the same instant (millisecond resolution). Linear scan, fine at this
// scale; an index keyed by (lowercased title, instant) would replace it if the
// store grew.
func findDuplicate(existing []models.Event, title string, date time.Time) bool {
	for _, e := range existing {
		if strings.EqualFold(e.Title, title) && e.Date.UnixMilli() == date.UnixMilli() {
			return true
		}
	}
	return false
}
