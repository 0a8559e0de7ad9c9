package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"ms-events/internal/apperror"
	"ms-events/internal/models"
)

// Field bounds for create requests.
const (
	titleMin       = 3
	titleMax       = 100
	descriptionMin = 10
	descriptionMax = 1000
	locationMin    = 3
	locationMax    = 200
	capacityMin    = 1
	capacityMax    = 10000
)

// ValidateCreate checks a raw request body against the create-event rules and
// returns the canonical field set on success. Every field is checked
// independently so a single pass reports all failures, in field declaration
// order: title, description, date, location, capacity, organizerId. Fields
// outside the recognized set are ignored.
//
// The input must come from a json.Decoder with UseNumber set, so numeric
// values arrive as json.Number and capacity can be told apart from floats and
// numeric strings.
func ValidateCreate(input map[string]any, now time.Time) (*models.NewEvent, []apperror.FieldError) {
	var details []apperror.FieldError
	out := &models.NewEvent{}

	out.Title = checkText(input, "title", "Title", titleMin, titleMax, &details)
	out.Description = checkText(input, "description", "Description", descriptionMin, descriptionMax, &details)
	out.Date = checkDate(input, now, &details)
	out.Location = checkText(input, "location", "Location", locationMin, locationMax, &details)
	out.Capacity = checkCapacity(input, &details)
	out.OrganizerID = checkOrganizerID(input, &details)

	if len(details) > 0 {
		return nil, details
	}
	return out, nil
}

func checkText(input map[string]any, field, label string, min, max int, details *[]apperror.FieldError) string {
	raw, ok := input[field]
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s is required and must be between %d and %d characters", label, min, max),
		})
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   field,
			Message: label + " must be a string",
		})
		return ""
	}
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < min || n > max {
		*details = append(*details, apperror.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", label, min, max),
		})
		return ""
	}
	return s
}

func checkDate(input map[string]any, now time.Time, details *[]apperror.FieldError) time.Time {
	raw, ok := input["date"]
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   "date",
			Message: "Date is required and must be a valid ISO 8601 datetime",
		})
		return time.Time{}
	}
	s, ok := raw.(string)
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   "date",
			Message: "Date must be a valid ISO 8601 datetime",
		})
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		*details = append(*details, apperror.FieldError{
			Field:   "date",
			Message: "Date must be a valid ISO 8601 datetime",
		})
		return time.Time{}
	}
	// The boundary is exclusive: a date equal to "now" is rejected.
	if !t.After(now) {
		*details = append(*details, apperror.FieldError{
			Field:   "date",
			Message: "Date must be a future date",
		})
		return time.Time{}
	}
	return t.UTC().Truncate(time.Millisecond)
}

func checkCapacity(input map[string]any, details *[]apperror.FieldError) int {
	raw, ok := input["capacity"]
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   "capacity",
			Message: "Capacity is required and must be a positive integer between 1 and 10000",
		})
		return 0
	}
	num, ok := raw.(json.Number)
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   "capacity",
			Message: "Capacity must be a positive integer between 1 and 10000",
		})
		return 0
	}
	// Int64 rejects floats like 200.5, so only exact integers pass.
	n, err := num.Int64()
	if err != nil || n < capacityMin || n > capacityMax {
		*details = append(*details, apperror.FieldError{
			Field:   "capacity",
			Message: "Capacity must be a positive integer between 1 and 10000",
		})
		return 0
	}
	return int(n)
}

func checkOrganizerID(input map[string]any, details *[]apperror.FieldError) string {
	raw, ok := input["organizerId"]
	if !ok {
		*details = append(*details, apperror.FieldError{
			Field:   "organizerId",
			Message: "OrganizerId is required and must be a valid UUID",
		})
		return ""
	}
	s, ok := raw.(string)
	if !ok || !isUUIDv4(s) {
		*details = append(*details, apperror.FieldError{
			Field:   "organizerId",
			Message: "OrganizerId must be a valid UUID",
		})
		return ""
	}
	return s
}

// isUUIDv4 accepts only the canonical 8-4-4-4-12 form with version 4 and the
// RFC 4122 variant. uuid.Parse alone is too permissive, it also takes braced
// and urn-prefixed forms and any version.
func isUUIDv4(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
