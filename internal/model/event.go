package model

import (
	"fmt"
	"math"
	"time"

	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
)

// DateLayout is the canonical calendar date form of EventRecord.Date.
const DateLayout = "2006-01-02"

// MaxRating is the top of the half-star rating scale.
const MaxRating = 5.0

// SuggestedTypes are offered by clients as presets; Type stays free-form.
var SuggestedTypes = []string{"Opera", "Theatre", "Music", "Art/Gallery"}

// EventRecord is one logged attended event.
type EventRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	UserEmail string    `json:"user_email" db:"user_email"`
	Title     string    `json:"title" db:"title"`
	Date      string    `json:"date" db:"date"`
	Type      string    `json:"type" db:"type"`
	Location  string    `json:"location" db:"location"`
	Notes     string    `json:"notes" db:"notes"`
	Rating    float64   `json:"rating" db:"rating"`
	Tags      string    `json:"tags" db:"tags"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EventDraft is the not-yet-submitted form of an EventRecord.
type EventDraft struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	Location string   `json:"location"`
	Notes    string   `json:"notes"`
	Rating   *float64 `json:"rating"`
	Tags     string   `json:"tags"`
}

type ValidationProblem string

const (
	ProblemMissing    ValidationProblem = "missing"
	ProblemMalformed  ValidationProblem = "malformed"
	ProblemOutOfRange ValidationProblem = "out_of_range"
)

// ValidationError names the first draft field that blocks submission.
type ValidationError struct {
	Field   string            `json:"field"`
	Problem ValidationProblem `json:"problem"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Problem)
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// MissingField returns the required field left empty, or "" for other problems.
func (e *ValidationError) MissingField() string {
	if e.Problem != ProblemMissing {
		return ""
	}
	return e.Field
}

// Validate admits a draft as an EventRecord. Text fields are kept byte for byte;
// only emptiness of the raw strings is checked.
func (d EventDraft) Validate() (*EventRecord, error) {
	switch {
	case d.Title == "":
		return nil, &ValidationError{Field: "title", Problem: ProblemMissing}
	case d.Date == "":
		return nil, &ValidationError{Field: "date", Problem: ProblemMissing}
	case d.Type == "":
		return nil, &ValidationError{Field: "type", Problem: ProblemMissing}
	}

	if !IsValidDate(d.Date) {
		return nil, &ValidationError{Field: "date", Problem: ProblemMalformed}
	}

	var rating float64
	if d.Rating != nil {
		rating = *d.Rating
		if !IsValidRating(rating) {
			return nil, &ValidationError{Field: "rating", Problem: ProblemOutOfRange}
		}
	}

	return &EventRecord{
		Title:    d.Title,
		Date:     d.Date,
		Type:     d.Type,
		Location: d.Location,
		Notes:    d.Notes,
		Rating:   rating,
		Tags:     d.Tags,
	}, nil
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidRating accepts 0 to 5 in half-star steps.
func IsValidRating(r float64) bool {
	if math.IsNaN(r) || r < 0 || r > MaxRating {
		return false
	}
	return math.Mod(r*2, 1) == 0
}

// SortKey is a sortable EventRecord column.
type SortKey string

const (
	SortByTitle    SortKey = "title"
	SortByDate     SortKey = "date"
	SortByType     SortKey = "type"
	SortByLocation SortKey = "location"
	SortByNotes    SortKey = "notes"
	SortByRating   SortKey = "rating"
	SortByTags     SortKey = "tags"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByTitle, SortByDate, SortByType, SortByLocation, SortByNotes, SortByRating, SortByTags:
		return true
	}
	return false
}

// Text returns the value of the record's text column k; rating has no text value.
func (r *EventRecord) Text(k SortKey) string {
	switch k {
	case SortByTitle:
		return r.Title
	case SortByDate:
		return r.Date
	case SortByType:
		return r.Type
	case SortByLocation:
		return r.Location
	case SortByNotes:
		return r.Notes
	case SortByTags:
		return r.Tags
	}
	return ""
}

// QueryParams are owned by the client and never stored.
type QueryParams struct {
	FilterText    string  `json:"filter_text"`
	SortKey       SortKey `json:"sort_key"`
	SortAscending bool    `json:"sort_ascending"`
	SelectedDate  string  `json:"selected_date"`
}

// EventChange tells listeners that a user's collection changed.
type EventChange struct {
	UserID uuid.UUID `json:"user_id"`
	At     time.Time `json:"at"`
}
