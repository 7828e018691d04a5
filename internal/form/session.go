package form

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"
)

type State string

const (
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
)

// Submitter hands a validated record to the store.
type Submitter interface {
	Submit(ctx context.Context, record *model.EventRecord) (*model.EventRecord, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, record *model.EventRecord) (*model.EventRecord, error)

func (f SubmitterFunc) Submit(ctx context.Context, record *model.EventRecord) (*model.EventRecord, error) {
	return f(ctx, record)
}

// Session is the draft behind the "add event" form. It is not safe for
// concurrent use; each client owns its own.
type Session struct {
	draft    model.EventDraft
	state    State
	now      func() time.Time
	location *time.Location

	// OnSubmitted runs once per accepted submit while the session is Submitted.
	OnSubmitted func(record *model.EventRecord)
}

func NewSession(now func() time.Time, location *time.Location) *Session {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	s := &Session{now: now, location: location}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.draft = model.EventDraft{Date: s.now().In(s.location).Format(model.DateLayout)}
	s.state = StateEditing
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Draft() model.EventDraft {
	return s.draft
}

// Load replaces the whole draft, e.g. with a form posted by a client.
func (s *Session) Load(draft model.EventDraft) {
	s.draft = draft
}

// Set updates one draft field by its form name.
func (s *Session) Set(field, value string) error {
	switch field {
	case "title":
		s.draft.Title = value
	case "date":
		s.draft.Date = value
	case "type":
		s.draft.Type = value
	case "location":
		s.draft.Location = value
	case "notes":
		s.draft.Notes = value
	case "tags":
		s.draft.Tags = value
	case "rating":
		if value == "" {
			s.draft.Rating = nil
			return nil
		}
		r, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("rating %q: %w", value, apperrors.ErrInvalidInput)
		}
		s.draft.Rating = &r
	default:
		return fmt.Errorf("unknown field %q: %w", field, apperrors.ErrInvalidInput)
	}
	return nil
}

// CanSubmit reports whether the current draft would pass validation.
func (s *Session) CanSubmit() bool {
	_, err := s.draft.Validate()
	return err == nil
}

// Submit validates the draft and hands it to sub. Any failure leaves the
// session editing the same draft; success resets it to a fresh one.
func (s *Session) Submit(ctx context.Context, sub Submitter) (*model.EventRecord, error) {
	record, err := s.draft.Validate()
	if err != nil {
		return nil, err
	}

	saved, err := sub.Submit(ctx, record)
	if err != nil {
		return nil, err
	}

	s.state = StateSubmitted
	if s.OnSubmitted != nil {
		s.OnSubmitted(saved)
	}
	s.reset()
	return saved, nil
}
