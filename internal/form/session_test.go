package form_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-gin-attendance-log/internal/form"
	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
}

type collection struct {
	events []*model.EventRecord
	err    error
}

func (c *collection) Submit(_ context.Context, record *model.EventRecord) (*model.EventRecord, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.events = append(c.events, record)
	return record, nil
}

func TestSession_Defaults(t *testing.T) {
	s := form.NewSession(fixedNow, nil)
	assert.Equal(t, form.StateEditing, s.State())
	assert.Equal(t, model.EventDraft{Date: "2024-05-01"}, s.Draft())
	assert.False(t, s.CanSubmit())

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-05-02", form.NewSession(fixedNow, tokyo).Draft().Date)
}

func TestSession_Set(t *testing.T) {
	s := form.NewSession(fixedNow, nil)

	require.NoError(t, s.Set("title", "Carmen"))
	require.NoError(t, s.Set("type", "Opera"))
	require.NoError(t, s.Set("rating", "4.5"))
	assert.True(t, s.CanSubmit())
	assert.Equal(t, 4.5, *s.Draft().Rating)

	require.NoError(t, s.Set("rating", ""))
	assert.Nil(t, s.Draft().Rating)

	assert.ErrorIs(t, s.Set("rating", "lots"), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, s.Set("venue", "Met"), apperrors.ErrInvalidInput)
}

func TestSession_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - empty title leaves collection and draft untouched", func(t *testing.T) {
		store := &collection{}
		s := form.NewSession(fixedNow, nil)
		s.Load(model.EventDraft{Title: "", Date: "2024-05-01", Type: "Opera", Location: "Met"})

		rec, err := s.Submit(ctx, store)

		assert.Nil(t, rec)
		var verr *model.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "title", verr.MissingField())
		assert.Empty(t, store.events)
		assert.Equal(t, form.StateEditing, s.State())
		assert.Equal(t, "Met", s.Draft().Location)
	})

	t.Run("Failed - store rejection keeps the draft", func(t *testing.T) {
		store := &collection{err: errors.New("network down")}
		s := form.NewSession(fixedNow, nil)
		draft := model.EventDraft{Title: "Carmen", Date: "2024-04-30", Type: "Opera"}
		s.Load(draft)

		_, err := s.Submit(ctx, store)

		assert.EqualError(t, err, "network down")
		assert.Equal(t, form.StateEditing, s.State())
		assert.Equal(t, draft, s.Draft())
	})

	t.Run("Success - submitted once then reset", func(t *testing.T) {
		store := &collection{}
		s := form.NewSession(fixedNow, nil)
		var seen []form.State
		s.OnSubmitted = func(*model.EventRecord) { seen = append(seen, s.State()) }
		s.Load(model.EventDraft{Title: "Carmen", Date: "2024-04-30", Type: "Opera", Notes: "great"})

		rec, err := s.Submit(ctx, store)

		require.NoError(t, err)
		assert.Equal(t, "Carmen", rec.Title)
		require.Len(t, store.events, 1)
		assert.Equal(t, []form.State{form.StateSubmitted}, seen)
		assert.Equal(t, form.StateEditing, s.State())
		assert.Equal(t, model.EventDraft{Date: "2024-05-01"}, s.Draft())
	})

	t.Run("Success - SubmitterFunc", func(t *testing.T) {
		s := form.NewSession(fixedNow, nil)
		s.Load(model.EventDraft{Title: "Hamlet", Date: "2024-05-01", Type: "Theatre"})
		called := 0
		_, err := s.Submit(ctx, form.SubmitterFunc(func(_ context.Context, r *model.EventRecord) (*model.EventRecord, error) {
			called++
			return r, nil
		}))
		require.NoError(t, err)
		assert.Equal(t, 1, called)
	})
}
