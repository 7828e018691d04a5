package model_test

import (
	"errors"
	"testing"

	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestEventDraft_Validate(t *testing.T) {
	t.Run("Success - defaults rating and keeps raw text", func(t *testing.T) {
		draft := model.EventDraft{Title: "  Carmen ", Date: "2024-05-01", Type: "Opera", Location: "Met", Tags: "bizet"}
		rec, err := draft.Validate()
		require.NoError(t, err)
		assert.Equal(t, "  Carmen ", rec.Title)
		assert.Equal(t, 0.0, rec.Rating)
		assert.Equal(t, "bizet", rec.Tags)
	})

	t.Run("Success - half star rating", func(t *testing.T) {
		rec, err := model.EventDraft{Title: "a", Date: "2024-05-01", Type: "Music", Rating: ptr(3.5)}.Validate()
		require.NoError(t, err)
		assert.Equal(t, 3.5, rec.Rating)
	})

	missing := []struct {
		name  string
		draft model.EventDraft
		field string
	}{
		{"title", model.EventDraft{Date: "2024-05-01", Type: "Opera"}, "title"},
		{"date", model.EventDraft{Title: "a", Type: "Opera"}, "date"},
		{"type", model.EventDraft{Title: "a", Date: "2024-05-01"}, "type"},
	}
	for _, tc := range missing {
		t.Run("Failed - missing "+tc.name, func(t *testing.T) {
			rec, err := tc.draft.Validate()
			assert.Nil(t, rec)
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.MissingField())
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}

	t.Run("Success - whitespace title counts as present", func(t *testing.T) {
		_, err := model.EventDraft{Title: " ", Date: "2024-05-01", Type: "Opera"}.Validate()
		assert.NoError(t, err)
	})

	t.Run("Failed - malformed date", func(t *testing.T) {
		for _, d := range []string{"not-a-date", "2024-5-1", "2024-02-30", "2024-05-01T00:00:00Z"} {
			_, err := model.EventDraft{Title: "a", Date: d, Type: "Opera"}.Validate()
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr), d)
			assert.Equal(t, model.ProblemMalformed, verr.Problem)
			assert.Empty(t, verr.MissingField())
		}
	})

	t.Run("Failed - rating out of range", func(t *testing.T) {
		for _, r := range []float64{-1, 5.5, 2.25} {
			_, err := model.EventDraft{Title: "a", Date: "2024-05-01", Type: "Opera", Rating: ptr(r)}.Validate()
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "rating", verr.Field)
		}
	})
}

func TestSortKey_IsValid(t *testing.T) {
	for _, k := range []model.SortKey{"title", "date", "type", "location", "notes", "rating", "tags"} {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, model.SortKey("venue").IsValid())
	assert.False(t, model.SortKey("").IsValid())
}
