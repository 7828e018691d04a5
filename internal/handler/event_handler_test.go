package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"
	"go-gin-attendance-log/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func rating(r float64) *float64 { return &r }

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().Append(mock.Anything, testSession.User, mock.MatchedBy(func(rec *model.EventRecord) bool {
			return rec.Title == "Carmen" && rec.Rating == 4.5
		})).RunAndReturn(func(_ context.Context, _ model.CurrentUser, rec *model.EventRecord) (*model.EventRecord, error) {
			return rec, nil
		}).Once()

		w := r.do(withSession(createJSONHTTPRequest("POST", "/api/v1/events", model.EventDraft{
			Title:  "Carmen",
			Date:   "2024-05-01",
			Type:   "Opera",
			Rating: rating(4.5),
		})))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Carmen", decode[model.EventRecord](t, w).Title)
	})

	t.Run("Success - accepted submit is logged once", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		previous := logger.L
		logger.L = zap.New(core)
		t.Cleanup(func() { logger.L = previous })

		r := setupTestRouter(t)
		r.events.EXPECT().Append(mock.Anything, testSession.User, mock.Anything).
			RunAndReturn(func(_ context.Context, _ model.CurrentUser, rec *model.EventRecord) (*model.EventRecord, error) {
				return rec, nil
			}).Once()

		w := r.do(withSession(createJSONHTTPRequest("POST", "/api/v1/events", model.EventDraft{
			Title: "Carmen",
			Date:  "2024-05-01",
			Type:  "Opera",
		})))

		require.Equal(t, http.StatusCreated, w.Code)
		entries := logs.FilterMessage("Event logged").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "Opera", entries[0].ContextMap()["type"])
		assert.Equal(t, testSession.User.ID.String(), entries[0].ContextMap()["user_id"])
	})

	t.Run("Failed - missing type returns the draft", func(t *testing.T) {
		r := setupTestRouter(t)
		draft := model.EventDraft{Title: "Carmen", Date: "2024-05-01", Notes: "front row"}

		w := r.do(withSession(createJSONHTTPRequest("POST", "/api/v1/events", draft)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "type", body["field"])
		assert.Equal(t, "missing", body["problem"])
		assert.Equal(t, "front row", body["draft"].(map[string]any)["notes"])
		r.events.AssertNotCalled(t, "Append")
	})

	t.Run("Failed - rating out of range", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(withSession(createJSONHTTPRequest("POST", "/api/v1/events", model.EventDraft{
			Title:  "Carmen",
			Date:   "2024-05-01",
			Type:   "Opera",
			Rating: rating(7),
		})))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "rating", decode[map[string]any](t, w)["field"])
	})

	t.Run("Failed - store error", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().Append(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		w := r.do(withSession(createJSONHTTPRequest("POST", "/api/v1/events", model.EventDraft{
			Title: "Carmen",
			Date:  "2024-05-01",
			Type:  "Opera",
		})))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Failed - no session", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(createJSONHTTPRequest("POST", "/api/v1/events", model.EventDraft{}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetEvent(t *testing.T) {
	eventID := uuid.MustParse("b1ffcd00-0d1c-4ef8-bb6d-6bb9bd380a22")

	t.Run("Success", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().Get(mock.Anything, testSession.User.ID, eventID).Return(&model.EventRecord{ID: eventID, Title: "Carmen"}, nil).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String(), nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Carmen", decode[model.EventRecord](t, w).Title)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().Get(mock.Anything, testSession.User.ID, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String(), nil)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - invalid event id", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/not-a-uuid", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		r.events.AssertNotCalled(t, "Get")
	})
}

func TestListEvents(t *testing.T) {
	t.Run("Success - query params are passed through", func(t *testing.T) {
		r := setupTestRouter(t)
		want := model.QueryParams{FilterText: "op", SortKey: model.SortByRating, SortAscending: false}
		r.events.EXPECT().Query(mock.Anything, testSession.User.ID, want).Return([]*model.EventRecord{{Title: "Carmen"}}, nil).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events?q=op&sort=rating&order=desc", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]model.EventRecord](t, w), 1)
	})

	t.Run("Success - defaults to ascending", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().Query(mock.Anything, testSession.User.ID, model.QueryParams{SortAscending: true}).Return([]*model.EventRecord{}, nil).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - bad order", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events?order=sideways", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportCSV(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().ExportCSV(mock.Anything, testSession.User.ID, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, _ model.QueryParams, w io.Writer) error {
				_, err := io.WriteString(w, "Title,Date,Type,Location,Notes,Rating,Tags\n")
				return err
			}).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/export.csv", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
		assert.Regexp(t, `attachment; filename="events-\d{4}-\d{2}-\d{2}\.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "Title,Date,Type,Location,Notes,Rating,Tags\n", w.Body.String())
	})

	t.Run("Failed - ErrInternalServerError", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().ExportCSV(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/export.csv", nil)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("Content-Disposition"))
	})
}

func TestCalendarRoutes(t *testing.T) {
	t.Run("Success - day", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().OnDate(mock.Anything, testSession.User.ID, "2024-05-01").Return(&model.DayView{
			Date: "2024-05-01",
			Mark: model.DayMark{Date: "2024-05-01", HasMatch: true, Type: "Opera", Style: model.DayStyleTypeB},
		}, nil).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/day/2024-05-01", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.DayStyleTypeB, decode[model.DayView](t, w).Mark.Style)
	})

	t.Run("Failed - day ErrInvalidInput", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().OnDate(mock.Anything, mock.Anything, "yesterday").Return(nil, apperrors.ErrInvalidInput).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/day/yesterday", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Success - month", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().Month(mock.Anything, testSession.User.ID, "2024-05").Return(&model.MonthView{YearMonth: "2024-05", Count: 2}, nil).Once()

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/events/month/2024-05", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decode[model.MonthView](t, w).Count)
	})

	t.Run("Success - suggested types", func(t *testing.T) {
		r := setupTestRouter(t)

		w := r.do(withSession(createJSONHTTPRequest("GET", "/api/v1/event-types", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.SuggestedTypes, decode[[]string](t, w))
	})
}

func TestLiveEvents(t *testing.T) {
	t.Run("Success - initial snapshot on connect", func(t *testing.T) {
		r := setupTestRouter(t)
		r.events.EXPECT().List(mock.Anything, testSession.User.ID).Return([]*model.EventRecord{{Title: "Carmen"}}, nil).Once()

		srv := httptest.NewServer(r.router)
		defer srv.Close()

		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/events/live?access_token=" + testToken
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var events []model.EventRecord
		require.NoError(t, conn.ReadJSON(&events))
		require.Len(t, events, 1)
		assert.Equal(t, "Carmen", events[0].Title)
	})

	t.Run("Failed - no session", func(t *testing.T) {
		r := setupTestRouter(t)
		srv := httptest.NewServer(r.router)
		defer srv.Close()

		url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/events/live"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
