package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-gin-attendance-log/internal/handler"
	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/queue"
	"go-gin-attendance-log/internal/service/mocks"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const testToken = "test-token"

var (
	InvalidJSON = `{"invalid": json}`

	testSession = &model.Session{
		Token: testToken,
		User: model.CurrentUser{
			ID:    uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"),
			Email: "fan@example.com",
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
)

type testRouter struct {
	router *gin.Engine
	events *mocks.MockEventService
	auth   *mocks.MockAuthService
}

func setupTestRouter(t *testing.T) *testRouter {
	gin.SetMode(gin.TestMode)
	events := mocks.NewMockEventService(t)
	auth := mocks.NewMockAuthService(t)

	auth.EXPECT().Authenticate(mock.Anything, testToken).Return(testSession, nil).Maybe()
	auth.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Maybe()

	router := gin.New()
	loc := time.FixedZone("JST", 9*60*60)
	handler.NewAuthHandler(auth).RegisterRoutes(router)
	handler.NewEventHandler(events, auth, queue.NewMemoryChangeFeed(), loc).RegisterRoutes(router)
	handler.NewStatsHandler(events, auth).RegisterRoutes(router)

	return &testRouter{router: router, events: events, auth: auth}
}

func (r *testRouter) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
