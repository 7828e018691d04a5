package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"go-gin-attendance-log/internal/export"
	"go-gin-attendance-log/internal/form"
	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/queue"
	"go-gin-attendance-log/internal/service"
	"go-gin-attendance-log/internal/worker"
	"go-gin-attendance-log/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const liveWriteTimeout = 10 * time.Second

type EventHandler struct {
	service  service.EventService
	auth     service.AuthService
	feed     queue.ChangeFeed
	location *time.Location
	now      func() time.Time
	upgrader websocket.Upgrader
}

func NewEventHandler(service service.EventService, auth service.AuthService, feed queue.ChangeFeed, location *time.Location) *EventHandler {
	if location == nil {
		location = time.UTC
	}
	return &EventHandler{
		service:  service,
		auth:     auth,
		feed:     feed,
		location: location,
		now:      time.Now,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1", RequireSession(h.auth))
	{
		router.POST("events", h.Create)
		router.GET("events", h.List)
		router.GET("events/export.csv", h.ExportCSV)
		router.GET("events/day/:date", h.OnDate)
		router.GET("events/month/:month", h.Month)
		router.GET("events/live", h.Live)
		router.GET("events/:id", h.Get)
		router.GET("event-types", h.SuggestedTypes)
	}
}

// ListEventsQuery mirrors the table controls: free-text filter, column and direction.
type ListEventsQuery struct {
	Q     string `form:"q"`
	Sort  string `form:"sort"`
	Order string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (q ListEventsQuery) Params() model.QueryParams {
	return model.QueryParams{
		FilterText:    q.Q,
		SortKey:       model.SortKey(q.Sort),
		SortAscending: q.Order != "desc",
	}
}

type DayUri struct {
	Date string `uri:"date" binding:"required"`
}

type EventUri struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type MonthUri struct {
	Month string `uri:"month" binding:"required"`
}

// CreateEventResponse carries the draft back when a submit is refused, so the
// client can keep what the user typed.
type CreateEventResponse struct {
	Error   string           `json:"error"`
	Field   string           `json:"field,omitempty"`
	Problem string           `json:"problem,omitempty"`
	Draft   model.EventDraft `json:"draft"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var draft model.EventDraft
	if err := BindJson(c, &draft); err != nil {
		return
	}

	user := sessionFrom(c).User
	session := form.NewSession(h.now, h.location)
	session.OnSubmitted = func(record *model.EventRecord) {
		logger.WithComponent("handler").Info("Event logged",
			zap.String("user_id", user.ID.String()),
			zap.String("event_id", record.ID.String()),
			zap.String("type", record.Type),
		)
	}
	session.Load(draft)

	created, err := session.Submit(c, form.SubmitterFunc(func(ctx context.Context, record *model.EventRecord) (*model.EventRecord, error) {
		return h.service.Append(ctx, user, record)
	}))
	if err != nil {
		h.handleSubmitError(c, err, session.Draft())
		return
	}

	handleSuccess(c, created, http.StatusCreated)
}

func (h *EventHandler) handleSubmitError(c *gin.Context, err error, draft model.EventDraft) {
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		handleError(c, err, "Create")
		return
	}
	logger.WithComponent("handler").Warn("Validation failed",
		zap.String("operation", "Create"),
		zap.String("field", verr.Field),
		zap.String("problem", string(verr.Problem)),
	)
	c.JSON(http.StatusBadRequest, CreateEventResponse{
		Error:   "Invalid event",
		Field:   verr.Field,
		Problem: string(verr.Problem),
		Draft:   draft,
	})
}

func (h *EventHandler) Get(c *gin.Context) {
	var uri EventUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	event, err := h.service.Get(c, sessionFrom(c).User.ID, uuid.MustParse(uri.ID))
	if err != nil {
		handleError(c, err, "Get")
		return
	}

	handleSuccess(c, event, http.StatusOK)
}

func (h *EventHandler) List(c *gin.Context) {
	var q ListEventsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	events, err := h.service.Query(c, sessionFrom(c).User.ID, q.Params())
	if err != nil {
		handleError(c, err, "List")
		return
	}

	handleSuccess(c, events, http.StatusOK)
}

func (h *EventHandler) ExportCSV(c *gin.Context) {
	var q ListEventsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c, sessionFrom(c).User.ID, q.Params(), &buf); err != nil {
		handleError(c, err, "ExportCSV")
		return
	}

	filename := export.Filename(h.now().In(h.location).Format(model.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *EventHandler) OnDate(c *gin.Context) {
	var uri DayUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	view, err := h.service.OnDate(c, sessionFrom(c).User.ID, uri.Date)
	if err != nil {
		handleError(c, err, "OnDate")
		return
	}

	handleSuccess(c, view, http.StatusOK)
}

func (h *EventHandler) Month(c *gin.Context) {
	var uri MonthUri
	if err := BindUri(c, &uri); err != nil {
		return
	}

	view, err := h.service.Month(c, sessionFrom(c).User.ID, uri.Month)
	if err != nil {
		handleError(c, err, "Month")
		return
	}

	handleSuccess(c, view, http.StatusOK)
}

func (h *EventHandler) SuggestedTypes(c *gin.Context) {
	handleSuccess(c, model.SuggestedTypes, http.StatusOK)
}

// Live pushes the full collection on connect and again after every change
// until the client disconnects.
func (h *EventHandler) Live(c *gin.Context) {
	userID := sessionFrom(c).User.ID
	log := logger.WithComponent("handler").With(zap.String("operation", "Live"), zap.String("user_id", userID.String()))

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("Upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := worker.NewSnapshotWorker(h.feed, h.service, userID, func(events []*model.EventRecord) {
		conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteJSON(events); err != nil {
			log.Debug("Snapshot write failed", zap.Error(err))
		}
	})
	if err := sub.Start(c.Request.Context()); err != nil {
		log.Error("Subscribe failed", zap.Error(err))
		return
	}
	defer sub.Stop()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("Client read ended", zap.Error(err))
			}
			return
		}
	}
}
