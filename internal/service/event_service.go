package service

import (
	"context"
	"io"
	"time"

	"go-gin-attendance-log/internal/cache"
	"go-gin-attendance-log/internal/derive"
	"go-gin-attendance-log/internal/export"
	"go-gin-attendance-log/internal/model"
	"go-gin-attendance-log/internal/queue"
	"go-gin-attendance-log/internal/repository"
	apperrors "go-gin-attendance-log/pkg/app_errors"
	"go-gin-attendance-log/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	// Append stores a validated record for user and announces the change.
	Append(ctx context.Context, user model.CurrentUser, record *model.EventRecord) (*model.EventRecord, error)
	// List returns the user's whole collection, snapshot first.
	List(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, error)
	// Get returns one of the user's records; other users' records are not found.
	Get(ctx context.Context, userID, eventID uuid.UUID) (*model.EventRecord, error)
	Query(ctx context.Context, userID uuid.UUID, params model.QueryParams) ([]*model.EventRecord, error)
	OnDate(ctx context.Context, userID uuid.UUID, date string) (*model.DayView, error)
	Month(ctx context.Context, userID uuid.UUID, yearMonth string) (*model.MonthView, error)
	Stats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	// ExportCSV writes the filtered and sorted view as CSV.
	ExportCSV(ctx context.Context, userID uuid.UUID, params model.QueryParams, w io.Writer) error
}

type EventServiceImpl struct {
	repo     repository.EventRepository
	snapshot cache.EventSnapshotCache
	feed     queue.ChangeFeed
}

func NewEventService(repo repository.EventRepository, snapshot cache.EventSnapshotCache, feed queue.ChangeFeed) EventService {
	return &EventServiceImpl{repo: repo, snapshot: snapshot, feed: feed}
}

func (s *EventServiceImpl) Append(ctx context.Context, user model.CurrentUser, record *model.EventRecord) (*model.EventRecord, error) {
	if record == nil || user.ID == uuid.Nil {
		return nil, apperrors.ErrInvalidInput
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.UserID = user.ID
	record.UserEmail = user.Email

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("service").With(zap.String("user_id", user.ID.String()))
	if err := s.snapshot.Invalidate(ctx, user.ID); err != nil {
		log.Warn("invalidate snapshot failed", zap.Error(err))
	}
	if _, err := s.loadAndCache(ctx, user.ID); err != nil {
		log.Warn("refresh snapshot failed", zap.Error(err))
	}
	if err := s.feed.Publish(ctx, model.EventChange{UserID: user.ID, At: time.Now().UTC()}); err != nil {
		log.Warn("publish change failed", zap.Error(err))
	}
	return created, nil
}

// loadAndCache reads the collection from the store and writes it back as the
// snapshot unless a newer change invalidated it meanwhile.
func (s *EventServiceImpl) loadAndCache(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, error) {
	log := logger.WithComponent("service").With(zap.String("user_id", userID.String()))

	generation, genErr := s.snapshot.Generation(ctx, userID)
	if genErr != nil {
		log.Warn("read snapshot generation failed", zap.Error(genErr))
	}

	events, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return events, nil
	}

	written, err := s.snapshot.Put(ctx, userID, generation, events)
	if err != nil {
		log.Warn("write snapshot failed", zap.Error(err))
	} else if !written {
		log.Debug("snapshot superseded", zap.Int64("generation", generation))
	}
	return events, nil
}

func (s *EventServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, error) {
	events, ok, err := s.snapshot.Get(ctx, userID)
	if err != nil {
		logger.WithComponent("service").Warn("read snapshot failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if ok {
		return events, nil
	}
	return s.loadAndCache(ctx, userID)
}

func (s *EventServiceImpl) Get(ctx context.Context, userID, eventID uuid.UUID) (*model.EventRecord, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.UserID != userID {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *EventServiceImpl) Query(ctx context.Context, userID uuid.UUID, params model.QueryParams) ([]*model.EventRecord, error) {
	events, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return derive.Query(events, params), nil
}

func (s *EventServiceImpl) OnDate(ctx context.Context, userID uuid.UUID, date string) (*model.DayView, error) {
	if !model.IsValidDate(date) {
		return nil, apperrors.ErrInvalidInput
	}
	events, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.DayView{
		Date:   date,
		Mark:   derive.CalendarDayStyle(events, date),
		Events: derive.EventsOnDate(events, date),
	}, nil
}

func (s *EventServiceImpl) Month(ctx context.Context, userID uuid.UUID, yearMonth string) (*model.MonthView, error) {
	if _, err := time.Parse("2006-01", yearMonth); err != nil || len(yearMonth) != 7 {
		return nil, apperrors.ErrInvalidInput
	}
	events, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := derive.Month(events, yearMonth)
	return &view, nil
}

func (s *EventServiceImpl) Stats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error) {
	events, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := derive.Stats(userID, events)
	return &stats, nil
}

func (s *EventServiceImpl) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return derive.Leaderboard(events), nil
}

func (s *EventServiceImpl) ExportCSV(ctx context.Context, userID uuid.UUID, params model.QueryParams, w io.Writer) error {
	events, err := s.Query(ctx, userID, params)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, events)
}
