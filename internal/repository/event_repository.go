package repository

import (
	"context"
	"errors"

	"go-gin-attendance-log/internal/model"
	apperrors "go-gin-attendance-log/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.EventRecord) (*model.EventRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.EventRecord, error)
	// ListByUser returns one user's collection in insertion order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, error)
	// ListAll returns every user's records, used by the leaderboard.
	ListAll(ctx context.Context) ([]*model.EventRecord, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, user_id, user_email, title, date, type, location, notes, rating, tags, created_at`

func scanEvent(row pgx.Row) (*model.EventRecord, error) {
	var event model.EventRecord
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.UserEmail,
		&event.Title,
		&event.Date,
		&event.Type,
		&event.Location,
		&event.Notes,
		&event.Rating,
		&event.Tags,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.EventRecord) (*model.EventRecord, error) {
	query := `
		INSERT INTO events (id, user_id, user_email, title, date, type, location, notes, rating, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns

	return scanEvent(r.pool.QueryRow(ctx, query,
		event.ID, event.UserID, event.UserEmail, event.Title, event.Date,
		event.Type, event.Location, event.Notes, event.Rating, event.Tags,
	))
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.EventRecord, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.EventRecord, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = $1
		ORDER BY seq ASC
	`
	return r.list(ctx, query, userID)
}

func (r *EventRepositoryImpl) ListAll(ctx context.Context) ([]*model.EventRecord, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY seq ASC
	`
	return r.list(ctx, query)
}

func (r *EventRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.EventRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.EventRecord, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
