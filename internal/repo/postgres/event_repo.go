package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AdonesMapula/atay/internal/domain/model"
	"github.com/AdonesMapula/atay/internal/services/catalog"
)

var ErrEventNotFound = fmt.Errorf("%w: event", catalog.ErrNotFound)

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name, date, venue, description, COALESCE(image_key, ''), created_at
FROM events
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(&event.ID, &event.Name, &event.Date, &event.Venue, &event.Description, &event.ImageKey, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

// ListRecent returns the newest events by date, for the dashboard strip.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]model.Event, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if limit <= 0 {
		limit = 3
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name, date, venue, description, COALESCE(image_key, ''), created_at
FROM events
ORDER BY date DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	defer rows.Close()

	events := make([]model.Event, 0, limit)
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(&event.ID, &event.Name, &event.Date, &event.Venue, &event.Description, &event.ImageKey, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

func (r *EventRepo) Create(ctx context.Context, event model.Event) (model.Event, error) {
	if r.pool == nil {
		return model.Event{}, fmt.Errorf("postgres pool is nil")
	}

	event.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
INSERT INTO events (id, name, date, venue, description, image_key, created_at)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW())
RETURNING created_at
`, event.ID, event.Name, event.Date, event.Venue, event.Description, event.ImageKey).Scan(&event.CreatedAt)
	if err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (r *EventRepo) Update(ctx context.Context, event model.Event) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("event id is required")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE events
SET name = $2, date = $3, venue = $4, description = $5, image_key = NULLIF($6, '')
WHERE id = $1
`, event.ID, event.Name, event.Date, event.Venue, event.Description, event.ImageKey)
	if err != nil {
		return fmt.Errorf("update event %s: %w", event.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}
