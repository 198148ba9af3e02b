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

var ErrTicketTypeNotFound = fmt.Errorf("%w: ticket type", catalog.ErrNotFound)

// TicketTypeRepo stores the sellable tickets managed on the ticket-creation
// screen, not the sold-ticket purchases under moderation.
type TicketTypeRepo struct {
	pool *pgxpool.Pool
}

func NewTicketTypeRepo(pool *pgxpool.Pool) *TicketTypeRepo {
	return &TicketTypeRepo{pool: pool}
}

func (r *TicketTypeRepo) List(ctx context.Context) ([]model.TicketType, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, event_name, event_date, venue, price_cents, COALESCE(image_key, ''), created_at
FROM ticket_types
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	tickets := make([]model.TicketType, 0)
	for rows.Next() {
		var ticket model.TicketType
		if err := rows.Scan(&ticket.ID, &ticket.EventName, &ticket.EventDate, &ticket.Venue, &ticket.PriceCents, &ticket.ImageKey, &ticket.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket type row: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket type rows: %w", err)
	}

	return tickets, nil
}

func (r *TicketTypeRepo) Create(ctx context.Context, ticket model.TicketType) (model.TicketType, error) {
	if r.pool == nil {
		return model.TicketType{}, fmt.Errorf("postgres pool is nil")
	}

	ticket.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
INSERT INTO ticket_types (id, event_name, event_date, venue, price_cents, image_key, created_at)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW())
RETURNING created_at
`, ticket.ID, ticket.EventName, ticket.EventDate, ticket.Venue, ticket.PriceCents, ticket.ImageKey).Scan(&ticket.CreatedAt)
	if err != nil {
		return model.TicketType{}, fmt.Errorf("create ticket type: %w", err)
	}

	return ticket, nil
}

func (r *TicketTypeRepo) Update(ctx context.Context, ticket model.TicketType) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(ticket.ID) == "" {
		return fmt.Errorf("ticket type id is required")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE ticket_types
SET event_name = $2, event_date = $3, venue = $4, price_cents = $5, image_key = NULLIF($6, '')
WHERE id = $1
`, ticket.ID, ticket.EventName, ticket.EventDate, ticket.Venue, ticket.PriceCents, ticket.ImageKey)
	if err != nil {
		return fmt.Errorf("update ticket type %s: %w", ticket.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketTypeNotFound
	}

	return nil
}

func (r *TicketTypeRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM ticket_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket type %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTicketTypeNotFound
	}

	return nil
}
