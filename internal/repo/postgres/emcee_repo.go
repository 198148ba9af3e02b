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

var ErrEmceeNotFound = fmt.Errorf("%w: emcee", catalog.ErrNotFound)

type EmceeRepo struct {
	pool *pgxpool.Pool
}

func NewEmceeRepo(pool *pgxpool.Pool) *EmceeRepo {
	return &EmceeRepo{pool: pool}
}

func (r *EmceeRepo) List(ctx context.Context) ([]model.Emcee, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name, bio, socials, COALESCE(image_key, ''), created_at
FROM emcees
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list emcees: %w", err)
	}
	defer rows.Close()

	emcees := make([]model.Emcee, 0)
	for rows.Next() {
		var emcee model.Emcee
		if err := rows.Scan(&emcee.ID, &emcee.Name, &emcee.Bio, &emcee.Socials, &emcee.ImageKey, &emcee.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan emcee row: %w", err)
		}
		emcees = append(emcees, emcee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emcee rows: %w", err)
	}

	return emcees, nil
}

func (r *EmceeRepo) Create(ctx context.Context, emcee model.Emcee) (model.Emcee, error) {
	if r.pool == nil {
		return model.Emcee{}, fmt.Errorf("postgres pool is nil")
	}

	emcee.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
INSERT INTO emcees (id, name, bio, socials, image_key, created_at)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW())
RETURNING created_at
`, emcee.ID, emcee.Name, emcee.Bio, emcee.Socials, emcee.ImageKey).Scan(&emcee.CreatedAt)
	if err != nil {
		return model.Emcee{}, fmt.Errorf("create emcee: %w", err)
	}

	return emcee, nil
}

func (r *EmceeRepo) Update(ctx context.Context, emcee model.Emcee) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(emcee.ID) == "" {
		return fmt.Errorf("emcee id is required")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE emcees
SET name = $2, bio = $3, socials = $4, image_key = NULLIF($5, '')
WHERE id = $1
`, emcee.ID, emcee.Name, emcee.Bio, emcee.Socials, emcee.ImageKey)
	if err != nil {
		return fmt.Errorf("update emcee %s: %w", emcee.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmceeNotFound
	}

	return nil
}

func (r *EmceeRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM emcees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete emcee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmceeNotFound
	}

	return nil
}
