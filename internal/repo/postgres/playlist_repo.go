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

var ErrPlaylistNotFound = fmt.Errorf("%w: playlist entry", catalog.ErrNotFound)

type PlaylistRepo struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepo(pool *pgxpool.Pool) *PlaylistRepo {
	return &PlaylistRepo{pool: pool}
}

func (r *PlaylistRepo) List(ctx context.Context) ([]model.Playlist, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, title, artist, url, created_at
FROM playlists
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	entries := make([]model.Playlist, 0)
	for rows.Next() {
		var entry model.Playlist
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Artist, &entry.URL, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist rows: %w", err)
	}

	return entries, nil
}

func (r *PlaylistRepo) Create(ctx context.Context, entry model.Playlist) (model.Playlist, error) {
	if r.pool == nil {
		return model.Playlist{}, fmt.Errorf("postgres pool is nil")
	}

	entry.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
INSERT INTO playlists (id, title, artist, url, created_at)
VALUES ($1, $2, $3, $4, NOW())
RETURNING created_at
`, entry.ID, entry.Title, entry.Artist, entry.URL).Scan(&entry.CreatedAt)
	if err != nil {
		return model.Playlist{}, fmt.Errorf("create playlist entry: %w", err)
	}

	return entry, nil
}

func (r *PlaylistRepo) Update(ctx context.Context, entry model.Playlist) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("playlist id is required")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE playlists
SET title = $2, artist = $3, url = $4
WHERE id = $1
`, entry.ID, entry.Title, entry.Artist, entry.URL)
	if err != nil {
		return fmt.Errorf("update playlist %s: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlaylistNotFound
	}

	return nil
}

func (r *PlaylistRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete playlist %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlaylistNotFound
	}

	return nil
}
