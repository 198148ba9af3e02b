package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AdonesMapula/atay/internal/domain/model"
)

var ErrAdminUserNotFound = errors.New("admin user not found")

type AdminUserRepo struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepo(pool *pgxpool.Pool) *AdminUserRepo {
	return &AdminUserRepo{pool: pool}
}

func (r *AdminUserRepo) FindByEmail(ctx context.Context, email string) (model.AdminUser, error) {
	if r.pool == nil {
		return model.AdminUser{}, fmt.Errorf("postgres pool is nil")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.AdminUser{}, fmt.Errorf("email is required")
	}

	var user model.AdminUser
	err := r.pool.QueryRow(ctx, `
SELECT id, email, password_hash, display_name, role, created_at
FROM admin_users
WHERE email = $1
LIMIT 1
`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AdminUser{}, ErrAdminUserNotFound
		}
		return model.AdminUser{}, fmt.Errorf("find admin user by email: %w", err)
	}

	return user, nil
}
