package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	adminauth "github.com/AdonesMapula/atay/internal/services/adminauth"
)

const sessionPrefix = "admin_sessions:"

// SessionRepo holds admin login sessions as redis hashes with an idle TTL
// that Touch refreshes on every authenticated request.
type SessionRepo struct {
	client *goredis.Client
}

func NewSessionRepo(client *goredis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func (r *SessionRepo) Create(ctx context.Context, session adminauth.SessionRecord, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(session.SID) == "" || session.AdminID <= 0 || ttl <= 0 {
		return adminauth.ErrInvalidInput
	}

	fields := map[string]interface{}{
		"admin_id": session.AdminID,
		"email":    session.Email,
		"role":     session.Role,
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(session.SID), fields)
	pipe.Expire(ctx, sessionKey(session.SID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create admin session: %w", err)
	}

	return nil
}

func (r *SessionRepo) Get(ctx context.Context, sid string) (adminauth.SessionRecord, error) {
	if r.client == nil {
		return adminauth.SessionRecord{}, fmt.Errorf("redis client is nil")
	}

	values, err := r.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return adminauth.SessionRecord{}, fmt.Errorf("get admin session hash: %w", err)
	}
	if len(values) == 0 {
		return adminauth.SessionRecord{}, adminauth.ErrSessionNotFound
	}

	adminID, err := strconv.ParseInt(values["admin_id"], 10, 64)
	if err != nil || adminID <= 0 {
		return adminauth.SessionRecord{}, adminauth.ErrSessionNotFound
	}

	return adminauth.SessionRecord{
		SID:     sid,
		AdminID: adminID,
		Email:   values["email"],
		Role:    values["role"],
	}, nil
}

// Touch extends the idle TTL of a live session.
func (r *SessionRepo) Touch(ctx context.Context, sid string, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if ttl <= 0 {
		return adminauth.ErrInvalidInput
	}

	ok, err := r.client.Expire(ctx, sessionKey(sid), ttl).Result()
	if err != nil {
		return fmt.Errorf("touch admin session: %w", err)
	}
	if !ok {
		return adminauth.ErrSessionNotFound
	}

	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, sid string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(sid) == "" {
		return nil
	}

	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete admin session: %w", err)
	}

	return nil
}

func sessionKey(sid string) string {
	return sessionPrefix + sid
}
