package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	adminauth "github.com/AdonesMapula/atay/internal/services/adminauth"
)

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func testSession() adminauth.SessionRecord {
	return adminauth.SessionRecord{
		SID:     "sid-1",
		AdminID: 7,
		Email:   "admin@atay.ph",
		Role:    "admin",
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	_, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	if err := repo.Create(ctx, testSession(), time.Hour); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.AdminID != 7 || got.Email != "admin@atay.ph" || got.Role != "admin" {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionCreateValidatesInput(t *testing.T) {
	_, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	bad := testSession()
	bad.SID = "  "
	if err := repo.Create(ctx, bad, time.Hour); !errors.Is(err, adminauth.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	if err := repo.Create(ctx, testSession(), 0); !errors.Is(err, adminauth.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestSessionGetMissing(t *testing.T) {
	_, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)

	_, err := repo.Get(context.Background(), "sid-missing")
	if !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	if err := repo.Create(ctx, testSession(), time.Minute); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := repo.Get(ctx, "sid-1"); !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound after expiry", err)
	}
}

func TestSessionTouchExtendsTTL(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	if err := repo.Create(ctx, testSession(), time.Minute); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mr.FastForward(30 * time.Second)
	if err := repo.Touch(ctx, "sid-1", time.Minute); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	mr.FastForward(45 * time.Second)

	if _, err := repo.Get(ctx, "sid-1"); err != nil {
		t.Fatalf("session should still be alive after touch: %v", err)
	}
}

func TestSessionTouchMissing(t *testing.T) {
	_, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)

	err := repo.Touch(context.Background(), "sid-missing", time.Minute)
	if !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}

func TestSessionDelete(t *testing.T) {
	_, client := newMiniRedisClient(t)
	repo := NewSessionRepo(client)
	ctx := context.Background()

	if err := repo.Create(ctx, testSession(), time.Hour); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "sid-1"); !errors.Is(err, adminauth.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound after delete", err)
	}
}
