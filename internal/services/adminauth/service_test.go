package adminauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AdonesMapula/atay/internal/domain/model"
)

type userStoreStub struct {
	users map[string]model.AdminUser
}

func (s *userStoreStub) FindByEmail(_ context.Context, email string) (model.AdminUser, error) {
	user, ok := s.users[email]
	if !ok {
		return model.AdminUser{}, errors.New("admin user not found")
	}
	return user, nil
}

type sessionStoreStub struct {
	sessions   map[string]SessionRecord
	failCreate bool
	touched    int
}

func (s *sessionStoreStub) Create(_ context.Context, session SessionRecord, _ time.Duration) error {
	if s.failCreate {
		return errors.New("redis down")
	}
	if s.sessions == nil {
		s.sessions = map[string]SessionRecord{}
	}
	s.sessions[session.SID] = session
	return nil
}

func (s *sessionStoreStub) Get(_ context.Context, sid string) (SessionRecord, error) {
	session, ok := s.sessions[sid]
	if !ok {
		return SessionRecord{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionStoreStub) Touch(_ context.Context, sid string, _ time.Duration) error {
	if _, ok := s.sessions[sid]; !ok {
		return ErrSessionNotFound
	}
	s.touched++
	return nil
}

func (s *sessionStoreStub) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func newTestService(t *testing.T) (*Service, *sessionStoreStub) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	users := &userStoreStub{users: map[string]model.AdminUser{
		"admin@atay.ph": {
			ID:           7,
			Email:        "admin@atay.ph",
			PasswordHash: string(hash),
			Role:         "admin",
		},
	}}
	sessions := &sessionStoreStub{}
	tokens := NewTokenManager("test-secret", 15*time.Minute)

	return NewService(users, sessions, tokens, time.Hour), sessions
}

func TestLoginSuccessIssuesTokenAndSession(t *testing.T) {
	svc, sessions := newTestService(t)

	result, err := svc.Login(context.Background(), "  Admin@Atay.PH ", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("expected a signed access token")
	}
	if result.SID == "" {
		t.Fatal("expected a session id")
	}
	stored, ok := sessions.sessions[result.SID]
	if !ok {
		t.Fatalf("session %q was not created", result.SID)
	}
	if stored.AdminID != 7 || stored.Email != "admin@atay.ph" {
		t.Fatalf("unexpected session record: %+v", stored)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "admin@atay.ph", "nope")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost@atay.ph", "s3cret")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestLoginEmptyInput(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Login(context.Background(), "", "s3cret"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Login(context.Background(), "admin@atay.ph", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestValidateRoundTrip(t *testing.T) {
	svc, sessions := newTestService(t)

	result, err := svc.Login(context.Background(), "admin@atay.ph", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	identity, err := svc.Validate(context.Background(), result.AccessToken)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if identity.AdminID != 7 || identity.SID != result.SID {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if sessions.touched != 1 {
		t.Fatalf("touched = %d, want 1", sessions.touched)
	}
}

func TestValidateRejectsDeadSession(t *testing.T) {
	svc, sessions := newTestService(t)

	result, err := svc.Login(context.Background(), "admin@atay.ph", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	delete(sessions.sessions, result.SID)

	if _, err := svc.Validate(context.Background(), result.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Validate(context.Background(), "not-a-jwt"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestLogoutRemovesSession(t *testing.T) {
	svc, sessions := newTestService(t)

	result, err := svc.Login(context.Background(), "admin@atay.ph", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(context.Background(), result.SID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := sessions.sessions[result.SID]; ok {
		t.Fatal("session survived logout")
	}
}

func TestTokenExpiry(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Minute)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return base }

	signed, _, err := tokens.Generate(7, "sid-1", "admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tokens.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := tokens.Parse(signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
