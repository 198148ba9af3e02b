package adminauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AdonesMapula/atay/internal/domain/model"
	"github.com/AdonesMapula/atay/internal/pkg/validate"
)

var (
	ErrInvalidInput    = errors.New("invalid auth input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("admin session not found")
)

// UserStore looks up admin accounts for credential checks.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.AdminUser, error)
}

// SessionStore keeps live admin sessions keyed by session id.
type SessionStore interface {
	Create(ctx context.Context, session SessionRecord, ttl time.Duration) error
	Get(ctx context.Context, sid string) (SessionRecord, error)
	Touch(ctx context.Context, sid string, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

type SessionRecord struct {
	SID     string
	AdminID int64
	Email   string
	Role    string
}

type Service struct {
	users      UserStore
	sessions   SessionStore
	tokens     *TokenManager
	sessionTTL time.Duration
}

type LoginResult struct {
	AccessToken   string
	AccessExpires time.Time
	SID           string
	Admin         model.AdminUser
}

func NewService(users UserStore, sessions SessionStore, tokens *TokenManager, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// Login checks email/password against the stored bcrypt hash and opens a
// redis-backed session. The same ErrUnauthorized covers an unknown email and
// a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if s.users == nil || s.sessions == nil || s.tokens == nil {
		return LoginResult{}, fmt.Errorf("admin auth dependencies are not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if password == "" || !validate.Email(email) {
		return LoginResult{}, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrUnauthorized
	}

	sid := uuid.NewString()
	session := SessionRecord{
		SID:     sid,
		AdminID: user.ID,
		Email:   user.Email,
		Role:    user.Role,
	}
	if err := s.sessions.Create(ctx, session, s.sessionTTL); err != nil {
		return LoginResult{}, fmt.Errorf("open admin session: %w", err)
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, sid, user.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return LoginResult{
		AccessToken:   token,
		AccessExpires: expiresAt,
		SID:           sid,
		Admin:         user,
	}, nil
}

// Validate parses the bearer token and confirms the session is still live,
// refreshing its idle TTL.
func (s *Service) Validate(ctx context.Context, accessToken string) (Identity, error) {
	if s.sessions == nil || s.tokens == nil {
		return Identity{}, fmt.Errorf("admin auth dependencies are not configured")
	}

	claims, err := s.tokens.Parse(accessToken)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, claims.SID)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}
	if session.AdminID != claims.AdminID {
		return Identity{}, ErrUnauthorized
	}

	_ = s.sessions.Touch(ctx, claims.SID, s.sessionTTL)

	return Identity{
		AdminID: session.AdminID,
		SID:     session.SID,
		Email:   session.Email,
		Role:    session.Role,
	}, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	if s.sessions == nil {
		return fmt.Errorf("admin auth dependencies are not configured")
	}
	if strings.TrimSpace(sid) == "" {
		return ErrInvalidInput
	}
	return s.sessions.Delete(ctx, sid)
}
