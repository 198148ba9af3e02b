package moderation

import (
	"context"
	"errors"
	"sync"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	"github.com/AdonesMapula/atay/internal/domain/model"
)

var (
	ErrFetch         = errors.New("purchase list fetch failed")
	ErrWrite         = errors.New("purchase update rejected by store")
	ErrInvalidState  = errors.New("only declined purchases can be deleted")
	ErrNotFound      = errors.New("purchase record not found")
	ErrNothingStaged = errors.New("no action is staged")
)

// PurchaseStore is the document-store adapter the engine writes through.
// Each kind is a distinct logical collection.
type PurchaseStore interface {
	ListAll(ctx context.Context, kind enums.PurchaseKind) ([]model.PurchaseRecord, error)
	UpdateStatus(ctx context.Context, kind enums.PurchaseKind, id string, status enums.PurchaseStatus) error
	DeleteByID(ctx context.Context, kind enums.PurchaseKind, id string) error
}

// Notifier receives human-readable notices about commit and delete outcomes.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Service hands out one moderation engine per admin session. Engines are
// independent: each holds its own working set and its own confirmation slot.
type Service struct {
	store    PurchaseStore
	notifier Notifier

	mu      sync.Mutex
	engines map[string]*Engine
}

func NewService(store PurchaseStore, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		engines:  make(map[string]*Engine),
	}
}

// Engine returns the engine bound to the given admin session, creating it on
// first use.
func (s *Service) Engine(sessionID string) *Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := s.engines[sessionID]; ok {
		return engine
	}
	engine := NewEngine(s.store, s.notifier)
	s.engines[sessionID] = engine
	return engine
}

// Drop discards a session's engine, e.g. on logout.
func (s *Service) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.engines, sessionID)
}
