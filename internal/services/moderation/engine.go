package moderation

import (
	"context"
	"fmt"
	"sync"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	"github.com/AdonesMapula/atay/internal/domain/model"
)

// Engine holds one admin session's in-memory working set of purchase
// records and executes staged status transitions and removals against the
// store. The cache only changes after the store accepts a write, so a failed
// commit leaves it at the last known-good state.
type Engine struct {
	store    PurchaseStore
	notifier Notifier

	mu     sync.Mutex
	caches map[enums.PurchaseKind][]model.PurchaseRecord
	loaded map[enums.PurchaseKind]bool
	gate   gate
}

// CommitResult reports what a confirmed action did.
type CommitResult struct {
	Action StagedAction
	Record model.PurchaseRecord
}

func NewEngine(store PurchaseStore, notifier Notifier) *Engine {
	return &Engine{
		store:    store,
		notifier: notifier,
		caches:   make(map[enums.PurchaseKind][]model.PurchaseRecord),
		loaded:   make(map[enums.PurchaseKind]bool),
	}
}

// Load replaces the cached working set for a kind with the store's current
// contents, in store order. A fetch failure leaves any prior cache intact.
func (e *Engine) Load(ctx context.Context, kind enums.PurchaseKind) error {
	if e.store == nil {
		return fmt.Errorf("%w: store is not configured", ErrFetch)
	}

	records, err := e.store.ListAll(ctx, kind)
	if err != nil {
		return fmt.Errorf("%w: list %s: %v", ErrFetch, kind, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.caches[kind] = records
	e.loaded[kind] = true
	return nil
}

// Loaded reports whether a kind has been fetched at least once.
func (e *Engine) Loaded(kind enums.PurchaseKind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded[kind]
}

// Records returns a copy of the cached working set for a kind.
func (e *Engine) Records(kind enums.PurchaseKind) []model.PurchaseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.PurchaseRecord(nil), e.caches[kind]...)
}

// Visible applies the filter to the cached working set.
func (e *Engine) Visible(kind enums.PurchaseKind, filter Filter) []model.PurchaseRecord {
	return Visible(e.Records(kind), filter)
}

// RequestTransition stages a status change for later confirmation. Nothing
// touches the store until Confirm. Any previously staged action is discarded.
func (e *Engine) RequestTransition(kind enums.PurchaseKind, id string, target enums.PurchaseStatus) (StagedAction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.findLocked(kind, id)
	if !ok {
		return StagedAction{}, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}

	action := StagedAction{
		Type:      ActionTransition,
		Kind:      kind,
		RecordID:  id,
		BuyerName: record.BuyerName,
		Target:    target,
	}
	e.gate.arm(action)
	return action, nil
}

// RequestRemoval stages a permanent delete. Deletion is only reachable from
// Declined; the check runs again at commit time in case the status moved in
// between.
func (e *Engine) RequestRemoval(kind enums.PurchaseKind, id string) (StagedAction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, ok := e.findLocked(kind, id)
	if !ok {
		return StagedAction{}, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	if !canDelete(record) {
		return StagedAction{}, fmt.Errorf("%w: %s is %s", ErrInvalidState, id, record.Status)
	}

	action := StagedAction{
		Type:      ActionRemoval,
		Kind:      kind,
		RecordID:  id,
		BuyerName: record.BuyerName,
	}
	e.gate.arm(action)
	return action, nil
}

// Staged returns the currently armed action, if any.
func (e *Engine) Staged() (StagedAction, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gate.current()
}

// Cancel disarms the gate without touching the store.
func (e *Engine) Cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, armed := e.gate.current()
	e.gate.cancel()
	return armed
}

// Confirm commits the staged action. The gate returns to idle regardless of
// the outcome; on a store failure the cache is left unchanged and the error
// wraps ErrWrite (or ErrInvalidState for a removal that lost its guard).
func (e *Engine) Confirm(ctx context.Context) (CommitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	action, ok := e.gate.take()
	if !ok {
		return CommitResult{}, ErrNothingStaged
	}

	switch action.Type {
	case ActionRemoval:
		return e.commitRemovalLocked(ctx, action)
	default:
		return e.commitTransitionLocked(ctx, action)
	}
}

func (e *Engine) commitTransitionLocked(ctx context.Context, action StagedAction) (CommitResult, error) {
	record, ok := e.findLocked(action.Kind, action.RecordID)
	if !ok {
		return CommitResult{}, fmt.Errorf("%w: %s %s", ErrNotFound, action.Kind, action.RecordID)
	}

	if err := e.store.UpdateStatus(ctx, action.Kind, action.RecordID, action.Target); err != nil {
		e.notify(ctx, fmt.Sprintf("Failed to mark %s's purchase as %s: %v", action.BuyerName, action.Target, err))
		return CommitResult{}, fmt.Errorf("%w: update %s %s: %v", ErrWrite, action.Kind, action.RecordID, err)
	}

	record.Status = action.Target
	e.replaceLocked(action.Kind, record)
	e.notify(ctx, fmt.Sprintf("Marked %s's purchase as %s", action.BuyerName, action.Target))
	return CommitResult{Action: action, Record: record}, nil
}

func (e *Engine) commitRemovalLocked(ctx context.Context, action StagedAction) (CommitResult, error) {
	record, ok := e.findLocked(action.Kind, action.RecordID)
	if !ok {
		return CommitResult{}, fmt.Errorf("%w: %s %s", ErrNotFound, action.Kind, action.RecordID)
	}
	if !canDelete(record) {
		e.notify(ctx, fmt.Sprintf("Refused to delete %s's purchase: status changed to %s", action.BuyerName, record.Status))
		return CommitResult{}, fmt.Errorf("%w: %s is %s", ErrInvalidState, action.RecordID, record.Status)
	}

	if err := e.store.DeleteByID(ctx, action.Kind, action.RecordID); err != nil {
		e.notify(ctx, fmt.Sprintf("Failed to delete %s's purchase: %v", action.BuyerName, err))
		return CommitResult{}, fmt.Errorf("%w: delete %s %s: %v", ErrWrite, action.Kind, action.RecordID, err)
	}

	e.removeLocked(action.Kind, action.RecordID)
	e.notify(ctx, fmt.Sprintf("Deleted %s's declined purchase", action.BuyerName))
	return CommitResult{Action: action, Record: record}, nil
}

// canDelete is the deletion guard: permanent removal is only reachable from
// the Declined status.
func canDelete(record model.PurchaseRecord) bool {
	return record.Status == enums.PurchaseStatusDeclined
}

func (e *Engine) findLocked(kind enums.PurchaseKind, id string) (model.PurchaseRecord, bool) {
	for _, record := range e.caches[kind] {
		if record.ID == id {
			return record, true
		}
	}
	return model.PurchaseRecord{}, false
}

func (e *Engine) replaceLocked(kind enums.PurchaseKind, record model.PurchaseRecord) {
	cache := e.caches[kind]
	for i := range cache {
		if cache[i].ID == record.ID {
			cache[i] = record
			return
		}
	}
}

func (e *Engine) removeLocked(kind enums.PurchaseKind, id string) {
	cache := e.caches[kind]
	for i := range cache {
		if cache[i].ID == id {
			e.caches[kind] = append(cache[:i], cache[i+1:]...)
			return
		}
	}
}

func (e *Engine) notify(ctx context.Context, message string) {
	if e.notifier != nil {
		e.notifier.Notify(ctx, message)
	}
}
