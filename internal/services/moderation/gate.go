package moderation

import "github.com/AdonesMapula/atay/internal/domain/enums"

type ActionType string

const (
	ActionTransition ActionType = "transition"
	ActionRemoval    ActionType = "removal"
)

// StagedAction is what the confirmation dialog shows: who the action touches
// and what confirming it will do.
type StagedAction struct {
	Type      ActionType           `json:"type"`
	Kind      enums.PurchaseKind   `json:"kind"`
	RecordID  string               `json:"record_id"`
	BuyerName string               `json:"buyer_name"`
	Target    enums.PurchaseStatus `json:"target,omitempty"`
}

// gate is the single-slot staging area between requesting an action and
// committing it. At most one action is armed at a time; arming another
// silently discards the previous one. The holder serializes access.
type gate struct {
	staged *StagedAction
}

func (g *gate) arm(action StagedAction) {
	g.staged = &action
}

func (g *gate) cancel() {
	g.staged = nil
}

func (g *gate) current() (StagedAction, bool) {
	if g.staged == nil {
		return StagedAction{}, false
	}
	return *g.staged, true
}

// take disarms the gate and returns what was staged. Confirming always
// empties the slot, whether the commit that follows succeeds or not.
func (g *gate) take() (StagedAction, bool) {
	if g.staged == nil {
		return StagedAction{}, false
	}
	action := *g.staged
	g.staged = nil
	return action, true
}
