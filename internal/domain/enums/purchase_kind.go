package enums

import "strings"

// PurchaseKind names the logical collection a purchase record lives in.
type PurchaseKind string

const (
	PurchaseKindTicket PurchaseKind = "soldtickets"
	PurchaseKindMerch  PurchaseKind = "solditems"
)

func ParseKind(raw string) (PurchaseKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tickets", "soldtickets":
		return PurchaseKindTicket, true
	case "items", "merch", "solditems":
		return PurchaseKindMerch, true
	default:
		return "", false
	}
}
