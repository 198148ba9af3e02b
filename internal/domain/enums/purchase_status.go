package enums

import "strings"

type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "Pending"
	PurchaseStatusApproved PurchaseStatus = "Approved"
	PurchaseStatusDeclined PurchaseStatus = "Declined"
)

// NormalizeStatus maps whatever the store holds onto a known status.
// Records written by the buyer-facing flow carry no status at all, so an
// empty value reads as Pending without ever being written back.
func NormalizeStatus(raw string) PurchaseStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved":
		return PurchaseStatusApproved
	case "declined":
		return PurchaseStatusDeclined
	default:
		return PurchaseStatusPending
	}
}

func ParseStatus(raw string) (PurchaseStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return PurchaseStatusPending, true
	case "approved":
		return PurchaseStatusApproved, true
	case "declined":
		return PurchaseStatusDeclined, true
	default:
		return "", false
	}
}
