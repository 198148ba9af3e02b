package enums

import "testing"

func TestNormalizeStatusDefaultsToPending(t *testing.T) {
	tests := []struct {
		raw  string
		want PurchaseStatus
	}{
		{raw: "", want: PurchaseStatusPending},
		{raw: "  ", want: PurchaseStatusPending},
		{raw: "Pending", want: PurchaseStatusPending},
		{raw: "approved", want: PurchaseStatusApproved},
		{raw: "APPROVED", want: PurchaseStatusApproved},
		{raw: "Declined", want: PurchaseStatusDeclined},
		{raw: "garbage", want: PurchaseStatusPending},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Fatalf("normalize %q: got %s want %s", tt.raw, got, tt.want)
		}
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	if _, ok := ParseStatus("refunded"); ok {
		t.Fatalf("expected parse failure for unknown status")
	}
	status, ok := ParseStatus("declined")
	if !ok || status != PurchaseStatusDeclined {
		t.Fatalf("unexpected parse result: %s ok=%v", status, ok)
	}
}

func TestParseKindAcceptsRouteAliases(t *testing.T) {
	kind, ok := ParseKind("tickets")
	if !ok || kind != PurchaseKindTicket {
		t.Fatalf("unexpected kind for tickets: %s ok=%v", kind, ok)
	}
	kind, ok = ParseKind("items")
	if !ok || kind != PurchaseKindMerch {
		t.Fatalf("unexpected kind for items: %s ok=%v", kind, ok)
	}
	if _, ok := ParseKind("emcees"); ok {
		t.Fatalf("expected parse failure for non-purchase collection")
	}
}
