package model

import (
	"time"

	"github.com/AdonesMapula/atay/internal/domain/enums"
)

// PurchaseRecord is a buyer-submitted ticket or merch order under admin
// review. The ID is assigned by the store on insert and never reused.
type PurchaseRecord struct {
	ID            string               `json:"id"`
	Kind          enums.PurchaseKind   `json:"kind"`
	BuyerName     string               `json:"buyer_name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	PaymentMethod string               `json:"payment_method"`
	ReceiptKey    *string              `json:"receipt_key,omitempty"`
	Status        enums.PurchaseStatus `json:"status"`
	PurchaseDate  string               `json:"purchase_date"`

	// Ticket orders only.
	Quantity int `json:"quantity,omitempty"`

	// Merch orders only.
	Brand      string `json:"brand,omitempty"`
	ItemName   string `json:"item_name,omitempty"`
	Size       string `json:"size,omitempty"`
	PriceCents int64  `json:"price_cents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
