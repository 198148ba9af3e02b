package dto

type Purchase struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	BuyerName     string `json:"buyer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
	ReceiptURL    string `json:"receipt_url,omitempty"`
	Status        string `json:"status"`
	PurchaseDate  string `json:"purchase_date"`

	Quantity   int    `json:"quantity,omitempty"`
	Brand      string `json:"brand,omitempty"`
	ItemName   string `json:"item_name,omitempty"`
	Size       string `json:"size,omitempty"`
	PriceCents int64  `json:"price_cents,omitempty"`
}

type PurchaseListResponse struct {
	Items    []Purchase `json:"items"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int        `json:"total"`
}

type StageRequest struct {
	Action string `json:"action"`
}

type StagedActionResponse struct {
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	RecordID  string `json:"record_id"`
	BuyerName string `json:"buyer_name"`
	Target    string `json:"target,omitempty"`
	Prompt    string `json:"prompt"`
}

type ConfirmResponse struct {
	OK     bool     `json:"ok"`
	Type   string   `json:"type"`
	Record Purchase `json:"record"`
}

type CancelResponse struct {
	OK        bool `json:"ok"`
	WasStaged bool `json:"was_staged"`
}
