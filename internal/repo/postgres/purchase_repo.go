package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	"github.com/AdonesMapula/atay/internal/domain/model"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepo is the document-store adapter for buyer-submitted purchases.
// Both kinds share one table keyed by (kind, id); kind-specific fields live
// in a jsonb details column so the row shape stays common.
type PurchaseRepo struct {
	pool *pgxpool.Pool
}

type purchaseDetails struct {
	Quantity   int    `json:"quantity,omitempty"`
	Brand      string `json:"brand,omitempty"`
	ItemName   string `json:"item_name,omitempty"`
	Size       string `json:"size,omitempty"`
	PriceCents int64  `json:"price_cents,omitempty"`
}

func NewPurchaseRepo(pool *pgxpool.Pool) *PurchaseRepo {
	return &PurchaseRepo{pool: pool}
}

// ListAll returns every record of a kind in insertion order. Status is
// normalized on read; rows written by the buyer flow carry NULL status.
func (r *PurchaseRepo) ListAll(ctx context.Context, kind enums.PurchaseKind) ([]model.PurchaseRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, kind, buyer_name, email, phone, payment_method, receipt_key, status, purchase_date, details, created_at
FROM purchases
WHERE kind = $1
ORDER BY created_at, id
`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	records := make([]model.PurchaseRecord, 0)
	for rows.Next() {
		record, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", kind, err)
	}

	return records, nil
}

// UpdateStatus writes only the status field, leaving the rest of the
// document as the buyer submitted it.
func (r *PurchaseRepo) UpdateStatus(ctx context.Context, kind enums.PurchaseKind, id string, status enums.PurchaseStatus) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("purchase id is required")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE purchases
SET status = $3, updated_at = NOW()
WHERE kind = $1
  AND id = $2
`, string(kind), id, string(status))
	if err != nil {
		return fmt.Errorf("update %s %s status: %w", kind, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

func (r *PurchaseRepo) DeleteByID(ctx context.Context, kind enums.PurchaseKind, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("purchase id is required")
	}

	tag, err := r.pool.Exec(ctx, `
DELETE FROM purchases
WHERE kind = $1
  AND id = $2
`, string(kind), id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

// CountByStatus returns how many records of a kind sit at each normalized
// status. NULL and unknown raw values count as Pending.
func (r *PurchaseRepo) CountByStatus(ctx context.Context, kind enums.PurchaseKind) (map[enums.PurchaseStatus]int, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT COALESCE(status, ''), COUNT(*)
FROM purchases
WHERE kind = $1
GROUP BY COALESCE(status, '')
`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("count %s by status: %w", kind, err)
	}
	defer rows.Close()

	counts := map[enums.PurchaseStatus]int{
		enums.PurchaseStatusPending:  0,
		enums.PurchaseStatusApproved: 0,
		enums.PurchaseStatusDeclined: 0,
	}
	for rows.Next() {
		var (
			raw   string
			count int
		)
		if err := rows.Scan(&raw, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[enums.NormalizeStatus(raw)] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	return counts, nil
}

func scanPurchase(row pgx.Row) (model.PurchaseRecord, error) {
	var (
		record     model.PurchaseRecord
		kind       string
		rawStatus  *string
		rawDetails []byte
	)
	if err := row.Scan(
		&record.ID,
		&kind,
		&record.BuyerName,
		&record.Email,
		&record.Phone,
		&record.PaymentMethod,
		&record.ReceiptKey,
		&rawStatus,
		&record.PurchaseDate,
		&rawDetails,
		&record.CreatedAt,
	); err != nil {
		return model.PurchaseRecord{}, err
	}

	record.Kind = enums.PurchaseKind(kind)
	if rawStatus != nil {
		record.Status = enums.NormalizeStatus(*rawStatus)
	} else {
		record.Status = enums.PurchaseStatusPending
	}

	if len(rawDetails) > 0 {
		var details purchaseDetails
		if err := json.Unmarshal(rawDetails, &details); err != nil {
			return model.PurchaseRecord{}, fmt.Errorf("decode purchase details: %w", err)
		}
		record.Quantity = details.Quantity
		record.Brand = details.Brand
		record.ItemName = details.ItemName
		record.Size = details.Size
		record.PriceCents = details.PriceCents
	}

	return record, nil
}
