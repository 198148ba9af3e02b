package moderation

import (
	"strings"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	"github.com/AdonesMapula/atay/internal/domain/model"
)

type DateRange struct {
	Start string
	End   string
}

// Filter narrows the visible working set. Empty fields impose no constraint;
// active predicates are AND-combined.
type Filter struct {
	Status    enums.PurchaseStatus
	NameQuery string
	Dates     DateRange
}

// Visible computes the displayed subset of records. Pure: no I/O, input
// untouched, order preserved.
func Visible(records []model.PurchaseRecord, filter Filter) []model.PurchaseRecord {
	query := strings.ToLower(strings.TrimSpace(filter.NameQuery))

	visible := make([]model.PurchaseRecord, 0, len(records))
	for _, record := range records {
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(record.BuyerName), query) {
			continue
		}
		// Dates are ISO YYYY-MM-DD strings, so lexicographic order is
		// chronological order.
		if filter.Dates.Start != "" && record.PurchaseDate < filter.Dates.Start {
			continue
		}
		if filter.Dates.End != "" && record.PurchaseDate > filter.Dates.End {
			continue
		}
		visible = append(visible, record)
	}
	return visible
}

// Paginate returns the 1-indexed page of a filtered sequence. Out-of-range
// pages and non-positive sizes yield an empty slice, never an error.
func Paginate(records []model.PurchaseRecord, pageSize, page int) []model.PurchaseRecord {
	if pageSize <= 0 || page <= 0 {
		return []model.PurchaseRecord{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []model.PurchaseRecord{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
