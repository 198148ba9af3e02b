package handlers

import (
	"context"
	"net/http"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

const dashboardRecentEvents = 3

// PurchaseCounter supplies the per-status totals shown on the dashboard.
type PurchaseCounter interface {
	CountByStatus(ctx context.Context, kind enums.PurchaseKind) (map[enums.PurchaseStatus]int, error)
}

type DashboardHandler struct {
	catalog *catalogsvc.Service
	counter PurchaseCounter
}

func NewDashboardHandler(catalog *catalogsvc.Service, counter PurchaseCounter) *DashboardHandler {
	return &DashboardHandler{
		catalog: catalog,
		counter: counter,
	}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil || h.counter == nil {
		writeInternal(w, "DASHBOARD_UNAVAILABLE", "dashboard dependencies are unavailable")
		return
	}

	recent, err := h.catalog.RecentEvents(r.Context(), dashboardRecentEvents)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load recent events")
		return
	}

	tickets, err := h.counter.CountByStatus(r.Context(), enums.PurchaseKindTicket)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to count ticket purchases")
		return
	}
	merch, err := h.counter.CountByStatus(r.Context(), enums.PurchaseKindMerch)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to count merch purchases")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DashboardResponse{
		RecentEvents: recent,
		Tickets:      statusCountsDTO(tickets),
		Merch:        statusCountsDTO(merch),
	})
}

func statusCountsDTO(counts map[enums.PurchaseStatus]int) dto.DashboardStatusCounts {
	return dto.DashboardStatusCounts{
		Pending:  counts[enums.PurchaseStatusPending],
		Approved: counts[enums.PurchaseStatusApproved],
		Declined: counts[enums.PurchaseStatusDeclined],
	}
}
