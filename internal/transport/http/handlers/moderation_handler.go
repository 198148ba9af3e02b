package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	"github.com/AdonesMapula/atay/internal/domain/model"
	authsvc "github.com/AdonesMapula/atay/internal/services/adminauth"
	mediasvc "github.com/AdonesMapula/atay/internal/services/media"
	modsvc "github.com/AdonesMapula/atay/internal/services/moderation"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

// ModerationHandler exposes the purchase review screens: the filtered sold
// tickets and sold merch lists, and the stage/confirm/cancel flow behind the
// approve, decline and delete buttons.
type ModerationHandler struct {
	service  *modsvc.Service
	media    *mediasvc.Service
	pageSize int
}

func NewModerationHandler(service *modsvc.Service, media *mediasvc.Service, pageSize int) *ModerationHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ModerationHandler{
		service:  service,
		media:    media,
		pageSize: pageSize,
	}
}

func (h *ModerationHandler) List(w http.ResponseWriter, r *http.Request) {
	engine, kind, ok := h.sessionEngine(w, r)
	if !ok {
		return
	}

	if !engine.Loaded(kind) {
		if err := engine.Load(r.Context(), kind); err != nil {
			writeInternal(w, "FETCH_FAILED", "failed to load purchases")
			return
		}
	}

	filter, page, err := parseListQuery(r)
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", err.Error())
		return
	}

	visible := engine.Visible(kind, filter)
	items := modsvc.Paginate(visible, h.pageSize, page)

	httperrors.Write(w, http.StatusOK, dto.PurchaseListResponse{
		Items:    h.toPurchaseDTOs(r.Context(), items),
		Page:     page,
		PageSize: h.pageSize,
		Total:    len(visible),
	})
}

// Refresh re-reads the working set from the store, picking up purchases
// submitted since the last load.
func (h *ModerationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	engine, kind, ok := h.sessionEngine(w, r)
	if !ok {
		return
	}

	if err := engine.Load(r.Context(), kind); err != nil {
		writeInternal(w, "FETCH_FAILED", "failed to refresh purchases")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.PurchaseListResponse{
		Items:    h.toPurchaseDTOs(r.Context(), modsvc.Paginate(engine.Records(kind), h.pageSize, 1)),
		Page:     1,
		PageSize: h.pageSize,
		Total:    len(engine.Records(kind)),
	})
}

// Stage arms the confirmation dialog for one purchase. approve, decline and
// pending stage a status change; delete stages a permanent removal.
func (h *ModerationHandler) Stage(w http.ResponseWriter, r *http.Request) {
	engine, kind, ok := h.sessionEngine(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req dto.StageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	var (
		action modsvc.StagedAction
		err    error
	)
	switch req.Action {
	case "delete":
		action, err = engine.RequestRemoval(kind, id)
	case "approve":
		action, err = engine.RequestTransition(kind, id, enums.PurchaseStatusApproved)
	case "decline":
		action, err = engine.RequestTransition(kind, id, enums.PurchaseStatusDeclined)
	case "pending":
		action, err = engine.RequestTransition(kind, id, enums.PurchaseStatusPending)
	default:
		writeBadRequest(w, "VALIDATION_ERROR", "action must be approve, decline, pending or delete")
		return
	}
	if err != nil {
		handleModerationError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, stagedActionDTO(action))
}

// Staged reports the action currently waiting in the confirmation dialog.
func (h *ModerationHandler) Staged(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineOnly(w, r)
	if !ok {
		return
	}

	action, armed := engine.Staged()
	if !armed {
		writeNotFound(w, "NOTHING_STAGED", "no action is staged")
		return
	}

	httperrors.Write(w, http.StatusOK, stagedActionDTO(action))
}

func (h *ModerationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineOnly(w, r)
	if !ok {
		return
	}

	result, err := engine.Confirm(r.Context())
	if err != nil {
		handleModerationError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ConfirmResponse{
		OK:     true,
		Type:   string(result.Action.Type),
		Record: h.toPurchaseDTO(r.Context(), result.Record),
	})
}

func (h *ModerationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineOnly(w, r)
	if !ok {
		return
	}

	wasStaged := engine.Cancel()
	httperrors.Write(w, http.StatusOK, dto.CancelResponse{OK: true, WasStaged: wasStaged})
}

func (h *ModerationHandler) sessionEngine(w http.ResponseWriter, r *http.Request) (*modsvc.Engine, enums.PurchaseKind, bool) {
	engine, ok := h.engineOnly(w, r)
	if !ok {
		return nil, "", false
	}

	kind, ok := enums.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "kind must be tickets or items")
		return nil, "", false
	}

	return engine, kind, true
}

func (h *ModerationHandler) engineOnly(w http.ResponseWriter, r *http.Request) (*modsvc.Engine, bool) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return nil, false
	}
	if h.service == nil {
		writeInternal(w, "MODERATION_SERVICE_UNAVAILABLE", "moderation service is unavailable")
		return nil, false
	}
	return h.service.Engine(identity.SID), true
}

func handleModerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, modsvc.ErrNothingStaged):
		writeConflict(w, "NOTHING_STAGED", "no action is staged")
	case errors.Is(err, modsvc.ErrInvalidState):
		writeConflict(w, "DELETE_GUARD", "only declined purchases can be deleted")
	case errors.Is(err, modsvc.ErrNotFound):
		writeNotFound(w, "PURCHASE_NOT_FOUND", "purchase not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "failed to apply moderation action")
	}
}

func parseListQuery(r *http.Request) (modsvc.Filter, int, error) {
	query := r.URL.Query()

	var filter modsvc.Filter
	if raw := query.Get("status"); raw != "" {
		status, ok := enums.ParseStatus(raw)
		if !ok {
			return modsvc.Filter{}, 0, fmt.Errorf("status must be pending, approved or declined")
		}
		filter.Status = status
	}
	filter.NameQuery = query.Get("q")
	filter.Dates = modsvc.DateRange{
		Start: query.Get("from"),
		End:   query.Get("to"),
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return modsvc.Filter{}, 0, fmt.Errorf("page must be a positive integer")
		}
		page = parsed
	}

	return filter, page, nil
}

func stagedActionDTO(action modsvc.StagedAction) dto.StagedActionResponse {
	return dto.StagedActionResponse{
		Type:      string(action.Type),
		Kind:      string(action.Kind),
		RecordID:  action.RecordID,
		BuyerName: action.BuyerName,
		Target:    string(action.Target),
		Prompt:    stagePrompt(action),
	}
}

func stagePrompt(action modsvc.StagedAction) string {
	if action.Type == modsvc.ActionRemoval {
		return fmt.Sprintf("Are you sure you want to permanently delete %s's declined purchase?", action.BuyerName)
	}
	return fmt.Sprintf("Are you sure you want to mark %s's purchase as %s?", action.BuyerName, action.Target)
}

func (h *ModerationHandler) toPurchaseDTOs(ctx context.Context, records []model.PurchaseRecord) []dto.Purchase {
	out := make([]dto.Purchase, 0, len(records))
	for _, record := range records {
		out = append(out, h.toPurchaseDTO(ctx, record))
	}
	return out
}

func (h *ModerationHandler) toPurchaseDTO(ctx context.Context, record model.PurchaseRecord) dto.Purchase {
	item := dto.Purchase{
		ID:            record.ID,
		Kind:          string(record.Kind),
		BuyerName:     record.BuyerName,
		Email:         record.Email,
		Phone:         record.Phone,
		PaymentMethod: record.PaymentMethod,
		Status:        string(record.Status),
		PurchaseDate:  record.PurchaseDate,
		Quantity:      record.Quantity,
		Brand:         record.Brand,
		ItemName:      record.ItemName,
		Size:          record.Size,
		PriceCents:    record.PriceCents,
	}

	// Receipt links are signed on the way out; a signing failure hides the
	// link rather than failing the whole list.
	if h.media != nil && record.ReceiptKey != nil {
		if url, err := h.media.ResolveURL(ctx, *record.ReceiptKey); err == nil {
			item.ReceiptURL = url
		}
	}

	return item
}
