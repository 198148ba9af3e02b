package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/enums"
	"github.com/AdonesMapula/atay/internal/domain/model"
	authsvc "github.com/AdonesMapula/atay/internal/services/adminauth"
	modsvc "github.com/AdonesMapula/atay/internal/services/moderation"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
)

type purchaseStoreStub struct {
	records map[enums.PurchaseKind][]model.PurchaseRecord
	updates int
	deletes int
}

func (s *purchaseStoreStub) ListAll(_ context.Context, kind enums.PurchaseKind) ([]model.PurchaseRecord, error) {
	return append([]model.PurchaseRecord(nil), s.records[kind]...), nil
}

func (s *purchaseStoreStub) UpdateStatus(_ context.Context, kind enums.PurchaseKind, id string, status enums.PurchaseStatus) error {
	s.updates++
	for i, record := range s.records[kind] {
		if record.ID == id {
			s.records[kind][i].Status = status
			return nil
		}
	}
	return modsvc.ErrNotFound
}

func (s *purchaseStoreStub) DeleteByID(_ context.Context, kind enums.PurchaseKind, id string) error {
	s.deletes++
	for i, record := range s.records[kind] {
		if record.ID == id {
			s.records[kind] = append(s.records[kind][:i], s.records[kind][i+1:]...)
			return nil
		}
	}
	return modsvc.ErrNotFound
}

func seedStore() *purchaseStoreStub {
	return &purchaseStoreStub{records: map[enums.PurchaseKind][]model.PurchaseRecord{
		enums.PurchaseKindTicket: {
			{ID: "t1", Kind: enums.PurchaseKindTicket, BuyerName: "Ana Cruz", Status: enums.PurchaseStatusPending, PurchaseDate: "2024-03-01"},
			{ID: "t2", Kind: enums.PurchaseKindTicket, BuyerName: "Ben Reyes", Status: enums.PurchaseStatusApproved, PurchaseDate: "2024-03-02"},
			{ID: "t3", Kind: enums.PurchaseKindTicket, BuyerName: "Carla Santos", Status: enums.PurchaseStatusDeclined, PurchaseDate: "2024-03-03"},
		},
	}}
}

func newModerationRouter(store *purchaseStoreStub, authed bool) http.Handler {
	service := modsvc.NewService(store, nil)
	handler := NewModerationHandler(service, nil, 10)

	router := chi.NewRouter()
	if authed {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := authsvc.WithIdentity(r.Context(), authsvc.Identity{AdminID: 7, SID: "sid-1"})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
	}
	router.Get("/admin/purchases/{kind}", handler.List)
	router.Post("/admin/purchases/{kind}/refresh", handler.Refresh)
	router.Post("/admin/purchases/{kind}/{id}/stage", handler.Stage)
	router.Get("/admin/purchases/staged", handler.Staged)
	router.Post("/admin/purchases/confirm", handler.Confirm)
	router.Post("/admin/purchases/cancel", handler.Cancel)
	return router
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListRequiresAuth(t *testing.T) {
	router := newModerationRouter(seedStore(), false)

	rr := doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestListRejectsUnknownKind(t *testing.T) {
	router := newModerationRouter(seedStore(), true)

	rr := doRequest(t, router, http.MethodGet, "/admin/purchases/vinyl", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, "tickets or items") {
		t.Fatalf("error message should name the accepted kinds: %s", body)
	}
}

func TestListAppliesStatusFilter(t *testing.T) {
	router := newModerationRouter(seedStore(), true)

	rr := doRequest(t, router, http.MethodGet, "/admin/purchases/tickets?status=approved", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var res dto.PurchaseListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Total != 1 || len(res.Items) != 1 {
		t.Fatalf("total = %d, items = %d, want 1/1", res.Total, len(res.Items))
	}
	if res.Items[0].BuyerName != "Ben Reyes" {
		t.Fatalf("unexpected item: %+v", res.Items[0])
	}
}

func TestListNameAndDateFilterCombine(t *testing.T) {
	router := newModerationRouter(seedStore(), true)

	rr := doRequest(t, router, http.MethodGet, "/admin/purchases/tickets?q=cruz&from=2024-03-01&to=2024-03-01", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var res dto.PurchaseListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Total != 1 || res.Items[0].ID != "t1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestListRejectsBadStatus(t *testing.T) {
	router := newModerationRouter(seedStore(), true)

	rr := doRequest(t, router, http.MethodGet, "/admin/purchases/tickets?status=archived", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestStageAndConfirmTransition(t *testing.T) {
	store := seedStore()
	router := newModerationRouter(store, true)

	// Load the working set first.
	doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")

	rr := doRequest(t, router, http.MethodPost, "/admin/purchases/tickets/t1/stage", `{"action":"approve"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("stage status = %d: %s", rr.Code, rr.Body.String())
	}

	var staged dto.StagedActionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &staged); err != nil {
		t.Fatalf("decode staged: %v", err)
	}
	if staged.Target != "Approved" || !strings.Contains(staged.Prompt, "Ana Cruz") {
		t.Fatalf("unexpected staged action: %+v", staged)
	}
	if store.updates != 0 {
		t.Fatal("staging must not write to the store")
	}

	rr = doRequest(t, router, http.MethodPost, "/admin/purchases/confirm", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", rr.Code, rr.Body.String())
	}

	var confirmed dto.ConfirmResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &confirmed); err != nil {
		t.Fatalf("decode confirm: %v", err)
	}
	if confirmed.Record.Status != "Approved" {
		t.Fatalf("record status = %q, want Approved", confirmed.Record.Status)
	}
	if store.updates != 1 {
		t.Fatalf("store updates = %d, want 1", store.updates)
	}
}

func TestStageDeleteGuard(t *testing.T) {
	store := seedStore()
	router := newModerationRouter(store, true)

	doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")

	rr := doRequest(t, router, http.MethodPost, "/admin/purchases/tickets/t1/stage", `{"action":"delete"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rr.Code, rr.Body.String())
	}
	if store.deletes != 0 {
		t.Fatal("guarded delete must not reach the store")
	}
}

func TestStageDeleteDeclined(t *testing.T) {
	store := seedStore()
	router := newModerationRouter(store, true)

	doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")

	rr := doRequest(t, router, http.MethodPost, "/admin/purchases/tickets/t3/stage", `{"action":"delete"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("stage status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodPost, "/admin/purchases/confirm", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm status = %d: %s", rr.Code, rr.Body.String())
	}
	if store.deletes != 1 {
		t.Fatalf("store deletes = %d, want 1", store.deletes)
	}

	rr = doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")
	var res dto.PurchaseListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d after delete, want 2", res.Total)
	}
}

func TestConfirmWithNothingStaged(t *testing.T) {
	router := newModerationRouter(seedStore(), true)

	rr := doRequest(t, router, http.MethodPost, "/admin/purchases/confirm", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
}

func TestCancelDisarmsStagedAction(t *testing.T) {
	store := seedStore()
	router := newModerationRouter(store, true)

	doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")
	doRequest(t, router, http.MethodPost, "/admin/purchases/tickets/t1/stage", `{"action":"decline"}`)

	rr := doRequest(t, router, http.MethodPost, "/admin/purchases/cancel", "")
	var cancelled dto.CancelResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &cancelled); err != nil {
		t.Fatalf("decode cancel: %v", err)
	}
	if !cancelled.WasStaged {
		t.Fatal("expected a staged action to be cancelled")
	}

	rr = doRequest(t, router, http.MethodGet, "/admin/purchases/staged", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("staged status = %d after cancel, want 404", rr.Code)
	}
	if store.updates != 0 {
		t.Fatal("cancelled action must not write to the store")
	}
}

func TestActionUnknownRejected(t *testing.T) {
	router := newModerationRouter(seedStore(), true)

	doRequest(t, router, http.MethodGet, "/admin/purchases/tickets", "")

	rr := doRequest(t, router, http.MethodPost, "/admin/purchases/tickets/t1/stage", `{"action":"archive"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
