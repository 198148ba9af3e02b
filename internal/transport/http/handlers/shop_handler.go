package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/model"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

type ShopHandler struct {
	service *catalogsvc.Service
}

func NewShopHandler(service *catalogsvc.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, products)
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreateProduct(r.Context(), productFromRequest("", req))
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.UpdateProduct(r.Context(), productFromRequest(chi.URLParam(r, "id"), req)); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func productFromRequest(id string, req dto.ProductRequest) model.Product {
	return model.Product{
		ID:         id,
		Name:       req.Name,
		Brand:      req.Brand,
		Sizes:      req.Sizes,
		PriceCents: req.PriceCents,
		ImageKey:   req.ImageKey,
	}
}
