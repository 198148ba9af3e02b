package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdonesMapula/atay/internal/domain/model"
	catalogsvc "github.com/AdonesMapula/atay/internal/services/catalog"
	"github.com/AdonesMapula/atay/internal/transport/http/dto"
	httperrors "github.com/AdonesMapula/atay/internal/transport/http/errors"
)

type PlaylistHandler struct {
	service *catalogsvc.Service
}

func NewPlaylistHandler(service *catalogsvc.Service) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	entries, err := h.service.ListPlaylist(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, entries)
}

func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.PlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreatePlaylistEntry(r.Context(), playlistFromRequest("", req))
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	var req dto.PlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.UpdatePlaylistEntry(r.Context(), playlistFromRequest(chi.URLParam(r, "id"), req)); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CATALOG_SERVICE_UNAVAILABLE", "catalog service is unavailable")
		return
	}

	if err := h.service.DeletePlaylistEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleCatalogError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DeleteResponse{OK: true})
}

func playlistFromRequest(id string, req dto.PlaylistRequest) model.Playlist {
	return model.Playlist{
		ID:     id,
		Title:  req.Title,
		Artist: req.Artist,
		URL:    req.URL,
	}
}
