// internal/api/handler/catalog.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bloomshop/internal/api/types"
	"bloomshop/internal/domain"
	"bloomshop/internal/service"
	"bloomshop/internal/util"
)

// CatalogHandler handles HTTP requests for the flower catalog.
type CatalogHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// AddFlowerRequest represents the request body for adding a flower.
// Price is a pointer so a missing field can be told apart from zero.
type AddFlowerRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// AddFlower handles the add-flower request.
// POST /flowers
func (h *CatalogHandler) AddFlower(w http.ResponseWriter, r *http.Request) {
	var req AddFlowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.Name == "" || req.Price == nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	flower := domain.NewFlower(req.Name, *req.Price)
	id, err := h.service.AddFlower(r.Context(), *flower)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.FlowerCreatedResponse{FlowerID: id})
}

// ListFlowers handles the catalog listing request.
// GET /flowers
func (h *CatalogHandler) ListFlowers(w http.ResponseWriter, r *http.Request) {
	flowers, err := h.service.ListFlowers(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, flowers)
}
