// internal/api/handler/cart.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bloomshop/internal/api/types"
	"bloomshop/internal/service"
	"bloomshop/internal/util"
)

// CartHandler handles HTTP requests for the mocked cart and purchase
// endpoints.
type CartHandler struct {
	service service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(svc service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItem accepts a form-encoded integer flower id. The id is shape
// checked and then discarded by the service.
// POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	flowerID, err := strconv.Atoi(r.PostFormValue("flower_id"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.AddItem(r.Context(), flowerID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "Flower added to cart"})
}

// ListItems returns the fixed cart listing.
// GET /cart/items
func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, items)
}

// Checkout acknowledges the purchase without recording anything.
// POST /purchased
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Checkout(r.Context()); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "Items purchased"})
}

// ListPurchased returns the fixed purchase listing.
// GET /purchased
func (h *CartHandler) ListPurchased(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPurchased(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, items)
}
