package handler

import (
	"net/http"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/garden"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

// PlaceItemRequest represents the request to place an inventory item on the grid
type PlaceItemRequest struct {
	UserID         string `json:"user_id" validate:"required,max=100"`
	X              int    `json:"x" validate:"gte=0,lte=4"`
	Y              int    `json:"y" validate:"gte=0,lte=4"`
	Category       string `json:"category" validate:"required,category"`
	ItemType       string `json:"item_type" validate:"required,max=50"`
	Tier           string `json:"tier" validate:"required,tier"`
	ConfirmReplace bool   `json:"confirm_replace"`
}

// RemovePlacementRequest represents the request to clear a grid cell
type RemovePlacementRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	X      int    `json:"x" validate:"gte=0,lte=4"`
	Y      int    `json:"y" validate:"gte=0,lte=4"`
}

// GridResponse wraps the full grid for a user
type GridResponse struct {
	GridSize   int                    `json:"grid_size"`
	Placements []domain.GridPlacement `json:"placements"`
}

// GardenHandler handles grid placement HTTP requests
type GardenHandler struct {
	gardenSvc garden.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(gardenSvc garden.Service) *GardenHandler {
	return &GardenHandler{gardenSvc: gardenSvc}
}

// HandlePlaceItem places an inventory item onto a grid cell
// @Summary Place an item
// @Description Occupied cells require confirm_replace and compatible kinds; the displaced item returns to inventory
// @Tags garden
// @Accept json
// @Produce json
// @Param request body PlaceItemRequest true "Placement request"
// @Success 200 {object} garden.PlaceResult
// @Failure 400 {object} ErrorResponse "Invalid request or position"
// @Failure 409 {object} ErrorResponse "Cell taken or incompatible replacement"
// @Router /garden/place [post]
func (h *GardenHandler) HandlePlaceItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlaceItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place item"); err != nil {
		return
	}

	item := domain.ItemRef{
		Category: domain.ItemCategory(req.Category),
		ItemType: req.ItemType,
		Tier:     domain.Tier(req.Tier),
	}
	result, err := h.gardenSvc.PlaceItem(r.Context(), req.UserID, req.X, req.Y, item, req.ConfirmReplace)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlaceItemFailed, err)
		return
	}

	log.Info("Placement handled", "user_id", req.UserID, "x", req.X, "y", req.Y, "replaced", result.Displaced != nil)
	respondJSON(w, http.StatusOK, result)
}

// HandleRemoveItem clears a grid cell back into inventory
// @Summary Remove a placed item
// @Tags garden
// @Accept json
// @Produce json
// @Param request body RemovePlacementRequest true "Removal request"
// @Success 200 {object} domain.GridPlacement
// @Failure 400 {object} ErrorResponse "Invalid request or empty cell"
// @Router /garden/remove [post]
func (h *GardenHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RemovePlacementRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
		return
	}

	removed, err := h.gardenSvc.RemoveItem(r.Context(), req.UserID, req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, ErrMsgRemoveItemFailed, err)
		return
	}

	log.Info("Removal handled", "user_id", req.UserID, "x", req.X, "y", req.Y)
	respondJSON(w, http.StatusOK, removed)
}

// HandleGetGrid returns every placement on the user's grid
// @Summary Get the garden grid
// @Tags garden
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} GridResponse
// @Router /garden [get]
func (h *GardenHandler) HandleGetGrid(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	placements, err := h.gardenSvc.GetGrid(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetGridFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, GridResponse{GridSize: domain.GridSize, Placements: placements})
}
