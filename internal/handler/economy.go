package handler

import (
	"net/http"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/economy"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

// AcquireItemRequest represents the request to acquire one item
type AcquireItemRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	Category string `json:"category" validate:"required,category"`
	Tier     string `json:"tier" validate:"required,tier"`
}

// ItemTransactionRequest represents a sell or upgrade of one owned item.
// X and Y address a placed item; leave both unset for inventory items.
type ItemTransactionRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	Category string `json:"category" validate:"required,category"`
	ItemType string `json:"item_type" validate:"required,max=50"`
	Tier     string `json:"tier" validate:"required,tier"`
	X        *int   `json:"x,omitempty" validate:"omitempty,gte=0,lte=4"`
	Y        *int   `json:"y,omitempty" validate:"omitempty,gte=0,lte=4"`
}

// InventoryResponse wraps the owned-but-unplaced item counts
type InventoryResponse struct {
	Entries []domain.InventoryEntry `json:"entries"`
}

// EconomyHandler handles currency and inventory HTTP requests
type EconomyHandler struct {
	economySvc economy.Service
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economySvc economy.Service) *EconomyHandler {
	return &EconomyHandler{economySvc: economySvc}
}

func (req *ItemTransactionRequest) item() domain.ItemRef {
	return domain.ItemRef{
		Category: domain.ItemCategory(req.Category),
		ItemType: req.ItemType,
		Tier:     domain.Tier(req.Tier),
	}
}

// pos resolves the optional grid position; false when only one coordinate is set.
func (req *ItemTransactionRequest) pos() (*domain.GridPos, bool) {
	if req.X == nil && req.Y == nil {
		return nil, true
	}
	if req.X == nil || req.Y == nil {
		return nil, false
	}
	return &domain.GridPos{X: *req.X, Y: *req.Y}, true
}

// HandleCanAfford reports whether the user can buy a category at a tier
// @Summary Check affordability
// @Tags economy
// @Produce json
// @Param user_id query string true "User ID"
// @Param category query string true "Item category"
// @Param tier query string true "Tier"
// @Success 200 {object} economy.Affordability
// @Router /item/affordability [get]
func (h *EconomyHandler) HandleCanAfford(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	category, ok := GetQueryParam(r, w, "category")
	if !ok {
		return
	}
	tier, ok := GetQueryParam(r, w, "tier")
	if !ok {
		return
	}

	result, err := h.economySvc.CanAfford(r.Context(), userID, domain.ItemCategory(category), domain.Tier(tier))
	if err != nil {
		respondServiceError(w, r, ErrMsgCanAffordFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleAcquireItem buys or withdraws one item into inventory
// @Summary Acquire an item
// @Description Inventory is preferred over spending; purchases debit the acquisition cost
// @Tags economy
// @Accept json
// @Produce json
// @Param request body AcquireItemRequest true "Acquire request"
// @Success 200 {object} economy.AcquireResult
// @Failure 400 {object} ErrorResponse "Insufficient funds or missing prerequisite"
// @Router /item/acquire [post]
func (h *EconomyHandler) HandleAcquireItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AcquireItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Acquire item"); err != nil {
		return
	}

	result, err := h.economySvc.AcquireItem(r.Context(), req.UserID, domain.ItemCategory(req.Category), domain.Tier(req.Tier))
	if err != nil {
		respondServiceError(w, r, ErrMsgAcquireItemFailed, err)
		return
	}

	log.Info("Acquisition handled",
		"user_id", req.UserID,
		"category", req.Category,
		"tier", req.Tier,
		"from_inventory", result.FromInventory)
	respondJSON(w, http.StatusOK, result)
}

// HandleSellItem sells one owned item for currency
// @Summary Sell an item
// @Description Sell value is the base cost plus cumulative upgrade cost; placed items come off the grid
// @Tags economy
// @Accept json
// @Produce json
// @Param request body ItemTransactionRequest true "Sell request"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse "Item not owned"
// @Router /item/sell [post]
func (h *EconomyHandler) HandleSellItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ItemTransactionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}
	pos, ok := req.pos()
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPosition)
		return
	}

	result, err := h.economySvc.SellItem(r.Context(), req.UserID, req.item(), pos)
	if err != nil {
		respondServiceError(w, r, ErrMsgSellItemFailed, err)
		return
	}

	log.Info("Sale handled", "user_id", req.UserID, "category", req.Category, "credited", result.Credited)
	respondJSON(w, http.StatusOK, result)
}

// HandleUpgradeItem raises one owned item a tier
// @Summary Upgrade an item
// @Description Debits the fixed step cost; placed items keep their grid position
// @Tags economy
// @Accept json
// @Produce json
// @Param request body ItemTransactionRequest true "Upgrade request"
// @Success 200 {object} economy.UpgradeResult
// @Failure 400 {object} ErrorResponse "Insufficient funds or item not owned"
// @Router /item/upgrade [post]
func (h *EconomyHandler) HandleUpgradeItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ItemTransactionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade item"); err != nil {
		return
	}
	pos, ok := req.pos()
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPosition)
		return
	}

	result, err := h.economySvc.UpgradeItem(r.Context(), req.UserID, req.item(), pos)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpgradeItemFailed, err)
		return
	}

	log.Info("Upgrade handled", "user_id", req.UserID, "category", req.Category, "to", result.Item.Tier)
	respondJSON(w, http.StatusOK, result)
}

// HandleGetInventory returns the user's owned-but-unplaced items
// @Summary Get inventory
// @Tags economy
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} InventoryResponse
// @Router /inventory [get]
func (h *EconomyHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	entries, err := h.economySvc.GetInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, InventoryResponse{Entries: entries})
}
