package handlers

import (
	"errors"
	"net/http"

	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/services"
	"chai_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// CreateMenuItem handles adding a new item to the catalog.
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMenuItem: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.menuService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateMenuItem: Error from menuService.CreateItem")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuItems handles fetching the catalog, optionally filtered by category.
func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	var filters models.MenuFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	items, err := h.menuService.GetItems(filters)
	if err != nil {
		utils.LogError(err, "GetMenuItems: Error from menuService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetAvailableMenuItems handles fetching items with stock on hand, the list
// the order form offers for selection.
func (h *MenuHandler) GetAvailableMenuItems(c *gin.Context) {
	items, err := h.menuService.GetAvailableItems()
	if err != nil {
		utils.LogError(err, "GetAvailableMenuItems: Error from menuService.GetAvailableItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch available items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetMenuItemByID handles fetching a single catalog item.
func (h *MenuHandler) GetMenuItemByID(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid menu item ID format.")
		return
	}

	item, err := h.menuService.GetItemByID(itemID)
	if err != nil {
		utils.LogError(err, "GetMenuItemByID: Error from menuService.GetItemByID")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem handles replacing an item's editable fields.
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid menu item ID format.")
		return
	}

	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateMenuItem: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.menuService.UpdateItem(itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateMenuItem: Error from menuService.UpdateItem")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update menu item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// AdjustMenuItemStock handles a stock delta: positive restock, negative sale.
func (h *MenuHandler) AdjustMenuItemStock(c *gin.Context) {
	itemID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid menu item ID format.")
		return
	}

	var req services.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AdjustMenuItemStock: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.menuService.AdjustStock(itemID, req.Delta)
	if err != nil {
		utils.LogError(err, "AdjustMenuItemStock: Error from menuService.AdjustStock")
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
		} else if errors.Is(err, services.ErrInsufficientStock) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeInsufficientStock, "Stock cannot go below zero.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to adjust stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}
