package handlers

import (
	"errors"
	"net/http"

	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/services"
	"chai_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CheckCartLineRequest is the payload of the advisory cart check.
type CheckCartLineRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}

// CheckCartLine handles the advisory stock check behind "add to cart".
func (h *OrderHandler) CheckCartLine(c *gin.Context) {
	var req CheckCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CheckCartLine: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	line, err := h.orderService.CheckCartLine(req.ItemID, req.Quantity)
	if err != nil {
		utils.LogError(err, "CheckCartLine: Error from orderService.CheckCartLine")
		respondOrderError(c, err, "Failed to check cart line.")
		return
	}
	c.JSON(http.StatusOK, line)
}

// ConfirmOrder handles turning a staged cart into a durable order with its
// revenue entry, all-or-nothing.
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	var req services.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ConfirmOrder: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	order, err := h.orderService.ConfirmOrder(req)
	if err != nil {
		utils.LogError(err, "ConfirmOrder: Error from orderService.ConfirmOrder")
		respondOrderError(c, err, "Failed to confirm order.")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders handles listing orders, newest first.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var filters models.OrderFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	orders, err := h.orderService.GetOrders(filters)
	if err != nil {
		utils.LogError(err, "GetOrders: Error from orderService.GetOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GetOrderByID handles fetching a single order.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		utils.LogError(err, "GetOrderByID: Error from orderService.GetOrderByID")
		respondOrderError(c, err, "Failed to fetch order.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderBill handles fetching the bill view for one order.
func (h *OrderHandler) GetOrderBill(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	bill, err := h.orderService.GetBill(orderID)
	if err != nil {
		utils.LogError(err, "GetOrderBill: Error from orderService.GetBill")
		respondOrderError(c, err, "Failed to build bill.")
		return
	}
	c.JSON(http.StatusOK, bill)
}

// CompleteOrder handles the Pending -> Completed transition for one order.
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid order ID format.")
		return
	}

	order, err := h.orderService.MarkComplete(orderID)
	if err != nil {
		utils.LogError(err, "CompleteOrder: Error from orderService.MarkComplete")
		respondOrderError(c, err, "Failed to mark order complete.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CompleteOrders handles the bulk variant; partial success is allowed and
// reported per order.
func (h *OrderHandler) CompleteOrders(c *gin.Context) {
	var req services.BulkCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CompleteOrders: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	results := h.orderService.MarkCompleteBulk(req.OrderIDs)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// respondOrderError maps order service errors onto the API error vocabulary.
func respondOrderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", err.Error()))
	case errors.Is(err, services.ErrMenuItemNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu item not found.", err.Error()))
	case errors.Is(err, services.ErrInsufficientStock):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeInsufficientStock, "Insufficient stock.", err.Error()))
	case errors.Is(err, services.ErrEmptyCart):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Cart is empty.", err.Error()))
	case errors.Is(err, services.ErrNoCustomer):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "No customer selected.", err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
