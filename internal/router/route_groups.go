package router

import (
	"chai_pos_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupMenuRoutes sets up the menu catalog routes.
func SetupMenuRoutes(apiGroup *gin.RouterGroup, menuHandler *handlers.MenuHandler) {
	menuRoutes := apiGroup.Group("/menu")
	{
		menuRoutes.POST("", menuHandler.CreateMenuItem)
		menuRoutes.GET("", menuHandler.GetMenuItems)
		menuRoutes.GET("/available", menuHandler.GetAvailableMenuItems)
		menuRoutes.GET("/:id", menuHandler.GetMenuItemByID)
		menuRoutes.PUT("/:id", menuHandler.UpdateMenuItem)
		menuRoutes.PATCH("/:id/stock", menuHandler.AdjustMenuItemStock)
	}
}

// SetupCustomerRoutes sets up the customer routes.
func SetupCustomerRoutes(apiGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customerRoutes := apiGroup.Group("/customers")
	{
		customerRoutes.POST("", customerHandler.CreateCustomer)
		customerRoutes.GET("/:id", customerHandler.GetCustomerByID)
	}
}

// SetupOrderRoutes sets up the order routes.
func SetupOrderRoutes(apiGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := apiGroup.Group("/orders")
	{
		orderRoutes.POST("/cart/check", orderHandler.CheckCartLine)
		orderRoutes.POST("", orderHandler.ConfirmOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.GET("/:id/bill", orderHandler.GetOrderBill)
		orderRoutes.PATCH("/:id/complete", orderHandler.CompleteOrder)
		orderRoutes.PATCH("/complete", orderHandler.CompleteOrders)
	}
}

// SetupReportRoutes sets up the revenue report and dashboard routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reports")
	{
		reportRoutes.GET("/revenue", reportHandler.GetRevenueReport)
	}

	dashboardRoutes := apiGroup.Group("/dashboard")
	{
		dashboardRoutes.GET("/summary", reportHandler.GetDashboardSummary)
	}
}
