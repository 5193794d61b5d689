package router

import (
	"database/sql"

	"chai_pos_backend/internal/handlers"
	"chai_pos_backend/internal/repositories"
	"chai_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	menuRepo := repositories.NewMenuRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	revenueRepo := repositories.NewRevenueRepository(db)

	// Initialize Services
	menuService := services.NewMenuService(menuRepo, db)
	customerService := services.NewCustomerService(customerRepo, db)
	orderService := services.NewOrderService(orderRepo, menuRepo, customerRepo, revenueRepo, db)
	revenueService := services.NewRevenueService(revenueRepo, orderRepo, menuRepo, db)

	// Initialize Handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(revenueService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupMenuRoutes(apiV1, menuHandler)
		SetupCustomerRoutes(apiV1, customerHandler)
		SetupOrderRoutes(apiV1, orderHandler)
		SetupReportRoutes(apiV1, reportHandler)
	}
}
