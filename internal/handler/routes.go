package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, expenseHandler *ExpenseHandler, reportHandler *ReportHandler, budgetHandler *BudgetHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/categories", reportHandler.GetCategoryReport)
	reports.GET("/months", reportHandler.GetMonthReport)
	reports.GET("/months/recent", reportHandler.GetRecentMonthReport)
	reports.GET("/years/:year", reportHandler.GetYearOverview)
	reports.GET("/today", reportHandler.GetTodayReport)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", reportHandler.GetDashboardSummary)

	// Budget routes
	budget := api.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.PUT("", budgetHandler.SetBudget)

	// WebSocket feed
	api.GET("/ws", wsHandler.HandleWS)
}
