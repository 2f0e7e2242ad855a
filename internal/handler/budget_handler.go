package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget target HTTP requests
type BudgetHandler struct {
	ledgerService *service.LedgerService
	reportService *service.ReportService
	budgetService *service.BudgetService
	now           func() time.Time
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(ledgerService *service.LedgerService, reportService *service.ReportService, budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		ledgerService: ledgerService,
		reportService: reportService,
		budgetService: budgetService,
		now:           time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (h *BudgetHandler) SetClock(now func() time.Time) {
	h.now = now
}

// SetBudgetRequest represents the update request body. Budget is a decimal
// string, e.g. "2500".
type SetBudgetRequest struct {
	Budget string `json:"budget"`
}

// BudgetStatusResponse represents the budget target measured against the
// current month's spend
type BudgetStatusResponse struct {
	Budget      string `json:"budget"`
	Spent       string `json:"spent"`
	Remaining   string `json:"remaining"`
	PercentUsed string `json:"percentUsed"`
	OverBudget  bool   `json:"overBudget"`
}

// GetBudget handles GET /api/v1/budget
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	return c.JSON(http.StatusOK, h.currentStatus())
}

// SetBudget handles PUT /api/v1/budget
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	var req SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	budget, err := decimal.NewFromString(req.Budget)
	if err != nil {
		return NewValidationError(c, "Invalid budget", []ValidationError{
			{Field: "budget", Message: "must be a decimal number"},
		})
	}

	if err := h.budgetService.Set(budget); err != nil {
		if errors.Is(err, domain.ErrBudgetNegative) {
			return NewValidationError(c, "Invalid budget", []ValidationError{
				{Field: "budget", Message: "must not be negative"},
			})
		}
		return NewInternalError(c, "Failed to update budget")
	}

	return c.JSON(http.StatusOK, h.currentStatus())
}

func (h *BudgetHandler) currentStatus() BudgetStatusResponse {
	ref := h.now()
	spent, _ := h.reportService.MonthTotal(h.ledgerService.List(), ref.Year(), ref.Month())
	status := h.budgetService.Status(spent)

	return BudgetStatusResponse{
		Budget:      status.Budget.StringFixed(2),
		Spent:       status.Spent.StringFixed(2),
		Remaining:   status.Remaining.StringFixed(2),
		PercentUsed: status.PercentUsed.StringFixed(1),
		OverBudget:  status.OverBudget,
	}
}
