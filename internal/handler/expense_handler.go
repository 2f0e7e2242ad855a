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

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	ledgerService *service.LedgerService
	reportService *service.ReportService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(ledgerService *service.LedgerService, reportService *service.ReportService) *ExpenseHandler {
	return &ExpenseHandler{
		ledgerService: ledgerService,
		reportService: reportService,
	}
}

// CreateExpenseRequest represents the create request body. Amount is a
// decimal string, e.g. "5.50".
type CreateExpenseRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
}

// ExpenseResponse represents a single expense record
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExpenseListResponse represents the full newest-first ledger snapshot along
// with the per-category grouping the list view renders.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Categories []CategorySummaryResponse `json:"categories"`
	Total      string                    `json:"total"`
	Count      int                       `json:"count"`
}

// CreateExpense handles POST /api/v1/expenses. Adding an expense whose
// category and name match an existing record merges into it (200) instead of
// creating a new one (201).
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "must be a decimal number"},
		})
	}

	expense, merged, err := h.ledgerService.Add(domain.Category(req.Category), req.Name, amount)
	if err != nil {
		return h.mapLedgerError(c, err)
	}

	status := http.StatusCreated
	if merged {
		status = http.StatusOK
	}

	return c.JSON(status, toExpenseResponse(expense))
}

// GetExpenses handles GET /api/v1/expenses
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	expenses := h.ledgerService.List()

	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, toExpenseResponse(expense))
	}

	total := h.reportService.GrandTotal(expenses)

	return c.JSON(http.StatusOK, ExpenseListResponse{
		Expenses:   responses,
		Categories: toCategoryResponses(h.reportService, expenses, total),
		Total:      total.StringFixed(2),
		Count:      len(expenses),
	})
}

// DeleteExpense handles DELETE /api/v1/expenses/:id. Deleting an id that no
// longer exists still returns 204; delete is idempotent.
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	h.ledgerService.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (h *ExpenseHandler) mapLedgerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrCategoryRequired):
		return NewValidationError(c, "Category is required", []ValidationError{
			{Field: "category", Message: "must not be empty"},
		})
	case errors.Is(err, domain.ErrUnknownCategory):
		return NewValidationError(c, "Unknown category", []ValidationError{
			{Field: "category", Message: "must be one of the known categories"},
		})
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Name is required", []ValidationError{
			{Field: "name", Message: "must not be empty"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Name too long", []ValidationError{
			{Field: "name", Message: "exceeds maximum length"},
		})
	case errors.Is(err, domain.ErrAmountNegative):
		return NewValidationError(c, "Amount must not be negative", []ValidationError{
			{Field: "amount", Message: "must be zero or positive"},
		})
	default:
		return NewInternalError(c, "Failed to add expense")
	}
}

func toExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID,
		Category:  string(expense.Category),
		Name:      expense.Name,
		Amount:    expense.Amount.StringFixed(2),
		CreatedAt: expense.CreatedAt,
	}
}
