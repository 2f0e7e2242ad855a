package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/service"
	"github.com/Vivek15911/spend-canvas-flow/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newBudgetHandler(budget string) (*BudgetHandler, *testutil.MockExpenseRepository) {
	repo := testutil.NewMockExpenseRepository()
	publisher := testutil.NewCapturingPublisher()
	ledgerService := service.NewLedgerService(repo, publisher)
	reportService := service.NewReportService()
	budgetService := service.NewBudgetService(reportService, publisher, decimal.RequireFromString(budget))
	return NewBudgetHandler(ledgerService, reportService, budgetService), repo
}

func TestGetBudget_DefaultTarget(t *testing.T) {
	e := echo.New()
	handler, repo := newBudgetHandler("2000")

	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	handler.SetClock(func() time.Time { return now })

	seedExpense(repo, "1", domain.CategoryFoodDining, "Groceries", "500.00", now)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response BudgetStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Budget != "2000.00" {
		t.Errorf("Expected budget '2000.00', got %s", response.Budget)
	}
	if response.Remaining != "1500.00" {
		t.Errorf("Expected remaining '1500.00', got %s", response.Remaining)
	}
	if response.PercentUsed != "25.0" {
		t.Errorf("Expected percent used '25.0', got %s", response.PercentUsed)
	}
}

func TestSetBudget_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newBudgetHandler("2000")

	body := `{"budget":"3500"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budget", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SetBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response BudgetStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Budget != "3500.00" {
		t.Errorf("Expected budget '3500.00', got %s", response.Budget)
	}
}

func TestSetBudget_RejectsNegative(t *testing.T) {
	e := echo.New()
	handler, _ := newBudgetHandler("2000")

	body := `{"budget":"-100"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budget", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SetBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestSetBudget_RejectsMalformedAmount(t *testing.T) {
	e := echo.New()
	handler, _ := newBudgetHandler("2000")

	body := `{"budget":"lots"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budget", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SetBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetBudget_OverBudget(t *testing.T) {
	e := echo.New()
	handler, repo := newBudgetHandler("100")

	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	handler.SetClock(func() time.Time { return now })

	seedExpense(repo, "1", domain.CategoryShopping, "Console", "600.00", now)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response BudgetStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Remaining != "-500.00" {
		t.Errorf("Expected remaining '-500.00', got %s", response.Remaining)
	}
	if !response.OverBudget {
		t.Error("Expected over budget")
	}
}
