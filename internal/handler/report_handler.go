package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// trailing window served by the month endpoints
const reportMonthsBack = 12

// ReportHandler handles aggregate/report HTTP requests
type ReportHandler struct {
	ledgerService *service.LedgerService
	reportService *service.ReportService
	budgetService *service.BudgetService
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(ledgerService *service.LedgerService, reportService *service.ReportService, budgetService *service.BudgetService) *ReportHandler {
	return &ReportHandler{
		ledgerService: ledgerService,
		reportService: reportService,
		budgetService: budgetService,
		now:           time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (h *ReportHandler) SetClock(now func() time.Time) {
	h.now = now
}

// CategorySummaryResponse is one category slice of the breakdown. Percentage
// is omitted when the grand total is zero.
type CategorySummaryResponse struct {
	Category   string `json:"category"`
	Total      string `json:"total"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage,omitempty"`
}

// CategoryReportResponse represents GET /api/v1/reports/categories
type CategoryReportResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
	GrandTotal string                    `json:"grandTotal"`
}

// MonthBucketResponse is one calendar-month slot
type MonthBucketResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// MonthReportResponse represents the month report endpoints
type MonthReportResponse struct {
	Months []MonthBucketResponse `json:"months"`
}

// YearOverviewResponse represents GET /api/v1/reports/years/:year
type YearOverviewResponse struct {
	Year           int                   `json:"year"`
	Total          string                `json:"total"`
	MonthlyAverage string                `json:"monthlyAverage"`
	Months         []MonthBucketResponse `json:"months"`
	Peak           *MonthBucketResponse  `json:"peak,omitempty"`
}

// DaySummaryResponse represents GET /api/v1/reports/today
type DaySummaryResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// DashboardSummaryResponse represents GET /api/v1/dashboard/summary: the
// current-month budget position plus the breakdowns the dashboard panels show.
type DashboardSummaryResponse struct {
	Budget      string                    `json:"budget"`
	Spent       string                    `json:"spent"`
	Remaining   string                    `json:"remaining"`
	PercentUsed string                    `json:"percentUsed"`
	OverBudget  bool                      `json:"overBudget"`
	Categories  []CategorySummaryResponse `json:"categories"`
	Today       DaySummaryResponse        `json:"today"`
}

// GetCategoryReport handles GET /api/v1/reports/categories
func (h *ReportHandler) GetCategoryReport(c echo.Context) error {
	expenses := h.ledgerService.List()
	total := h.reportService.GrandTotal(expenses)

	return c.JSON(http.StatusOK, CategoryReportResponse{
		Categories: toCategoryResponses(h.reportService, expenses, total),
		GrandTotal: total.StringFixed(2),
	})
}

// GetMonthReport handles GET /api/v1/reports/months
func (h *ReportHandler) GetMonthReport(c echo.Context) error {
	buckets := h.reportService.MonthlyBreakdown(h.ledgerService.List(), h.now(), reportMonthsBack)
	return c.JSON(http.StatusOK, MonthReportResponse{Months: toMonthBucketResponses(buckets)})
}

// GetRecentMonthReport handles GET /api/v1/reports/months/recent
func (h *ReportHandler) GetRecentMonthReport(c echo.Context) error {
	buckets := h.reportService.RecentMonths(h.ledgerService.List(), h.now(), reportMonthsBack)
	return c.JSON(http.StatusOK, MonthReportResponse{Months: toMonthBucketResponses(buckets)})
}

// GetYearOverview handles GET /api/v1/reports/years/:year
func (h *ReportHandler) GetYearOverview(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2100 {
		return NewValidationError(c, "Invalid year", []ValidationError{
			{Field: "year", Message: "Year must be between 1900 and 2100"},
		})
	}

	overview := h.reportService.YearOverview(h.ledgerService.List(), year)

	response := YearOverviewResponse{
		Year:           overview.Year,
		Total:          overview.Total.StringFixed(2),
		MonthlyAverage: overview.MonthlyAverage.StringFixed(2),
		Months:         toMonthBucketResponses(overview.Months),
	}
	if overview.Peak != nil {
		peak := toMonthBucketResponse(overview.Peak)
		response.Peak = &peak
	}

	return c.JSON(http.StatusOK, response)
}

// GetTodayReport handles GET /api/v1/reports/today
func (h *ReportHandler) GetTodayReport(c echo.Context) error {
	day := h.reportService.DailyTotal(h.ledgerService.List(), h.now())
	return c.JSON(http.StatusOK, toDaySummaryResponse(day))
}

// GetDashboardSummary handles GET /api/v1/dashboard/summary. The budget is
// compared against the current calendar month's spend.
func (h *ReportHandler) GetDashboardSummary(c echo.Context) error {
	expenses := h.ledgerService.List()
	ref := h.now()

	monthSpent, _ := h.reportService.MonthTotal(expenses, ref.Year(), ref.Month())
	status := h.budgetService.Status(monthSpent)
	total := h.reportService.GrandTotal(expenses)

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		Budget:      status.Budget.StringFixed(2),
		Spent:       status.Spent.StringFixed(2),
		Remaining:   status.Remaining.StringFixed(2),
		PercentUsed: status.PercentUsed.StringFixed(1),
		OverBudget:  status.OverBudget,
		Categories:  toCategoryResponses(h.reportService, expenses, total),
		Today:       toDaySummaryResponse(h.reportService.DailyTotal(expenses, ref)),
	})
}

func toCategoryResponses(reportService *service.ReportService, expenses []*domain.Expense, total decimal.Decimal) []CategorySummaryResponse {
	summaries := reportService.ByCategory(expenses)

	responses := make([]CategorySummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = CategorySummaryResponse{
			Category: string(summary.Category),
			Total:    summary.Total.StringFixed(2),
			Count:    summary.Count,
		}
		if !total.IsZero() {
			responses[i].Percentage = reportService.PercentageOfTotal(summary.Total, total).StringFixed(1)
		}
	}
	return responses
}

func toMonthBucketResponses(buckets []*domain.MonthBucket) []MonthBucketResponse {
	responses := make([]MonthBucketResponse, len(buckets))
	for i, bucket := range buckets {
		responses[i] = toMonthBucketResponse(bucket)
	}
	return responses
}

func toMonthBucketResponse(bucket *domain.MonthBucket) MonthBucketResponse {
	return MonthBucketResponse{
		Year:  bucket.Year,
		Month: int(bucket.Month),
		Label: bucket.Label,
		Total: bucket.Total.StringFixed(2),
		Count: bucket.Count,
	}
}

func toDaySummaryResponse(day *domain.DaySummary) DaySummaryResponse {
	return DaySummaryResponse{
		Date:  day.Date.Format("2006-01-02"),
		Total: day.Total.StringFixed(2),
		Count: day.Count,
	}
}
