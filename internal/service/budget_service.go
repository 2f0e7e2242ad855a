package service

import (
	"sync"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/websocket"
	"github.com/shopspring/decimal"
)

// BudgetService holds the single global monthly budget target. The target is
// not tied to a specific month; it is compared against the current month's
// spend wherever a status is computed.
type BudgetService struct {
	reportService *ReportService
	publisher     websocket.EventPublisher
	budget        decimal.Decimal
	mu            sync.RWMutex
}

// NewBudgetService creates a BudgetService with the given initial target
func NewBudgetService(reportService *ReportService, publisher websocket.EventPublisher, initial decimal.Decimal) *BudgetService {
	return &BudgetService{
		reportService: reportService,
		publisher:     publisher,
		budget:        initial,
	}
}

// Get returns the current budget target
func (s *BudgetService) Get() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget
}

// Set replaces the budget target. Negative targets are rejected.
func (s *BudgetService) Set(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return domain.ErrBudgetNegative
	}

	s.mu.Lock()
	s.budget = budget
	s.mu.Unlock()

	s.publisher.Publish(websocket.BudgetUpdated(map[string]string{"budget": budget.String()}))
	return nil
}

// Status compares the budget target against the given spend. Remaining may
// be negative; OverBudget flags that case for the presentation layer. With a
// zero budget the percent used is reported as zero rather than divided.
func (s *BudgetService) Status(totalSpent decimal.Decimal) *domain.BudgetStatus {
	budget := s.Get()
	remaining := s.reportService.BudgetRemaining(budget, totalSpent)

	return &domain.BudgetStatus{
		Budget:      budget,
		Spent:       totalSpent,
		Remaining:   remaining,
		PercentUsed: s.reportService.PercentageOfTotal(totalSpent, budget),
		OverBudget:  remaining.IsNegative(),
	}
}
