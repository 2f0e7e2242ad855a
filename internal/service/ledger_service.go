package service

import (
	"strings"
	"time"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/websocket"
	"github.com/shopspring/decimal"
)

// LedgerService owns the expense collection and enforces the add/merge/delete
// contract. Adding an expense with the same category and name as an existing
// record folds into that record instead of creating a duplicate row.
type LedgerService struct {
	expenseRepo domain.ExpenseRepository
	publisher   websocket.EventPublisher
	now         func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(expenseRepo domain.ExpenseRepository, publisher websocket.EventPublisher) *LedgerService {
	return &LedgerService{
		expenseRepo: expenseRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// SetClock overrides the time source used to stamp records. Tests use this
// to make createdAt deterministic.
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

// Add records an expense. If a record with the same category and name already
// exists (exact, case-sensitive match) its amount is increased by amount and
// its createdAt restamped; otherwise a new record is created at the front of
// the ledger. The returned bool reports whether the add merged into an
// existing record. A rejected add changes no state.
func (s *LedgerService) Add(category domain.Category, name string, amount decimal.Decimal) (*domain.Expense, bool, error) {
	if strings.TrimSpace(string(category)) == "" {
		return nil, false, domain.ErrCategoryRequired
	}
	if !domain.IsValidCategory(category) {
		return nil, false, domain.ErrUnknownCategory
	}
	if strings.TrimSpace(name) == "" {
		return nil, false, domain.ErrNameRequired
	}
	if len(name) > domain.MaxExpenseNameLength {
		return nil, false, domain.ErrNameTooLong
	}
	if amount.IsNegative() {
		return nil, false, domain.ErrAmountNegative
	}

	expense := &domain.Expense{
		Category:  category,
		Name:      name,
		Amount:    amount,
		CreatedAt: s.now(),
	}

	result, merged := s.expenseRepo.AddOrMerge(expense)

	if merged {
		s.publisher.Publish(websocket.ExpenseMerged(result))
	} else {
		s.publisher.Publish(websocket.ExpenseCreated(result))
	}

	return result, merged, nil
}

// Delete removes the expense with the given id. Deleting an id that does not
// exist is a no-op, not an error.
func (s *LedgerService) Delete(id string) {
	if s.expenseRepo.Delete(id) {
		s.publisher.Publish(websocket.ExpenseDeleted(map[string]string{"id": id}))
	}
}

// List returns a newest-first snapshot of the ledger
func (s *LedgerService) List() []*domain.Expense {
	return s.expenseRepo.GetAll()
}
