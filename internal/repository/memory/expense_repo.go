package memory

import (
	"sync"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/google/uuid"
)

// ExpenseRepository is an in-memory implementation of domain.ExpenseRepository.
// Records live for the lifetime of the process; there is no persistence.
// It is safe for concurrent use.
type ExpenseRepository struct {
	// expenses is ordered newest-first; merges update in place
	expenses []*domain.Expense
	mu       sync.RWMutex
}

// NewExpenseRepository creates an empty ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{}
}

// AddOrMerge inserts expense at the front, or merges into an existing record
// with the same category and name. The lookup and the mutation happen under
// one lock so two concurrent adds of the same key cannot both insert.
func (r *ExpenseRepository) AddOrMerge(expense *domain.Expense) (*domain.Expense, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.expenses {
		if existing.Category == expense.Category && existing.Name == expense.Name {
			existing.Amount = existing.Amount.Add(expense.Amount)
			existing.CreatedAt = expense.CreatedAt
			return copyExpense(existing), true
		}
	}

	stored := copyExpense(expense)
	stored.ID = uuid.New().String()
	r.expenses = append([]*domain.Expense{stored}, r.expenses...)

	return copyExpense(stored), false
}

// Delete removes the record with the given id, reporting whether anything
// was removed. Missing ids are a no-op.
func (r *ExpenseRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, expense := range r.expenses {
		if expense.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// GetAll returns a newest-first snapshot. Records are copied so later merges
// do not mutate a snapshot the caller already holds.
func (r *ExpenseRepository) GetAll() []*domain.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*domain.Expense, len(r.expenses))
	for i, expense := range r.expenses {
		snapshot[i] = copyExpense(expense)
	}
	return snapshot
}

// Count returns the number of live records
func (r *ExpenseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.expenses)
}

func copyExpense(e *domain.Expense) *domain.Expense {
	c := *e
	return &c
}
