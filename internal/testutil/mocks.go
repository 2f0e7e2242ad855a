package testutil

import (
	"sync"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/websocket"
	"github.com/google/uuid"
)

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository.
// Unlike the real store it lets tests seed records directly, with fixed ids
// and timestamps, via AddExpense.
type MockExpenseRepository struct {
	Expenses []*domain.Expense
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{}
}

// AddExpense seeds a record at the front of the collection without any merge
// logic. Tests use this to build fixtures.
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	m.Expenses = append([]*domain.Expense{expense}, m.Expenses...)
}

// AddOrMerge implements domain.ExpenseRepository
func (m *MockExpenseRepository) AddOrMerge(expense *domain.Expense) (*domain.Expense, bool) {
	for _, existing := range m.Expenses {
		if existing.Category == expense.Category && existing.Name == expense.Name {
			existing.Amount = existing.Amount.Add(expense.Amount)
			existing.CreatedAt = expense.CreatedAt
			copied := *existing
			return &copied, true
		}
	}

	stored := *expense
	stored.ID = uuid.New().String()
	m.Expenses = append([]*domain.Expense{&stored}, m.Expenses...)
	copied := stored
	return &copied, false
}

// Delete implements domain.ExpenseRepository
func (m *MockExpenseRepository) Delete(id string) bool {
	for i, expense := range m.Expenses {
		if expense.ID == id {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// GetAll implements domain.ExpenseRepository
func (m *MockExpenseRepository) GetAll() []*domain.Expense {
	snapshot := make([]*domain.Expense, len(m.Expenses))
	for i, expense := range m.Expenses {
		copied := *expense
		snapshot[i] = &copied
	}
	return snapshot
}

// Count implements domain.ExpenseRepository
func (m *MockExpenseRepository) Count() int {
	return len(m.Expenses)
}

// CapturingPublisher records published events for assertions
type CapturingPublisher struct {
	mu     sync.Mutex
	events []websocket.Event
}

// NewCapturingPublisher creates a new CapturingPublisher
func NewCapturingPublisher() *CapturingPublisher {
	return &CapturingPublisher{}
}

// Publish implements websocket.EventPublisher
func (p *CapturingPublisher) Publish(event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Events returns a copy of the captured events
func (p *CapturingPublisher) Events() []websocket.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := make([]websocket.Event, len(p.events))
	copy(copied, p.events)
	return copied
}
