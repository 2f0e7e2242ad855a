package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an expense. The set of valid categories is fixed.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryOther          Category = "Other"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryOther,
	}
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single ledger record. ID and CreatedAt are assigned by the
// ledger; CreatedAt is restamped when an add merges into an existing record.
type Expense struct {
	ID        string          `json:"id"`
	Category  Category        `json:"category"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ExpenseRepository is the ledger's backing store contract.
type ExpenseRepository interface {
	// AddOrMerge inserts expense at the front of the collection, unless a
	// record with the same category and name (exact, case-sensitive match)
	// already exists; then it adds expense.Amount to that record, restamps
	// its CreatedAt from expense.CreatedAt, and leaves its position
	// unchanged. The find-then-merge-or-insert step is atomic. Returns the
	// resulting record and whether a merge happened.
	AddOrMerge(expense *Expense) (*Expense, bool)

	// Delete removes the record with the given id. Deleting an id that does
	// not exist is a no-op; the returned bool reports whether a record was
	// removed.
	Delete(id string) bool

	// GetAll returns a newest-first snapshot of the collection. The snapshot
	// is a copy; later mutations do not affect it.
	GetAll() []*Expense

	// Count returns the number of live records.
	Count() int
}
