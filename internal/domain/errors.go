package domain

import "errors"

// Domain errors
var (
	ErrCategoryRequired = errors.New("category is required")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrAmountNegative   = errors.New("amount must not be negative")
	ErrBudgetNegative   = errors.New("budget must not be negative")
)

// Validation constants
const (
	MaxExpenseNameLength = 255
)
