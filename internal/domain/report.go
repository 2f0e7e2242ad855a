package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary is the per-category slice of a breakdown, ordered by the
// report service descending by total (stable on ties).
type CategorySummary struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthBucket is one calendar-month slot in a time-series report.
type MonthBucket struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Label string          `json:"label"` // e.g. "Jan 2026"
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// DaySummary is the total and count for a single calendar day.
type DaySummary struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// YearOverview aggregates a full calendar year: total spend, the flat
// monthly average, all twelve month buckets, and the peak month.
type YearOverview struct {
	Year           int             `json:"year"`
	Total          decimal.Decimal `json:"total"`
	MonthlyAverage decimal.Decimal `json:"monthlyAverage"`
	Months         []*MonthBucket  `json:"months"`
	Peak           *MonthBucket    `json:"peak,omitempty"`
}

// BudgetStatus compares the budget target against spend. Remaining may be
// negative; OverBudget flags that case for the presentation layer.
type BudgetStatus struct {
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	OverBudget  bool            `json:"overBudget"`
}
