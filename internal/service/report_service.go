package service

import (
	"sort"
	"time"

	"github.com/Vivek15911/spend-canvas-flow/internal/domain"
	"github.com/Vivek15911/spend-canvas-flow/internal/util"
	"github.com/shopspring/decimal"
)

// ReportService computes derived views over a ledger snapshot. Every method
// is pure: the same snapshot and reference time always produce the same
// output, and no method mutates its input.
type ReportService struct{}

// NewReportService creates a new ReportService
func NewReportService() *ReportService {
	return &ReportService{}
}

// GrandTotal sums the amounts of all records in the snapshot
func (s *ReportService) GrandTotal(expenses []*domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// ByCategory groups the snapshot by category, ordered descending by total.
// Ties keep the order in which categories were first encountered. An empty
// snapshot yields an empty slice.
func (s *ReportService) ByCategory(expenses []*domain.Expense) []*domain.CategorySummary {
	byCategory := make(map[domain.Category]*domain.CategorySummary)
	summaries := make([]*domain.CategorySummary, 0)

	for _, expense := range expenses {
		summary, ok := byCategory[expense.Category]
		if !ok {
			summary = &domain.CategorySummary{
				Category: expense.Category,
				Total:    decimal.Zero,
			}
			byCategory[expense.Category] = summary
			summaries = append(summaries, summary)
		}
		summary.Total = summary.Total.Add(expense.Amount)
		summary.Count++
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total.GreaterThan(summaries[j].Total)
	})

	return summaries
}

// PercentageOfTotal returns part/total*100. A zero total is a caller-side
// condition: the caller must skip percentage rendering when there is nothing
// to divide by, and this returns zero rather than dividing.
func (s *ReportService) PercentageOfTotal(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100))
}

// MonthlyBreakdown produces exactly monthsBack calendar-month buckets ending
// at ref's month, oldest first. Empty months appear as zero-total buckets.
// A record belongs to a bucket when its createdAt's own year and month match.
func (s *ReportService) MonthlyBreakdown(expenses []*domain.Expense, ref time.Time, monthsBack int) []*domain.MonthBucket {
	buckets := make([]*domain.MonthBucket, 0, monthsBack)

	for i := monthsBack - 1; i >= 0; i-- {
		year, month := util.MonthsAgo(ref, i)
		buckets = append(buckets, s.monthBucket(expenses, year, month))
	}

	return buckets
}

// RecentMonths is the sparse variant of MonthlyBreakdown: it emits the
// current month's bucket (always, even if zero) plus the single most recent
// prior month inside the window that has at least one record. If no prior
// month has records, only the current month is emitted. Oldest first.
func (s *ReportService) RecentMonths(expenses []*domain.Expense, ref time.Time, monthsBack int) []*domain.MonthBucket {
	current := s.monthBucket(expenses, ref.Year(), ref.Month())

	for i := 1; i < monthsBack; i++ {
		year, month := util.MonthsAgo(ref, i)
		prior := s.monthBucket(expenses, year, month)
		if prior.Count > 0 {
			return []*domain.MonthBucket{prior, current}
		}
	}

	return []*domain.MonthBucket{current}
}

// MonthTotal returns the total and count for one calendar month
func (s *ReportService) MonthTotal(expenses []*domain.Expense, year int, month time.Month) (decimal.Decimal, int) {
	bucket := s.monthBucket(expenses, year, month)
	return bucket.Total, bucket.Count
}

// YearTotal sums the amounts of records whose createdAt falls in year
func (s *ReportService) YearTotal(expenses []*domain.Expense, year int) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		if expense.CreatedAt.Year() == year {
			total = total.Add(expense.Amount)
		}
	}
	return total
}

// MonthlyAverage is the flat twelve-month average of a year total
func (s *ReportService) MonthlyAverage(yearTotal decimal.Decimal) decimal.Decimal {
	return yearTotal.Div(decimal.NewFromInt(12))
}

// PeakMonth returns the bucket with the highest total. Ties resolve to the
// earliest bucket in the sequence. Returns nil for an empty sequence.
func (s *ReportService) PeakMonth(buckets []*domain.MonthBucket) *domain.MonthBucket {
	var peak *domain.MonthBucket
	for _, bucket := range buckets {
		if peak == nil || bucket.Total.GreaterThan(peak.Total) {
			peak = bucket
		}
	}
	return peak
}

// YearOverview composes the yearly report: total, monthly average, all
// twelve buckets of the year (January through December), and the peak month.
func (s *ReportService) YearOverview(expenses []*domain.Expense, year int) *domain.YearOverview {
	december := time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)
	months := s.MonthlyBreakdown(expenses, december, 12)
	total := s.YearTotal(expenses, year)

	return &domain.YearOverview{
		Year:           year,
		Total:          total,
		MonthlyAverage: s.MonthlyAverage(total),
		Months:         months,
		Peak:           s.PeakMonth(months),
	}
}

// BudgetRemaining returns budget minus totalSpent. The result may be
// negative; over-budget is a state to present, not an error.
func (s *ReportService) BudgetRemaining(budget, totalSpent decimal.Decimal) decimal.Decimal {
	return budget.Sub(totalSpent)
}

// DailyTotal returns the total and count of records whose createdAt falls on
// the same calendar day as ref
func (s *ReportService) DailyTotal(expenses []*domain.Expense, ref time.Time) *domain.DaySummary {
	summary := &domain.DaySummary{
		Date:  time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()),
		Total: decimal.Zero,
	}

	for _, expense := range expenses {
		if util.SameDay(expense.CreatedAt, ref) {
			summary.Total = summary.Total.Add(expense.Amount)
			summary.Count++
		}
	}

	return summary
}

func (s *ReportService) monthBucket(expenses []*domain.Expense, year int, month time.Month) *domain.MonthBucket {
	bucket := &domain.MonthBucket{
		Year:  year,
		Month: month,
		Label: util.MonthLabel(year, month),
		Total: decimal.Zero,
	}

	for _, expense := range expenses {
		if util.SameMonth(expense.CreatedAt, year, month) {
			bucket.Total = bucket.Total.Add(expense.Amount)
			bucket.Count++
		}
	}

	return bucket
}
