// Package stats computes derived monthly aggregates over an expense
// snapshot. Results are recomputed on every call and never cached.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rizqly/rizqly/internal/models"
)

// MonthlyStats holds the aggregates for one calendar month.
type MonthlyStats struct {
	TotalSpent decimal.Decimal            `json:"totalSpent"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
	ByBank     map[string]decimal.Decimal `json:"byBank"`
	Expenses   []models.Expense           `json:"expenses"`
}

// Monthly filters snapshot to the calendar month containing ref and sums
// amounts in total and grouped by category and bank account. The filtered
// subset keeps the snapshot's order. An empty month yields zero sums,
// empty maps and an empty list.
func Monthly(snapshot []models.Expense, ref time.Time) MonthlyStats {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	result := MonthlyStats{
		TotalSpent: decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
		ByBank:     make(map[string]decimal.Decimal),
		Expenses:   []models.Expense{},
	}

	for _, e := range snapshot {
		// A zero timestamp can never fall inside the window, which is
		// exactly the exclusion we want for malformed records.
		if e.CreatedAt.Before(monthStart) || !e.CreatedAt.Before(monthEnd) {
			continue
		}

		result.Expenses = append(result.Expenses, e)
		result.TotalSpent = result.TotalSpent.Add(e.Amount)
		result.ByCategory[e.Category] = result.ByCategory[e.Category].Add(e.Amount)
		result.ByBank[e.BankAccount] = result.ByBank[e.BankAccount].Add(e.Amount)
	}

	return result
}
