package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rizqly/rizqly/internal/models"
)

func expense(id, category, bank, amount string, createdAt time.Time) models.Expense {
	return models.Expense{
		ID:          id,
		OwnerID:     "owner-1",
		Amount:      decimal.RequireFromString(amount),
		Description: "Test",
		Category:    category,
		BankAccount: bank,
		CreatedAt:   createdAt,
	}
}

func TestMonthlyEmptySnapshot(t *testing.T) {
	t.Parallel()

	result := Monthly(nil, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))

	require.True(t, result.TotalSpent.IsZero())
	require.NotNil(t, result.ByCategory)
	require.Empty(t, result.ByCategory)
	require.NotNil(t, result.ByBank)
	require.Empty(t, result.ByBank)
	require.Empty(t, result.Expenses)
}

func TestMonthlySumsAndGrouping(t *testing.T) {
	t.Parallel()

	august := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	snapshot := []models.Expense{
		expense("3", "Food", "Cash", "300", august.Add(2*time.Hour)),
		expense("2", "Food", "JazzCash", "200", august.Add(time.Hour)),
		expense("1", "Transport", "Cash", "150.50", august),
	}

	result := Monthly(snapshot, august)

	require.Equal(t, "650.5", result.TotalSpent.String())
	require.Equal(t, "500", result.ByCategory["Food"].String())
	require.Equal(t, "150.5", result.ByCategory["Transport"].String())
	require.Equal(t, "450.5", result.ByBank["Cash"].String())
	require.Equal(t, "200", result.ByBank["JazzCash"].String())

	// Snapshot order is preserved in the filtered subset.
	require.Len(t, result.Expenses, 3)
	require.Equal(t, "3", result.Expenses[0].ID)
	require.Equal(t, "1", result.Expenses[2].ID)
}

func TestMonthlyBoundaries(t *testing.T) {
	t.Parallel()

	lastInstantOfAugust := time.Date(2026, time.August, 31, 23, 59, 59, 999999999, time.UTC)
	firstInstantOfSeptember := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	snapshot := []models.Expense{
		expense("aug", "Food", "Cash", "100", lastInstantOfAugust),
		expense("sep", "Food", "Cash", "200", firstInstantOfSeptember),
	}

	august := Monthly(snapshot, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, august.Expenses, 1)
	require.Equal(t, "aug", august.Expenses[0].ID)
	require.Equal(t, "100", august.TotalSpent.String())

	september := Monthly(snapshot, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, september.Expenses, 1)
	require.Equal(t, "sep", september.Expenses[0].ID)
}

func TestMonthlyExcludesZeroTimestamps(t *testing.T) {
	t.Parallel()

	snapshot := []models.Expense{
		expense("ok", "Food", "Cash", "100", time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
		expense("broken", "Food", "Cash", "999", time.Time{}),
	}

	result := Monthly(snapshot, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
	require.Len(t, result.Expenses, 1)
	require.Equal(t, "ok", result.Expenses[0].ID)
	require.Equal(t, "100", result.TotalSpent.String())
}
