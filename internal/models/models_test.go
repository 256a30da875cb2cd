package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		expense     Expense
		wantErr     bool
		wantCat     string
		wantAccount string
	}{
		{
			name:        "valid record untouched",
			expense:     Expense{Amount: decimal.NewFromInt(100), Description: "Chai", Category: "Food", BankAccount: "HBL"},
			wantCat:     "Food",
			wantAccount: "HBL",
		},
		{
			name:        "unknown category collapses to other",
			expense:     Expense{Amount: decimal.NewFromInt(100), Description: "Chai", Category: "Snacks", BankAccount: "HBL"},
			wantCat:     CategoryOther,
			wantAccount: "HBL",
		},
		{
			name:        "blank account defaults to cash",
			expense:     Expense{Amount: decimal.NewFromInt(100), Description: "Chai", Category: "Food"},
			wantCat:     "Food",
			wantAccount: DefaultBankAccount,
		},
		{
			name:    "zero amount rejected",
			expense: Expense{Description: "Chai", Category: "Food"},
			wantErr: true,
		},
		{
			name:    "negative amount rejected",
			expense: Expense{Amount: decimal.NewFromInt(-5), Description: "Chai", Category: "Food"},
			wantErr: true,
		},
		{
			name:    "empty description rejected",
			expense: Expense{Amount: decimal.NewFromInt(100), Category: "Food"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.expense.Normalize()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCat, tt.expense.Category)
			require.Equal(t, tt.wantAccount, tt.expense.BankAccount)
		})
	}
}

func TestExpenseJSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := Expense{
		ID:          "e-1",
		OwnerID:     "owner-1",
		Amount:      decimal.RequireFromString("1200.5"),
		Description: "Ice cream",
		Category:    "Food",
		BankAccount: "Meezan Bank",
		CreatedAt:   time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC),
		RawInput:    "1,200.5rs ice cream from meezan",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Expense
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, original, decoded)
}

func TestCategoryTablesCoverEveryCategory(t *testing.T) {
	t.Parallel()

	for _, category := range Categories {
		require.True(t, IsKnownCategory(category))
		require.Contains(t, CategoryEmojis, category)
		require.Contains(t, CategoryColors, category)
	}
	require.False(t, IsKnownCategory("Snacks"))
}
