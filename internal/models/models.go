// Package models defines the domain entities for the expense tracker.
package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBankAccount is used when no payment source is detected.
const DefaultBankAccount = "Cash"

// CategoryOther is the fallback category for unclassified expenses.
const CategoryOther = "Other"

// Categories is the fixed category set, in display order.
var Categories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
	"Education",
	"Groceries",
	CategoryOther,
}

// CategoryEmojis maps each category to its display emoji.
var CategoryEmojis = map[string]string{
	"Food":          "🍔",
	"Transport":     "🚕",
	"Shopping":      "🛍️",
	"Bills":         "📄",
	"Entertainment": "🎬",
	"Health":        "💊",
	"Education":     "📚",
	"Groceries":     "🛒",
	CategoryOther:   "📦",
}

// CategoryColors maps each category to its chart color.
var CategoryColors = map[string]string{
	"Food":          "#FF6B6B",
	"Transport":     "#4ECDC4",
	"Shopping":      "#FFE66D",
	"Bills":         "#95A5A6",
	"Entertainment": "#9B59B6",
	"Health":        "#2ECC71",
	"Education":     "#3498DB",
	"Groceries":     "#E67E22",
	CategoryOther:   "#BDC3C7",
}

// Expense represents a single spending event.
type Expense struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BankAccount string          `json:"bankAccount"`
	CreatedAt   time.Time       `json:"createdAt"`
	RawInput    string          `json:"rawInput,omitempty"`
}

// ErrInvalidAmount is returned for records whose amount is not positive.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// IsKnownCategory reports whether name is one of the fixed categories.
func IsKnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks the invariants every stored record must hold.
func (e *Expense) Validate() error {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if e.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

// Normalize coerces a record into the fixed enumerations: unknown
// categories collapse to Other and a blank account defaults to Cash.
// Records failing Validate are rejected.
func (e *Expense) Normalize() error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !IsKnownCategory(e.Category) {
		e.Category = CategoryOther
	}
	if e.BankAccount == "" {
		e.BankAccount = DefaultBankAccount
	}
	return nil
}
