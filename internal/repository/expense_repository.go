// Package repository implements the remote expense store client.
package repository

import (
	"context"
	"fmt"

	"github.com/rizqly/rizqly/internal/database"
	"github.com/rizqly/rizqly/internal/models"
)

// ExpenseRepository handles expense database operations, always scoped to
// an owner.
type ExpenseRepository struct {
	db database.PGXDB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.PGXDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// ListByOwner retrieves all expenses for an owner, most recent first.
func (r *ExpenseRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, amount, description, category, bank_account, raw_input, created_at
		FROM budget_expenses
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var exp models.Expense
		var rawInput *string
		if err := rows.Scan(
			&exp.ID, &exp.OwnerID, &exp.Amount, &exp.Description,
			&exp.Category, &exp.BankAccount, &rawInput, &exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if rawInput != nil {
			exp.RawInput = *rawInput
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// Insert adds a new expense. The remote store assigns the id and
// timestamp, which are written back into the record.
func (r *ExpenseRepository) Insert(ctx context.Context, expense *models.Expense) error {
	var rawInput *string
	if expense.RawInput != "" {
		rawInput = &expense.RawInput
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO budget_expenses (owner_id, amount, description, category, bank_account, raw_input)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, expense.OwnerID, expense.Amount, expense.Description,
		expense.Category, expense.BankAccount, rawInput,
	).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// Delete removes one expense by id, scoped to its owner.
func (r *ExpenseRepository) Delete(ctx context.Context, id, ownerID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM budget_expenses WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// DeleteAllByOwner removes every expense belonging to an owner.
func (r *ExpenseRepository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM budget_expenses WHERE owner_id = $1
	`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}
