// Package localcache provides the on-device fallback persistence: a
// key-value blob store holding JSON-serialized expense snapshots, one
// blob per owner.
package localcache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rizqly/rizqly/internal/models"
)

// BlobStore is a key-value store for string blobs.
type BlobStore interface {
	// Get returns the blob for key, and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// ExpenseKey returns the cache key for an owner's snapshot. Keys are
// per-owner so one account's cached data never leaks into another session.
func ExpenseKey(ownerID string) string {
	return "expenses:" + ownerID
}

// EncodeExpenses serializes a snapshot to the cache blob format.
func EncodeExpenses(expenses []models.Expense) (string, error) {
	if expenses == nil {
		expenses = []models.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return "", fmt.Errorf("failed to encode expenses: %w", err)
	}
	return string(data), nil
}

// DecodeExpenses deserializes a cache blob back into a snapshot.
// Records failing normalization are dropped rather than propagated.
func DecodeExpenses(blob string) ([]models.Expense, error) {
	var raw []models.Expense
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}

	expenses := make([]models.Expense, 0, len(raw))
	for _, e := range raw {
		if err := e.Normalize(); err != nil {
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// LoadExpenses reads and decodes an owner's cached snapshot.
// A missing key yields an empty snapshot.
func LoadExpenses(ctx context.Context, store BlobStore, ownerID string) ([]models.Expense, error) {
	blob, ok, err := store.Get(ctx, ExpenseKey(ownerID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Expense{}, nil
	}
	return DecodeExpenses(blob)
}

// SaveExpenses encodes and writes an owner's snapshot.
func SaveExpenses(ctx context.Context, store BlobStore, ownerID string, expenses []models.Expense) error {
	blob, err := EncodeExpenses(expenses)
	if err != nil {
		return err
	}
	return store.Set(ctx, ExpenseKey(ownerID), blob)
}
