// Package storage persists the confessional ledger to a flat JSON file.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNegativeKarma   = errors.New("karma cannot be negative")
	ErrInvalidCategory = errors.New("invalid category")
)

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateLedger rejects ledgers the engine could never have produced.
func validateLedger(ledger model.Ledger) error {
	if ledger.KarmaTotal < 0 {
		return fmt.Errorf("%w: total %d", ErrNegativeKarma, ledger.KarmaTotal)
	}
	for i, record := range ledger.History {
		if record.Karma < 0 {
			return fmt.Errorf("history entry %d: %w", i, ErrNegativeKarma)
		}
		if !record.Category.Valid() {
			return fmt.Errorf("history entry %d: %w: %q", i, ErrInvalidCategory, record.Category)
		}
	}
	for c := range ledger.Tally {
		if !c.Valid() {
			return fmt.Errorf("tally: %w: %q", ErrInvalidCategory, c)
		}
	}
	return nil
}
