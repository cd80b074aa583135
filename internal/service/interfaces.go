// Package service defines the interfaces the confessional depends on.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// Store defines the contract for our persistence layer.
type Store interface {
	// Load returns the persisted ledger. Missing or unreadable data
	// yields an empty ledger rather than an error.
	Load(ctx context.Context) model.Ledger

	// Save replaces the persisted ledger with the given one.
	Save(ctx context.Context, ledger model.Ledger) error
}

// Rand is the randomness source used to pick responses.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
