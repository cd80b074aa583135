package engine

import (
	"context"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// MockStore is an in-memory implementation of service.Store for tests.
type MockStore struct {
	SaveErr   error
	Saved     []model.Ledger
	ledger    model.Ledger
	LoadCalls int
}

// NewMockStore creates a mock store holding the given ledger.
func NewMockStore(initial model.Ledger) *MockStore {
	return &MockStore{ledger: initial.Clone()}
}

// Load returns a copy of the held ledger.
func (m *MockStore) Load(_ context.Context) model.Ledger {
	m.LoadCalls++
	return m.ledger.Clone()
}

// Save records the ledger, or fails with SaveErr when set.
func (m *MockStore) Save(_ context.Context, ledger model.Ledger) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	snapshot := ledger.Clone()
	m.ledger = snapshot
	m.Saved = append(m.Saved, snapshot)
	return nil
}

// Current returns what the store holds now.
func (m *MockStore) Current() model.Ledger {
	return m.ledger.Clone()
}
