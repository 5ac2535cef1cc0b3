// Package store holds the canonical in-memory snapshot of transactions,
// budgets, and categories. It applies mutations from a closed set of
// change kinds, persists through an injected backend after each one, and
// answers pure derived-metric queries.
package store

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pocketfin/pocket/internal/model"
	"github.com/pocketfin/pocket/internal/storage"
)

// Store is the single source of truth for financial records. It is
// constructed at process start and passed explicitly to whatever consumes
// it; there is no package-level instance.
//
// All methods run on one logical thread. Mutations replace the snapshot
// wholesale, so a value returned by Snapshot never changes underneath the
// caller.
type Store struct {
	snap    model.Snapshot
	backend storage.Backend
	log     zerolog.Logger
}

// New builds a store from persisted state. A missing snapshot yields the
// seed state; a malformed one is discarded with a diagnostic log, never an
// error. backend may be nil for a purely in-memory store.
func New(backend storage.Backend, log zerolog.Logger) *Store {
	s := &Store{
		snap:    model.Seed(),
		backend: backend,
		log:     log,
	}

	if backend == nil {
		return s
	}

	snap, ok, err := backend.Load()
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("discarding malformed persisted state, starting from seed")
	case ok:
		// Persisted state replaces the seed entirely, categories included.
		s.snap = snap
	}

	return s
}

// Close releases the persistence backend.
func (s *Store) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	return s.snap.Clone()
}

// AddTransaction assigns a fresh identifier and appends the transaction.
// Identifiers are random UUIDs, so two calls in the same clock tick never
// collide.
func (s *Store) AddTransaction(data model.TransactionData) model.Transaction {
	tx := model.Transaction{
		ID:          uuid.NewString(),
		Amount:      data.Amount,
		Kind:        data.Kind,
		Category:    data.Category,
		Date:        data.Date,
		Description: data.Description,
	}
	s.dispatch(model.Change{Op: model.OpAddTransaction, Transaction: &tx})
	return tx
}

// UpdateTransaction replaces the entry whose identifier matches. A
// missing id is a silent no-op.
func (s *Store) UpdateTransaction(tx model.Transaction) {
	s.dispatch(model.Change{Op: model.OpUpdateTransaction, Transaction: &tx})
}

// DeleteTransaction removes the matching entry. A missing id is a silent
// no-op.
func (s *Store) DeleteTransaction(id string) {
	s.dispatch(model.Change{Op: model.OpDeleteTransaction, TransactionID: id})
}

// SetBudget upserts the budget for its category: replace when one exists,
// append otherwise.
func (s *Store) SetBudget(b model.Budget) {
	s.dispatch(model.Change{Op: model.OpSetBudget, Budget: &b})
}

// AddCategory assigns a fresh identifier and appends the category. No
// dedup check is made against existing names.
func (s *Store) AddCategory(data model.CategoryData) model.Category {
	cat := model.Category{
		ID:    uuid.NewString(),
		Name:  data.Name,
		Icon:  data.Icon,
		Color: data.Color,
	}
	s.dispatch(model.Change{Op: model.OpAddCategory, Category: &cat})
	return cat
}

// LoadSnapshot replaces the entire state wholesale.
func (s *Store) LoadSnapshot(snap model.Snapshot) {
	s.dispatch(model.Change{Op: model.OpLoadSnapshot, Snapshot: &snap})
}

// dispatch applies the change and persists the result. Persistence is
// best-effort: a failing write keeps the in-memory state authoritative
// and is logged only.
func (s *Store) dispatch(c model.Change) {
	s.snap = s.snap.Apply(c)

	if s.backend == nil {
		return
	}
	if err := s.backend.Record(c, s.snap); err != nil {
		s.log.Warn().Err(err).Str("op", string(c.Op)).Msg("persist failed, keeping in-memory state")
	}
}
