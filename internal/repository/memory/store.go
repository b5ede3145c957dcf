// Package memory implements the repository interfaces in process.
// It backs local runs with STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sync"
	"time"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository"
)

type state struct {
	accounts     map[int64]domain.Account
	entries      map[int64]domain.JournalEntry
	transactions map[int64]domain.BankTransaction
	reports      map[int64]domain.ReconciliationReport
	sequences    map[string]int64
	nextID       int64
}

func newState() *state {
	return &state{
		accounts:     make(map[int64]domain.Account),
		entries:      make(map[int64]domain.JournalEntry),
		transactions: make(map[int64]domain.BankTransaction),
		reports:      make(map[int64]domain.ReconciliationReport),
		sequences:    make(map[string]int64),
	}
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *state) clone() *state {
	c := &state{
		accounts:     make(map[int64]domain.Account, len(s.accounts)),
		entries:      make(map[int64]domain.JournalEntry, len(s.entries)),
		transactions: make(map[int64]domain.BankTransaction, len(s.transactions)),
		reports:      make(map[int64]domain.ReconciliationReport, len(s.reports)),
		sequences:    make(map[string]int64, len(s.sequences)),
		nextID:       s.nextID,
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = copyEntry(v)
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.reports {
		c.reports[k] = v
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	return c
}

func copyEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Lines = append([]domain.JournalLine(nil), e.Lines...)
	return e
}

// Store is an in-memory repository.Store. Transactions hold the write lock
// for their whole duration and restore a snapshot when fn fails.
type Store struct {
	mu    *sync.RWMutex
	st    **state
	inTx  bool
	clock func() time.Time
}

func NewStore() *Store {
	st := newState()
	return &Store{mu: &sync.RWMutex{}, st: &st, clock: time.Now}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) Accounts() repository.AccountRepository {
	return &accountRepository{s}
}

func (s *Store) Journals() repository.JournalRepository {
	return &journalRepository{s}
}

func (s *Store) BankTransactions() repository.BankTransactionRepository {
	return &bankTransactionRepository{s}
}

func (s *Store) Reconciliations() repository.ReconciliationRepository {
	return &reconciliationRepository{s}
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := (*s.st).clone()
	if err := fn(&Store{mu: s.mu, st: s.st, inTx: true, clock: s.clock}); err != nil {
		*s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) read(fn func(st *state)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(*s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(*s.st)
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}
