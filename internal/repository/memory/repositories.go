package memory

import (
	"context"
	"sort"
	"strings"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository"
)

type accountRepository struct{ s *Store }

func (r *accountRepository) Create(ctx context.Context, acc *domain.Account) error {
	return r.s.write(func(st *state) error {
		for _, existing := range st.accounts {
			if existing.Code == acc.Code {
				return domain.NewPersistenceError("create account", errDuplicate("account code", acc.Code))
			}
		}
		acc.ID = st.id()
		acc.CreatedAt = r.s.now()
		acc.UpdatedAt = acc.CreatedAt
		st.accounts[acc.ID] = *acc
		return nil
	})
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var found *domain.Account
	r.s.read(func(st *state) {
		if acc, ok := st.accounts[id]; ok {
			found = &acc
		}
	})
	if found == nil {
		return nil, domain.NewNotFoundError("account", id)
	}
	return found, nil
}

func (r *accountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	var found *domain.Account
	r.s.read(func(st *state) {
		for _, acc := range st.accounts {
			if acc.Code == code {
				acc := acc
				found = &acc
				return
			}
		}
	})
	if found == nil {
		return nil, domain.NewNotFoundError("account", code)
	}
	return found, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	r.s.read(func(st *state) {
		for _, acc := range st.accounts {
			accounts = append(accounts, acc)
		}
	})
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

type journalRepository struct{ s *Store }

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.s.write(func(st *state) error {
		for _, existing := range st.entries {
			if existing.VoucherNumber == entry.VoucherNumber {
				return domain.NewPersistenceError("create journal entry", errDuplicate("voucher number", entry.VoucherNumber))
			}
		}
		entry.ID = st.id()
		if err := r.stampLines(st, entry); err != nil {
			return err
		}
		st.entries[entry.ID] = copyEntry(*entry)
		return nil
	})
}

func (r *journalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	return r.s.write(func(st *state) error {
		existing, ok := st.entries[entry.ID]
		if !ok {
			return domain.NewNotFoundError("journal entry", entry.ID)
		}
		for id, other := range st.entries {
			if id != entry.ID && other.VoucherNumber == entry.VoucherNumber {
				return domain.NewPersistenceError("update journal entry", errDuplicate("voucher number", entry.VoucherNumber))
			}
		}
		if err := r.stampLines(st, entry); err != nil {
			return err
		}
		entry.Status = existing.Status
		entry.CreatedAt = existing.CreatedAt
		st.entries[entry.ID] = copyEntry(*entry)
		return nil
	})
}

func (r *journalRepository) stampLines(st *state, entry *domain.JournalEntry) error {
	for i := range entry.Lines {
		line := &entry.Lines[i]
		acc, ok := st.accounts[line.AccountID]
		if !ok {
			return domain.NewPersistenceError("insert journal line", errForeignKey("account", line.AccountID))
		}
		line.ID = st.id()
		line.EntryID = entry.ID
		line.AccountCode = acc.Code
	}
	return nil
}

func (r *journalRepository) UpdateStatus(ctx context.Context, entry *domain.JournalEntry) error {
	return r.s.write(func(st *state) error {
		existing, ok := st.entries[entry.ID]
		if !ok {
			return domain.NewNotFoundError("journal entry", entry.ID)
		}
		existing.Status = entry.Status
		existing.ReviewedBy = entry.ReviewedBy
		existing.ReviewedAt = entry.ReviewedAt
		existing.UpdatedAt = entry.UpdatedAt
		st.entries[entry.ID] = existing
		return nil
	})
}

func (r *journalRepository) Delete(ctx context.Context, id int64) error {
	return r.s.write(func(st *state) error {
		if _, ok := st.entries[id]; !ok {
			return domain.NewNotFoundError("journal entry", id)
		}
		delete(st.entries, id)
		return nil
	})
}

func (r *journalRepository) GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	var found *domain.JournalEntry
	r.s.read(func(st *state) {
		if entry, ok := st.entries[id]; ok {
			entry = copyEntry(entry)
			found = &entry
		}
	})
	if found == nil {
		return nil, domain.NewNotFoundError("journal entry", id)
	}
	return found, nil
}

func (r *journalRepository) Find(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	r.s.read(func(st *state) {
		for _, entry := range st.entries {
			if filter.Status != "" && entry.Status != filter.Status {
				continue
			}
			if !domain.WithinDays(entry.EntryDate, filter.From, filter.To) {
				continue
			}
			entries = append(entries, copyEntry(entry))
		}
	})
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].EntryDate.Equal(entries[j].EntryDate) {
			return entries[i].EntryDate.Before(entries[j].EntryDate)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (r *journalRepository) Latest(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	r.s.read(func(st *state) {
		for _, entry := range st.entries {
			entries = append(entries, copyEntry(entry))
		}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID > entries[j].ID })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *journalRepository) MaxVoucherSequence(ctx context.Context, prefix string) (int64, error) {
	var numbers []string
	r.s.read(func(st *state) {
		for _, entry := range st.entries {
			numbers = append(numbers, entry.VoucherNumber)
		}
	})
	return repository.MaxSequence(numbers, prefix), nil
}

func (r *journalRepository) NextVoucherSequence(ctx context.Context, prefix string) (int64, error) {
	var next int64
	err := r.s.write(func(st *state) error {
		var numbers []string
		for _, entry := range st.entries {
			numbers = append(numbers, entry.VoucherNumber)
		}
		// Explicitly numbered vouchers may have moved past the counter
		last := st.sequences[prefix]
		if highest := repository.MaxSequence(numbers, prefix); highest > last {
			last = highest
		}
		next = last + 1
		st.sequences[prefix] = next
		return nil
	})
	return next, err
}

type bankTransactionRepository struct{ s *Store }

func (r *bankTransactionRepository) Create(ctx context.Context, tx *domain.BankTransaction) error {
	return r.s.write(func(st *state) error {
		r.insert(st, tx)
		return nil
	})
}

func (r *bankTransactionRepository) insert(st *state, tx *domain.BankTransaction) {
	if tx.Status == "" {
		tx.Status = domain.Unmatched
	}
	tx.ID = st.id()
	tx.TransactionDate = domain.DateOf(tx.TransactionDate)
	tx.CreatedAt = r.s.now()
	tx.UpdatedAt = tx.CreatedAt
	st.transactions[tx.ID] = *tx
}

func (r *bankTransactionRepository) BulkCreate(ctx context.Context, transactions []domain.BankTransaction) error {
	return r.s.write(func(st *state) error {
		for i := range transactions {
			r.insert(st, &transactions[i])
		}
		return nil
	})
}

func (r *bankTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.BankTransaction, error) {
	var found *domain.BankTransaction
	r.s.read(func(st *state) {
		if tx, ok := st.transactions[id]; ok {
			found = &tx
		}
	})
	if found == nil {
		return nil, domain.NewNotFoundError("bank transaction", id)
	}
	return found, nil
}

func (r *bankTransactionRepository) Find(ctx context.Context, filter domain.BankTransactionFilter) ([]domain.BankTransaction, error) {
	var transactions []domain.BankTransaction
	r.s.read(func(st *state) {
		for _, tx := range st.transactions {
			if filter.BankAccount != "" && tx.BankAccount != filter.BankAccount {
				continue
			}
			if filter.Status != "" && tx.Status != filter.Status {
				continue
			}
			if !domain.WithinDays(tx.TransactionDate, filter.From, filter.To) {
				continue
			}
			transactions = append(transactions, tx)
		}
	})
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].ID < transactions[j].ID })
	return transactions, nil
}

func (r *bankTransactionRepository) UpdateMatch(ctx context.Context, tx *domain.BankTransaction) error {
	return r.s.write(func(st *state) error {
		existing, ok := st.transactions[tx.ID]
		if !ok {
			return domain.NewNotFoundError("bank transaction", tx.ID)
		}
		existing.Status = tx.Status
		existing.MatchedEntryID = tx.MatchedEntryID
		existing.ReconciliationDate = tx.ReconciliationDate
		existing.UpdatedAt = r.s.now()
		st.transactions[tx.ID] = existing
		return nil
	})
}

func (r *bankTransactionRepository) Delete(ctx context.Context, id int64) error {
	return r.s.write(func(st *state) error {
		if _, ok := st.transactions[id]; !ok {
			return domain.NewNotFoundError("bank transaction", id)
		}
		delete(st.transactions, id)
		return nil
	})
}

func (r *bankTransactionRepository) MatchedEntryIDs(ctx context.Context, bankAccount string) (map[int64]bool, error) {
	ids := make(map[int64]bool)
	r.s.read(func(st *state) {
		for _, tx := range st.transactions {
			if tx.BankAccount == bankAccount && tx.MatchedEntryID != nil {
				ids[*tx.MatchedEntryID] = true
			}
		}
	})
	return ids, nil
}

func (r *bankTransactionRepository) Statistics(ctx context.Context, bankAccount string) (*domain.BankStatistics, error) {
	stats := &domain.BankStatistics{BankAccount: bankAccount}
	r.s.read(func(st *state) {
		for _, tx := range st.transactions {
			if bankAccount != "" && tx.BankAccount != bankAccount {
				continue
			}
			stats.Total++
			switch tx.Status {
			case domain.Matched:
				stats.Matched++
			case domain.Unmatched:
				stats.Unmatched++
			case domain.Outstanding:
				stats.Outstanding++
			}
		}
	})
	return stats, nil
}

type reconciliationRepository struct{ s *Store }

func (r *reconciliationRepository) Create(ctx context.Context, report *domain.ReconciliationReport) error {
	return r.s.write(func(st *state) error {
		report.ID = st.id()
		report.CreatedAt = r.s.now()
		st.reports[report.ID] = *report
		return nil
	})
}

func (r *reconciliationRepository) GetByID(ctx context.Context, id int64) (*domain.ReconciliationReport, error) {
	var found *domain.ReconciliationReport
	r.s.read(func(st *state) {
		if report, ok := st.reports[id]; ok {
			found = &report
		}
	})
	if found == nil {
		return nil, domain.NewNotFoundError("reconciliation report", id)
	}
	return found, nil
}

func (r *reconciliationRepository) ListByBankAccount(ctx context.Context, bankAccount string) ([]domain.ReconciliationReport, error) {
	var reports []domain.ReconciliationReport
	r.s.read(func(st *state) {
		for _, report := range st.reports {
			if strings.EqualFold(report.BankAccount, bankAccount) {
				reports = append(reports, report)
			}
		}
	})
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID > reports[j].ID })
	return reports, nil
}
