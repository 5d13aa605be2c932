package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
)

// memStore is an in-memory stand-in for the PostgreSQL repositories. A row lock
// is a mutex held from FindAccountForUpdate until commit or rollback, and writes
// made through a memTx only become visible on commit.
type memStore struct {
	mu           sync.Mutex
	accounts     map[string]*domain.TrustAccount
	rowLocks     map[string]*sync.Mutex
	transactions []domain.TrustTransaction
	transfers    []domain.TrustTransfer
	receipts     map[string]int64
	matters      map[string]domain.Matter
	audit        []domain.AuditEntry
	auditErr     error
}

type memTx struct {
	pgx.Tx
	held   []*sync.Mutex
	writes []func()
	done   bool
}

var (
	_ portsrepo.TrustAccountRepositoryWithTx     = (*memStore)(nil)
	_ portsrepo.TrustTransactionRepositoryFacade = (*memStore)(nil)
	_ portsrepo.TrustTransferRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.ReconciliationRepositoryFacade   = (*memStore)(nil)
	_ portsrepo.MatterReader                     = (*memStore)(nil)
	_ portsrepo.AuditWriter                      = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]*domain.TrustAccount{},
		rowLocks: map[string]*sync.Mutex{},
		receipts: map[string]int64{},
		matters:  map[string]domain.Matter{},
	}
}

func (s *memStore) addAccount(acc domain.TrustAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc.AccountType == "" {
		acc.AccountType = domain.TrustAccountType
	}
	s.accounts[acc.TrustAccountID] = &acc
	s.rowLocks[acc.TrustAccountID] = &sync.Mutex{}
}

func (s *memStore) addMatter(m domain.Matter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matters[m.MatterID] = m
}

func (s *memStore) account(id string) domain.TrustAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.accounts[id]
}

func (s *memStore) ledger() ([]domain.TrustTransaction, []domain.TrustTransfer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TrustTransaction(nil), s.transactions...), append([]domain.TrustTransfer(nil), s.transfers...)
}

func (s *memStore) findByAdvocate(advocateID string, accountType domain.AccountType) (*domain.TrustAccount, bool) {
	for _, acc := range s.accounts {
		if acc.AdvocateID == advocateID && acc.AccountType == accountType {
			return acc, true
		}
	}
	return nil, false
}

// --- TransactionManager ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{}, nil
}

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	t := tx.(*memTx)
	s.mu.Lock()
	for _, w := range t.writes {
		w()
	}
	s.mu.Unlock()
	t.finish()
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	tx.(*memTx).finish()
	return nil
}

func (t *memTx) finish() {
	if t.done {
		return
	}
	t.done = true
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
}

// --- TrustAccount repository ---

func (s *memStore) FindTrustAccountByAdvocate(ctx context.Context, advocateID string) (*domain.TrustAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.findByAdvocate(advocateID, domain.TrustAccountType)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

func (s *memStore) FindTrustAccountByID(ctx context.Context, trustAccountID string) (*domain.TrustAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[trustAccountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

func (s *memStore) ListTrustAccounts(ctx context.Context, limit int, offset int) ([]domain.TrustAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []domain.TrustAccount
	for _, acc := range s.accounts {
		if acc.AccountType == domain.TrustAccountType {
			all = append(all, *acc)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].TrustAccountID < all[j].TrustAccountID })
	if offset >= len(all) {
		return []domain.TrustAccount{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *memStore) SaveTrustAccount(ctx context.Context, account domain.TrustAccount) error {
	s.addAccount(account)
	return nil
}

func (s *memStore) UpdateTrustAccountDetails(ctx context.Context, account domain.TrustAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[account.TrustAccountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	acc.BankName = account.BankName
	acc.AccountHolderName = account.AccountHolderName
	acc.AccountNumber = account.AccountNumber
	acc.BranchCode = account.BranchCode
	acc.ReconciliationDayOfMonth = account.ReconciliationDayOfMonth
	acc.LowBalanceThreshold = account.LowBalanceThreshold
	acc.LastUpdatedAt = account.LastUpdatedAt
	acc.LastUpdatedBy = account.LastUpdatedBy
	return nil
}

func (s *memStore) SetNegativeBalanceAlertSent(ctx context.Context, trustAccountID string, sent bool, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[trustAccountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	acc.NegativeBalanceAlertSent = sent
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	return nil
}

func (s *memStore) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, advocateID string, accountType domain.AccountType) (*domain.TrustAccount, error) {
	s.mu.Lock()
	acc, ok := s.findByAdvocate(advocateID, accountType)
	if !ok {
		s.mu.Unlock()
		return nil, apperrors.ErrNotFound
	}
	lock := s.rowLocks[acc.TrustAccountID]
	s.mu.Unlock()

	lock.Lock()
	t := tx.(*memTx)
	t.held = append(t.held, lock)

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *acc
	return &cp, nil
}

func (s *memStore) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, locked domain.TrustAccount, newBalance decimal.Decimal, userID string, now time.Time) error {
	s.mu.Lock()
	acc := s.accounts[locked.TrustAccountID]
	moved := !acc.CurrentBalance.Equal(locked.CurrentBalance) || acc.Version != locked.Version
	s.mu.Unlock()
	if moved {
		return apperrors.ErrConflict
	}

	t := tx.(*memTx)
	t.writes = append(t.writes, func() {
		acc.CurrentBalance = newBalance
		acc.Version++
		acc.LastUpdatedAt = now
		acc.LastUpdatedBy = userID
		if !newBalance.IsNegative() {
			acc.NegativeBalanceAlertSent = false
		}
	})
	return nil
}

// --- TrustTransaction repository ---

func (s *memStore) ListTrustTransactions(ctx context.Context, trustAccountID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.TrustTransaction, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TrustTransaction
	for _, t := range s.transactions {
		if t.TrustAccountID != trustAccountID {
			continue
		}
		if filter.MatterID != nil && t.MatterID != *filter.MatterID {
			continue
		}
		if filter.RetainerID != nil && (t.RetainerID == nil || *t.RetainerID != *filter.RetainerID) {
			continue
		}
		if filter.TransactionType != nil && t.TransactionType != *filter.TransactionType {
			continue
		}
		if filter.IsReconciled != nil && t.IsReconciled != *filter.IsReconciled {
			continue
		}
		if filter.StartDate != nil && t.TransactionDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.TransactionDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TransactionDate.After(out[j].TransactionDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (s *memStore) SaveTrustTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.TrustTransaction) error {
	t := tx.(*memTx)
	t.writes = append(t.writes, func() { s.transactions = append(s.transactions, txn) })
	return nil
}

func (s *memStore) NextReceiptSequenceInTx(ctx context.Context, tx pgx.Tx, trustAccountID string, period string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts[trustAccountID+"/"+period]++
	return s.receipts[trustAccountID+"/"+period], nil
}

// --- TrustTransfer repository ---

func (s *memStore) ListTrustTransfers(ctx context.Context, trustAccountID string, filter domain.TransferFilter) ([]domain.TrustTransfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TrustTransfer
	for _, t := range s.transfers {
		if t.TrustAccountID != trustAccountID {
			continue
		}
		if filter.MatterID != nil && t.MatterID != *filter.MatterID {
			continue
		}
		if filter.StartDate != nil && t.TransferDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.TransferDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *memStore) SaveTrustTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.TrustTransfer) error {
	t := tx.(*memTx)
	t.writes = append(t.writes, func() { s.transfers = append(s.transfers, transfer) })
	return nil
}

// --- Reconciliation repository ---

func (s *memStore) LoadReconciliationData(ctx context.Context, advocateID string, startDate, endDate time.Time) (*domain.ReconciliationData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.findByAdvocate(advocateID, domain.TrustAccountType)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	data := &domain.ReconciliationData{Account: *acc, PrePeriodNet: decimal.Zero}
	for _, t := range s.transactions {
		if t.TrustAccountID != acc.TrustAccountID {
			continue
		}
		switch {
		case t.TransactionDate.Before(startDate):
			data.PrePeriodNet = data.PrePeriodNet.Add(t.SignedAmount())
		case t.TransactionDate.After(endDate):
			data.PostPeriodEntries++
		default:
			data.Transactions = append(data.Transactions, t)
		}
	}
	for _, t := range s.transfers {
		if t.TrustAccountID != acc.TrustAccountID {
			continue
		}
		switch {
		case t.TransferDate.Before(startDate):
			data.PrePeriodNet = data.PrePeriodNet.Add(t.SignedAmount())
		case t.TransferDate.After(endDate):
			data.PostPeriodEntries++
		default:
			data.Transfers = append(data.Transfers, t)
		}
	}
	return data, nil
}

func (s *memStore) MarkReconciled(ctx context.Context, advocateID string, date time.Time, balance decimal.Decimal, now time.Time) (*domain.TrustAccount, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.findByAdvocate(advocateID, domain.TrustAccountType)
	if !ok {
		return nil, 0, apperrors.ErrNotFound
	}
	var flagged int64
	for i := range s.transactions {
		t := &s.transactions[i]
		if t.TrustAccountID == acc.TrustAccountID && !t.IsReconciled && !t.TransactionDate.After(date) {
			d := date
			t.IsReconciled = true
			t.ReconciliationDate = &d
			flagged++
		}
	}
	d, b := date, balance
	acc.LastReconciliationDate = &d
	acc.LastReconciliationBalance = &b
	acc.LastUpdatedAt = now
	cp := *acc
	return &cp, flagged, nil
}

// --- Matter and audit ---

func (s *memStore) FindMatterForAdvocate(ctx context.Context, advocateID, matterID string) (*domain.Matter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matters[matterID]
	if !ok || m.AdvocateID != advocateID {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (s *memStore) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auditErr != nil {
		return s.auditErr
	}
	s.audit = append(s.audit, entry)
	return nil
}
