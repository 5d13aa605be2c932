package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// MockTrustAccountRepository is a mock type for the TrustAccountRepositoryWithTx interface
type MockTrustAccountRepository struct {
	mock.Mock
}

func (m *MockTrustAccountRepository) FindTrustAccountByAdvocate(ctx context.Context, advocateID string) (*domain.TrustAccount, error) {
	args := m.Called(ctx, advocateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrustAccount), args.Error(1)
}

func (m *MockTrustAccountRepository) FindTrustAccountByID(ctx context.Context, trustAccountID string) (*domain.TrustAccount, error) {
	args := m.Called(ctx, trustAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrustAccount), args.Error(1)
}

func (m *MockTrustAccountRepository) ListTrustAccounts(ctx context.Context, limit int, offset int) ([]domain.TrustAccount, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrustAccount), args.Error(1)
}

func (m *MockTrustAccountRepository) SaveTrustAccount(ctx context.Context, account domain.TrustAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockTrustAccountRepository) UpdateTrustAccountDetails(ctx context.Context, account domain.TrustAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockTrustAccountRepository) SetNegativeBalanceAlertSent(ctx context.Context, trustAccountID string, sent bool, userID string, now time.Time) error {
	args := m.Called(ctx, trustAccountID, sent, userID, now)
	return args.Error(0)
}

func (m *MockTrustAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, advocateID string, accountType domain.AccountType) (*domain.TrustAccount, error) {
	args := m.Called(ctx, tx, advocateID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrustAccount), args.Error(1)
}

func (m *MockTrustAccountRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, locked domain.TrustAccount, newBalance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, locked, newBalance, userID, now)
	return args.Error(0)
}

func (m *MockTrustAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTrustAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTrustAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockReconciliationRepository is a mock type for the ReconciliationRepositoryFacade interface
type MockReconciliationRepository struct {
	mock.Mock
}

func (m *MockReconciliationRepository) LoadReconciliationData(ctx context.Context, advocateID string, startDate, endDate time.Time) (*domain.ReconciliationData, error) {
	args := m.Called(ctx, advocateID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationData), args.Error(1)
}

func (m *MockReconciliationRepository) MarkReconciled(ctx context.Context, advocateID string, date time.Time, balance decimal.Decimal, now time.Time) (*domain.TrustAccount, int64, error) {
	args := m.Called(ctx, advocateID, date, balance, now)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.TrustAccount), args.Get(1).(int64), args.Error(2)
}

// MockAuditWriter is a mock type for the AuditWriter interface
type MockAuditWriter struct {
	mock.Mock
}

func (m *MockAuditWriter) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
