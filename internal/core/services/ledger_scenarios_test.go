package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/core/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/utils/accounting"
)

const (
	testAdvocateID = "adv_1"
	testAccountID  = "acc_trust_1"
	testMatterID   = "matter_1"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type ledgerFixture struct {
	store          *memStore
	transactions   portssvc.TrustTransactionSvcFacade
	transfers      portssvc.TrustTransferSvcFacade
	reconciliation portssvc.ReconciliationSvcFacade
	compliance     portssvc.ComplianceSvcFacade
}

func newLedgerFixture(t *testing.T, openingBalance string, options ...services.ServiceOption) *ledgerFixture {
	t.Helper()
	store := newMemStore()
	store.addAccount(domain.TrustAccount{
		TrustAccountID:      testAccountID,
		AdvocateID:          testAdvocateID,
		BankName:            "Standard Bank",
		AccountHolderName:   "J Smith Attorneys Trust",
		AccountNumber:       "012345678",
		AccountType:         domain.TrustAccountType,
		CurrentBalance:      decimal.RequireFromString(openingBalance),
		LowBalanceThreshold: decimal.Zero,
	})
	retainer := "ret_1"
	client := "client_1"
	store.addMatter(domain.Matter{MatterID: testMatterID, AdvocateID: testAdvocateID, ClientID: &client, RetainerID: &retainer})

	opts := append([]services.ServiceOption{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithAuditTrail(store),
	}, options...)
	return &ledgerFixture{
		store:          store,
		transactions:   services.NewTrustTransactionService(store, store, store, opts...),
		transfers:      services.NewTrustTransferService(store, store, store, opts...),
		reconciliation: services.NewReconciliationService(store, opts...),
		compliance:     services.NewComplianceService(store, opts...),
	}
}

func txnRequest(amount, description string, date string) dto.RecordTransactionRequest {
	req := dto.RecordTransactionRequest{
		MatterID:    testMatterID,
		Amount:      decimal.RequireFromString(amount),
		Description: description,
	}
	if date != "" {
		req.TransactionDate = &date
	}
	return req
}

func TestScenarioA_DepositIntoEmptyAccount(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	req := txnRequest("50000.00", "Retainer deposit", "")
	ref := "EFT-1"
	req.Reference = &ref

	txn, err := f.transactions.RecordDeposit(ctx, testAdvocateID, req)
	require.NoError(t, err)

	assert.True(t, txn.BalanceBefore.IsZero())
	assert.True(t, txn.BalanceAfter.Equal(decimal.RequireFromString("50000.00")))
	assert.Equal(t, domain.Increase, txn.Direction)
	require.NotNil(t, txn.Reference)
	assert.Equal(t, "EFT-1", *txn.Reference)
	require.NotNil(t, txn.ReceiptNumber)
	assert.Equal(t, "TR-202403-0001", *txn.ReceiptNumber)
	require.NotNil(t, txn.RetainerID)
	assert.Equal(t, "ret_1", *txn.RetainerID)
	require.NotNil(t, txn.ClientID)
	assert.Equal(t, "client_1", *txn.ClientID)

	acc := f.store.account(testAccountID)
	assert.True(t, acc.CurrentBalance.Equal(decimal.RequireFromString("50000.00")))
	assert.Equal(t, int64(1), acc.Version)
	require.Len(t, f.store.audit, 1)
	assert.Equal(t, domain.AuditTransactionRecorded, f.store.audit[0].Action)
}

func TestScenarioB_DrawdownBeyondBalanceIsRejected(t *testing.T) {
	f := newLedgerFixture(t, "50000.00")

	txn, err := f.transactions.RecordDrawdown(context.Background(), testAdvocateID, txnRequest("60000.00", "Counsel fees", ""))
	require.Error(t, err)
	assert.Nil(t, txn)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	var insufficient *apperrors.InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	assert.True(t, insufficient.Available.Equal(decimal.RequireFromString("50000.00")))
	assert.True(t, insufficient.Requested.Equal(decimal.RequireFromString("60000.00")))
	assert.Contains(t, err.Error(), "Available:")
	assert.Contains(t, err.Error(), "Required:")

	acc := f.store.account(testAccountID)
	assert.True(t, acc.CurrentBalance.Equal(decimal.RequireFromString("50000.00")))
	txns, transfers := f.store.ledger()
	assert.Empty(t, txns)
	assert.Empty(t, transfers)
	assert.Empty(t, f.store.audit)
}

func TestScenarioC_TransferToBusiness(t *testing.T) {
	f := newLedgerFixture(t, "50000.00")
	f.store.addAccount(domain.TrustAccount{
		TrustAccountID: "acc_business_1",
		AdvocateID:     testAdvocateID,
		AccountType:    domain.BusinessAccountType,
		CurrentBalance: decimal.RequireFromString("1000.00"),
	})

	transfer, err := f.transfers.TransferToBusiness(context.Background(), testAdvocateID, dto.TransferToBusinessRequest{
		MatterID:          testMatterID,
		Amount:            decimal.RequireFromString("20000.00"),
		Reason:            "Invoice INV-7 settled",
		AuthorizationType: domain.AuthInvoicePayment,
	})
	require.NoError(t, err)

	assert.True(t, transfer.TrustBalanceBefore.Equal(decimal.RequireFromString("50000.00")))
	assert.True(t, transfer.TrustBalanceAfter.Equal(decimal.RequireFromString("30000.00")))
	require.NotNil(t, transfer.BusinessBalanceBefore)
	require.NotNil(t, transfer.BusinessBalanceAfter)
	assert.True(t, transfer.BusinessBalanceAfter.Equal(decimal.RequireFromString("21000.00")))
	assert.Equal(t, domain.TrustToBusiness, transfer.TransferType)
	assert.Equal(t, testAdvocateID, transfer.ApprovedBy)

	assert.True(t, f.store.account(testAccountID).CurrentBalance.Equal(decimal.RequireFromString("30000.00")))
	assert.True(t, f.store.account("acc_business_1").CurrentBalance.Equal(decimal.RequireFromString("21000.00")))
}

func TestTransferToBusiness_WithoutBusinessAccount(t *testing.T) {
	f := newLedgerFixture(t, "500.00")

	transfer, err := f.transfers.TransferToBusiness(context.Background(), testAdvocateID, dto.TransferToBusinessRequest{
		MatterID:          testMatterID,
		Amount:            decimal.RequireFromString("500.00"),
		Reason:            "Fees earned",
		AuthorizationType: domain.AuthFeeEarned,
	})
	require.NoError(t, err)
	assert.Nil(t, transfer.BusinessBalanceBefore)
	assert.True(t, transfer.TrustBalanceAfter.IsZero())
}

func TestTransferToBusiness_InsufficientFunds(t *testing.T) {
	f := newLedgerFixture(t, "100.00")

	_, err := f.transfers.TransferToBusiness(context.Background(), testAdvocateID, dto.TransferToBusinessRequest{
		MatterID:          testMatterID,
		Amount:            decimal.RequireFromString("100.01"),
		Reason:            "Fees earned",
		AuthorizationType: domain.AuthFeeEarned,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.True(t, f.store.account(testAccountID).CurrentBalance.Equal(decimal.RequireFromString("100.00")))
}

func TestListTransfers_FiltersByDate(t *testing.T) {
	f := newLedgerFixture(t, "1000.00")
	ctx := context.Background()

	for _, date := range []string{"2024-02-10", "2024-03-01"} {
		d := date
		_, err := f.transfers.TransferToBusiness(ctx, testAdvocateID, dto.TransferToBusinessRequest{
			MatterID:          testMatterID,
			Amount:            decimal.RequireFromString("100.00"),
			Reason:            "Fees earned",
			AuthorizationType: domain.AuthFeeEarned,
			TransferDate:      &d,
		})
		require.NoError(t, err)
	}

	all, err := f.transfers.ListTransfers(ctx, testAdvocateID, dto.ListTrustTransfersParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	start := "2024-03-01"
	march, err := f.transfers.ListTransfers(ctx, testAdvocateID, dto.ListTrustTransfersParams{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "2024-03-01", march[0].TransferDate.Format(domain.DateLayout))

	end := "2024-01-01"
	_, err = f.transfers.ListTransfers(ctx, testAdvocateID, dto.ListTrustTransfersParams{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestScenarioD_ReconciliationOpeningBalance(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	_, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("60000.00", "Deposit one", "2024-03-01"))
	require.NoError(t, err)
	_, err = f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("40000.00", "Deposit two", "2024-03-02"))
	require.NoError(t, err)
	_, err = f.transactions.RecordDrawdown(ctx, testAdvocateID, txnRequest("40000.00", "Disbursement", "2024-03-05"))
	require.NoError(t, err)
	transferDate := "2024-03-08"
	_, err = f.transfers.TransferToBusiness(ctx, testAdvocateID, dto.TransferToBusinessRequest{
		MatterID:          testMatterID,
		Amount:            decimal.RequireFromString("10000.00"),
		Reason:            "Fee note 12",
		AuthorizationType: domain.AuthInvoicePayment,
		TransferDate:      &transferDate,
	})
	require.NoError(t, err)

	bank := decimal.RequireFromString("50100.00")
	report, err := f.reconciliation.GenerateReport(ctx, testAdvocateID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), &bank)
	require.NoError(t, err)

	assert.True(t, report.OpeningBalance.IsZero(), "opening balance %s", report.OpeningBalance)
	assert.True(t, report.DerivedOpeningBalance.IsZero())
	assert.True(t, report.ClosingBalance.Equal(decimal.RequireFromString("50000.00")))
	assert.True(t, report.TotalDeposits.Equal(decimal.RequireFromString("100000.00")))
	assert.True(t, report.TotalDrawdowns.Equal(decimal.RequireFromString("40000.00")))
	assert.True(t, report.TotalTransfers.Equal(decimal.RequireFromString("10000.00")))
	assert.True(t, report.Discrepancy.Equal(decimal.RequireFromString("100.00")))
	assert.False(t, report.HasPostPeriodActivity)
	assert.False(t, report.IsReconciled)
	assert.Len(t, report.Transactions, 3)
	assert.Len(t, report.Transfers, 1)
}

func TestReconciliation_ForwardReplayWithLaterActivity(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	_, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("1000.00", "Before period", "2024-01-20"))
	require.NoError(t, err)
	_, err = f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("500.00", "In period", "2024-02-10"))
	require.NoError(t, err)
	_, err = f.transactions.RecordDrawdown(ctx, testAdvocateID, txnRequest("200.00", "After period", "2024-03-05"))
	require.NoError(t, err)

	report, err := f.reconciliation.GenerateReport(ctx, testAdvocateID,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	assert.True(t, report.OpeningBalance.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, report.ClosingBalance.Equal(decimal.RequireFromString("1500.00")))
	// walking back from today's balance misses the March drawdown
	assert.True(t, report.DerivedOpeningBalance.Equal(decimal.RequireFromString("800.00")))
	assert.True(t, report.HasPostPeriodActivity)
	assert.True(t, report.Discrepancy.IsZero())
}

func TestReconciliation_RejectsInvertedRange(t *testing.T) {
	f := newLedgerFixture(t, "0")
	_, err := f.reconciliation.GenerateReport(context.Background(), testAdvocateID,
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestScenarioE_NegativeBalanceViolation(t *testing.T) {
	f := newLedgerFixture(t, "-150.00")

	status, err := f.compliance.CheckForViolations(context.Background(), testAdvocateID)
	require.NoError(t, err)
	assert.True(t, status.HasViolation)
	assert.True(t, status.Balance.Equal(decimal.RequireFromString("-150.00")))
	assert.Contains(t, status.Message, "R150.00")
	assert.NotContains(t, status.Message, "-")
	assert.False(t, status.AlertAlreadySent)
}

func TestNegativeBalanceAlertLifecycle(t *testing.T) {
	f := newLedgerFixture(t, "-150.00")
	ctx := context.Background()

	acc, err := f.compliance.MarkAlertSent(ctx, testAdvocateID)
	require.NoError(t, err)
	assert.True(t, acc.NegativeBalanceAlertSent)

	status, err := f.compliance.CheckForViolations(ctx, testAdvocateID)
	require.NoError(t, err)
	assert.True(t, status.AlertAlreadySent)

	_, err = f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("200.00", "Top up", ""))
	require.NoError(t, err)

	stored := f.store.account(testAccountID)
	assert.False(t, stored.NegativeBalanceAlertSent)
	_, err = f.compliance.MarkAlertSent(ctx, testAdvocateID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMarkReconciled_IsIdempotent(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	_, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("100.00", "One", "2024-03-01"))
	require.NoError(t, err)
	_, err = f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("50.00", "Two", "2024-03-10"))
	require.NoError(t, err)
	_, err = f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("25.00", "Later", "2024-03-14"))
	require.NoError(t, err)

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	reconciledIDs := func() map[string]bool {
		ids := map[string]bool{}
		txns, _ := f.store.ledger()
		for _, txn := range txns {
			if txn.IsReconciled {
				ids[txn.TransactionID] = true
			}
		}
		return ids
	}

	acc, err := f.reconciliation.MarkReconciled(ctx, testAdvocateID, date, decimal.RequireFromString("150.00"))
	require.NoError(t, err)
	require.NotNil(t, acc.LastReconciliationDate)
	assert.True(t, domain.SameDate(*acc.LastReconciliationDate, date))
	first := reconciledIDs()
	assert.Len(t, first, 2)

	_, err = f.reconciliation.MarkReconciled(ctx, testAdvocateID, date, decimal.RequireFromString("150.00"))
	require.NoError(t, err)
	assert.Equal(t, first, reconciledIDs())

	last := f.store.audit[len(f.store.audit)-1]
	assert.Equal(t, domain.AuditReconciled, last.Action)
	assert.Equal(t, int64(0), last.Details["entries_flagged"])

	report, err := f.reconciliation.GenerateReport(ctx, testAdvocateID, date.AddDate(0, 0, -9), date, nil)
	require.NoError(t, err)
	assert.True(t, report.IsReconciled)
}

func TestMarkReconciled_RejectsFutureDate(t *testing.T) {
	f := newLedgerFixture(t, "0")
	_, err := f.reconciliation.MarkReconciled(context.Background(), testAdvocateID, fixedNow.AddDate(0, 0, 1), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEntryDatesMustFallInAnOpenPeriod(t *testing.T) {
	f := newLedgerFixture(t, "500.00")
	ctx := context.Background()

	_, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("10", "post-dated", "2024-03-16"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.reconciliation.MarkReconciled(ctx, testAdvocateID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("500.00"))
	require.NoError(t, err)

	_, err = f.transactions.RecordDrawdown(ctx, testAdvocateID, txnRequest("10", "backdated", "2024-03-10"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	closedDay := "2024-03-01"
	_, err = f.transfers.TransferToBusiness(ctx, testAdvocateID, dto.TransferToBusinessRequest{
		MatterID:          testMatterID,
		Amount:            decimal.RequireFromString("10"),
		Reason:            "Fees earned",
		AuthorizationType: domain.AuthFeeEarned,
		TransferDate:      &closedDay,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, f.store.account(testAccountID).CurrentBalance.Equal(decimal.RequireFromString("500.00")))

	txn, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("10", "next day", "2024-03-11"))
	require.NoError(t, err)
	assert.True(t, txn.BalanceAfter.Equal(decimal.RequireFromString("510.00")))
}

func TestSubCentAmountsKeepFullPrecision(t *testing.T) {
	f := newLedgerFixture(t, "0.01")
	ctx := context.Background()

	deposit, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("100.005", "interest", ""))
	require.NoError(t, err)
	assert.Equal(t, "100.015", deposit.BalanceAfter.String())

	drawdown, err := f.transactions.RecordDrawdown(ctx, testAdvocateID, txnRequest("0.005", "bank charge", ""))
	require.NoError(t, err)
	assert.Equal(t, "100.01", drawdown.BalanceAfter.String())
	assert.NoError(t, drawdown.Validate())

	assert.True(t, f.store.account(testAccountID).CurrentBalance.Equal(drawdown.BalanceAfter))
}

func TestRecordTransaction_Rules(t *testing.T) {
	decrease := domain.Decrease
	tests := []struct {
		name    string
		opening string
		txType  domain.TransactionType
		mutate  func(*dto.RecordTransactionRequest)
		wantErr error
		after   string
	}{
		{name: "refund increases", opening: "10", txType: domain.Refund, after: "110"},
		{name: "adjustment defaults to increase", opening: "10", txType: domain.Adjustment, after: "110"},
		{
			name: "decreasing adjustment", opening: "150", txType: domain.Adjustment, after: "50",
			mutate: func(r *dto.RecordTransactionRequest) { r.Direction = &decrease },
		},
		{
			name: "decreasing adjustment cannot overdraw", opening: "50", txType: domain.Adjustment,
			mutate:  func(r *dto.RecordTransactionRequest) { r.Direction = &decrease },
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name: "direction on a deposit", opening: "0", txType: domain.Deposit,
			mutate:  func(r *dto.RecordTransactionRequest) { r.Direction = &decrease },
			wantErr: apperrors.ErrValidation,
		},
		{name: "transfer through the recorder", opening: "500", txType: domain.Transfer, wantErr: apperrors.ErrValidation},
		{
			name: "zero amount", opening: "0", txType: domain.Deposit,
			mutate:  func(r *dto.RecordTransactionRequest) { r.Amount = decimal.Zero },
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "blank description", opening: "0", txType: domain.Deposit,
			mutate:  func(r *dto.RecordTransactionRequest) { r.Description = "  " },
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "unknown matter", opening: "0", txType: domain.Deposit,
			mutate:  func(r *dto.RecordTransactionRequest) { r.MatterID = "matter_other" },
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "bad date", opening: "0", txType: domain.Deposit,
			mutate: func(r *dto.RecordTransactionRequest) {
				d := "15/03/2024"
				r.TransactionDate = &d
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture(t, tt.opening)
			req := txnRequest("100", "entry", "")
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			txn, err := f.transactions.RecordTransaction(context.Background(), testAdvocateID, tt.txType, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, f.store.account(testAccountID).CurrentBalance.Equal(decimal.RequireFromString(tt.opening)))
				return
			}
			require.NoError(t, err)
			assert.True(t, txn.BalanceAfter.Equal(decimal.RequireFromString(tt.after)))
			assert.Nil(t, txn.ReceiptNumber)
			assert.NoError(t, txn.Validate())
		})
	}
}

func TestRecordTransaction_RequiresAdvocate(t *testing.T) {
	f := newLedgerFixture(t, "0")
	_, err := f.transactions.RecordDeposit(context.Background(), "", txnRequest("1", "x", ""))
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestReceiptNumbersAreSequentialPerMonth(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	var receipts []string
	for _, date := range []string{"2024-02-28", "2024-03-01", "2024-03-02"} {
		txn, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("10", "deposit", date))
		require.NoError(t, err)
		receipts = append(receipts, *txn.ReceiptNumber)
	}
	assert.Equal(t, []string{"TR-202402-0001", "TR-202403-0001", "TR-202403-0002"}, receipts)
}

func TestAuditFailureDoesNotRollBack(t *testing.T) {
	f := newLedgerFixture(t, "0")
	f.store.auditErr = errors.New("audit table unavailable")

	txn, err := f.transactions.RecordDeposit(context.Background(), testAdvocateID, txnRequest("75.00", "deposit", ""))
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.True(t, f.store.account(testAccountID).CurrentBalance.Equal(decimal.RequireFromString("75.00")))
}

type stubLocker struct {
	err      error
	acquired int
	released int
	mu       sync.Mutex
}

func (l *stubLocker) Lock(ctx context.Context, key string) (func(context.Context), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.mu.Lock()
	l.acquired++
	l.mu.Unlock()
	return func(context.Context) {
		l.mu.Lock()
		l.released++
		l.mu.Unlock()
	}, nil
}

func TestAccountLocker(t *testing.T) {
	t.Run("lock held elsewhere is a conflict", func(t *testing.T) {
		f := newLedgerFixture(t, "0", services.WithAccountLocker(&stubLocker{err: fmt.Errorf("%w: busy", apperrors.ErrConflict)}))
		_, err := f.transactions.RecordDeposit(context.Background(), testAdvocateID, txnRequest("10", "deposit", ""))
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.True(t, f.store.account(testAccountID).CurrentBalance.IsZero())
	})

	t.Run("unreachable lock service falls back to the row lock", func(t *testing.T) {
		f := newLedgerFixture(t, "0", services.WithAccountLocker(&stubLocker{err: errors.New("dial tcp: connection refused")}))
		_, err := f.transactions.RecordDeposit(context.Background(), testAdvocateID, txnRequest("10", "deposit", ""))
		require.NoError(t, err)
	})

	t.Run("lock is released", func(t *testing.T) {
		locker := &stubLocker{}
		f := newLedgerFixture(t, "100", services.WithAccountLocker(locker))
		_, err := f.transactions.RecordDrawdown(context.Background(), testAdvocateID, txnRequest("500", "too much", ""))
		assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
		assert.Equal(t, 1, locker.acquired)
		assert.Equal(t, 1, locker.released)
	})
}

// Interleaved writers must never persist a negative balance, and the rollup
// must always equal the sum of the ledger's deltas.
func TestConcurrentWritesKeepBalanceNonNegative(t *testing.T) {
	f := newLedgerFixture(t, "0")
	ctx := context.Background()

	_, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("1000.00", "Opening deposit", ""))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 120)
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.transactions.RecordDrawdown(ctx, testAdvocateID, txnRequest("100.00", "drawdown", ""))
			errs <- err
		}()
		if i%3 == 0 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.transfers.TransferToBusiness(ctx, testAdvocateID, dto.TransferToBusinessRequest{
					MatterID:          testMatterID,
					Amount:            decimal.RequireFromString("75.00"),
					Reason:            "fees",
					AuthorizationType: domain.AuthFeeEarned,
				})
				errs <- err
			}()
		}
		if i%2 == 0 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.transactions.RecordDeposit(ctx, testAdvocateID, txnRequest("50.00", "deposit", ""))
				errs <- err
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
		}
	}

	acc := f.store.account(testAccountID)
	assert.False(t, acc.CurrentBalance.IsNegative(), "balance went negative: %s", acc.CurrentBalance)

	txns, transfers := f.store.ledger()
	assert.True(t, accounting.NetDelta(txns, transfers).Equal(acc.CurrentBalance),
		"rollup %s drifted from ledger", acc.CurrentBalance)
	for _, txn := range txns {
		assert.NoError(t, txn.Validate())
		assert.False(t, txn.BalanceAfter.IsNegative())
	}
	for _, tr := range transfers {
		assert.False(t, tr.TrustBalanceAfter.IsNegative())
	}
}

func TestComplianceSweep(t *testing.T) {
	f := newLedgerFixture(t, "10.00")
	for i := 0; i < 150; i++ {
		balance := "1000"
		if i%50 == 0 {
			balance = "-1"
		}
		f.store.addAccount(domain.TrustAccount{
			TrustAccountID:      fmt.Sprintf("acc_%03d", i),
			AdvocateID:          fmt.Sprintf("adv_%03d", i),
			AccountType:         domain.TrustAccountType,
			CurrentBalance:      decimal.RequireFromString(balance),
			LowBalanceThreshold: decimal.RequireFromString("500"),
		})
	}
	f.store.addAccount(domain.TrustAccount{
		TrustAccountID: "acc_business_1",
		AdvocateID:     testAdvocateID,
		AccountType:    domain.BusinessAccountType,
		CurrentBalance: decimal.RequireFromString("-5"),
	})

	result, err := f.compliance.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 151, result.Checked)
	assert.Len(t, result.Violations, 3)
	assert.Empty(t, result.LowBalance, "fixture account has no threshold")
}
