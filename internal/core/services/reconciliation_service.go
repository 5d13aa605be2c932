package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/utils/accounting"
)

// reconciliationService builds reconciliation reports and records sign-offs.
type reconciliationService struct {
	BaseService
	reconciliationRepo portsrepo.ReconciliationRepositoryFacade
}

// NewReconciliationService creates the reconciliation engine.
func NewReconciliationService(repo portsrepo.ReconciliationRepositoryFacade, options ...ServiceOption) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		BaseService:        newBaseService(options...),
		reconciliationRepo: repo,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// GenerateReport replays the ledger forward: the opening balance is the net of
// every entry dated before startDate and the closing balance adds the period's
// net change. The backward derivation from the current balance is reported
// alongside; the two only differ when entries exist after endDate.
func (s *reconciliationService) GenerateReport(ctx context.Context, advocateID string, startDate, endDate time.Time, bankBalance *decimal.Decimal) (*domain.ReconciliationReport, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	start, end := domain.DateOnly(startDate), domain.DateOnly(endDate)
	if start.After(end) {
		return nil, fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}

	data, err := s.reconciliationRepo.LoadReconciliationData(ctx, advocateID, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		s.LogError(ctx, err, "Failed to load reconciliation data", slog.String("advocate_id", advocateID))
		return nil, fmt.Errorf("failed to load reconciliation data: %w", err)
	}

	report := &domain.ReconciliationReport{
		TrustAccount:     data.Account,
		StartDate:        start,
		EndDate:          end,
		TotalDeposits:    decimal.Zero,
		TotalDrawdowns:   decimal.Zero,
		TotalRefunds:     decimal.Zero,
		TotalAdjustments: decimal.Zero,
		TotalTransfers:   decimal.Zero,
		Transactions:     data.Transactions,
		Transfers:        data.Transfers,
		BankBalance:      bankBalance,
		Discrepancy:      decimal.Zero,
	}
	if report.Transactions == nil {
		report.Transactions = []domain.TrustTransaction{}
	}
	if report.Transfers == nil {
		report.Transfers = []domain.TrustTransfer{}
	}

	for _, t := range data.Transactions {
		switch t.TransactionType {
		case domain.Deposit:
			report.TotalDeposits = report.TotalDeposits.Add(t.Amount)
		case domain.Drawdown:
			report.TotalDrawdowns = report.TotalDrawdowns.Add(t.Amount)
		case domain.Refund:
			report.TotalRefunds = report.TotalRefunds.Add(t.Amount)
		case domain.Adjustment:
			report.TotalAdjustments = report.TotalAdjustments.Add(t.SignedAmount())
		case domain.Transfer:
			// migrated rows; new transfers live in their own table
			report.TotalTransfers = report.TotalTransfers.Add(t.Amount)
		}
	}
	for _, t := range data.Transfers {
		report.TotalTransfers = report.TotalTransfers.Add(t.Amount)
	}

	periodNet := accounting.NetDelta(data.Transactions, data.Transfers)
	report.OpeningBalance = data.PrePeriodNet
	report.ClosingBalance = report.OpeningBalance.Add(periodNet)
	report.DerivedOpeningBalance = accounting.DeriveOpeningBalance(data.Account.CurrentBalance, periodNet)
	report.HasPostPeriodActivity = data.PostPeriodEntries > 0
	report.IsReconciled = data.Account.ReconciledOn(end)
	if bankBalance != nil {
		report.Discrepancy = bankBalance.Sub(report.ClosingBalance)
	}

	if !report.HasPostPeriodActivity && !report.ClosingBalance.Equal(data.Account.CurrentBalance) {
		s.LogWarn(ctx, "Ledger replay does not match the account balance",
			slog.String("trust_account_id", data.Account.TrustAccountID),
			slog.String("replayed", report.ClosingBalance.String()),
			slog.String("current_balance", data.Account.CurrentBalance.String()))
	}

	s.LogInfo(ctx, "Reconciliation report generated",
		slog.String("advocate_id", advocateID),
		slog.String("start_date", start.Format(domain.DateLayout)),
		slog.String("end_date", end.Format(domain.DateLayout)),
		slog.Int("transaction_count", len(data.Transactions)),
		slog.Int("transfer_count", len(data.Transfers)))
	return report, nil
}

// MarkReconciled stamps the reconciliation and flags entries up to date.
func (s *reconciliationService) MarkReconciled(ctx context.Context, advocateID string, date time.Time, reconciledBalance decimal.Decimal) (*domain.TrustAccount, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	day := domain.DateOnly(date)
	if day.After(domain.DateOnly(s.Now())) {
		return nil, fmt.Errorf("%w: cannot reconcile a future date", apperrors.ErrValidation)
	}

	account, flagged, err := s.reconciliationRepo.MarkReconciled(ctx, advocateID, day, reconciledBalance, s.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		s.LogError(ctx, err, "Failed to mark trust account reconciled", slog.String("advocate_id", advocateID))
		return nil, fmt.Errorf("failed to mark reconciled: %w", err)
	}

	s.recordAudit(ctx, *account, advocateID, domain.AuditReconciled, account.TrustAccountID, map[string]any{
		"date":               day.Format(domain.DateLayout),
		"reconciled_balance": reconciledBalance.String(),
		"entries_flagged":    flagged,
	})

	s.LogInfo(ctx, "Trust account reconciled",
		slog.String("advocate_id", advocateID),
		slog.String("date", day.Format(domain.DateLayout)),
		slog.Int64("entries_flagged", flagged))
	return account, nil
}
