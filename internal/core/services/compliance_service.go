package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
)

// sweepPageSize is how many accounts Sweep loads per query.
const sweepPageSize = 100

// complianceService checks trust accounts against the non-negative balance rule.
type complianceService struct {
	BaseService
	accountRepo portsrepo.TrustAccountRepositoryFacade
}

// NewComplianceService creates the compliance monitor.
func NewComplianceService(accountRepo portsrepo.TrustAccountRepositoryFacade, options ...ServiceOption) portssvc.ComplianceSvcFacade {
	return &complianceService{
		BaseService: newBaseService(options...),
		accountRepo: accountRepo,
	}
}

var _ portssvc.ComplianceSvcFacade = (*complianceService)(nil)

// CheckForViolations reports whether the advocate's trust account is overdrawn.
func (s *complianceService) CheckForViolations(ctx context.Context, advocateID string) (*domain.ViolationStatus, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	account, err := s.findAccount(ctx, advocateID)
	if err != nil {
		return nil, err
	}

	status := s.evaluate(*account)
	if status.HasViolation {
		s.LogWarn(ctx, "Trust account is in violation",
			slog.String("advocate_id", advocateID),
			slog.String("trust_account_id", account.TrustAccountID),
			slog.String("balance", account.CurrentBalance.String()),
			slog.Bool("alert_already_sent", account.NegativeBalanceAlertSent))
	}
	return &status, nil
}

// MarkAlertSent flags the account once the external alerting collaborator has
// notified the advocate. Only a violating account can be flagged.
func (s *complianceService) MarkAlertSent(ctx context.Context, advocateID string) (*domain.TrustAccount, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	account, err := s.findAccount(ctx, advocateID)
	if err != nil {
		return nil, err
	}
	if !account.IsNegative() {
		return nil, fmt.Errorf("%w: trust account has no negative balance to alert on", apperrors.ErrValidation)
	}
	if account.NegativeBalanceAlertSent {
		return account, nil
	}

	now := s.Now()
	if err := s.accountRepo.SetNegativeBalanceAlertSent(ctx, account.TrustAccountID, true, advocateID, now); err != nil {
		s.LogError(ctx, err, "Failed to flag negative balance alert", slog.String("trust_account_id", account.TrustAccountID))
		return nil, fmt.Errorf("failed to mark alert sent: %w", err)
	}
	account.NegativeBalanceAlertSent = true
	account.LastUpdatedAt = now
	account.LastUpdatedBy = advocateID

	s.recordAudit(ctx, *account, advocateID, domain.AuditAlertSent, account.TrustAccountID, map[string]any{
		"balance": account.CurrentBalance.String(),
	})
	return account, nil
}

// Sweep checks every trust account and collects the ones needing attention.
func (s *complianceService) Sweep(ctx context.Context) (*domain.SweepResult, error) {
	result := &domain.SweepResult{
		Violations: []domain.ViolationStatus{},
		LowBalance: []domain.ViolationStatus{},
	}

	for offset := 0; ; offset += sweepPageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		accounts, err := s.accountRepo.ListTrustAccounts(ctx, sweepPageSize, offset)
		if err != nil {
			s.LogError(ctx, err, "Failed to list trust accounts for sweep", slog.Int("offset", offset))
			return nil, fmt.Errorf("failed to list trust accounts: %w", err)
		}
		for _, account := range accounts {
			result.Checked++
			status := s.evaluate(account)
			switch {
			case status.HasViolation:
				result.Violations = append(result.Violations, status)
			case status.IsLowBalance:
				result.LowBalance = append(result.LowBalance, status)
			}
		}
		if len(accounts) < sweepPageSize {
			break
		}
	}

	s.LogInfo(ctx, "Compliance sweep finished",
		slog.Int("checked", result.Checked),
		slog.Int("violations", len(result.Violations)),
		slog.Int("low_balance", len(result.LowBalance)))
	return result, nil
}

func (s *complianceService) evaluate(account domain.TrustAccount) domain.ViolationStatus {
	status := domain.ViolationStatus{
		TrustAccountID:   account.TrustAccountID,
		AdvocateID:       account.AdvocateID,
		HasViolation:     account.IsNegative(),
		Balance:          account.CurrentBalance,
		IsLowBalance:     account.IsLowBalance(),
		AlertAlreadySent: account.NegativeBalanceAlertSent,
	}
	switch {
	case status.HasViolation:
		status.Message = fmt.Sprintf("CRITICAL: Trust account has negative balance of %s. This violates LPC rules.",
			s.FormatMoney(account.CurrentBalance.Abs()))
	case status.IsLowBalance:
		status.Message = fmt.Sprintf("WARNING: Trust account balance of %s is below the threshold of %s.",
			s.FormatMoney(account.CurrentBalance), s.FormatMoney(account.LowBalanceThreshold))
	default:
		status.Message = "Trust account is compliant"
	}
	return status
}

func (s *complianceService) findAccount(ctx context.Context, advocateID string) (*domain.TrustAccount, error) {
	account, err := s.accountRepo.FindTrustAccountByAdvocate(ctx, advocateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		s.LogError(ctx, err, "Failed to find trust account", slog.String("advocate_id", advocateID))
		return nil, fmt.Errorf("failed to find trust account: %w", err)
	}
	return account, nil
}
