package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
)

const minAccountNumberLength = 8

type trustAccountService struct {
	BaseService
	accountRepo portsrepo.TrustAccountRepositoryFacade
}

// NewTrustAccountService creates a service for the advocate's trust account record.
func NewTrustAccountService(accountRepo portsrepo.TrustAccountRepositoryFacade, options ...ServiceOption) portssvc.TrustAccountSvcFacade {
	return &trustAccountService{
		BaseService: newBaseService(options...),
		accountRepo: accountRepo,
	}
}

var _ portssvc.TrustAccountSvcFacade = (*trustAccountService)(nil)

// GetTrustAccount retrieves the advocate's trust account.
func (s *trustAccountService) GetTrustAccount(ctx context.Context, advocateID string) (*domain.TrustAccount, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindTrustAccountByAdvocate(ctx, advocateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		s.LogError(ctx, err, "Failed to get trust account", slog.String("advocate_id", advocateID))
		return nil, fmt.Errorf("failed to get trust account: %w", err)
	}
	return account, nil
}

// UpdateTrustAccountDetails applies the provided fields. The balance, version and
// reconciliation stamps are never touched here.
func (s *trustAccountService) UpdateTrustAccountDetails(ctx context.Context, advocateID string, req dto.UpdateTrustAccountRequest) (*domain.TrustAccount, error) {
	account, err := s.GetTrustAccount(ctx, advocateID)
	if err != nil {
		return nil, err
	}

	update := req.ToDetailsUpdate()
	changed, err := applyDetailsUpdate(account, update)
	if err != nil {
		return nil, err
	}
	if len(changed) == 0 {
		return account, nil
	}

	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = advocateID
	if err := s.accountRepo.UpdateTrustAccountDetails(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update trust account details", slog.String("trust_account_id", account.TrustAccountID))
		return nil, fmt.Errorf("failed to update trust account: %w", err)
	}

	s.recordAudit(ctx, *account, advocateID, domain.AuditDetailsUpdated, account.TrustAccountID, map[string]any{
		"fields": changed,
	})
	s.LogInfo(ctx, "Trust account details updated",
		slog.String("trust_account_id", account.TrustAccountID),
		slog.Any("fields", changed))
	return account, nil
}

// applyDetailsUpdate validates and copies the non-nil fields onto account,
// returning the names of the fields it set.
func applyDetailsUpdate(account *domain.TrustAccount, update domain.TrustAccountDetailsUpdate) ([]string, error) {
	var changed []string

	if update.BankName != nil {
		name := strings.TrimSpace(*update.BankName)
		if name == "" {
			return nil, fmt.Errorf("%w: bankName must not be empty", apperrors.ErrValidation)
		}
		account.BankName = name
		changed = append(changed, "bankName")
	}
	if update.AccountHolderName != nil {
		holder := strings.TrimSpace(*update.AccountHolderName)
		if holder == "" {
			return nil, fmt.Errorf("%w: accountHolderName must not be empty", apperrors.ErrValidation)
		}
		account.AccountHolderName = holder
		changed = append(changed, "accountHolderName")
	}
	if update.AccountNumber != nil {
		number := strings.TrimSpace(*update.AccountNumber)
		if len(number) < minAccountNumberLength {
			return nil, fmt.Errorf("%w: accountNumber must be at least %d characters", apperrors.ErrValidation, minAccountNumberLength)
		}
		account.AccountNumber = number
		changed = append(changed, "accountNumber")
	}
	if update.BranchCode != nil {
		account.BranchCode = trimmedOrNil(update.BranchCode)
		changed = append(changed, "branchCode")
	}
	if update.ReconciliationDayOfMonth != nil {
		day := *update.ReconciliationDayOfMonth
		if day < 1 || day > 28 {
			return nil, fmt.Errorf("%w: reconciliationDayOfMonth must be between 1 and 28", apperrors.ErrValidation)
		}
		account.ReconciliationDayOfMonth = day
		changed = append(changed, "reconciliationDayOfMonth")
	}
	if update.LowBalanceThreshold != nil {
		if update.LowBalanceThreshold.IsNegative() {
			return nil, fmt.Errorf("%w: lowBalanceThreshold must not be negative", apperrors.ErrValidation)
		}
		account.LowBalanceThreshold = *update.LowBalanceThreshold
		changed = append(changed, "lowBalanceThreshold")
	}
	return changed, nil
}
