package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/utils/accounting"
)

// trustTransferService moves earned money from the trust account to the business account.
type trustTransferService struct {
	BaseService
	accountRepo  portsrepo.TrustAccountRepositoryWithTx
	transferRepo portsrepo.TrustTransferRepositoryFacade
	matterRepo   portsrepo.MatterReader
}

// NewTrustTransferService creates the transfer coordinator.
func NewTrustTransferService(
	accountRepo portsrepo.TrustAccountRepositoryWithTx,
	transferRepo portsrepo.TrustTransferRepositoryFacade,
	matterRepo portsrepo.MatterReader,
	options ...ServiceOption,
) portssvc.TrustTransferSvcFacade {
	return &trustTransferService{
		BaseService:  newBaseService(options...),
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		matterRepo:   matterRepo,
	}
}

var _ portssvc.TrustTransferSvcFacade = (*trustTransferService)(nil)

// TransferToBusiness records a trust-to-business transfer. Trust money is never
// advanced against insufficient funds: the amount is checked against the locked
// trust balance. The business account, when the advocate has one on file, is
// moved in the same database transaction for information only.
func (s *trustTransferService) TransferToBusiness(ctx context.Context, advocateID string, req dto.TransferToBusinessRequest) (*domain.TrustTransfer, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", apperrors.ErrValidation)
	}
	if !req.AuthorizationType.IsValid() {
		return nil, fmt.Errorf("%w: unknown authorization type %q", apperrors.ErrValidation, req.AuthorizationType)
	}
	transferDate, err := s.parseEntryDate(req.TransferDate, "transferDate")
	if err != nil {
		return nil, err
	}

	matter, err := s.matterRepo.FindMatterForAdvocate(ctx, advocateID, req.MatterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: matter %s", apperrors.ErrNotFound, req.MatterID)
		}
		return nil, fmt.Errorf("failed to resolve matter: %w", err)
	}

	release, err := s.lockAccount(ctx, advocateID)
	if err != nil {
		return nil, err
	}
	defer release(ctx)

	now := s.Now()
	transfer := domain.TrustTransfer{
		TransferID:        uuid.NewString(),
		AdvocateID:        advocateID,
		MatterID:          matter.MatterID,
		TransferType:      domain.TrustToBusiness,
		Amount:            req.Amount,
		Reason:            reason,
		AuthorizationType: req.AuthorizationType,
		InvoiceID:         trimmedOrNil(req.InvoiceID),
		TransferDate:      transferDate,
		ApprovedBy:        advocateID,
		ApprovedAt:        now,
		CreatedAt:         now,
	}

	var account *domain.TrustAccount
	err = s.inTx(ctx, s.accountRepo, func(tx pgx.Tx) error {
		var err error
		account, err = s.accountRepo.FindAccountForUpdate(ctx, tx, advocateID, domain.TrustAccountType)
		if err != nil {
			return err
		}
		if err := ensureOpenPeriod(*account, transferDate, "transferDate"); err != nil {
			return err
		}

		trustAfter, err := accounting.ApplyEntry(account.CurrentBalance, domain.Decrease, req.Amount, s.moneyFormatter())
		if err != nil {
			return err
		}
		transfer.TrustAccountID = account.TrustAccountID
		transfer.TrustBalanceBefore = account.CurrentBalance
		transfer.TrustBalanceAfter = trustAfter

		business, err := s.accountRepo.FindAccountForUpdate(ctx, tx, advocateID, domain.BusinessAccountType)
		switch {
		case err == nil:
			businessBefore := business.CurrentBalance
			businessAfter := businessBefore.Add(req.Amount)
			transfer.BusinessBalanceBefore = &businessBefore
			transfer.BusinessBalanceAfter = &businessAfter
			if err := s.accountRepo.UpdateBalanceInTx(ctx, tx, *business, businessAfter, advocateID, now); err != nil {
				return err
			}
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogDebug(ctx, "No business account on file, business balances left empty",
				slog.String("advocate_id", advocateID))
		default:
			return err
		}

		if err := s.transferRepo.SaveTrustTransferInTx(ctx, tx, transfer); err != nil {
			return err
		}
		return s.accountRepo.UpdateBalanceInTx(ctx, tx, *account, trustAfter, advocateID, now)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			s.LogWarn(ctx, "Rejected transfer that would overdraw the trust account",
				slog.String("advocate_id", advocateID),
				slog.String("error", err.Error()))
			return nil, err
		}
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		s.LogError(ctx, err, "Failed to record trust transfer", slog.String("advocate_id", advocateID))
		return nil, err
	}

	s.recordAudit(ctx, *account, advocateID, domain.AuditTransferRecorded, transfer.TransferID, map[string]any{
		"amount":              transfer.Amount.String(),
		"authorization_type":  string(transfer.AuthorizationType),
		"trust_balance_after": transfer.TrustBalanceAfter.String(),
	})

	s.LogInfo(ctx, "Trust transfer recorded",
		slog.String("advocate_id", advocateID),
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", transfer.Amount.String()),
		slog.String("trust_balance_after", transfer.TrustBalanceAfter.String()))
	return &transfer, nil
}

// ListTransfers retrieves the advocate's transfers.
func (s *trustTransferService) ListTransfers(ctx context.Context, advocateID string, params dto.ListTrustTransfersParams) ([]domain.TrustTransfer, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	start, end, err := parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindTrustAccountByAdvocate(ctx, advocateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		return nil, fmt.Errorf("failed to find trust account: %w", err)
	}

	transfers, err := s.transferRepo.ListTrustTransfers(ctx, account.TrustAccountID, domain.TransferFilter{
		MatterID:  params.MatterID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list trust transfers", slog.String("trust_account_id", account.TrustAccountID))
		return nil, err
	}
	return transfers, nil
}
