package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
	"github.com/SscSPs/trust_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/trust_ledger_app/internal/utils/pagination"
)

// trustTransactionService appends deposits, drawdowns, refunds and adjustments.
type trustTransactionService struct {
	BaseService
	accountRepo     portsrepo.TrustAccountRepositoryWithTx
	transactionRepo portsrepo.TrustTransactionRepositoryFacade
	matterRepo      portsrepo.MatterReader
}

// NewTrustTransactionService creates the transaction recorder.
func NewTrustTransactionService(
	accountRepo portsrepo.TrustAccountRepositoryWithTx,
	transactionRepo portsrepo.TrustTransactionRepositoryFacade,
	matterRepo portsrepo.MatterReader,
	options ...ServiceOption,
) portssvc.TrustTransactionSvcFacade {
	return &trustTransactionService{
		BaseService:     newBaseService(options...),
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		matterRepo:      matterRepo,
	}
}

var _ portssvc.TrustTransactionSvcFacade = (*trustTransactionService)(nil)

func (s *trustTransactionService) RecordDeposit(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error) {
	return s.RecordTransaction(ctx, advocateID, domain.Deposit, req)
}

func (s *trustTransactionService) RecordDrawdown(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error) {
	return s.RecordTransaction(ctx, advocateID, domain.Drawdown, req)
}

func (s *trustTransactionService) RecordRefund(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error) {
	return s.RecordTransaction(ctx, advocateID, domain.Refund, req)
}

func (s *trustTransactionService) RecordAdjustment(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error) {
	return s.RecordTransaction(ctx, advocateID, domain.Adjustment, req)
}

// RecordTransaction validates the entry, then locks the account, checks the
// balance rule against the locked balance, appends the row and moves the
// rollup in one database transaction.
func (s *trustTransactionService) RecordTransaction(ctx context.Context, advocateID string, txType domain.TransactionType, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(
		slog.String("advocate_id", advocateID),
		slog.String("matter_id", req.MatterID),
		slog.String("transaction_type", string(txType)),
	)

	if req.Direction != nil && txType != domain.Adjustment {
		return nil, fmt.Errorf("%w: direction only applies to adjustments", apperrors.ErrValidation)
	}
	direction, err := accounting.EntryDirection(txType, req.Direction)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if req.PaymentMethod != nil && !req.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
	}
	txDate, err := s.parseEntryDate(req.TransactionDate, "transactionDate")
	if err != nil {
		return nil, err
	}

	matter, err := s.matterRepo.FindMatterForAdvocate(ctx, advocateID, req.MatterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: matter %s", apperrors.ErrNotFound, req.MatterID)
		}
		s.LogError(ctx, err, "Failed to resolve matter", slog.String("matter_id", req.MatterID))
		return nil, fmt.Errorf("failed to resolve matter: %w", err)
	}

	release, err := s.lockAccount(ctx, advocateID)
	if err != nil {
		return nil, err
	}
	defer release(ctx)

	now := s.Now()
	txn := domain.TrustTransaction{
		TransactionID:   uuid.NewString(),
		MatterID:        matter.MatterID,
		AdvocateID:      advocateID,
		TransactionType: txType,
		Direction:       direction,
		Amount:          req.Amount,
		Reference:       trimmedOrNil(req.Reference),
		Description:     description,
		PaymentMethod:   req.PaymentMethod,
		ClientID:        req.ClientID,
		InvoiceID:       trimmedOrNil(req.InvoiceID),
		TransactionDate: txDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     advocateID,
			LastUpdatedAt: now,
			LastUpdatedBy: advocateID,
		},
	}
	if txn.ClientID == nil {
		txn.ClientID = matter.ClientID
	}
	if txType == domain.Deposit {
		txn.RetainerID = matter.RetainerID
	}

	var account *domain.TrustAccount
	err = s.inTx(ctx, s.accountRepo, func(tx pgx.Tx) error {
		var err error
		account, err = s.accountRepo.FindAccountForUpdate(ctx, tx, advocateID, domain.TrustAccountType)
		if err != nil {
			return err
		}
		if err := ensureOpenPeriod(*account, txDate, "transactionDate"); err != nil {
			return err
		}

		balanceAfter, err := accounting.ApplyEntry(account.CurrentBalance, direction, req.Amount, s.moneyFormatter())
		if err != nil {
			return err
		}
		txn.TrustAccountID = account.TrustAccountID
		txn.BalanceBefore = account.CurrentBalance
		txn.BalanceAfter = balanceAfter

		if txType == domain.Deposit {
			seq, err := s.transactionRepo.NextReceiptSequenceInTx(ctx, tx, account.TrustAccountID, accounting.ReceiptPeriod(txDate))
			if err != nil {
				return err
			}
			receipt := accounting.FormatReceiptNumber(s.receiptPrefix, txDate, seq)
			txn.ReceiptNumber = &receipt
		}

		if err := txn.Validate(); err != nil {
			return fmt.Errorf("ledger entry failed its balance identity: %w", err)
		}
		if err := s.transactionRepo.SaveTrustTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		return s.accountRepo.UpdateBalanceInTx(ctx, tx, *account, balanceAfter, advocateID, now)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Warn("Rejected entry that would overdraw the trust account", slog.String("error", err.Error()))
			return nil, err
		}
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		s.LogError(ctx, err, "Failed to record trust transaction",
			slog.String("advocate_id", advocateID),
			slog.String("transaction_type", string(txType)))
		return nil, err
	}

	s.recordAudit(ctx, *account, advocateID, domain.AuditTransactionRecorded, txn.TransactionID, map[string]any{
		"transaction_type": string(txType),
		"amount":           txn.Amount.String(),
		"balance_before":   txn.BalanceBefore.String(),
		"balance_after":    txn.BalanceAfter.String(),
	})

	logger.Info("Trust transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", txn.Amount.String()),
		slog.String("balance_after", txn.BalanceAfter.String()))
	return &txn, nil
}

// ListTransactions retrieves a filtered page of the advocate's ledger entries.
func (s *trustTransactionService) ListTransactions(ctx context.Context, advocateID string, params dto.ListTrustTransactionsParams) (*dto.ListTrustTransactionsResponse, error) {
	if err := requireAdvocate(advocateID); err != nil {
		return nil, err
	}

	filter := domain.TransactionFilter{
		MatterID:        params.MatterID,
		RetainerID:      params.RetainerID,
		TransactionType: params.Type,
		IsReconciled:    params.Reconciled,
	}
	if params.Type != nil && !params.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *params.Type)
	}
	start, end, err := parseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	filter.StartDate, filter.EndDate = start, end

	account, err := s.accountRepo.FindTrustAccountByAdvocate(ctx, advocateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: trust account for advocate %s", apperrors.ErrNotFound, advocateID)
		}
		return nil, fmt.Errorf("failed to find trust account: %w", err)
	}

	limit := pagination.NormalizeLimit(params.Limit)
	txns, nextToken, err := s.transactionRepo.ListTrustTransactions(ctx, account.TrustAccountID, filter, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list trust transactions", slog.String("trust_account_id", account.TrustAccountID))
		}
		return nil, err
	}

	return &dto.ListTrustTransactionsResponse{
		Transactions: dto.ToTrustTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// parseDateRange parses optional inclusive bounds and rejects an inverted range.
func parseDateRange(startStr, endStr *string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startStr != nil && *startStr != "" {
		t, err := parseDate(*startStr, "startDate")
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if endStr != nil && *endStr != "" {
		t, err := parseDate(*endStr, "endDate")
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}
	return start, end, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
