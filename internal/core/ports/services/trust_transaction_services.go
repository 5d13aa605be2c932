package services

import (
	"context"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
)

// TrustTransactionWriterSvc appends entries to the trust ledger
type TrustTransactionWriterSvc interface {
	// RecordTransaction appends an entry of the given type and updates the account balance atomically.
	RecordTransaction(ctx context.Context, advocateID string, txType domain.TransactionType, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error)

	// RecordDeposit appends a deposit and issues its receipt number.
	RecordDeposit(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error)

	// RecordDrawdown appends a drawdown; it fails with an insufficient funds error rather than overdraw.
	RecordDrawdown(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error)

	// RecordRefund appends a refund.
	RecordRefund(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error)

	// RecordAdjustment appends an adjustment in the requested direction.
	RecordAdjustment(ctx context.Context, advocateID string, req dto.RecordTransactionRequest) (*domain.TrustTransaction, error)
}

// TrustTransactionReaderSvc lists ledger entries
type TrustTransactionReaderSvc interface {
	// ListTransactions retrieves a filtered, paginated list of the advocate's entries.
	ListTransactions(ctx context.Context, advocateID string, params dto.ListTrustTransactionsParams) (*dto.ListTrustTransactionsResponse, error)
}

// TrustTransactionSvcFacade combines all ledger-entry service interfaces
type TrustTransactionSvcFacade interface {
	TrustTransactionWriterSvc
	TrustTransactionReaderSvc
}
