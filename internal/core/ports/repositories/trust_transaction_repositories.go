package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// TrustTransactionReader defines read operations for ledger entries
type TrustTransactionReader interface {
	// ListTrustTransactions retrieves a page of an account's entries, newest first.
	// It returns the entries, a token for the next page, and an error.
	ListTrustTransactions(ctx context.Context, trustAccountID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.TrustTransaction, *string, error)
}

// TrustTransactionTransactionSupport defines ledger writes made inside a unit of work
type TrustTransactionTransactionSupport interface {
	// SaveTrustTransactionInTx appends an entry.
	SaveTrustTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.TrustTransaction) error

	// NextReceiptSequenceInTx returns the next receipt sequence for the account and period.
	NextReceiptSequenceInTx(ctx context.Context, tx pgx.Tx, trustAccountID string, period string) (int64, error)
}

// TrustTransactionRepositoryFacade combines all ledger-entry repository interfaces
type TrustTransactionRepositoryFacade interface {
	TrustTransactionReader
	TrustTransactionTransactionSupport
}
