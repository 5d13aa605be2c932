package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// TrustTransferRepositoryFacade defines persistence for trust-to-business transfers
type TrustTransferRepositoryFacade interface {
	// ListTrustTransfers retrieves an account's transfers, newest first.
	ListTrustTransfers(ctx context.Context, trustAccountID string, filter domain.TransferFilter) ([]domain.TrustTransfer, error)

	// SaveTrustTransferInTx appends a transfer inside a unit of work.
	SaveTrustTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.TrustTransfer) error
}
