package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TrustAccountRepo:     newPgxTrustAccountRepository(dbPool),
		TrustTransactionRepo: newPgxTrustTransactionRepository(dbPool),
		TrustTransferRepo:    newPgxTrustTransferRepository(dbPool),
		ReconciliationRepo:   newPgxReconciliationRepository(dbPool),
		MatterRepo:           newPgxMatterRepository(dbPool),
		AuditRepo:            newPgxAuditRepository(dbPool),
	}
}
