package services

import (
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// locker may be nil, in which case only the database row lock serialises writers.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portsrepo.AccountLocker) *portssvc.ServiceContainer {
	options := []ServiceOption{
		WithCurrency(cfg.CurrencyCode),
		WithReceiptPrefix(cfg.ReceiptPrefix),
		WithAuditTrail(repos.AuditRepo),
	}
	if locker != nil {
		options = append(options, WithAccountLocker(locker))
	}

	return &portssvc.ServiceContainer{
		TrustAccount:   NewTrustAccountService(repos.TrustAccountRepo, options...),
		Transaction:    NewTrustTransactionService(repos.TrustAccountRepo, repos.TrustTransactionRepo, repos.MatterRepo, options...),
		Transfer:       NewTrustTransferService(repos.TrustAccountRepo, repos.TrustTransferRepo, repos.MatterRepo, options...),
		Reconciliation: NewReconciliationService(repos.ReconciliationRepo, options...),
		Compliance:     NewComplianceService(repos.TrustAccountRepo, options...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TrustAccountSvcFacade     = (*trustAccountService)(nil)
	_ portssvc.TrustTransactionSvcFacade = (*trustTransactionService)(nil)
	_ portssvc.TrustTransferSvcFacade    = (*trustTransferService)(nil)
	_ portssvc.ReconciliationSvcFacade   = (*reconciliationService)(nil)
	_ portssvc.ComplianceSvcFacade       = (*complianceService)(nil)
)
