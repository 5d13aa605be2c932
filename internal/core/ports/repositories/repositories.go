package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TrustAccountRepo     TrustAccountRepositoryWithTx
	TrustTransactionRepo TrustTransactionRepositoryFacade
	TrustTransferRepo    TrustTransferRepositoryFacade
	ReconciliationRepo   ReconciliationRepositoryFacade
	MatterRepo           MatterReader
	AuditRepo            AuditWriter
}
