package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the HTTP handlers and the operator CLI.
type ServiceContainer struct {
	TrustAccount   TrustAccountSvcFacade
	Transaction    TrustTransactionSvcFacade
	Transfer       TrustTransferSvcFacade
	Reconciliation ReconciliationSvcFacade
	Compliance     ComplianceSvcFacade
}
