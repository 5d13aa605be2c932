package domain

import "time"

// AuditAction names a ledger event recorded in the audit trail.
type AuditAction string

const (
	AuditTransactionRecorded AuditAction = "trust_transaction_recorded"
	AuditTransferRecorded    AuditAction = "trust_transfer_recorded"
	AuditReconciled          AuditAction = "trust_account_reconciled"
	AuditDetailsUpdated      AuditAction = "trust_account_updated"
	AuditAlertSent           AuditAction = "negative_balance_alert_sent"
)

// AuditEntry is a row of the append-only audit trail, written after the ledger
// change it describes has committed.
type AuditEntry struct {
	AuditID        string
	TrustAccountID string
	AdvocateID     string
	Action         AuditAction
	EntityID       string
	Details        map[string]any
	CreatedAt      time.Time
}
