package services

import (
	"context"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// ComplianceSvcFacade checks trust accounts against the non-negative balance rule
type ComplianceSvcFacade interface {
	// CheckForViolations reports the account's compliance state. It never writes.
	CheckForViolations(ctx context.Context, advocateID string) (*domain.ViolationStatus, error)

	// MarkAlertSent records that a negative-balance alert has been dispatched.
	MarkAlertSent(ctx context.Context, advocateID string) (*domain.TrustAccount, error)

	// Sweep checks every trust account.
	Sweep(ctx context.Context) (*domain.SweepResult, error)
}
