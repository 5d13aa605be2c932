package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// ReconciliationSvcFacade defines reconciliation of the trust ledger against the bank
type ReconciliationSvcFacade interface {
	// GenerateReport builds the reconciliation view of an inclusive date range.
	// bankBalance is the statement balance to compare against, if known.
	GenerateReport(ctx context.Context, advocateID string, startDate, endDate time.Time, bankBalance *decimal.Decimal) (*domain.ReconciliationReport, error)

	// MarkReconciled signs off the ledger up to date. Repeating it is a no-op for entries.
	MarkReconciled(ctx context.Context, advocateID string, date time.Time, reconciledBalance decimal.Decimal) (*domain.TrustAccount, error)
}
