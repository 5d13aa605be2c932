package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// ReconciliationRepositoryFacade defines the reads and the bulk update behind reconciliation
type ReconciliationRepositoryFacade interface {
	// LoadReconciliationData reads the account, the period's entries and the
	// pre/post-period activity from a single snapshot. Dates are inclusive calendar days.
	LoadReconciliationData(ctx context.Context, advocateID string, startDate, endDate time.Time) (*domain.ReconciliationData, error)

	// MarkReconciled stamps the account's last reconciliation and flags every
	// unreconciled entry dated on or before date. It returns the updated account
	// and the number of entries newly flagged.
	MarkReconciled(ctx context.Context, advocateID string, date time.Time, balance decimal.Decimal, now time.Time) (*domain.TrustAccount, int64, error)
}
