package repositories

import (
	"context"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// AuditWriter appends to the ledger audit trail
type AuditWriter interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error
}
