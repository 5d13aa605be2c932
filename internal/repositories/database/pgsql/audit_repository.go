package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditWriter {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuditWriter = (*PgxAuditRepository)(nil)

// SaveAuditEntry appends to trust_audit_log. Details are stored as JSONB.
func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `
		INSERT INTO trust_audit_log (id, trust_account_id, advocate_id, action, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditID,
		entry.TrustAccountID,
		entry.AdvocateID,
		string(entry.Action),
		entry.EntityID,
		details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write audit entry %s: %w", entry.Action, err)
	}
	return nil
}
