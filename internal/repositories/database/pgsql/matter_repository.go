package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
)

// PgxMatterRepository reads matters and retainers owned by the practice-management tables.
type PgxMatterRepository struct {
	BaseRepository
}

func newPgxMatterRepository(pool *pgxpool.Pool) portsrepo.MatterReader {
	return &PgxMatterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MatterReader = (*PgxMatterRepository)(nil)

// FindMatterForAdvocate returns the matter with its most recent active retainer.
func (r *PgxMatterRepository) FindMatterForAdvocate(ctx context.Context, advocateID, matterID string) (*domain.Matter, error) {
	query := `
		SELECT m.id, m.advocate_id, m.client_id, ra.id
		FROM matters m
		LEFT JOIN LATERAL (
			SELECT id FROM retainer_agreements
			WHERE matter_id = m.id AND status = 'active'
			ORDER BY created_at DESC
			LIMIT 1
		) ra ON TRUE
		WHERE m.id = $1 AND m.advocate_id = $2;
	`
	var matter domain.Matter
	err := r.Pool.QueryRow(ctx, query, matterID, advocateID).Scan(
		&matter.MatterID,
		&matter.AdvocateID,
		&matter.ClientID,
		&matter.RetainerID,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find matter %s", matterID)
	}
	return &matter, nil
}
