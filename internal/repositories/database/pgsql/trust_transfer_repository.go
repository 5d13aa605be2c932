package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trust_ledger_app/internal/models"
	"github.com/SscSPs/trust_ledger_app/internal/utils/mapping"
)

const trustTransferColumns = `
	id, trust_account_id, advocate_id, matter_id, transfer_type, amount,
	trust_balance_before, trust_balance_after, business_balance_before, business_balance_after,
	reason, authorization_type, invoice_id, transfer_date, approved_by, approved_at, created_at`

type PgxTrustTransferRepository struct {
	BaseRepository
}

func newPgxTrustTransferRepository(pool *pgxpool.Pool) portsrepo.TrustTransferRepositoryFacade {
	return &PgxTrustTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TrustTransferRepositoryFacade = (*PgxTrustTransferRepository)(nil)

// SaveTrustTransferInTx appends a transfer.
func (r *PgxTrustTransferRepository) SaveTrustTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.TrustTransfer) error {
	m := mapping.ToModelTrustTransfer(transfer)
	query := `
		INSERT INTO trust_transfers (` + trustTransferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, query,
		m.TransferID,
		m.TrustAccountID,
		m.AdvocateID,
		m.MatterID,
		m.TransferType,
		m.Amount,
		m.TrustBalanceBefore,
		m.TrustBalanceAfter,
		m.BusinessBalanceBefore,
		m.BusinessBalanceAfter,
		m.Reason,
		m.AuthorizationType,
		m.InvoiceID,
		m.TransferDate,
		m.ApprovedBy,
		m.ApprovedAt,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trust transfer %s", apperrors.ErrDuplicate, m.TransferID)
		}
		return fmt.Errorf("failed to insert trust transfer %s: %w", m.TransferID, err)
	}
	return nil
}

// ListTrustTransfers retrieves an account's transfers, newest first.
func (r *PgxTrustTransferRepository) ListTrustTransfers(ctx context.Context, trustAccountID string, filter domain.TransferFilter) ([]domain.TrustTransfer, error) {
	conditions := []string{"trust_account_id = $1"}
	args := []any{trustAccountID}
	if filter.MatterID != nil {
		args = append(args, *filter.MatterID)
		conditions = append(conditions, "matter_id = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, "transfer_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, "transfer_date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + trustTransferColumns + `
		FROM trust_transfers
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY transfer_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trust transfers for account "+trustAccountID, err)
	}
	modelTransfers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TrustTransfer])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect trust transfer rows", err)
	}
	return mapping.ToDomainTrustTransferSlice(modelTransfers), nil
}
