package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trust_ledger_app/internal/models"
	"github.com/SscSPs/trust_ledger_app/internal/utils/mapping"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

// LoadReconciliationData reads everything a report needs inside one
// REPEATABLE READ snapshot, so a concurrent append cannot skew the totals.
func (r *PgxReconciliationRepository) LoadReconciliationData(ctx context.Context, advocateID string, startDate, endDate time.Time) (*domain.ReconciliationData, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin reconciliation snapshot: %w", err)
	}
	defer r.Rollback(ctx, tx)

	account, err := findOneAccount(ctx, tx,
		`SELECT `+trustAccountColumns+` FROM trust_accounts WHERE advocate_id = $1 AND account_type = 'trust';`, advocateID)
	if err != nil {
		return nil, notFoundOr(err, "failed to load trust account for advocate %s", advocateID)
	}
	data := &domain.ReconciliationData{Account: *account}

	prePeriodQuery := `
		SELECT
			COALESCE((SELECT SUM(CASE WHEN direction = 'decrease' THEN -amount ELSE amount END)
			          FROM trust_transactions WHERE trust_account_id = $1 AND transaction_date < $2), 0)
			- COALESCE((SELECT SUM(amount)
			          FROM trust_transfers WHERE trust_account_id = $1 AND transfer_date < $2), 0);
	`
	if err := tx.QueryRow(ctx, prePeriodQuery, account.TrustAccountID, startDate).Scan(&data.PrePeriodNet); err != nil {
		return nil, fmt.Errorf("failed to sum pre-period activity: %w", err)
	}

	txnRows, err := tx.Query(ctx, `
		SELECT `+trustTransactionColumns+`
		FROM trust_transactions
		WHERE trust_account_id = $1 AND transaction_date BETWEEN $2 AND $3
		ORDER BY transaction_date, created_at, id;`, account.TrustAccountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query period transactions: %w", err)
	}
	modelTxns, err := pgx.CollectRows(txnRows, pgx.RowToStructByName[models.TrustTransaction])
	if err != nil {
		return nil, fmt.Errorf("failed to collect period transactions: %w", err)
	}
	data.Transactions = mapping.ToDomainTrustTransactionSlice(modelTxns)

	transferRows, err := tx.Query(ctx, `
		SELECT `+trustTransferColumns+`
		FROM trust_transfers
		WHERE trust_account_id = $1 AND transfer_date BETWEEN $2 AND $3
		ORDER BY transfer_date, created_at;`, account.TrustAccountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query period transfers: %w", err)
	}
	modelTransfers, err := pgx.CollectRows(transferRows, pgx.RowToStructByName[models.TrustTransfer])
	if err != nil {
		return nil, fmt.Errorf("failed to collect period transfers: %w", err)
	}
	data.Transfers = mapping.ToDomainTrustTransferSlice(modelTransfers)

	postPeriodQuery := `
		SELECT
			(SELECT COUNT(*) FROM trust_transactions WHERE trust_account_id = $1 AND transaction_date > $2)
			+ (SELECT COUNT(*) FROM trust_transfers WHERE trust_account_id = $1 AND transfer_date > $2);
	`
	var postPeriod int64
	if err := tx.QueryRow(ctx, postPeriodQuery, account.TrustAccountID, endDate).Scan(&postPeriod); err != nil {
		return nil, fmt.Errorf("failed to count post-period activity: %w", err)
	}
	data.PostPeriodEntries = int(postPeriod)

	return data, nil
}

// MarkReconciled locks the account, flags every unreconciled entry up to date
// and stamps the account, all in one transaction.
func (r *PgxReconciliationRepository) MarkReconciled(ctx context.Context, advocateID string, date time.Time, balance decimal.Decimal, now time.Time) (*domain.TrustAccount, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer r.Rollback(ctx, tx)

	account, err := findOneAccount(ctx, tx,
		`SELECT `+trustAccountColumns+` FROM trust_accounts WHERE advocate_id = $1 AND account_type = 'trust' FOR UPDATE;`, advocateID)
	if err != nil {
		return nil, 0, notFoundOr(err, "failed to lock trust account for advocate %s", advocateID)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE trust_transactions
		SET is_reconciled = TRUE, reconciliation_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE trust_account_id = $1 AND is_reconciled = FALSE AND transaction_date <= $2;`,
		account.TrustAccountID, date, now, advocateID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to flag reconciled transactions: %w", err)
	}
	flagged := tag.RowsAffected()

	updated, err := findOneAccount(ctx, tx, `
		UPDATE trust_accounts
		SET last_reconciliation_date = $2, last_reconciliation_balance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE id = $1
		RETURNING `+trustAccountColumns+`;`,
		account.TrustAccountID, date, balance, now, advocateID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stamp reconciliation on account %s: %w", account.TrustAccountID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, 0, err
	}
	return updated, flagged, nil
}
