package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trust_ledger_app/internal/models"
	"github.com/SscSPs/trust_ledger_app/internal/utils/mapping"
)

const trustAccountColumns = `
	id, advocate_id, bank_name, account_holder_name, account_number, branch_code, account_type,
	current_balance, lpc_compliant, reconciliation_day_of_month, low_balance_threshold,
	negative_balance_alert_sent, last_reconciliation_date, last_reconciliation_balance, version,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTrustAccountRepository struct {
	BaseRepository
}

// newPgxTrustAccountRepository creates a new repository for trust and business account rows.
func newPgxTrustAccountRepository(pool *pgxpool.Pool) portsrepo.TrustAccountRepositoryWithTx {
	return &PgxTrustAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTrustAccountRepository implements portsrepo.TrustAccountRepositoryWithTx
var _ portsrepo.TrustAccountRepositoryWithTx = (*PgxTrustAccountRepository)(nil)

// findOneAccount runs a single-row account query on q.
func findOneAccount(ctx context.Context, q querier, query string, args ...any) (*domain.TrustAccount, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	modelAcc, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.TrustAccount])
	if err != nil {
		return nil, err
	}
	domainAcc := mapping.ToDomainTrustAccount(modelAcc)
	return &domainAcc, nil
}

// SaveTrustAccount inserts a new account.
func (r *PgxTrustAccountRepository) SaveTrustAccount(ctx context.Context, account domain.TrustAccount) error {
	m := mapping.ToModelTrustAccount(account)
	query := `
		INSERT INTO trust_accounts (` + trustAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TrustAccountID,
		m.AdvocateID,
		m.BankName,
		m.AccountHolderName,
		m.AccountNumber,
		m.BranchCode,
		m.AccountType,
		m.CurrentBalance,
		m.LPCCompliant,
		m.ReconciliationDayOfMonth,
		m.LowBalanceThreshold,
		m.NegativeBalanceAlertSent,
		m.LastReconciliationDate,
		m.LastReconciliationBalance,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: advocate %s already has a %s account", apperrors.ErrDuplicate, m.AdvocateID, m.AccountType)
		}
		return fmt.Errorf("failed to save trust account %s: %w", m.TrustAccountID, err)
	}
	return nil
}

// FindTrustAccountByAdvocate retrieves the advocate's trust account.
func (r *PgxTrustAccountRepository) FindTrustAccountByAdvocate(ctx context.Context, advocateID string) (*domain.TrustAccount, error) {
	query := `SELECT ` + trustAccountColumns + ` FROM trust_accounts WHERE advocate_id = $1 AND account_type = 'trust';`
	acc, err := findOneAccount(ctx, r.Pool, query, advocateID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find trust account for advocate %s", advocateID)
	}
	return acc, nil
}

// FindTrustAccountByID retrieves an account by its ID.
func (r *PgxTrustAccountRepository) FindTrustAccountByID(ctx context.Context, trustAccountID string) (*domain.TrustAccount, error) {
	query := `SELECT ` + trustAccountColumns + ` FROM trust_accounts WHERE id = $1;`
	acc, err := findOneAccount(ctx, r.Pool, query, trustAccountID)
	if err != nil {
		return nil, notFoundOr(err, "failed to find trust account %s", trustAccountID)
	}
	return acc, nil
}

// ListTrustAccounts retrieves a page of trust accounts ordered by ID.
func (r *PgxTrustAccountRepository) ListTrustAccounts(ctx context.Context, limit int, offset int) ([]domain.TrustAccount, error) {
	query := `
		SELECT ` + trustAccountColumns + `
		FROM trust_accounts
		WHERE account_type = 'trust'
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trust accounts", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TrustAccount])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect trust account rows", err)
	}
	return mapping.ToDomainTrustAccountSlice(modelAccounts), nil
}

// UpdateTrustAccountDetails updates the bank and policy fields. Balances are untouched.
func (r *PgxTrustAccountRepository) UpdateTrustAccountDetails(ctx context.Context, account domain.TrustAccount) error {
	m := mapping.ToModelTrustAccount(account)
	query := `
		UPDATE trust_accounts
		SET bank_name = $2, account_holder_name = $3, account_number = $4, branch_code = $5,
		    reconciliation_day_of_month = $6, low_balance_threshold = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TrustAccountID,
		m.BankName,
		m.AccountHolderName,
		m.AccountNumber,
		m.BranchCode,
		m.ReconciliationDayOfMonth,
		m.LowBalanceThreshold,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update trust account %s: %w", m.TrustAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trust account %s", apperrors.ErrNotFound, m.TrustAccountID)
	}
	return nil
}

// SetNegativeBalanceAlertSent records whether an alert has been dispatched.
func (r *PgxTrustAccountRepository) SetNegativeBalanceAlertSent(ctx context.Context, trustAccountID string, sent bool, userID string, now time.Time) error {
	query := `
		UPDATE trust_accounts
		SET negative_balance_alert_sent = $2, last_updated_at = $3, last_updated_by = $4
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, trustAccountID, sent, now, userID)
	if err != nil {
		return fmt.Errorf("failed to flag alert on trust account %s: %w", trustAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trust account %s", apperrors.ErrNotFound, trustAccountID)
	}
	return nil
}

// FindAccountForUpdate selects the advocate's account of the given type and locks the row.
// Must be called within a transaction.
func (r *PgxTrustAccountRepository) FindAccountForUpdate(ctx context.Context, tx pgx.Tx, advocateID string, accountType domain.AccountType) (*domain.TrustAccount, error) {
	query := `
		SELECT ` + trustAccountColumns + `
		FROM trust_accounts
		WHERE advocate_id = $1 AND account_type = $2
		FOR UPDATE;
	`
	acc, err := findOneAccount(ctx, tx, query, advocateID, string(accountType))
	if err != nil {
		return nil, notFoundOr(err, "failed to lock %s account for advocate %s", accountType, advocateID)
	}
	return acc, nil
}

// UpdateBalanceInTx writes the new balance only if the row still holds the
// balance and version that were read under the lock. The alert flag is cleared
// once the balance is back at or above zero.
func (r *PgxTrustAccountRepository) UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, locked domain.TrustAccount, newBalance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE trust_accounts
		SET current_balance = $2::numeric,
		    version = version + 1,
		    negative_balance_alert_sent = CASE WHEN $2::numeric >= 0 THEN FALSE ELSE negative_balance_alert_sent END,
		    last_updated_at = $5, last_updated_by = $6
		WHERE id = $1 AND current_balance = $3 AND version = $4;
	`
	tag, err := tx.Exec(ctx, query, locked.TrustAccountID, newBalance, locked.CurrentBalance, locked.Version, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %s: %w", locked.TrustAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s changed since it was read", apperrors.ErrConflict, locked.TrustAccountID)
	}
	return nil
}
