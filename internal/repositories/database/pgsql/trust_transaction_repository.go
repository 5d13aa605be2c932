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
	"github.com/SscSPs/trust_ledger_app/internal/utils/pagination"
)

const trustTransactionColumns = `
	id, trust_account_id, retainer_id, matter_id, advocate_id, transaction_type, direction,
	amount, balance_before, balance_after, reference, description, receipt_number, payment_method,
	client_id, invoice_id, transaction_date, is_reconciled, reconciliation_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTrustTransactionRepository struct {
	BaseRepository
}

// newPgxTrustTransactionRepository creates a new repository for ledger entries.
func newPgxTrustTransactionRepository(pool *pgxpool.Pool) portsrepo.TrustTransactionRepositoryFacade {
	return &PgxTrustTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTrustTransactionRepository implements portsrepo.TrustTransactionRepositoryFacade
var _ portsrepo.TrustTransactionRepositoryFacade = (*PgxTrustTransactionRepository)(nil)

// SaveTrustTransactionInTx appends a ledger entry.
func (r *PgxTrustTransactionRepository) SaveTrustTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.TrustTransaction) error {
	m := mapping.ToModelTrustTransaction(txn)
	query := `
		INSERT INTO trust_transactions (` + trustTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.TrustAccountID,
		m.RetainerID,
		m.MatterID,
		m.AdvocateID,
		m.TransactionType,
		m.Direction,
		m.Amount,
		m.BalanceBefore,
		m.BalanceAfter,
		m.Reference,
		m.Description,
		m.ReceiptNumber,
		m.PaymentMethod,
		m.ClientID,
		m.InvoiceID,
		m.TransactionDate,
		m.IsReconciled,
		m.ReconciliationDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trust transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert trust transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// NextReceiptSequenceInTx increments and returns the receipt counter of the account and period.
// The counter row is locked until the surrounding transaction ends.
func (r *PgxTrustTransactionRepository) NextReceiptSequenceInTx(ctx context.Context, tx pgx.Tx, trustAccountID string, period string) (int64, error) {
	query := `
		INSERT INTO trust_receipt_sequences (trust_account_id, period, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (trust_account_id, period)
		DO UPDATE SET last_value = trust_receipt_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, trustAccountID, period).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate receipt number for account %s period %s: %w", trustAccountID, period, err)
	}
	return seq, nil
}

// ListTrustTransactions retrieves a filtered page of an account's entries using token-based pagination.
// It returns the entries, a token for the next page, and an error.
func (r *PgxTrustTransactionRepository) ListTrustTransactions(ctx context.Context, trustAccountID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.TrustTransaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	conditions := []string{"trust_account_id = $1"}
	args := []any{trustAccountID}
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, strings.Replace(clause, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.MatterID != nil {
		addCondition("matter_id = ?", *filter.MatterID)
	}
	if filter.RetainerID != nil {
		addCondition("retainer_id = ?", *filter.RetainerID)
	}
	if filter.StartDate != nil {
		addCondition("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition("transaction_date <= ?", *filter.EndDate)
	}
	if filter.TransactionType != nil {
		addCondition("transaction_type = ?", string(*filter.TransactionType))
	}
	if filter.IsReconciled != nil {
		addCondition("is_reconciled = ?", *filter.IsReconciled)
	}

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		n := len(args)
		args = append(args, cursor.TransactionDate, cursor.CreatedAt, cursor.ID)
		// Tuple comparison keeps the cursor stable across identical timestamps
		conditions = append(conditions, fmt.Sprintf("(transaction_date, created_at, id) < ($%d, $%d, $%d)", n+1, n+2, n+3))
	}

	args = append(args, fetchLimit)
	query := `SELECT ` + trustTransactionColumns + `
		FROM trust_transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY transaction_date DESC, created_at DESC, id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query trust transactions for account "+trustAccountID, err)
	}
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TrustTransaction])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect trust transaction rows for account "+trustAccountID, err)
	}

	var nextTokenVal *string
	if len(modelTxns) > limit {
		// The token points to the last item included in this page.
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			TransactionDate: last.TransactionDate,
			CreatedAt:       last.CreatedAt,
			ID:              last.TransactionID,
		})
		nextTokenVal = &token
		modelTxns = modelTxns[:limit]
	}

	return mapping.ToDomainTrustTransactionSlice(modelTxns), nextTokenVal, nil
}
