package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// TrustAccountReader defines read operations for trust account data
type TrustAccountReader interface {
	// FindTrustAccountByAdvocate retrieves the advocate's trust account.
	FindTrustAccountByAdvocate(ctx context.Context, advocateID string) (*domain.TrustAccount, error)

	// FindTrustAccountByID retrieves an account by its unique identifier.
	FindTrustAccountByID(ctx context.Context, trustAccountID string) (*domain.TrustAccount, error)

	// ListTrustAccounts retrieves a page of trust accounts ordered by ID.
	ListTrustAccounts(ctx context.Context, limit int, offset int) ([]domain.TrustAccount, error)
}

// TrustAccountWriter defines write operations for trust account data
type TrustAccountWriter interface {
	// SaveTrustAccount persists a new account.
	SaveTrustAccount(ctx context.Context, account domain.TrustAccount) error

	// UpdateTrustAccountDetails updates the bank and policy fields. Balances are untouched.
	UpdateTrustAccountDetails(ctx context.Context, account domain.TrustAccount) error

	// SetNegativeBalanceAlertSent records whether an alert has been dispatched.
	SetNegativeBalanceAlertSent(ctx context.Context, trustAccountID string, sent bool, userID string, now time.Time) error
}

// TrustAccountTransactionSupport defines operations used inside a ledger unit of work
type TrustAccountTransactionSupport interface {
	// FindAccountForUpdate selects the advocate's account of the given type and locks the row.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, advocateID string, accountType domain.AccountType) (*domain.TrustAccount, error)

	// UpdateBalanceInTx sets the balance if it still equals the locked snapshot
	// (balance and version). It returns apperrors.ErrConflict when the row moved.
	UpdateBalanceInTx(ctx context.Context, tx pgx.Tx, locked domain.TrustAccount, newBalance decimal.Decimal, userID string, now time.Time) error
}

// TrustAccountRepositoryFacade combines all trust-account repository interfaces
type TrustAccountRepositoryFacade interface {
	TrustAccountReader
	TrustAccountWriter
	TrustAccountTransactionSupport
}

// TrustAccountRepositoryWithTx extends TrustAccountRepositoryFacade with transaction capabilities
type TrustAccountRepositoryWithTx interface {
	TrustAccountRepositoryFacade
	TransactionManager
}
