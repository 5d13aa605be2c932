package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/trust_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
	"github.com/SscSPs/trust_ledger_app/internal/utils"
)

// DefaultReceiptPrefix starts every receipt number unless configured otherwise.
const DefaultReceiptPrefix = "TR"

// BaseService provides common functionality for all services
type BaseService struct {
	now           func() time.Time
	currencyCode  string
	receiptPrefix string
	locker        portsrepo.AccountLocker
	audit         portsrepo.AuditWriter
}

// ServiceOption is a functional option shared by the ledger services
type ServiceOption func(*BaseService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) { s.now = now }
}

// WithCurrency sets the currency used to render amounts in messages.
func WithCurrency(code string) ServiceOption {
	return func(s *BaseService) { s.currencyCode = code }
}

// WithReceiptPrefix sets the leading segment of deposit receipt numbers.
func WithReceiptPrefix(prefix string) ServiceOption {
	return func(s *BaseService) { s.receiptPrefix = prefix }
}

// WithAccountLocker serialises writers per account across instances.
func WithAccountLocker(locker portsrepo.AccountLocker) ServiceOption {
	return func(s *BaseService) { s.locker = locker }
}

// WithAuditTrail records committed ledger events.
func WithAuditTrail(audit portsrepo.AuditWriter) ServiceOption {
	return func(s *BaseService) { s.audit = audit }
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		now:           time.Now,
		currencyCode:  utils.DefaultCurrencyCode,
		receiptPrefix: DefaultReceiptPrefix,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	return s.now().UTC()
}

// FormatMoney renders an amount in the ledger currency.
func (s *BaseService) FormatMoney(amount decimal.Decimal) string {
	return s.moneyFormatter()(amount)
}

func (s *BaseService) moneyFormatter() apperrors.MoneyFormatter {
	return utils.MoneyFormatterFor(s.currencyCode)
}

// requireAdvocate rejects calls without an identity to attribute the change to.
func requireAdvocate(advocateID string) error {
	if strings.TrimSpace(advocateID) == "" {
		return fmt.Errorf("%w: an advocate identity is required", apperrors.ErrNotAuthenticated)
	}
	return nil
}

// parseOptionalDate reads a YYYY-MM-DD value, defaulting to today.
func (s *BaseService) parseOptionalDate(value *string, field string) (time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return domain.DateOnly(s.Now()), nil
	}
	return parseDate(*value, field)
}

// parseEntryDate reads the date of a new ledger entry, defaulting to today.
// Entries cannot be dated in the future.
func (s *BaseService) parseEntryDate(value *string, field string) (time.Time, error) {
	date, err := s.parseOptionalDate(value, field)
	if err != nil {
		return time.Time{}, err
	}
	if date.After(domain.DateOnly(s.Now())) {
		return time.Time{}, fmt.Errorf("%w: %s cannot be in the future", apperrors.ErrValidation, field)
	}
	return date, nil
}

// ensureOpenPeriod rejects entries dated inside a period that has already been
// reconciled; the account must be the one read under the row lock.
func ensureOpenPeriod(account domain.TrustAccount, date time.Time, field string) error {
	if account.LastReconciliationDate == nil {
		return nil
	}
	closed := domain.DateOnly(*account.LastReconciliationDate)
	if !date.After(closed) {
		return fmt.Errorf("%w: %s must be after the last reconciliation on %s",
			apperrors.ErrValidation, field, closed.Format(domain.DateLayout))
	}
	return nil
}

func parseDate(value string, field string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", apperrors.ErrValidation, field)
	}
	return t, nil
}

// lockAccount takes the distributed per-account lock when one is configured.
// A lock held elsewhere is a conflict; an unreachable lock service is not fatal
// because the database row lock still serialises writers.
func (s *BaseService) lockAccount(ctx context.Context, advocateID string) (func(context.Context), error) {
	noop := func(context.Context) {}
	if s.locker == nil {
		return noop, nil
	}
	release, err := s.locker.Lock(ctx, "trust-account:"+advocateID)
	if err == nil {
		return release, nil
	}
	if errors.Is(err, apperrors.ErrConflict) {
		return nil, err
	}
	s.LogWarn(ctx, "Account lock unavailable, relying on database row lock",
		slog.String("advocate_id", advocateID),
		slog.String("error", err.Error()))
	return noop, nil
}

// inTx runs fn inside a database transaction and commits only if fn succeeds.
func (s *BaseService) inTx(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) error {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := tm.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back ledger transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tm.Commit(ctx, tx)
}

// recordAudit appends to the audit trail after a commit. Failures are logged,
// never returned: the ledger change has already been made durable.
func (s *BaseService) recordAudit(ctx context.Context, account domain.TrustAccount, advocateID string, action domain.AuditAction, entityID string, details map[string]any) {
	if s.audit == nil {
		return
	}
	entry := domain.AuditEntry{
		AuditID:        uuid.NewString(),
		TrustAccountID: account.TrustAccountID,
		AdvocateID:     advocateID,
		Action:         action,
		EntityID:       entityID,
		Details:        details,
		CreatedAt:      s.Now(),
	}
	if err := s.audit.SaveAuditEntry(ctx, entry); err != nil {
		s.LogWarn(ctx, "Failed to write audit entry",
			slog.String("action", string(action)),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
	}
}
