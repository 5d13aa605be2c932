package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// EntryDirection resolves the balance effect of a recorder entry type.
// Adjustments default to increasing the balance when no direction is given.
// Transfers are rejected: they only enter the ledger through the transfer path.
func EntryDirection(txType domain.TransactionType, adjustment *domain.Direction) (domain.Direction, error) {
	switch txType {
	case domain.Deposit, domain.Refund:
		return domain.Increase, nil
	case domain.Drawdown:
		return domain.Decrease, nil
	case domain.Adjustment:
		if adjustment == nil {
			return domain.Increase, nil
		}
		if !adjustment.IsValid() {
			return "", fmt.Errorf("%w: unknown adjustment direction %q", apperrors.ErrValidation, *adjustment)
		}
		return *adjustment, nil
	case domain.Transfer:
		return "", fmt.Errorf("%w: transfers must be recorded as trust-to-business transfers", apperrors.ErrValidation)
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txType)
	}
}

// SignedDelta applies the direction's sign to a positive amount.
func SignedDelta(dir domain.Direction, amount decimal.Decimal) decimal.Decimal {
	if dir == domain.Decrease {
		return amount.Neg()
	}
	return amount
}

// EnsureSufficientFunds rejects a withdrawal larger than the available balance.
func EnsureSufficientFunds(available, requested decimal.Decimal, format apperrors.MoneyFormatter) error {
	if requested.GreaterThan(available) {
		return apperrors.NewInsufficientFundsError(available, requested, format)
	}
	return nil
}

// ApplyEntry computes the balance after an entry. Every balance-decreasing entry is
// checked against the balance it is applied to, so a decrease can never produce a
// negative balance.
func ApplyEntry(balance decimal.Decimal, dir domain.Direction, amount decimal.Decimal, format apperrors.MoneyFormatter) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if dir == domain.Decrease {
		if err := EnsureSufficientFunds(balance, amount, format); err != nil {
			return decimal.Zero, err
		}
	}
	return balance.Add(SignedDelta(dir, amount)), nil
}

// ReceiptPeriod is the sequence scope of a receipt: the calendar month of the deposit.
func ReceiptPeriod(date time.Time) string {
	return date.Format("200601")
}

// FormatReceiptNumber renders a receipt as PREFIX-YYYYMM-NNNN.
func FormatReceiptNumber(prefix string, date time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, ReceiptPeriod(date), seq)
}

// NetDelta sums the balance effect of a set of ledger entries.
func NetDelta(transactions []domain.TrustTransaction, transfers []domain.TrustTransfer) decimal.Decimal {
	net := decimal.Zero
	for _, t := range transactions {
		net = net.Add(t.SignedAmount())
	}
	for _, t := range transfers {
		net = net.Add(t.SignedAmount())
	}
	return net
}

// DeriveOpeningBalance walks the period's net change backward from a balance.
// It only equals the true opening balance when nothing was posted after the period.
func DeriveOpeningBalance(current, periodNet decimal.Decimal) decimal.Decimal {
	return current.Sub(periodNet)
}
