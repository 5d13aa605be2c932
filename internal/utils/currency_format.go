package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/apperrors"
)

// DefaultCurrencyCode is the ledger currency when none is configured.
const DefaultCurrencyCode = "ZAR"

// FormatMoney renders amount with the currency's symbol and minor-unit precision.
// Example: 150 with ZAR returns "R150.00"; -150 returns "-R150.00".
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	// money.New never returns a nil currency; unknown codes format without a symbol
	cur := money.New(0, currencyCode).Currency()
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// MoneyFormatterFor returns a formatter bound to one currency, for audit-grade error messages.
func MoneyFormatterFor(currencyCode string) apperrors.MoneyFormatter {
	if currencyCode == "" {
		currencyCode = DefaultCurrencyCode
	}
	return func(amount decimal.Decimal) string {
		return FormatMoney(amount, currencyCode)
	}
}
