package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationData is the consistent snapshot a reconciliation report is built from.
type ReconciliationData struct {
	Account      TrustAccount
	Transactions []TrustTransaction
	Transfers    []TrustTransfer
	// PrePeriodNet is the summed delta of every entry dated before the period start.
	PrePeriodNet decimal.Decimal
	// PostPeriodEntries counts entries dated after the period end.
	PostPeriodEntries int
}

// ReconciliationReport is a derived view over a date range. It is never persisted;
// only the account's last reconciliation date and balance record the outcome.
type ReconciliationReport struct {
	TrustAccount          TrustAccount       `json:"trustAccount"`
	StartDate             time.Time          `json:"startDate"`
	EndDate               time.Time          `json:"endDate"`
	OpeningBalance        decimal.Decimal    `json:"openingBalance"`
	ClosingBalance        decimal.Decimal    `json:"closingBalance"`
	DerivedOpeningBalance decimal.Decimal    `json:"derivedOpeningBalance"`
	HasPostPeriodActivity bool               `json:"hasPostPeriodActivity"`
	TotalDeposits         decimal.Decimal    `json:"totalDeposits"`
	TotalDrawdowns        decimal.Decimal    `json:"totalDrawdowns"`
	TotalRefunds          decimal.Decimal    `json:"totalRefunds"`
	TotalAdjustments      decimal.Decimal    `json:"totalAdjustments"` // signed
	TotalTransfers        decimal.Decimal    `json:"totalTransfers"`
	Transactions          []TrustTransaction `json:"transactions"`
	Transfers             []TrustTransfer    `json:"transfers"`
	IsReconciled          bool               `json:"isReconciled"`
	BankBalance           *decimal.Decimal   `json:"bankBalance,omitempty"`
	Discrepancy           decimal.Decimal    `json:"discrepancy"`
}
