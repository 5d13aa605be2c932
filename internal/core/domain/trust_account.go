package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes the advocate's trust account from their business account.
type AccountType string

const (
	TrustAccountType    AccountType = "trust"
	BusinessAccountType AccountType = "business"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	return t == TrustAccountType || t == BusinessAccountType
}

// TrustAccount holds client funds on behalf of an advocate's matters.
// CurrentBalance is a rollup of the append-only ledger, maintained in the same
// database transaction as every ledger append.
type TrustAccount struct {
	TrustAccountID            string           `json:"trustAccountID"`
	AdvocateID                string           `json:"advocateID"`
	BankName                  string           `json:"bankName"`
	AccountHolderName         string           `json:"accountHolderName"`
	AccountNumber             string           `json:"accountNumber"`
	BranchCode                *string          `json:"branchCode,omitempty"`
	AccountType               AccountType      `json:"accountType"`
	CurrentBalance            decimal.Decimal  `json:"currentBalance"`
	LPCCompliant              bool             `json:"lpcCompliant"`
	ReconciliationDayOfMonth  int              `json:"reconciliationDayOfMonth"`
	LowBalanceThreshold       decimal.Decimal  `json:"lowBalanceThreshold"`
	NegativeBalanceAlertSent  bool             `json:"negativeBalanceAlertSent"`
	LastReconciliationDate    *time.Time       `json:"lastReconciliationDate,omitempty"`
	LastReconciliationBalance *decimal.Decimal `json:"lastReconciliationBalance,omitempty"`
	Version                   int64            `json:"version"` // bumped on every balance change
	AuditFields
}

// IsNegative reports whether the account is in the Violating state.
func (a TrustAccount) IsNegative() bool {
	return a.CurrentBalance.IsNegative()
}

// IsLowBalance reports whether a non-negative balance has fallen below the configured threshold.
func (a TrustAccount) IsLowBalance() bool {
	if a.LowBalanceThreshold.IsZero() || a.IsNegative() {
		return false
	}
	return a.CurrentBalance.LessThan(a.LowBalanceThreshold)
}

// ReconciledOn reports whether the last reconciliation was stamped on the given calendar date.
func (a TrustAccount) ReconciledOn(date time.Time) bool {
	if a.LastReconciliationDate == nil {
		return false
	}
	return SameDate(*a.LastReconciliationDate, date)
}

// TrustAccountDetailsUpdate carries the editable bank and policy fields of an account.
// Nil fields are left unchanged.
type TrustAccountDetailsUpdate struct {
	BankName                 *string
	AccountHolderName        *string
	AccountNumber            *string
	BranchCode               *string
	ReconciliationDayOfMonth *int
	LowBalanceThreshold      *decimal.Decimal
}
