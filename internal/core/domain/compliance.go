package domain

import "github.com/shopspring/decimal"

// ViolationStatus is the result of a compliance check on one trust account.
type ViolationStatus struct {
	TrustAccountID   string          `json:"trustAccountID"`
	AdvocateID       string          `json:"advocateID"`
	HasViolation     bool            `json:"hasViolation"`
	Balance          decimal.Decimal `json:"balance"`
	Message          string          `json:"message"`
	IsLowBalance     bool            `json:"isLowBalance"`
	AlertAlreadySent bool            `json:"alertAlreadySent"`
}

// SweepResult summarises a compliance check across every trust account.
type SweepResult struct {
	Checked    int               `json:"checked"`
	Violations []ViolationStatus `json:"violations"`
	LowBalance []ViolationStatus `json:"lowBalance"`
}
