package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// UpdateTrustAccountRequest defines the editable fields of a trust account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTrustAccountRequest struct {
	BankName                 *string          `json:"bankName" binding:"omitempty,min=1,max=100"`
	AccountHolderName        *string          `json:"accountHolderName" binding:"omitempty,min=1,max=200"`
	AccountNumber            *string          `json:"accountNumber" binding:"omitempty,min=8,max=34"`
	BranchCode               *string          `json:"branchCode" binding:"omitempty,max=20"`
	ReconciliationDayOfMonth *int             `json:"reconciliationDayOfMonth" binding:"omitempty,min=1,max=28"`
	LowBalanceThreshold      *decimal.Decimal `json:"lowBalanceThreshold" binding:"omitempty,non_negative_amount"`
}

// ToDetailsUpdate converts the request into the domain update set.
func (r UpdateTrustAccountRequest) ToDetailsUpdate() domain.TrustAccountDetailsUpdate {
	return domain.TrustAccountDetailsUpdate{
		BankName:                 r.BankName,
		AccountHolderName:        r.AccountHolderName,
		AccountNumber:            r.AccountNumber,
		BranchCode:               r.BranchCode,
		ReconciliationDayOfMonth: r.ReconciliationDayOfMonth,
		LowBalanceThreshold:      r.LowBalanceThreshold,
	}
}

// TrustAccountResponse defines the data returned for a trust account.
type TrustAccountResponse struct {
	TrustAccountID            string           `json:"trustAccountID"`
	AdvocateID                string           `json:"advocateID"`
	BankName                  string           `json:"bankName"`
	AccountHolderName         string           `json:"accountHolderName"`
	AccountNumber             string           `json:"accountNumber"`
	BranchCode                *string          `json:"branchCode,omitempty"`
	AccountType               string           `json:"accountType"`
	CurrentBalance            decimal.Decimal  `json:"currentBalance"`
	LPCCompliant              bool             `json:"lpcCompliant"`
	ReconciliationDayOfMonth  int              `json:"reconciliationDayOfMonth"`
	LowBalanceThreshold       decimal.Decimal  `json:"lowBalanceThreshold"`
	NegativeBalanceAlertSent  bool             `json:"negativeBalanceAlertSent"`
	LastReconciliationDate    *string          `json:"lastReconciliationDate,omitempty"`
	LastReconciliationBalance *decimal.Decimal `json:"lastReconciliationBalance,omitempty"`
	CreatedAt                 time.Time        `json:"createdAt"`
	LastUpdatedAt             time.Time        `json:"lastUpdatedAt"`
}

// ToTrustAccountResponse converts a domain.TrustAccount to TrustAccountResponse DTO
func ToTrustAccountResponse(acc *domain.TrustAccount) TrustAccountResponse {
	resp := TrustAccountResponse{
		TrustAccountID:            acc.TrustAccountID,
		AdvocateID:                acc.AdvocateID,
		BankName:                  acc.BankName,
		AccountHolderName:         acc.AccountHolderName,
		AccountNumber:             acc.AccountNumber,
		BranchCode:                acc.BranchCode,
		AccountType:               string(acc.AccountType),
		CurrentBalance:            acc.CurrentBalance,
		LPCCompliant:              acc.LPCCompliant,
		ReconciliationDayOfMonth:  acc.ReconciliationDayOfMonth,
		LowBalanceThreshold:       acc.LowBalanceThreshold,
		NegativeBalanceAlertSent:  acc.NegativeBalanceAlertSent,
		LastReconciliationBalance: acc.LastReconciliationBalance,
		CreatedAt:                 acc.CreatedAt,
		LastUpdatedAt:             acc.LastUpdatedAt,
	}
	if acc.LastReconciliationDate != nil {
		d := acc.LastReconciliationDate.Format(domain.DateLayout)
		resp.LastReconciliationDate = &d
	}
	return resp
}
