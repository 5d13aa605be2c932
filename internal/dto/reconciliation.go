package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// ReconciliationReportParams defines the query of a reconciliation report.
type ReconciliationReportParams struct {
	StartDate   string  `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string  `form:"endDate" binding:"required,datetime=2006-01-02"`
	BankBalance *string `form:"bankBalance" binding:"omitempty,numeric"`
}

// MarkReconciledRequest defines the body of a reconciliation sign-off.
type MarkReconciledRequest struct {
	Date              string          `json:"date" binding:"required,datetime=2006-01-02"`
	ReconciledBalance decimal.Decimal `json:"reconciledBalance"`
}

// ReconciliationReportResponse is the wire form of a reconciliation report.
type ReconciliationReportResponse struct {
	TrustAccount          TrustAccountResponse       `json:"trustAccount"`
	StartDate             string                     `json:"startDate"`
	EndDate               string                     `json:"endDate"`
	OpeningBalance        decimal.Decimal            `json:"openingBalance"`
	ClosingBalance        decimal.Decimal            `json:"closingBalance"`
	DerivedOpeningBalance decimal.Decimal            `json:"derivedOpeningBalance"`
	HasPostPeriodActivity bool                       `json:"hasPostPeriodActivity"`
	TotalDeposits         decimal.Decimal            `json:"totalDeposits"`
	TotalDrawdowns        decimal.Decimal            `json:"totalDrawdowns"`
	TotalRefunds          decimal.Decimal            `json:"totalRefunds"`
	TotalAdjustments      decimal.Decimal            `json:"totalAdjustments"`
	TotalTransfers        decimal.Decimal            `json:"totalTransfers"`
	Transactions          []TrustTransactionResponse `json:"transactions"`
	Transfers             []TrustTransferResponse    `json:"transfers"`
	IsReconciled          bool                       `json:"isReconciled"`
	BankBalance           *decimal.Decimal           `json:"bankBalance,omitempty"`
	Discrepancy           decimal.Decimal            `json:"discrepancy"`
}

// ToReconciliationReportResponse converts a domain.ReconciliationReport to its response DTO.
func ToReconciliationReportResponse(r *domain.ReconciliationReport) ReconciliationReportResponse {
	return ReconciliationReportResponse{
		TrustAccount:          ToTrustAccountResponse(&r.TrustAccount),
		StartDate:             r.StartDate.Format(domain.DateLayout),
		EndDate:               r.EndDate.Format(domain.DateLayout),
		OpeningBalance:        r.OpeningBalance,
		ClosingBalance:        r.ClosingBalance,
		DerivedOpeningBalance: r.DerivedOpeningBalance,
		HasPostPeriodActivity: r.HasPostPeriodActivity,
		TotalDeposits:         r.TotalDeposits,
		TotalDrawdowns:        r.TotalDrawdowns,
		TotalRefunds:          r.TotalRefunds,
		TotalAdjustments:      r.TotalAdjustments,
		TotalTransfers:        r.TotalTransfers,
		Transactions:          ToTrustTransactionResponses(r.Transactions),
		Transfers:             ToTrustTransferResponses(r.Transfers),
		IsReconciled:          r.IsReconciled,
		BankBalance:           r.BankBalance,
		Discrepancy:           r.Discrepancy,
	}
}
