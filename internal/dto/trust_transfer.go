package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// TransferToBusinessRequest defines the data needed to move trust money to the business account.
type TransferToBusinessRequest struct {
	MatterID          string                   `json:"matterID" binding:"required"`
	Amount            decimal.Decimal          `json:"amount" binding:"positive_amount"`
	Reason            string                   `json:"reason" binding:"required,max=500"`
	AuthorizationType domain.AuthorizationType `json:"authorizationType" binding:"required,authorization_type"`
	InvoiceID         *string                  `json:"invoiceID"`
	TransferDate      *string                  `json:"transferDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListTrustTransfersParams defines the query filters for a transfer listing.
type ListTrustTransfersParams struct {
	MatterID  *string `form:"matterId"`
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// TrustTransferResponse defines the data returned for a transfer.
type TrustTransferResponse struct {
	TransferID            string           `json:"transferID"`
	TrustAccountID        string           `json:"trustAccountID"`
	MatterID              string           `json:"matterID"`
	TransferType          string           `json:"transferType"`
	Amount                decimal.Decimal  `json:"amount"`
	TrustBalanceBefore    decimal.Decimal  `json:"trustBalanceBefore"`
	TrustBalanceAfter     decimal.Decimal  `json:"trustBalanceAfter"`
	BusinessBalanceBefore *decimal.Decimal `json:"businessBalanceBefore,omitempty"`
	BusinessBalanceAfter  *decimal.Decimal `json:"businessBalanceAfter,omitempty"`
	Reason                string           `json:"reason"`
	AuthorizationType     string           `json:"authorizationType"`
	InvoiceID             *string          `json:"invoiceID,omitempty"`
	TransferDate          string           `json:"transferDate"`
	ApprovedBy            string           `json:"approvedBy"`
	ApprovedAt            time.Time        `json:"approvedAt"`
}

// ToTrustTransferResponse converts a domain.TrustTransfer to its response DTO.
func ToTrustTransferResponse(t *domain.TrustTransfer) TrustTransferResponse {
	return TrustTransferResponse{
		TransferID:            t.TransferID,
		TrustAccountID:        t.TrustAccountID,
		MatterID:              t.MatterID,
		TransferType:          string(t.TransferType),
		Amount:                t.Amount,
		TrustBalanceBefore:    t.TrustBalanceBefore,
		TrustBalanceAfter:     t.TrustBalanceAfter,
		BusinessBalanceBefore: t.BusinessBalanceBefore,
		BusinessBalanceAfter:  t.BusinessBalanceAfter,
		Reason:                t.Reason,
		AuthorizationType:     string(t.AuthorizationType),
		InvoiceID:             t.InvoiceID,
		TransferDate:          t.TransferDate.Format(domain.DateLayout),
		ApprovedBy:            t.ApprovedBy,
		ApprovedAt:            t.ApprovedAt,
	}
}

// ToTrustTransferResponses converts a slice of domain.TrustTransfer.
func ToTrustTransferResponses(transfers []domain.TrustTransfer) []TrustTransferResponse {
	responses := make([]TrustTransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTrustTransferResponse(&transfers[i])
	}
	return responses
}
