package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType is the direction of a trust/business movement.
type TransferType string

// TrustToBusiness is the only transfer type the ledger creates.
const TrustToBusiness TransferType = "trust_to_business"

// AuthorizationType is the event that entitles the advocate to move trust money.
type AuthorizationType string

const (
	AuthInvoicePayment    AuthorizationType = "invoice_payment"
	AuthFeeEarned         AuthorizationType = "fee_earned"
	AuthCostReimbursement AuthorizationType = "cost_reimbursement"
	AuthRefund            AuthorizationType = "refund"
	AuthCorrection        AuthorizationType = "correction"
)

// AuthorizationTypes lists every accepted authorization type.
var AuthorizationTypes = []AuthorizationType{
	AuthInvoicePayment, AuthFeeEarned, AuthCostReimbursement, AuthRefund, AuthCorrection,
}

// IsValid reports whether a is a known authorization type.
func (a AuthorizationType) IsValid() bool {
	for _, known := range AuthorizationTypes {
		if a == known {
			return true
		}
	}
	return false
}

// TrustTransfer moves funds from the trust account to the advocate's business
// account. It is immutable once written.
type TrustTransfer struct {
	TransferID            string            `json:"transferID"`
	TrustAccountID        string            `json:"trustAccountID"`
	AdvocateID            string            `json:"advocateID"`
	MatterID              string            `json:"matterID"`
	TransferType          TransferType      `json:"transferType"`
	Amount                decimal.Decimal   `json:"amount"`
	TrustBalanceBefore    decimal.Decimal   `json:"trustBalanceBefore"`
	TrustBalanceAfter     decimal.Decimal   `json:"trustBalanceAfter"`
	BusinessBalanceBefore *decimal.Decimal  `json:"businessBalanceBefore,omitempty"`
	BusinessBalanceAfter  *decimal.Decimal  `json:"businessBalanceAfter,omitempty"`
	Reason                string            `json:"reason"`
	AuthorizationType     AuthorizationType `json:"authorizationType"`
	InvoiceID             *string           `json:"invoiceID,omitempty"`
	TransferDate          time.Time         `json:"transferDate"`
	ApprovedBy            string            `json:"approvedBy"`
	ApprovedAt            time.Time         `json:"approvedAt"`
	CreatedAt             time.Time         `json:"createdAt"`
}

// SignedAmount returns the transfer's delta on the trust balance.
func (t TrustTransfer) SignedAmount() decimal.Decimal {
	return t.Amount.Neg()
}

// TransferFilter narrows a transfer listing.
type TransferFilter struct {
	MatterID  *string
	StartDate *time.Time
	EndDate   *time.Time
}
