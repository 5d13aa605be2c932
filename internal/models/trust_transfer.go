package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrustTransfer is a row of trust_transfers.
type TrustTransfer struct {
	TransferID            string           `db:"id"`
	TrustAccountID        string           `db:"trust_account_id"`
	AdvocateID            string           `db:"advocate_id"`
	MatterID              string           `db:"matter_id"`
	TransferType          string           `db:"transfer_type"`
	Amount                decimal.Decimal  `db:"amount"`
	TrustBalanceBefore    decimal.Decimal  `db:"trust_balance_before"`
	TrustBalanceAfter     decimal.Decimal  `db:"trust_balance_after"`
	BusinessBalanceBefore *decimal.Decimal `db:"business_balance_before"`
	BusinessBalanceAfter  *decimal.Decimal `db:"business_balance_after"`
	Reason                string           `db:"reason"`
	AuthorizationType     string           `db:"authorization_type"`
	InvoiceID             *string          `db:"invoice_id"`
	TransferDate          time.Time        `db:"transfer_date"`
	ApprovedBy            string           `db:"approved_by"`
	ApprovedAt            time.Time        `db:"approved_at"`
	CreatedAt             time.Time        `db:"created_at"`
}
