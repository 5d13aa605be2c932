package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrustTransaction is a row of trust_transactions.
type TrustTransaction struct {
	TransactionID      string          `db:"id"`
	TrustAccountID     string          `db:"trust_account_id"`
	RetainerID         *string         `db:"retainer_id"`
	MatterID           string          `db:"matter_id"`
	AdvocateID         string          `db:"advocate_id"`
	TransactionType    string          `db:"transaction_type"`
	Direction          string          `db:"direction"`
	Amount             decimal.Decimal `db:"amount"`
	BalanceBefore      decimal.Decimal `db:"balance_before"`
	BalanceAfter       decimal.Decimal `db:"balance_after"`
	Reference          *string         `db:"reference"`
	Description        string          `db:"description"`
	ReceiptNumber      *string         `db:"receipt_number"`
	PaymentMethod      *string         `db:"payment_method"`
	ClientID           *string         `db:"client_id"`
	InvoiceID          *string         `db:"invoice_id"`
	TransactionDate    time.Time       `db:"transaction_date"`
	IsReconciled       bool            `db:"is_reconciled"`
	ReconciliationDate *time.Time      `db:"reconciliation_date"`
	AuditFields
}
