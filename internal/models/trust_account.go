package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrustAccount is a row of trust_accounts. Business accounts share the table
// with account_type = 'business'.
type TrustAccount struct {
	TrustAccountID            string           `db:"id"`
	AdvocateID                string           `db:"advocate_id"`
	BankName                  string           `db:"bank_name"`
	AccountHolderName         string           `db:"account_holder_name"`
	AccountNumber             string           `db:"account_number"`
	BranchCode                *string          `db:"branch_code"`
	AccountType               string           `db:"account_type"`
	CurrentBalance            decimal.Decimal  `db:"current_balance"`
	LPCCompliant              bool             `db:"lpc_compliant"`
	ReconciliationDayOfMonth  int              `db:"reconciliation_day_of_month"`
	LowBalanceThreshold       decimal.Decimal  `db:"low_balance_threshold"`
	NegativeBalanceAlertSent  bool             `db:"negative_balance_alert_sent"`
	LastReconciliationDate    *time.Time       `db:"last_reconciliation_date"`
	LastReconciliationBalance *decimal.Decimal `db:"last_reconciliation_balance"`
	Version                   int64            `db:"version"`
	AuditFields
}
