package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a trust ledger entry.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Drawdown   TransactionType = "drawdown"
	Refund     TransactionType = "refund"
	Transfer   TransactionType = "transfer"
	Adjustment TransactionType = "adjustment"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Deposit, Drawdown, Refund, Transfer, Adjustment:
		return true
	}
	return false
}

// Direction is the effect an entry has on the trust balance.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == Increase || d == Decrease
}

// PaymentMethod records how trust money was received.
type PaymentMethod string

const (
	PaymentEFT        PaymentMethod = "eft"
	PaymentCash       PaymentMethod = "cash"
	PaymentCheque     PaymentMethod = "cheque"
	PaymentCard       PaymentMethod = "card"
	PaymentDebitOrder PaymentMethod = "debit_order"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentEFT, PaymentCash, PaymentCheque, PaymentCard, PaymentDebitOrder:
		return true
	}
	return false
}

// TrustTransaction is an immutable entry in the trust ledger. Only the
// reconciliation fields are ever updated after insert.
type TrustTransaction struct {
	TransactionID      string          `json:"transactionID"`
	TrustAccountID     string          `json:"trustAccountID"`
	RetainerID         *string         `json:"retainerID,omitempty"`
	MatterID           string          `json:"matterID"`
	AdvocateID         string          `json:"advocateID"`
	TransactionType    TransactionType `json:"transactionType"`
	Direction          Direction       `json:"direction"`
	Amount             decimal.Decimal `json:"amount"` // always positive
	BalanceBefore      decimal.Decimal `json:"balanceBefore"`
	BalanceAfter       decimal.Decimal `json:"balanceAfter"`
	Reference          *string         `json:"reference,omitempty"`
	Description        string          `json:"description"`
	ReceiptNumber      *string         `json:"receiptNumber,omitempty"`
	PaymentMethod      *PaymentMethod  `json:"paymentMethod,omitempty"`
	ClientID           *string         `json:"clientID,omitempty"`
	InvoiceID          *string         `json:"invoiceID,omitempty"`
	TransactionDate    time.Time       `json:"transactionDate"`
	IsReconciled       bool            `json:"isReconciled"`
	ReconciliationDate *time.Time      `json:"reconciliationDate,omitempty"`
	AuditFields
}

// SignedAmount returns the entry's delta on the trust balance.
func (t TrustTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == Decrease {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the per-row ledger identity balance_after = balance_before + delta.
func (t TrustTransaction) Validate() error {
	if !t.TransactionType.IsValid() {
		return fmt.Errorf("unknown transaction type %q", t.TransactionType)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount.String())
	}
	switch t.TransactionType {
	case Deposit, Refund:
		if t.Direction != Increase {
			return fmt.Errorf("%s must increase the balance", t.TransactionType)
		}
	case Drawdown, Transfer:
		if t.Direction != Decrease {
			return fmt.Errorf("%s must decrease the balance", t.TransactionType)
		}
	case Adjustment:
		if !t.Direction.IsValid() {
			return fmt.Errorf("adjustment direction %q is invalid", t.Direction)
		}
	}
	if want := t.BalanceBefore.Add(t.SignedAmount()); !want.Equal(t.BalanceAfter) {
		return fmt.Errorf("balance after %s does not equal balance before %s plus delta %s",
			t.BalanceAfter.String(), t.BalanceBefore.String(), t.SignedAmount().String())
	}
	return nil
}

// TransactionFilter narrows a ledger listing. Zero values mean "no filter".
type TransactionFilter struct {
	MatterID        *string
	RetainerID      *string
	StartDate       *time.Time
	EndDate         *time.Time
	TransactionType *TransactionType
	IsReconciled    *bool
}
