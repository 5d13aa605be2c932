package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// RecordTransactionRequest defines the data needed to append a deposit, drawdown,
// refund or adjustment to the trust ledger.
type RecordTransactionRequest struct {
	MatterID        string                `json:"matterID" binding:"required"`
	Amount          decimal.Decimal       `json:"amount" binding:"positive_amount"`
	Description     string                `json:"description" binding:"required,max=500"`
	PaymentMethod   *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,payment_method"`
	Reference       *string               `json:"reference" binding:"omitempty,max=100"`
	ClientID        *string               `json:"clientID"`
	InvoiceID       *string               `json:"invoiceID"`
	TransactionDate *string               `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	// Direction only applies to adjustments; it defaults to increase.
	Direction *domain.Direction `json:"direction" binding:"omitempty,oneof=increase decrease"`
}

// ListTrustTransactionsParams defines the query filters for a ledger listing.
type ListTrustTransactionsParams struct {
	MatterID   *string                 `form:"matterId"`
	RetainerID *string                 `form:"retainerId"`
	StartDate  *string                 `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate    *string                 `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Type       *domain.TransactionType `form:"type" binding:"omitempty,oneof=deposit drawdown refund transfer adjustment"`
	Reconciled *bool                   `form:"reconciled"`
	Limit      int                     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken  *string                 `form:"nextToken"`
}

// TrustTransactionResponse defines the data returned for a ledger entry.
type TrustTransactionResponse struct {
	TransactionID      string          `json:"transactionID"`
	TrustAccountID     string          `json:"trustAccountID"`
	RetainerID         *string         `json:"retainerID,omitempty"`
	MatterID           string          `json:"matterID"`
	TransactionType    string          `json:"transactionType"`
	Direction          string          `json:"direction"`
	Amount             decimal.Decimal `json:"amount"`
	BalanceBefore      decimal.Decimal `json:"balanceBefore"`
	BalanceAfter       decimal.Decimal `json:"balanceAfter"`
	Reference          *string         `json:"reference,omitempty"`
	Description        string          `json:"description"`
	ReceiptNumber      *string         `json:"receiptNumber,omitempty"`
	PaymentMethod      *string         `json:"paymentMethod,omitempty"`
	ClientID           *string         `json:"clientID,omitempty"`
	InvoiceID          *string         `json:"invoiceID,omitempty"`
	TransactionDate    string          `json:"transactionDate"`
	IsReconciled       bool            `json:"isReconciled"`
	ReconciliationDate *string         `json:"reconciliationDate,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
}

// ListTrustTransactionsResponse is a page of ledger entries.
type ListTrustTransactionsResponse struct {
	Transactions []TrustTransactionResponse `json:"transactions"`
	NextToken    *string                    `json:"nextToken,omitempty"`
}

// ToTrustTransactionResponse converts a domain.TrustTransaction to its response DTO.
func ToTrustTransactionResponse(t *domain.TrustTransaction) TrustTransactionResponse {
	resp := TrustTransactionResponse{
		TransactionID:   t.TransactionID,
		TrustAccountID:  t.TrustAccountID,
		RetainerID:      t.RetainerID,
		MatterID:        t.MatterID,
		TransactionType: string(t.TransactionType),
		Direction:       string(t.Direction),
		Amount:          t.Amount,
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		Reference:       t.Reference,
		Description:     t.Description,
		ReceiptNumber:   t.ReceiptNumber,
		ClientID:        t.ClientID,
		InvoiceID:       t.InvoiceID,
		TransactionDate: t.TransactionDate.Format(domain.DateLayout),
		IsReconciled:    t.IsReconciled,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
	if t.PaymentMethod != nil {
		pm := string(*t.PaymentMethod)
		resp.PaymentMethod = &pm
	}
	if t.ReconciliationDate != nil {
		d := t.ReconciliationDate.Format(domain.DateLayout)
		resp.ReconciliationDate = &d
	}
	return resp
}

// ToTrustTransactionResponses converts a slice of domain.TrustTransaction.
func ToTrustTransactionResponses(txns []domain.TrustTransaction) []TrustTransactionResponse {
	responses := make([]TrustTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTrustTransactionResponse(&txns[i])
	}
	return responses
}
