package mapping

import (
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/models"
)

// ToModelTrustTransaction converts a domain TrustTransaction to a model TrustTransaction
func ToModelTrustTransaction(d domain.TrustTransaction) models.TrustTransaction {
	var method *string
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		method = &m
	}
	return models.TrustTransaction{
		TransactionID:      d.TransactionID,
		TrustAccountID:     d.TrustAccountID,
		RetainerID:         d.RetainerID,
		MatterID:           d.MatterID,
		AdvocateID:         d.AdvocateID,
		TransactionType:    string(d.TransactionType),
		Direction:          string(d.Direction),
		Amount:             d.Amount,
		BalanceBefore:      d.BalanceBefore,
		BalanceAfter:       d.BalanceAfter,
		Reference:          d.Reference,
		Description:        d.Description,
		ReceiptNumber:      d.ReceiptNumber,
		PaymentMethod:      method,
		ClientID:           d.ClientID,
		InvoiceID:          d.InvoiceID,
		TransactionDate:    d.TransactionDate,
		IsReconciled:       d.IsReconciled,
		ReconciliationDate: d.ReconciliationDate,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrustTransaction converts a model TrustTransaction to a domain TrustTransaction
func ToDomainTrustTransaction(m models.TrustTransaction) domain.TrustTransaction {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.TrustTransaction{
		TransactionID:      m.TransactionID,
		TrustAccountID:     m.TrustAccountID,
		RetainerID:         m.RetainerID,
		MatterID:           m.MatterID,
		AdvocateID:         m.AdvocateID,
		TransactionType:    domain.TransactionType(m.TransactionType),
		Direction:          domain.Direction(m.Direction),
		Amount:             m.Amount,
		BalanceBefore:      m.BalanceBefore,
		BalanceAfter:       m.BalanceAfter,
		Reference:          m.Reference,
		Description:        m.Description,
		ReceiptNumber:      m.ReceiptNumber,
		PaymentMethod:      method,
		ClientID:           m.ClientID,
		InvoiceID:          m.InvoiceID,
		TransactionDate:    m.TransactionDate,
		IsReconciled:       m.IsReconciled,
		ReconciliationDate: m.ReconciliationDate,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTrustTransactionSlice converts a slice of model TrustTransactions to domain TrustTransactions
func ToDomainTrustTransactionSlice(ms []models.TrustTransaction) []domain.TrustTransaction {
	ds := make([]domain.TrustTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrustTransaction(m)
	}
	return ds
}
