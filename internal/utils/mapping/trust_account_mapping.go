package mapping

import (
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/models"
)

// ToModelTrustAccount converts a domain TrustAccount to a model TrustAccount
func ToModelTrustAccount(d domain.TrustAccount) models.TrustAccount {
	return models.TrustAccount{
		TrustAccountID:            d.TrustAccountID,
		AdvocateID:                d.AdvocateID,
		BankName:                  d.BankName,
		AccountHolderName:         d.AccountHolderName,
		AccountNumber:             d.AccountNumber,
		BranchCode:                d.BranchCode,
		AccountType:               string(d.AccountType),
		CurrentBalance:            d.CurrentBalance,
		LPCCompliant:              d.LPCCompliant,
		ReconciliationDayOfMonth:  d.ReconciliationDayOfMonth,
		LowBalanceThreshold:       d.LowBalanceThreshold,
		NegativeBalanceAlertSent:  d.NegativeBalanceAlertSent,
		LastReconciliationDate:    d.LastReconciliationDate,
		LastReconciliationBalance: d.LastReconciliationBalance,
		Version:                   d.Version,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrustAccount converts a model TrustAccount to a domain TrustAccount
func ToDomainTrustAccount(m models.TrustAccount) domain.TrustAccount {
	return domain.TrustAccount{
		TrustAccountID:            m.TrustAccountID,
		AdvocateID:                m.AdvocateID,
		BankName:                  m.BankName,
		AccountHolderName:         m.AccountHolderName,
		AccountNumber:             m.AccountNumber,
		BranchCode:                m.BranchCode,
		AccountType:               domain.AccountType(m.AccountType),
		CurrentBalance:            m.CurrentBalance,
		LPCCompliant:              m.LPCCompliant,
		ReconciliationDayOfMonth:  m.ReconciliationDayOfMonth,
		LowBalanceThreshold:       m.LowBalanceThreshold,
		NegativeBalanceAlertSent:  m.NegativeBalanceAlertSent,
		LastReconciliationDate:    m.LastReconciliationDate,
		LastReconciliationBalance: m.LastReconciliationBalance,
		Version:                   m.Version,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTrustAccountSlice converts a slice of model TrustAccounts to domain TrustAccounts
func ToDomainTrustAccountSlice(ms []models.TrustAccount) []domain.TrustAccount {
	ds := make([]domain.TrustAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrustAccount(m)
	}
	return ds
}
