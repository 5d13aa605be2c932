package mapping

import (
	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/models"
)

// ToModelTrustTransfer converts a domain TrustTransfer to a model TrustTransfer
func ToModelTrustTransfer(d domain.TrustTransfer) models.TrustTransfer {
	return models.TrustTransfer{
		TransferID:            d.TransferID,
		TrustAccountID:        d.TrustAccountID,
		AdvocateID:            d.AdvocateID,
		MatterID:              d.MatterID,
		TransferType:          string(d.TransferType),
		Amount:                d.Amount,
		TrustBalanceBefore:    d.TrustBalanceBefore,
		TrustBalanceAfter:     d.TrustBalanceAfter,
		BusinessBalanceBefore: d.BusinessBalanceBefore,
		BusinessBalanceAfter:  d.BusinessBalanceAfter,
		Reason:                d.Reason,
		AuthorizationType:     string(d.AuthorizationType),
		InvoiceID:             d.InvoiceID,
		TransferDate:          d.TransferDate,
		ApprovedBy:            d.ApprovedBy,
		ApprovedAt:            d.ApprovedAt,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainTrustTransfer converts a model TrustTransfer to a domain TrustTransfer
func ToDomainTrustTransfer(m models.TrustTransfer) domain.TrustTransfer {
	return domain.TrustTransfer{
		TransferID:            m.TransferID,
		TrustAccountID:        m.TrustAccountID,
		AdvocateID:            m.AdvocateID,
		MatterID:              m.MatterID,
		TransferType:          domain.TransferType(m.TransferType),
		Amount:                m.Amount,
		TrustBalanceBefore:    m.TrustBalanceBefore,
		TrustBalanceAfter:     m.TrustBalanceAfter,
		BusinessBalanceBefore: m.BusinessBalanceBefore,
		BusinessBalanceAfter:  m.BusinessBalanceAfter,
		Reason:                m.Reason,
		AuthorizationType:     domain.AuthorizationType(m.AuthorizationType),
		InvoiceID:             m.InvoiceID,
		TransferDate:          m.TransferDate,
		ApprovedBy:            m.ApprovedBy,
		ApprovedAt:            m.ApprovedAt,
		CreatedAt:             m.CreatedAt,
	}
}

// ToDomainTrustTransferSlice converts a slice of model TrustTransfers to domain TrustTransfers
func ToDomainTrustTransferSlice(ms []models.TrustTransfer) []domain.TrustTransfer {
	ds := make([]domain.TrustTransfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrustTransfer(m)
	}
	return ds
}
