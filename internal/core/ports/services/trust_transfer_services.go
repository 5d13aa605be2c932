package services

import (
	"context"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
)

// TrustTransferSvcFacade moves funds from the trust account to the business account
type TrustTransferSvcFacade interface {
	// TransferToBusiness records an authorised trust-to-business transfer.
	TransferToBusiness(ctx context.Context, advocateID string, req dto.TransferToBusinessRequest) (*domain.TrustTransfer, error)

	// ListTransfers retrieves the advocate's transfers, newest first.
	ListTransfers(ctx context.Context, advocateID string, params dto.ListTrustTransfersParams) ([]domain.TrustTransfer, error)
}
