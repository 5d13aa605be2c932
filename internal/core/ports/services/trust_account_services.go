package services

import (
	"context"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
	"github.com/SscSPs/trust_ledger_app/internal/dto"
)

// TrustAccountSvcFacade defines operations on the advocate's trust account record
type TrustAccountSvcFacade interface {
	// GetTrustAccount retrieves the advocate's trust account.
	GetTrustAccount(ctx context.Context, advocateID string) (*domain.TrustAccount, error)

	// UpdateTrustAccountDetails changes bank details and policy fields. Balances cannot be edited.
	UpdateTrustAccountDetails(ctx context.Context, advocateID string, req dto.UpdateTrustAccountRequest) (*domain.TrustAccount, error)
}
