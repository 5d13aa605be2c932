package repositories

import (
	"context"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// MatterReader resolves matters owned by the practice-management side of the app
type MatterReader interface {
	// FindMatterForAdvocate returns the matter with its active retainer, or
	// apperrors.ErrNotFound when it does not exist or belongs to another advocate.
	FindMatterForAdvocate(ctx context.Context, advocateID, matterID string) (*domain.Matter, error)
}
