package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/trust_ledger_app/internal/core/domain"
)

// ViolationStatusResponse is the wire form of a compliance check.
type ViolationStatusResponse struct {
	TrustAccountID   string          `json:"trustAccountID"`
	HasViolation     bool            `json:"hasViolation"`
	Balance          decimal.Decimal `json:"balance"`
	Message          string          `json:"message"`
	IsLowBalance     bool            `json:"isLowBalance"`
	AlertAlreadySent bool            `json:"alertAlreadySent"`
}

// ToViolationStatusResponse converts a domain.ViolationStatus to its response DTO.
func ToViolationStatusResponse(s *domain.ViolationStatus) ViolationStatusResponse {
	return ViolationStatusResponse{
		TrustAccountID:   s.TrustAccountID,
		HasViolation:     s.HasViolation,
		Balance:          s.Balance,
		Message:          s.Message,
		IsLowBalance:     s.IsLowBalance,
		AlertAlreadySent: s.AlertAlreadySent,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}
