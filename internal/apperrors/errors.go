package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrNotAuthenticated indicates that no identity could be resolved for attribution.
var ErrNotAuthenticated = errors.New("user not authenticated")

// ErrConflict indicates a concurrent modification; the operation can be retried.
var ErrConflict = errors.New("concurrent modification, please retry")

// ErrInsufficientFunds is matched by every *InsufficientFundsError.
var ErrInsufficientFunds = errors.New("insufficient trust account balance")

// MoneyFormatter renders an amount for human-readable messages.
type MoneyFormatter func(amount decimal.Decimal) string

// InsufficientFundsError is returned when a drawdown or transfer would take a
// trust account below zero. Its message is audit-grade and shown verbatim.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
	format    MoneyFormatter
}

// NewInsufficientFundsError builds the error. A nil formatter prints plain decimals.
func NewInsufficientFundsError(available, requested decimal.Decimal, format MoneyFormatter) *InsufficientFundsError {
	return &InsufficientFundsError{Available: available, Requested: requested, format: format}
}

func (e *InsufficientFundsError) Error() string {
	f := e.format
	if f == nil {
		f = func(d decimal.Decimal) string { return d.StringFixed(2) }
	}
	return fmt.Sprintf("Insufficient trust account balance. Available: %s, Required: %s", f(e.Available), f(e.Requested))
}

// Is lets errors.Is(err, ErrInsufficientFunds) match.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
