package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrAmountTooLarge  = errors.New("amount is too large")
)

// amountLimit is the first value that no longer fits NUMERIC(14,2).
var amountLimit = decimal.New(1, 12)

// ValidateAmount checks that amount is positive and fits a stored money column
// without rounding.
func ValidateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return ErrInvalidAmount
	case amount.Exponent() < -2 && !amount.Equal(amount.Truncate(2)):
		return fmt.Errorf("%w: %s", ErrAmountPrecision, amount)
	case amount.GreaterThanOrEqual(amountLimit):
		return fmt.Errorf("%w: %s", ErrAmountTooLarge, amount)
	}
	return nil
}
