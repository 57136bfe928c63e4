package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ValidateNonNegative rejects amounts, rates and measures below zero.
func ValidateNonNegative(paramName string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s must not be negative", value))
	}
	return nil
}

// ValidatePositive rejects zero and negative amounts.
func ValidatePositive(paramName string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s must be greater than 0", value))
	}
	return nil
}

// Decimal places the store keeps for each kind of value.
const (
	MoneyScale   int32 = 2
	MeasureScale int32 = 3
	RateScale    int32 = 4
	PercentScale int32 = 2
)

// ValidateScale rejects values carrying more significant decimal places than
// places. Trailing zeros are accepted.
func ValidateScale(paramName string, value decimal.Decimal, places int32) error {
	if !value.Equal(value.Truncate(places)) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s has more than %d decimal places", value, places))
	}
	return nil
}

// ValidateMoney rejects negative amounts and sub-cent precision.
func ValidateMoney(paramName string, value decimal.Decimal) error {
	if err := ValidateNonNegative(paramName, value); err != nil {
		return err
	}
	return ValidateScale(paramName, value, MoneyScale)
}
