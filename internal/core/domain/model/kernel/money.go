package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// maxMoneyCents is the largest integer a JSON number carries exactly.
const maxMoneyCents int64 = 1 << 53

// Money is a positive amount in cents. Rates and offer amounts use it, so
// comparisons and persistence never go through floating point.
//
//	rate, err := kernel.NewMoney(185050)
//	fmt.Println(rate) // 1850.50
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney builds Money from a number of cents. The amount must be greater than zero.
func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid", fmt.Errorf("%d is not greater than 0", cents))
	}
	if cents > maxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", cents, 1, maxMoneyCents)
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsEqual compares two amounts. Both must be constructed.
func (m Money) IsEqual(other Money) bool {
	return m.Validate() == nil && other.Validate() == nil && m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "1850.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
