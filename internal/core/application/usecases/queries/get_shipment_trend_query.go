package queries

import (
	"errors"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	DefaultTrendMonths = 6
	MaxTrendMonths     = 36
)

var ErrGetShipmentTrendQueryIsNotConstructed = errors.New(
	"GetShipmentTrendQuery must be created via NewGetShipmentTrendQuery constructor",
)

// GetShipmentTrendQuery counts shipments per calendar month (UTC) for the
// last months ending with the month of now. Zero months means the default.
type GetShipmentTrendQuery struct {
	months int
	now    time.Time

	guard guard.ConstructorGuard
}

func NewGetShipmentTrendQuery(months int, now time.Time) (GetShipmentTrendQuery, error) {
	if months == 0 {
		months = DefaultTrendMonths
	}
	if months < 1 || months > MaxTrendMonths {
		return GetShipmentTrendQuery{}, errs.NewValueIsOutOfRangeError("months", months, 1, MaxTrendMonths)
	}
	if now.IsZero() {
		return GetShipmentTrendQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetShipmentTrendQuery{months: months, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentTrendQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrendQueryIsNotConstructed)
}

func (q GetShipmentTrendQuery) Months() int    { return q.months }
func (q GetShipmentTrendQuery) Now() time.Time { return q.now }

// MonthlyCount is one bucket; Month is the first instant of the month.
type MonthlyCount struct {
	Month time.Time
	Count int64
}
