package services

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingEngine computes shipment charges. It is invoked once per shipment, at
// creation; the result is frozen into the shipment.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price returns base_rate + weight*weight_rate + volume*volume_rate in exact
// decimal arithmetic, rounded half away from zero to cents.
func (PricingEngine) Price(
	destination *tariff.Destination,
	serviceTier *tariff.ServiceTier,
	weight decimal.Decimal,
	volume decimal.Decimal,
) (decimal.Decimal, error) {
	if destination == nil || destination.Validate() != nil {
		return decimal.Zero, errs.NewValueIsRequiredError("destination")
	}
	if serviceTier == nil || serviceTier.Validate() != nil {
		return decimal.Zero, errs.NewValueIsRequiredError("service_tier")
	}
	if err := errors.Join(
		kernel.ValidateNonNegative("weight", weight),
		kernel.ValidateNonNegative("volume", volume),
		kernel.ValidateScale("weight", weight, kernel.MeasureScale),
		kernel.ValidateScale("volume", volume, kernel.MeasureScale),
	); err != nil {
		return decimal.Zero, err
	}

	return destination.BaseRate().
		Add(weight.Mul(serviceTier.WeightRate())).
		Add(volume.Mul(serviceTier.VolumeRate())).
		Round(kernel.MoneyScale), nil
}
