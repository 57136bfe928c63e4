package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeServiceTierRatesCommandIsNotConstructed = errors.New(
	"ChangeServiceTierRatesCommand must be created via NewChangeServiceTierRatesCommand constructor",
)

type ChangeServiceTierRatesCommand struct {
	serviceTierID kernel.UUID
	weightRate    decimal.Decimal
	volumeRate    decimal.Decimal

	guard guard.ConstructorGuard
}

func NewChangeServiceTierRatesCommand(
	serviceTierID kernel.UUID,
	weightRate, volumeRate decimal.Decimal,
) (ChangeServiceTierRatesCommand, error) {
	if err := errors.Join(
		serviceTierID.Validate(),
		kernel.ValidateNonNegative("weight_rate", weightRate),
		kernel.ValidateNonNegative("volume_rate", volumeRate),
		kernel.ValidateScale("weight_rate", weightRate, kernel.RateScale),
		kernel.ValidateScale("volume_rate", volumeRate, kernel.RateScale),
	); err != nil {
		return ChangeServiceTierRatesCommand{}, err
	}

	return ChangeServiceTierRatesCommand{
		serviceTierID: serviceTierID,
		weightRate:    weightRate,
		volumeRate:    volumeRate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeServiceTierRatesCommand) Validate() error {
	return c.guard.Validate(ErrChangeServiceTierRatesCommandIsNotConstructed)
}

func (c ChangeServiceTierRatesCommand) ServiceTierID() kernel.UUID  { return c.serviceTierID }
func (c ChangeServiceTierRatesCommand) WeightRate() decimal.Decimal { return c.weightRate }
func (c ChangeServiceTierRatesCommand) VolumeRate() decimal.Decimal { return c.volumeRate }
