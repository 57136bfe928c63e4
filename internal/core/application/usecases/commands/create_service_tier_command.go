package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateServiceTierCommandIsNotConstructed = errors.New(
	"CreateServiceTierCommand must be created via NewCreateServiceTierCommand constructor",
)

type CreateServiceTierCommand struct {
	serviceTierID kernel.UUID
	name          string
	weightRate    decimal.Decimal
	volumeRate    decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateServiceTierCommand(
	serviceTierID kernel.UUID,
	name string,
	weightRate, volumeRate decimal.Decimal,
) (CreateServiceTierCommand, error) {
	if err := errors.Join(
		serviceTierID.Validate(),
		requireText("name", name),
		kernel.ValidateNonNegative("weight_rate", weightRate),
		kernel.ValidateNonNegative("volume_rate", volumeRate),
		kernel.ValidateScale("weight_rate", weightRate, kernel.RateScale),
		kernel.ValidateScale("volume_rate", volumeRate, kernel.RateScale),
	); err != nil {
		return CreateServiceTierCommand{}, err
	}

	return CreateServiceTierCommand{
		serviceTierID: serviceTierID,
		name:          strings.TrimSpace(name),
		weightRate:    weightRate,
		volumeRate:    volumeRate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateServiceTierCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceTierCommandIsNotConstructed)
}

func (c CreateServiceTierCommand) ServiceTierID() kernel.UUID  { return c.serviceTierID }
func (c CreateServiceTierCommand) Name() string                { return c.name }
func (c CreateServiceTierCommand) WeightRate() decimal.Decimal { return c.weightRate }
func (c CreateServiceTierCommand) VolumeRate() decimal.Decimal { return c.volumeRate }
