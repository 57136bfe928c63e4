package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateDestinationCommandIsNotConstructed = errors.New(
	"CreateDestinationCommand must be created via NewCreateDestinationCommand constructor",
)

type CreateDestinationCommand struct {
	destinationID kernel.UUID
	city          string
	country       string
	baseRate      decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateDestinationCommand(
	destinationID kernel.UUID,
	city, country string,
	baseRate decimal.Decimal,
) (CreateDestinationCommand, error) {
	if err := errors.Join(
		destinationID.Validate(),
		requireText("city", city),
		requireText("country", country),
		kernel.ValidateMoney("base_rate", baseRate),
	); err != nil {
		return CreateDestinationCommand{}, err
	}

	return CreateDestinationCommand{
		destinationID: destinationID,
		city:          strings.TrimSpace(city),
		country:       strings.TrimSpace(country),
		baseRate:      baseRate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDestinationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDestinationCommandIsNotConstructed)
}

func (c CreateDestinationCommand) DestinationID() kernel.UUID { return c.destinationID }
func (c CreateDestinationCommand) City() string               { return c.city }
func (c CreateDestinationCommand) Country() string            { return c.country }
func (c CreateDestinationCommand) BaseRate() decimal.Decimal  { return c.baseRate }
