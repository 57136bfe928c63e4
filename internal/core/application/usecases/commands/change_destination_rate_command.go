package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeDestinationRateCommandIsNotConstructed = errors.New(
	"ChangeDestinationRateCommand must be created via NewChangeDestinationRateCommand constructor",
)

// ChangeDestinationRateCommand updates the base rate used to price future
// shipments. Shipments already priced keep their amount.
type ChangeDestinationRateCommand struct {
	destinationID kernel.UUID
	baseRate      decimal.Decimal

	guard guard.ConstructorGuard
}

func NewChangeDestinationRateCommand(
	destinationID kernel.UUID,
	baseRate decimal.Decimal,
) (ChangeDestinationRateCommand, error) {
	if err := errors.Join(
		destinationID.Validate(),
		kernel.ValidateMoney("base_rate", baseRate),
	); err != nil {
		return ChangeDestinationRateCommand{}, err
	}

	return ChangeDestinationRateCommand{
		destinationID: destinationID,
		baseRate:      baseRate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDestinationRateCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationRateCommandIsNotConstructed)
}

func (c ChangeDestinationRateCommand) DestinationID() kernel.UUID { return c.destinationID }
func (c ChangeDestinationRateCommand) BaseRate() decimal.Decimal  { return c.baseRate }
