package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

type CreateVehicleCommand struct {
	vehicleID    kernel.UUID
	registration string
	kind         string
	capacity     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	registration, kind string,
	capacity decimal.Decimal,
) (CreateVehicleCommand, error) {
	if err := errors.Join(
		vehicleID.Validate(),
		requireText("registration", registration),
		kernel.ValidateNonNegative("capacity", capacity),
		kernel.ValidateScale("capacity", capacity, kernel.MeasureScale),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		vehicleID:    vehicleID,
		registration: strings.TrimSpace(registration),
		kind:         strings.TrimSpace(kind),
		capacity:     capacity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) VehicleID() kernel.UUID    { return c.vehicleID }
func (c CreateVehicleCommand) Registration() string      { return c.registration }
func (c CreateVehicleCommand) Kind() string              { return c.kind }
func (c CreateVehicleCommand) Capacity() decimal.Decimal { return c.capacity }
