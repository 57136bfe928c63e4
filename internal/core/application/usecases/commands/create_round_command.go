package commands

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateRoundCommandIsNotConstructed = errors.New(
	"CreateRoundCommand must be created via NewCreateRoundCommand constructor",
)

// CreateRoundCommand plans a delivery round for a day. Driver and vehicle are
// optional and may be assigned later.
type CreateRoundCommand struct {
	roundID   kernel.UUID
	date      time.Time
	driverID  *kernel.UUID
	vehicleID *kernel.UUID
	comment   string

	guard guard.ConstructorGuard
}

func NewCreateRoundCommand(
	roundID kernel.UUID,
	date time.Time,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	comment string,
) (CreateRoundCommand, error) {
	if err := errors.Join(
		roundID.Validate(),
		requireDate("date", date),
		validateOptionalID(driverID),
		validateOptionalID(vehicleID),
	); err != nil {
		return CreateRoundCommand{}, err
	}

	return CreateRoundCommand{
		roundID:   roundID,
		date:      date,
		driverID:  driverID,
		vehicleID: vehicleID,
		comment:   strings.TrimSpace(comment),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRoundCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoundCommandIsNotConstructed)
}

func (c CreateRoundCommand) RoundID() kernel.UUID    { return c.roundID }
func (c CreateRoundCommand) Date() time.Time         { return c.date }
func (c CreateRoundCommand) DriverID() *kernel.UUID  { return c.driverID }
func (c CreateRoundCommand) VehicleID() *kernel.UUID { return c.vehicleID }
func (c CreateRoundCommand) Comment() string         { return c.comment }

func requireDate(paramName string, date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
