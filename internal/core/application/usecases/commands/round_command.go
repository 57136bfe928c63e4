package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/pkg/guard"
)

var (
	ErrAssignRoundCrewCommandIsNotConstructed = errors.New(
		"AssignRoundCrewCommand must be created via NewAssignRoundCrewCommand constructor",
	)
	ErrChangeRoundStatusCommandIsNotConstructed = errors.New(
		"ChangeRoundStatusCommand must be created via NewChangeRoundStatusCommand constructor",
	)
	ErrDeleteRoundCommandIsNotConstructed = errors.New(
		"DeleteRoundCommand must be created via NewDeleteRoundCommand constructor",
	)
)

// AssignRoundCrewCommand replaces the driver and vehicle of a round. A nil
// reference unassigns.
type AssignRoundCrewCommand struct {
	roundCode kernel.Code
	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRoundCrewCommand(roundCode kernel.Code, driverID, vehicleID *kernel.UUID) (AssignRoundCrewCommand, error) {
	if err := errors.Join(
		roundCode.Validate(),
		validateOptionalID(driverID),
		validateOptionalID(vehicleID),
	); err != nil {
		return AssignRoundCrewCommand{}, err
	}

	return AssignRoundCrewCommand{
		roundCode: roundCode,
		driverID:  driverID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRoundCrewCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoundCrewCommandIsNotConstructed)
}

func (c AssignRoundCrewCommand) RoundCode() kernel.Code  { return c.roundCode }
func (c AssignRoundCrewCommand) DriverID() *kernel.UUID  { return c.driverID }
func (c AssignRoundCrewCommand) VehicleID() *kernel.UUID { return c.vehicleID }

type ChangeRoundStatusCommand struct {
	roundCode kernel.Code
	status    round.Status

	guard guard.ConstructorGuard
}

func NewChangeRoundStatusCommand(roundCode kernel.Code, status round.Status) (ChangeRoundStatusCommand, error) {
	if err := errors.Join(roundCode.Validate(), status.Validate()); err != nil {
		return ChangeRoundStatusCommand{}, err
	}

	return ChangeRoundStatusCommand{
		roundCode: roundCode,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRoundStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRoundStatusCommandIsNotConstructed)
}

func (c ChangeRoundStatusCommand) RoundCode() kernel.Code { return c.roundCode }
func (c ChangeRoundStatusCommand) Status() round.Status   { return c.status }

// DeleteRoundCommand removes a round and its memberships. The shipments stay.
type DeleteRoundCommand struct {
	roundCode kernel.Code

	guard guard.ConstructorGuard
}

func NewDeleteRoundCommand(roundCode kernel.Code) (DeleteRoundCommand, error) {
	if err := roundCode.Validate(); err != nil {
		return DeleteRoundCommand{}, err
	}

	return DeleteRoundCommand{
		roundCode: roundCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRoundCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRoundCommandIsNotConstructed)
}

func (c DeleteRoundCommand) RoundCode() kernel.Code { return c.roundCode }
