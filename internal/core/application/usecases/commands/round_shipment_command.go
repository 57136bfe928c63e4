package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrAddShipmentToRoundCommandIsNotConstructed = errors.New(
		"AddShipmentToRoundCommand must be created via NewAddShipmentToRoundCommand constructor",
	)
	ErrRemoveShipmentFromRoundCommandIsNotConstructed = errors.New(
		"RemoveShipmentFromRoundCommand must be created via NewRemoveShipmentFromRoundCommand constructor",
	)
)

// AddShipmentToRoundCommand appends a shipment at the end of a round's
// delivery sequence.
type AddShipmentToRoundCommand struct {
	roundCode    kernel.Code
	trackingCode kernel.Code

	guard guard.ConstructorGuard
}

func NewAddShipmentToRoundCommand(roundCode, trackingCode kernel.Code) (AddShipmentToRoundCommand, error) {
	if err := errors.Join(roundCode.Validate(), trackingCode.Validate()); err != nil {
		return AddShipmentToRoundCommand{}, err
	}

	return AddShipmentToRoundCommand{
		roundCode:    roundCode,
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AddShipmentToRoundCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentToRoundCommandIsNotConstructed)
}

func (c AddShipmentToRoundCommand) RoundCode() kernel.Code    { return c.roundCode }
func (c AddShipmentToRoundCommand) TrackingCode() kernel.Code { return c.trackingCode }

// RemoveShipmentFromRoundCommand drops a shipment from a round. Remaining
// members keep their positions.
type RemoveShipmentFromRoundCommand struct {
	roundCode    kernel.Code
	trackingCode kernel.Code

	guard guard.ConstructorGuard
}

func NewRemoveShipmentFromRoundCommand(roundCode, trackingCode kernel.Code) (RemoveShipmentFromRoundCommand, error) {
	if err := errors.Join(roundCode.Validate(), trackingCode.Validate()); err != nil {
		return RemoveShipmentFromRoundCommand{}, err
	}

	return RemoveShipmentFromRoundCommand{
		roundCode:    roundCode,
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveShipmentFromRoundCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentFromRoundCommandIsNotConstructed)
}

func (c RemoveShipmentFromRoundCommand) RoundCode() kernel.Code    { return c.roundCode }
func (c RemoveShipmentFromRoundCommand) TrackingCode() kernel.Code { return c.trackingCode }
