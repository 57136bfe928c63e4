package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand moves a shipment along its lifecycle and
// records where it was seen.
type ChangeShipmentStatusCommand struct {
	trackingCode kernel.Code
	status       shipment.Status
	location     string
	comment      string

	guard guard.ConstructorGuard
}

func NewChangeShipmentStatusCommand(
	trackingCode kernel.Code,
	status shipment.Status,
	location, comment string,
) (ChangeShipmentStatusCommand, error) {
	if err := errors.Join(
		trackingCode.Validate(),
		status.Validate(),
		requireText("location", location),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return ChangeShipmentStatusCommand{
		trackingCode: trackingCode,
		status:       status,
		location:     strings.TrimSpace(location),
		comment:      strings.TrimSpace(comment),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

func (c ChangeShipmentStatusCommand) TrackingCode() kernel.Code { return c.trackingCode }
func (c ChangeShipmentStatusCommand) Status() shipment.Status   { return c.status }
func (c ChangeShipmentStatusCommand) Location() string          { return c.location }
func (c ChangeShipmentStatusCommand) Comment() string           { return c.comment }
