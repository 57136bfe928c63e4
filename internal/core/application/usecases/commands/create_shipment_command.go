package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand registers a parcel for a client. The price is
// computed once from the current tariffs and frozen on the shipment.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), clientID, destinationID, tierID,
//	    decimal.NewFromInt(10), decimal.NewFromInt(2), "two boxes")
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
//	fmt.Println(created.TrackingCode(), created.TotalAmount())
type CreateShipmentCommand struct {
	shipmentID    kernel.UUID
	clientID      kernel.UUID
	destinationID kernel.UUID
	serviceTierID kernel.UUID
	weight        decimal.Decimal
	volume        decimal.Decimal
	description   string

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	clientID kernel.UUID,
	destinationID kernel.UUID,
	serviceTierID kernel.UUID,
	weight decimal.Decimal,
	volume decimal.Decimal,
	description string,
) (CreateShipmentCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		clientID.Validate(),
		destinationID.Validate(),
		serviceTierID.Validate(),
		kernel.ValidateNonNegative("weight", weight),
		kernel.ValidateNonNegative("volume", volume),
		kernel.ValidateScale("weight", weight, kernel.MeasureScale),
		kernel.ValidateScale("volume", volume, kernel.MeasureScale),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		shipmentID:    shipmentID,
		clientID:      clientID,
		destinationID: destinationID,
		serviceTierID: serviceTierID,
		weight:        weight,
		volume:        volume,
		description:   strings.TrimSpace(description),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID    { return c.shipmentID }
func (c CreateShipmentCommand) ClientID() kernel.UUID      { return c.clientID }
func (c CreateShipmentCommand) DestinationID() kernel.UUID { return c.destinationID }
func (c CreateShipmentCommand) ServiceTierID() kernel.UUID { return c.serviceTierID }
func (c CreateShipmentCommand) Weight() decimal.Decimal    { return c.weight }
func (c CreateShipmentCommand) Volume() decimal.Decimal    { return c.volume }
func (c CreateShipmentCommand) Description() string        { return c.description }
