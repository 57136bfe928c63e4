package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
)

// CreateShipmentCommandHandler prices and registers shipments. A tracking
// code collision is retried with a fresh code in a new transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	pricing    services.PricingEngine
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPricingEngine(),
	}
}

func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *shipment.Shipment
	err := withFreshCode(ctx, shipment.NewTrackingCode, func(code kernel.Code) error {
		var err error
		created, err = h.create(ctx, cmd, code)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (h CreateShipmentCommandHandler) create(
	ctx context.Context,
	cmd CreateShipmentCommand,
	code kernel.Code,
) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return nil, asInvalidReference("client_id", err)
	}

	destination, err := uow.DestinationRepository().Get(ctx, cmd.DestinationID())
	if err != nil {
		return nil, asInvalidReference("destination_id", err)
	}

	tier, err := uow.ServiceTierRepository().Get(ctx, cmd.ServiceTierID())
	if err != nil {
		return nil, asInvalidReference("service_tier_id", err)
	}

	amount, err := h.pricing.Price(destination, tier, cmd.Weight(), cmd.Volume())
	if err != nil {
		return nil, err
	}

	created, err := shipment.NewShipment(
		cmd.ShipmentID(),
		code,
		cmd.ClientID(),
		destination.ID(),
		tier.ID(),
		cmd.Weight(),
		cmd.Volume(),
		cmd.Description(),
		amount,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
