package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/shipment"
)

type ChangeShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewChangeShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends a tracking event. The shipment row is locked so concurrent
// updates apply one after the other and event timestamps stay ordered.
func (h ChangeShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeShipmentStatusCommand,
) (shipment.TrackingEvent, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.TrackingEvent{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.TrackingEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.GetByTrackingCodeForUpdate(ctx, cmd.TrackingCode())
	if err != nil {
		return shipment.TrackingEvent{}, err
	}

	event, err := aggregate.ChangeStatus(cmd.Status(), cmd.Location(), cmd.Comment(), time.Now())
	if err != nil {
		return shipment.TrackingEvent{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return shipment.TrackingEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.TrackingEvent{}, err
	}

	return event, nil
}
