package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/pkg/errs"
)

// AttachShipmentCommandHandler adds a line to a draft invoice. The invoice
// row is locked for the duration so totals are recomputed from a consistent
// line set, then the shipment row so concurrent attaches of one shipment to
// different invoices serialize. A shipment billed on another live invoice is
// rejected.
type AttachShipmentCommandHandler struct {
	uowFactory BillingUoWFactory
}

func NewAttachShipmentCommandHandler(uowFactory BillingUoWFactory) AttachShipmentCommandHandler {
	return AttachShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AttachShipmentCommandHandler) Handle(ctx context.Context, cmd AttachShipmentCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices := uow.InvoiceRepository()
	inv, err := invoices.GetByCodeForUpdate(ctx, cmd.InvoiceCode())
	if err != nil {
		return nil, err
	}

	billed, err := uow.ShipmentRepository().GetByTrackingCodeForUpdate(ctx, cmd.TrackingCode())
	if err != nil {
		return nil, asInvalidReference("tracking_code", err)
	}
	if !billed.BelongsTo(inv.ClientID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("tracking_code",
			fmt.Errorf("shipment %s does not belong to the invoice client", billed.TrackingCode()))
	}

	other, err := invoices.FindActiveByShipment(ctx, billed.ID())
	switch {
	case err == nil && !other.ID().IsEqual(inv.ID()):
		return nil, errs.NewConflictErrorWithCause("tracking_code", cmd.TrackingCode(),
			fmt.Errorf("shipment already billed on invoice %s", other.Code()))
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if _, err = inv.AttachShipment(billed.ID(), billed.TotalAmount(), time.Now()); err != nil {
		return nil, err
	}

	if err = invoices.Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}

type DetachShipmentCommandHandler struct {
	uowFactory BillingUoWFactory
}

func NewDetachShipmentCommandHandler(uowFactory BillingUoWFactory) DetachShipmentCommandHandler {
	return DetachShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DetachShipmentCommandHandler) Handle(ctx context.Context, cmd DetachShipmentCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices := uow.InvoiceRepository()
	inv, err := invoices.GetByCodeForUpdate(ctx, cmd.InvoiceCode())
	if err != nil {
		return nil, err
	}

	billed, err := uow.ShipmentRepository().GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return nil, err
	}

	if err = inv.DetachShipment(billed.ID(), time.Now()); err != nil {
		return nil, err
	}

	if err = invoices.Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}
