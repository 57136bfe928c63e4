package commands

import (
	"context"
	"fmt"
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

type FileClaimCommandHandler struct {
	uowFactory CaseUoWFactory
}

func NewFileClaimCommandHandler(uowFactory CaseUoWFactory) FileClaimCommandHandler {
	return FileClaimCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h FileClaimCommandHandler) Handle(ctx context.Context, cmd FileClaimCommand) (*cases.Claim, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var filed *cases.Claim
	err := withFreshCode(ctx, cases.NewClaimCode, func(code kernel.Code) error {
		var err error
		filed, err = h.file(ctx, cmd, code)
		return err
	})
	if err != nil {
		return nil, err
	}

	return filed, nil
}

func (h FileClaimCommandHandler) file(ctx context.Context, cmd FileClaimCommand, code kernel.Code) (*cases.Claim, error) {
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

	var shipmentID, invoiceID *kernel.UUID

	if trackingCode := cmd.TrackingCode(); trackingCode != nil {
		found, err := uow.ShipmentRepository().GetByTrackingCode(ctx, *trackingCode)
		if err != nil {
			return nil, asInvalidReference("tracking_code", err)
		}
		if !found.BelongsTo(cmd.ClientID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("tracking_code",
				fmt.Errorf("shipment %s belongs to another client", found.TrackingCode()))
		}
		id := found.ID()
		shipmentID = &id
	}

	if invoiceCode := cmd.InvoiceCode(); invoiceCode != nil {
		found, err := uow.InvoiceRepository().GetByCode(ctx, *invoiceCode)
		if err != nil {
			return nil, asInvalidReference("invoice_code", err)
		}
		if !found.ClientID().IsEqual(cmd.ClientID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("invoice_code",
				fmt.Errorf("invoice %s belongs to another client", found.Code()))
		}
		id := found.ID()
		invoiceID = &id
	}

	filed, err := cases.NewClaim(cmd.ClaimID(), code, cmd.ClientID(), cmd.Type(), cmd.Description(),
		shipmentID, invoiceID, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ClaimRepository().Add(ctx, filed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return filed, nil
}
