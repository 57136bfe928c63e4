package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrAttachShipmentCommandIsNotConstructed = errors.New(
		"AttachShipmentCommand must be created via NewAttachShipmentCommand constructor",
	)
	ErrDetachShipmentCommandIsNotConstructed = errors.New(
		"DetachShipmentCommand must be created via NewDetachShipmentCommand constructor",
	)
)

// AttachShipmentCommand bills a shipment on a draft invoice at its frozen
// price.
type AttachShipmentCommand struct {
	invoiceCode  kernel.Code
	trackingCode kernel.Code

	guard guard.ConstructorGuard
}

func NewAttachShipmentCommand(invoiceCode, trackingCode kernel.Code) (AttachShipmentCommand, error) {
	if err := errors.Join(invoiceCode.Validate(), trackingCode.Validate()); err != nil {
		return AttachShipmentCommand{}, err
	}

	return AttachShipmentCommand{
		invoiceCode:  invoiceCode,
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AttachShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAttachShipmentCommandIsNotConstructed)
}

func (c AttachShipmentCommand) InvoiceCode() kernel.Code  { return c.invoiceCode }
func (c AttachShipmentCommand) TrackingCode() kernel.Code { return c.trackingCode }

type DetachShipmentCommand struct {
	invoiceCode  kernel.Code
	trackingCode kernel.Code

	guard guard.ConstructorGuard
}

func NewDetachShipmentCommand(invoiceCode, trackingCode kernel.Code) (DetachShipmentCommand, error) {
	if err := errors.Join(invoiceCode.Validate(), trackingCode.Validate()); err != nil {
		return DetachShipmentCommand{}, err
	}

	return DetachShipmentCommand{
		invoiceCode:  invoiceCode,
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DetachShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDetachShipmentCommandIsNotConstructed)
}

func (c DetachShipmentCommand) InvoiceCode() kernel.Code  { return c.invoiceCode }
func (c DetachShipmentCommand) TrackingCode() kernel.Code { return c.trackingCode }
