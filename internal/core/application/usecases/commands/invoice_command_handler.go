package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
)

type ChangeInvoiceTaxRateCommandHandler struct {
	uowFactory BillingUoWFactory
}

func NewChangeInvoiceTaxRateCommandHandler(uowFactory BillingUoWFactory) ChangeInvoiceTaxRateCommandHandler {
	return ChangeInvoiceTaxRateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeInvoiceTaxRateCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeInvoiceTaxRateCommand,
) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateInvoice(ctx, h.uowFactory, cmd.InvoiceCode(), func(inv *invoice.Invoice) error {
		return inv.ChangeTaxRate(cmd.TaxRate(), time.Now())
	})
}

type ChangeInvoiceStatusCommandHandler struct {
	uowFactory BillingUoWFactory
}

func NewChangeInvoiceStatusCommandHandler(uowFactory BillingUoWFactory) ChangeInvoiceStatusCommandHandler {
	return ChangeInvoiceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeInvoiceStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeInvoiceStatusCommand,
) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateInvoice(ctx, h.uowFactory, cmd.InvoiceCode(), func(inv *invoice.Invoice) error {
		return inv.ChangeStatus(cmd.Status(), time.Now())
	})
}

// mutateInvoice applies change to the locked invoice and persists it.
func mutateInvoice(
	ctx context.Context,
	uowFactory BillingUoWFactory,
	code kernel.Code,
	change func(*invoice.Invoice) error,
) (*invoice.Invoice, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices := uow.InvoiceRepository()
	inv, err := invoices.GetByCodeForUpdate(ctx, code)
	if err != nil {
		return nil, err
	}

	if err = change(inv); err != nil {
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
