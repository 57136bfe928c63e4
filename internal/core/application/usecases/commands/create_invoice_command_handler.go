package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CreateInvoiceCommandHandler struct {
	uowFactory     BillingUoWFactory
	defaultTaxRate decimal.Decimal
}

func NewCreateInvoiceCommandHandler(uowFactory BillingUoWFactory, defaultTaxRate decimal.Decimal) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory:     uowFactory,
		defaultTaxRate: defaultTaxRate,
	}
}

func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	taxRate := h.defaultTaxRate
	if cmd.TaxRate() != nil {
		taxRate = *cmd.TaxRate()
	}

	var created *invoice.Invoice
	err := withFreshCode(ctx, invoice.NewInvoiceCode, func(code kernel.Code) error {
		var err error
		created, err = h.create(ctx, cmd, code, taxRate)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (h CreateInvoiceCommandHandler) create(
	ctx context.Context,
	cmd CreateInvoiceCommand,
	code kernel.Code,
	taxRate decimal.Decimal,
) (*invoice.Invoice, error) {
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

	created, err := invoice.NewInvoice(cmd.InvoiceID(), code, cmd.ClientID(), cmd.IssueDate(), cmd.DueDate(),
		taxRate, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
