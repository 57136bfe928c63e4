package commands

import (
	"errors"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrChangeInvoiceTaxRateCommandIsNotConstructed = errors.New(
		"ChangeInvoiceTaxRateCommand must be created via NewChangeInvoiceTaxRateCommand constructor",
	)
	ErrChangeInvoiceStatusCommandIsNotConstructed = errors.New(
		"ChangeInvoiceStatusCommand must be created via NewChangeInvoiceStatusCommand constructor",
	)
)

type ChangeInvoiceTaxRateCommand struct {
	invoiceCode kernel.Code
	taxRate     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewChangeInvoiceTaxRateCommand(invoiceCode kernel.Code, taxRate decimal.Decimal) (ChangeInvoiceTaxRateCommand, error) {
	if err := errors.Join(
		invoiceCode.Validate(),
		kernel.ValidateNonNegative("tax_rate", taxRate),
		kernel.ValidateScale("tax_rate", taxRate, kernel.PercentScale),
	); err != nil {
		return ChangeInvoiceTaxRateCommand{}, err
	}

	return ChangeInvoiceTaxRateCommand{
		invoiceCode: invoiceCode,
		taxRate:     taxRate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeInvoiceTaxRateCommand) Validate() error {
	return c.guard.Validate(ErrChangeInvoiceTaxRateCommandIsNotConstructed)
}

func (c ChangeInvoiceTaxRateCommand) InvoiceCode() kernel.Code { return c.invoiceCode }
func (c ChangeInvoiceTaxRateCommand) TaxRate() decimal.Decimal { return c.taxRate }

// ChangeInvoiceStatusCommand issues or cancels an invoice. PAID is reached
// through payments only and is rejected here by the transition table.
type ChangeInvoiceStatusCommand struct {
	invoiceCode kernel.Code
	status      invoice.Status

	guard guard.ConstructorGuard
}

func NewChangeInvoiceStatusCommand(invoiceCode kernel.Code, status invoice.Status) (ChangeInvoiceStatusCommand, error) {
	if err := errors.Join(invoiceCode.Validate(), status.Validate()); err != nil {
		return ChangeInvoiceStatusCommand{}, err
	}

	return ChangeInvoiceStatusCommand{
		invoiceCode: invoiceCode,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeInvoiceStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeInvoiceStatusCommandIsNotConstructed)
}

func (c ChangeInvoiceStatusCommand) InvoiceCode() kernel.Code { return c.invoiceCode }
func (c ChangeInvoiceStatusCommand) Status() invoice.Status   { return c.status }
