package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand opens an empty draft invoice for a client. A nil tax
// rate selects the handler's default rate.
type CreateInvoiceCommand struct {
	invoiceID kernel.UUID
	clientID  kernel.UUID
	issueDate time.Time
	dueDate   time.Time
	taxRate   *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateInvoiceCommand(
	invoiceID kernel.UUID,
	clientID kernel.UUID,
	issueDate time.Time,
	dueDate time.Time,
	taxRate *decimal.Decimal,
) (CreateInvoiceCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		clientID.Validate(),
		requireDate("issue_date", issueDate),
		requireDate("due_date", dueDate),
		validateOptionalTaxRate(taxRate),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return CreateInvoiceCommand{
		invoiceID: invoiceID,
		clientID:  clientID,
		issueDate: issueDate,
		dueDate:   dueDate,
		taxRate:   taxRate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

func (c CreateInvoiceCommand) InvoiceID() kernel.UUID    { return c.invoiceID }
func (c CreateInvoiceCommand) ClientID() kernel.UUID     { return c.clientID }
func (c CreateInvoiceCommand) IssueDate() time.Time      { return c.issueDate }
func (c CreateInvoiceCommand) DueDate() time.Time        { return c.dueDate }
func (c CreateInvoiceCommand) TaxRate() *decimal.Decimal { return c.taxRate }

func validateOptionalTaxRate(taxRate *decimal.Decimal) error {
	if taxRate == nil {
		return nil
	}
	return kernel.ValidateScale("tax_rate", *taxRate, kernel.PercentScale)
}
