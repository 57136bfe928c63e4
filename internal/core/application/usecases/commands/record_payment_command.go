package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand registers money received against an invoice.
//
// Example:
//
//	cmd, err := NewRecordPaymentCommand(code, kernel.NewUUID(), decimal.RequireFromString("1190.00"),
//	    invoice.Wire, "TRX-2291", "")
//	if err != nil {
//	    return err
//	}
//	inv, err := handler.Handle(ctx, cmd)
//	// inv.Status() == invoice.Paid once payments cover the total
type RecordPaymentCommand struct {
	invoiceCode kernel.Code
	paymentID   kernel.UUID
	amount      decimal.Decimal
	method      invoice.Method
	reference   string
	comment     string

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	invoiceCode kernel.Code,
	paymentID kernel.UUID,
	amount decimal.Decimal,
	method invoice.Method,
	reference, comment string,
) (RecordPaymentCommand, error) {
	if err := errors.Join(
		invoiceCode.Validate(),
		paymentID.Validate(),
		kernel.ValidatePositive("amount", amount),
		kernel.ValidateScale("amount", amount, kernel.MoneyScale),
		method.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		invoiceCode: invoiceCode,
		paymentID:   paymentID,
		amount:      amount,
		method:      method,
		reference:   strings.TrimSpace(reference),
		comment:     strings.TrimSpace(comment),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) InvoiceCode() kernel.Code { return c.invoiceCode }
func (c RecordPaymentCommand) PaymentID() kernel.UUID   { return c.paymentID }
func (c RecordPaymentCommand) Amount() decimal.Decimal  { return c.amount }
func (c RecordPaymentCommand) Method() invoice.Method   { return c.method }
func (c RecordPaymentCommand) Reference() string        { return c.reference }
func (c RecordPaymentCommand) Comment() string          { return c.comment }
