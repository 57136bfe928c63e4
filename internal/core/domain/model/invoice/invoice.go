package invoice

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	codePrefix = "F"
	codeLength = 8
)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// NewInvoiceCode returns a random invoice code candidate.
func NewInvoiceCode() kernel.Code {
	return kernel.GenerateCode(codePrefix, codeLength)
}

// Line bills one shipment at the amount frozen on that shipment.
type Line struct {
	shipmentID kernel.UUID
	amount     decimal.Decimal
	addedAt    time.Time
}

func RestoreLine(shipmentID kernel.UUID, amount decimal.Decimal, addedAt time.Time) Line {
	return Line{shipmentID: shipmentID, amount: amount, addedAt: addedAt.UTC()}
}

func (l Line) ShipmentID() kernel.UUID { return l.shipmentID }
func (l Line) Amount() decimal.Decimal { return l.amount }
func (l Line) AddedAt() time.Time      { return l.addedAt }

// Invoice aggregates shipments of one client. Totals are always derived from
// the net amount and tax rate; payments only accumulate.
type Invoice struct {
	kernel.EventRecorder

	id        kernel.UUID
	code      kernel.Code
	clientID  kernel.UUID
	issueDate time.Time
	dueDate   time.Time
	totals    Totals
	status    Status
	createdAt time.Time
	lines     []Line
	payments  []Payment

	guard guard.ConstructorGuard
}

func NewInvoice(
	id kernel.UUID,
	code kernel.Code,
	clientID kernel.UUID,
	issueDate time.Time,
	dueDate time.Time,
	taxRate decimal.Decimal,
	createdAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		status:    Draft,
		createdAt: createdAt.UTC().Truncate(time.Microsecond),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		code.Validate(),
		clientID.Validate(),
		validateDates(issueDate, dueDate),
		validateTaxRate(taxRate),
	); err != nil {
		return nil, err
	}

	inv.id = id
	inv.code = code
	inv.clientID = clientID
	inv.issueDate = dateOnly(issueDate)
	inv.dueDate = dateOnly(dueDate)
	inv.totals = ComputeTotals(decimal.Zero, taxRate)
	return inv, nil
}

// RestoreInvoice rebuilds an invoice from storage. Totals are recomputed from
// the stored net amount and rate rather than trusted.
func RestoreInvoice(
	id kernel.UUID,
	code kernel.Code,
	clientID kernel.UUID,
	issueDate time.Time,
	dueDate time.Time,
	amountExclTax decimal.Decimal,
	taxRate decimal.Decimal,
	status Status,
	createdAt time.Time,
	lines []Line,
	payments []Payment,
) *Invoice {
	orderedLines := slices.Clone(lines)
	slices.SortStableFunc(orderedLines, func(a, b Line) int { return a.addedAt.Compare(b.addedAt) })
	orderedPayments := slices.Clone(payments)
	slices.SortStableFunc(orderedPayments, func(a, b Payment) int { return a.paidAt.Compare(b.paidAt) })

	return &Invoice{
		id:        id,
		code:      code,
		clientID:  clientID,
		issueDate: dateOnly(issueDate),
		dueDate:   dateOnly(dueDate),
		totals:    ComputeTotals(amountExclTax, taxRate),
		status:    status,
		createdAt: createdAt.UTC(),
		lines:     orderedLines,
		payments:  orderedPayments,
		guard:     guard.NewConstructorGuard(),
	}
}

func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrInvoiceIsNotConstructed
	}
	return inv.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (inv *Invoice) ID() kernel.UUID                { return inv.id }
func (inv *Invoice) Code() kernel.Code              { return inv.code }
func (inv *Invoice) ClientID() kernel.UUID          { return inv.clientID }
func (inv *Invoice) IssueDate() time.Time           { return inv.issueDate }
func (inv *Invoice) DueDate() time.Time             { return inv.dueDate }
func (inv *Invoice) Totals() Totals                 { return inv.totals }
func (inv *Invoice) AmountExclTax() decimal.Decimal { return inv.totals.AmountExclTax }
func (inv *Invoice) TaxRate() decimal.Decimal       { return inv.totals.TaxRate }
func (inv *Invoice) TaxAmount() decimal.Decimal     { return inv.totals.TaxAmount }
func (inv *Invoice) AmountInclTax() decimal.Decimal { return inv.totals.AmountInclTax }
func (inv *Invoice) Status() Status                 { return inv.status }
func (inv *Invoice) CreatedAt() time.Time           { return inv.createdAt }
func (inv *Invoice) Lines() []Line                  { return slices.Clone(inv.lines) }
func (inv *Invoice) Payments() []Payment            { return slices.Clone(inv.payments) }

// PaidTotal is the sum of all recorded payments.
func (inv *Invoice) PaidTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.payments {
		total = total.Add(p.amount)
	}
	return total
}

// Outstanding is what remains to be paid; negative when overpaid.
func (inv *Invoice) Outstanding() decimal.Decimal {
	return inv.totals.AmountInclTax.Sub(inv.PaidTotal())
}

func (inv *Invoice) HasShipment(shipmentID kernel.UUID) bool {
	return slices.ContainsFunc(inv.lines, func(l Line) bool { return l.shipmentID.IsEqual(shipmentID) })
}

// AttachShipment bills a shipment at its frozen amount and recomputes totals.
func (inv *Invoice) AttachShipment(shipmentID kernel.UUID, amount decimal.Decimal, at time.Time) (Line, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		kernel.ValidateNonNegative("amount", amount),
	); err != nil {
		return Line{}, err
	}
	if !inv.status.LinesAreMutable() {
		return Line{}, errs.NewInvalidStateError("invoice", inv.status.String(), "attach shipment to")
	}
	if inv.HasShipment(shipmentID) {
		return Line{}, errs.NewConflictError("invoice line", shipmentID.String())
	}

	line := Line{shipmentID: shipmentID, amount: amount, addedAt: at.UTC().Truncate(time.Microsecond)}
	inv.lines = append(inv.lines, line)
	inv.totals = ComputeTotals(inv.totals.AmountExclTax.Add(amount), inv.totals.TaxRate)
	inv.settle(at)
	return line, nil
}

// DetachShipment removes a line from a draft invoice.
func (inv *Invoice) DetachShipment(shipmentID kernel.UUID, at time.Time) error {
	if !inv.status.LinesAreMutable() {
		return errs.NewInvalidStateError("invoice", inv.status.String(), "detach shipment from")
	}

	idx := slices.IndexFunc(inv.lines, func(l Line) bool { return l.shipmentID.IsEqual(shipmentID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("invoice line", shipmentID.String())
	}

	amount := inv.lines[idx].amount
	inv.lines = slices.Delete(inv.lines, idx, idx+1)
	inv.totals = ComputeTotals(inv.totals.AmountExclTax.Sub(amount), inv.totals.TaxRate)
	inv.settle(at)
	return nil
}

func (inv *Invoice) ChangeTaxRate(taxRate decimal.Decimal, at time.Time) error {
	if err := validateTaxRate(taxRate); err != nil {
		return err
	}
	if !inv.status.LinesAreMutable() {
		return errs.NewInvalidStateError("invoice", inv.status.String(), "change tax rate of")
	}

	inv.totals = ComputeTotals(inv.totals.AmountExclTax, taxRate)
	inv.settle(at)
	return nil
}

// ChangeStatus applies an operator-requested transition: issue or cancel.
func (inv *Invoice) ChangeStatus(to Status, at time.Time) error {
	if err := inv.status.ValidateTransition(to); err != nil {
		return err
	}

	inv.status = to
	if to == Issued {
		inv.Record(newIssuedEvent(inv, at))
	}
	return nil
}

// RecordPayment appends a payment and flips the invoice to PAID once the
// payments cover the gross amount. The flip is one-way.
func (inv *Invoice) RecordPayment(p Payment) error {
	if err := p.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payment", err)
	}
	if err := kernel.ValidatePositive("amount", p.amount); err != nil {
		return err
	}
	if inv.status == Cancelled {
		return errs.NewInvalidStateError("invoice", inv.status.String(), "record payment on")
	}
	if slices.ContainsFunc(inv.payments, func(existing Payment) bool { return existing.id.IsEqual(p.id) }) {
		return errs.NewConflictError("payment", p.id.String())
	}

	inv.payments = append(inv.payments, p)
	inv.Record(newPaymentRecordedEvent(inv, p))
	inv.settle(p.paidAt)
	return nil
}

// settle marks the invoice paid when recorded payments reach the gross amount.
func (inv *Invoice) settle(at time.Time) {
	if len(inv.payments) == 0 || inv.status == Paid || inv.status == Cancelled {
		return
	}
	if inv.PaidTotal().GreaterThanOrEqual(inv.totals.AmountInclTax) {
		inv.status = Paid
		inv.Record(newPaidEvent(inv, at))
	}
}

func validateDates(issueDate, dueDate time.Time) error {
	if issueDate.IsZero() {
		return errs.NewValueIsRequiredError("issue_date")
	}
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("due_date")
	}
	if dateOnly(dueDate).Before(dateOnly(issueDate)) {
		return errs.NewValueIsInvalidErrorWithCause("due_date",
			fmt.Errorf("%s is before issue date %s", dueDate.Format(time.DateOnly), issueDate.Format(time.DateOnly)))
	}
	return nil
}

func validateTaxRate(taxRate decimal.Decimal) error {
	if taxRate.IsNegative() || taxRate.GreaterThan(maxTaxRate) {
		return errs.NewValueIsOutOfRangeError("tax_rate", taxRate.String(), "0", maxTaxRate.String())
	}
	return kernel.ValidateScale("tax_rate", taxRate, kernel.PercentScale)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
