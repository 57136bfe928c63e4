package queries

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceResponse carries totals and the amount paid so far. Lines and
// Payments are only filled by GetInvoiceQuery.
type InvoiceResponse struct {
	ID            kernel.UUID
	Code          string
	ClientID      kernel.UUID
	ClientName    string
	ClientAddress string
	IssueDate     time.Time
	DueDate       time.Time
	AmountExclTax decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	AmountInclTax decimal.Decimal
	PaidTotal     decimal.Decimal
	Status        string
	CreatedAt     time.Time
	Lines         []InvoiceLineResponse
	Payments      []PaymentResponse
}

// Outstanding is what remains to be paid; negative when overpaid.
func (r InvoiceResponse) Outstanding() decimal.Decimal {
	return r.AmountInclTax.Sub(r.PaidTotal)
}

type InvoiceLineResponse struct {
	ShipmentID   kernel.UUID
	TrackingCode string
	Destination  string
	Amount       decimal.Decimal
	AddedAt      time.Time
}

type PaymentResponse struct {
	ID        kernel.UUID
	Amount    decimal.Decimal
	Method    string
	Reference string
	Comment   string
	PaidAt    time.Time
}

type invoiceRow struct {
	ID            uuid.UUID
	Code          string
	ClientID      uuid.UUID
	ClientName    string
	ClientAddress string
	IssueDate     time.Time
	DueDate       time.Time
	AmountExclTax decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	AmountInclTax decimal.Decimal
	PaidTotal     decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

func selectInvoices(db *gorm.DB) *gorm.DB {
	return db.Table("invoices AS i").
		Select(`i.id, i.code, i.client_id, COALESCE(c.name, '') AS client_name,
			COALESCE(c.address, '') AS client_address, i.issue_date, i.due_date,
			i.amount_excl_tax, i.tax_rate, i.tax_amount, i.amount_incl_tax,
			(SELECT COALESCE(SUM(p.amount), 0) FROM payments p WHERE p.invoice_id = i.id) AS paid_total,
			i.status, i.created_at`).
		Joins("LEFT JOIN clients c ON c.id = i.client_id")
}

func (r invoiceRow) toResponse() (InvoiceResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return InvoiceResponse{}, err
	}
	clientID, err := kernel.UUIDFromBytes(r.ClientID[:])
	if err != nil {
		return InvoiceResponse{}, err
	}

	return InvoiceResponse{
		ID:            id,
		Code:          r.Code,
		ClientID:      clientID,
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		IssueDate:     dateOf(r.IssueDate),
		DueDate:       dateOf(r.DueDate),
		AmountExclTax: r.AmountExclTax.Round(2),
		TaxRate:       r.TaxRate.Round(2),
		TaxAmount:     r.TaxAmount.Round(2),
		AmountInclTax: r.AmountInclTax.Round(2),
		PaidTotal:     r.PaidTotal.Round(2),
		Status:        r.Status,
		CreatedAt:     r.CreatedAt.UTC(),
	}, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
