// Package invoicerepo persists invoices with their shipment lines and
// payments.
package invoicerepo

import (
	"time"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO stores the derived tax columns next to their inputs so reports
// can sum them directly. They are recomputed on load.
type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code          string          `gorm:"size:16;not null;uniqueIndex"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	IssueDate     time.Time       `gorm:"type:date;not null"`
	DueDate       time.Time       `gorm:"type:date;not null"`
	AmountExclTax decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxRate       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	TaxAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AmountInclTax decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status        string          `gorm:"size:32;not null;index"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

type LineDTO struct {
	InvoiceID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AddedAt    time.Time       `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "invoice_lines"
}

type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Method    string          `gorm:"size:16;not null"`
	Reference string          `gorm:"size:128;not null;default:''"`
	Comment   string          `gorm:"type:text;not null;default:''"`
	PaidAt    time.Time       `gorm:"not null;index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, []LineDTO, []PaymentDTO) {
	totals := aggregate.Totals()
	dto := InvoiceDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          aggregate.Code().String(),
		ClientID:      aggregate.ClientID().Bytes(),
		IssueDate:     aggregate.IssueDate(),
		DueDate:       aggregate.DueDate(),
		AmountExclTax: totals.AmountExclTax,
		TaxRate:       totals.TaxRate,
		TaxAmount:     totals.TaxAmount,
		AmountInclTax: totals.AmountInclTax,
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, l := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			InvoiceID:  dto.ID,
			ShipmentID: l.ShipmentID().Bytes(),
			Amount:     l.Amount(),
			AddedAt:    l.AddedAt(),
		})
	}

	payments := make([]PaymentDTO, 0, len(aggregate.Payments()))
	for _, p := range aggregate.Payments() {
		payments = append(payments, PaymentDTO{
			ID:        p.ID().Bytes(),
			InvoiceID: dto.ID,
			Amount:    p.Amount(),
			Method:    p.Method().String(),
			Reference: p.Reference(),
			Comment:   p.Comment(),
			PaidAt:    p.PaidAt(),
		})
	}

	return dto, lines, payments
}

func toDomain(dto InvoiceDTO, lineDTOs []LineDTO, paymentDTOs []PaymentDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	status, err := invoice.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]invoice.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		shipmentID, idErr := kernel.UUIDFromBytes(l.ShipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		lines = append(lines, invoice.RestoreLine(shipmentID, l.Amount, l.AddedAt))
	}

	payments := make([]invoice.Payment, 0, len(paymentDTOs))
	for _, p := range paymentDTOs {
		paymentID, idErr := kernel.UUIDFromBytes(p.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		method, methodErr := invoice.ParseMethod(p.Method)
		if methodErr != nil {
			return nil, methodErr
		}
		payments = append(payments, invoice.RestorePayment(paymentID, p.Amount, method, p.Reference, p.Comment, p.PaidAt))
	}

	return invoice.RestoreInvoice(id, code, clientID, dto.IssueDate, dto.DueDate, dto.AmountExclTax, dto.TaxRate,
		status, dto.CreatedAt, lines, payments), nil
}
