package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []invoiceRow
	if err := selectInvoices(db).Where("i.code = ?", query.Code().String()).Limit(1).Scan(&rows).Error; err != nil {
		return InvoiceResponse{}, err
	}
	if len(rows) == 0 {
		return InvoiceResponse{}, errs.NewObjectNotFoundError("invoice", query.Code().String())
	}

	response, err := rows[0].toResponse()
	if err != nil {
		return InvoiceResponse{}, err
	}
	if response.Lines, err = h.lines(db, rows[0].ID); err != nil {
		return InvoiceResponse{}, err
	}
	if response.Payments, err = h.payments(db, rows[0].ID); err != nil {
		return InvoiceResponse{}, err
	}

	return response, nil
}

func (h GetInvoiceQueryHandler) lines(db *gorm.DB, invoiceID uuid.UUID) ([]InvoiceLineResponse, error) {
	var rows []struct {
		ShipmentID   uuid.UUID
		TrackingCode string
		City         string
		Country      string
		Amount       decimal.Decimal
		AddedAt      time.Time
	}
	err := db.Table("invoice_lines AS l").
		Select(`l.shipment_id, s.tracking_code, COALESCE(d.city, '') AS city, COALESCE(d.country, '') AS country,
			l.amount, l.added_at`).
		Joins("JOIN shipments s ON s.id = l.shipment_id").
		Joins("LEFT JOIN destinations d ON d.id = s.destination_id").
		Where("l.invoice_id = ?", invoiceID).
		Order("l.added_at, s.tracking_code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]InvoiceLineResponse, 0, len(rows))
	for _, row := range rows {
		shipmentID, idErr := kernel.UUIDFromBytes(row.ShipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		destination := row.City
		if row.Country != "" {
			destination += ", " + row.Country
		}
		lines = append(lines, InvoiceLineResponse{
			ShipmentID:   shipmentID,
			TrackingCode: row.TrackingCode,
			Destination:  destination,
			Amount:       row.Amount.Round(2),
			AddedAt:      row.AddedAt.UTC(),
		})
	}
	return lines, nil
}

func (h GetInvoiceQueryHandler) payments(db *gorm.DB, invoiceID uuid.UUID) ([]PaymentResponse, error) {
	var rows []struct {
		ID        uuid.UUID
		Amount    decimal.Decimal
		Method    string
		Reference string
		Comment   string
		PaidAt    time.Time
	}
	err := db.Table("payments").
		Select("id, amount, method, reference, comment, paid_at").
		Where("invoice_id = ?", invoiceID).
		Order("paid_at, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		payments = append(payments, PaymentResponse{
			ID:        id,
			Amount:    row.Amount.Round(2),
			Method:    row.Method,
			Reference: row.Reference,
			Comment:   row.Comment,
			PaidAt:    row.PaidAt.UTC(),
		})
	}
	return payments, nil
}
