package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListClaimsQueryHandler struct {
	db *gorm.DB
}

func NewListClaimsQueryHandler(db *gorm.DB) ListClaimsQueryHandler {
	return ListClaimsQueryHandler{db: db}
}

func (h ListClaimsQueryHandler) Handle(ctx context.Context, query ListClaimsQuery) ([]ClaimResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("claims AS cl").
		Select(`cl.id, cl.code, cl.client_id, COALESCE(c.name, '') AS client_name, cl.type, cl.description,
			cl.status, cl.response, cl.resolved_at, cl.shipment_id, COALESCE(s.tracking_code, '') AS tracking_code,
			cl.invoice_id, COALESCE(i.code, '') AS invoice_code, cl.filed_at`).
		Joins("LEFT JOIN clients c ON c.id = cl.client_id").
		Joins("LEFT JOIN shipments s ON s.id = cl.shipment_id").
		Joins("LEFT JOIN invoices i ON i.id = cl.invoice_id")

	filter := query.Filter()
	if filter.Status != nil {
		stmt = stmt.Where("cl.status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		stmt = stmt.Where("cl.type = ?", filter.Type.String())
	}
	if filter.ShipmentID != nil {
		stmt = stmt.Where("cl.shipment_id = ?", filter.ShipmentID.Bytes())
	}
	if filter.ClientID != nil {
		stmt = stmt.Where("cl.client_id = ?", filter.ClientID.Bytes())
	}

	var rows []struct {
		ID           uuid.UUID
		Code         string
		ClientID     uuid.UUID
		ClientName   string
		Type         string
		Description  string
		Status       string
		Response     string
		ResolvedAt   *time.Time
		ShipmentID   *uuid.UUID
		TrackingCode string
		InvoiceID    *uuid.UUID
		InvoiceCode  string
		FiledAt      time.Time
	}
	if err := query.Page().apply(stmt.Order("cl.filed_at DESC, cl.code")).Scan(&rows).Error; err != nil {
		return nil, err
	}

	claims := make([]ClaimResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		clientID, err := kernel.UUIDFromBytes(row.ClientID[:])
		if err != nil {
			return nil, err
		}
		shipmentID, err := kernel.OptionalUUIDFromBytes(row.ShipmentID)
		if err != nil {
			return nil, err
		}
		invoiceID, err := kernel.OptionalUUIDFromBytes(row.InvoiceID)
		if err != nil {
			return nil, err
		}

		claims = append(claims, ClaimResponse{
			ID:           id,
			Code:         row.Code,
			ClientID:     clientID,
			ClientName:   row.ClientName,
			Type:         row.Type,
			Description:  row.Description,
			Status:       row.Status,
			Response:     row.Response,
			ResolvedAt:   utcPtr(row.ResolvedAt),
			ShipmentID:   shipmentID,
			TrackingCode: row.TrackingCode,
			InvoiceID:    invoiceID,
			InvoiceCode:  row.InvoiceCode,
			FiledAt:      row.FiledAt.UTC(),
		})
	}
	return claims, nil
}
