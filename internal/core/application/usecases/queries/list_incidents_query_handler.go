package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListIncidentsQueryHandler struct {
	db *gorm.DB
}

func NewListIncidentsQueryHandler(db *gorm.DB) ListIncidentsQueryHandler {
	return ListIncidentsQueryHandler{db: db}
}

func (h ListIncidentsQueryHandler) Handle(ctx context.Context, query ListIncidentsQuery) ([]IncidentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("incidents AS i").
		Select(`i.id, i.type, i.description, i.status, i.resolution, i.resolved_at,
			i.shipment_id, COALESCE(s.tracking_code, '') AS tracking_code,
			i.round_id, COALESCE(r.code, '') AS round_code, i.reported_at`).
		Joins("LEFT JOIN shipments s ON s.id = i.shipment_id").
		Joins("LEFT JOIN rounds r ON r.id = i.round_id")
	if query.Status() != nil {
		stmt = stmt.Where("i.status = ?", query.Status().String())
	}
	if query.Type() != nil {
		stmt = stmt.Where("i.type = ?", query.Type().String())
	}
	if query.ShipmentID() != nil {
		stmt = stmt.Where("i.shipment_id = ?", query.ShipmentID().Bytes())
	}

	var rows []struct {
		ID           uuid.UUID
		Type         string
		Description  string
		Status       string
		Resolution   string
		ResolvedAt   *time.Time
		ShipmentID   *uuid.UUID
		TrackingCode string
		RoundID      *uuid.UUID
		RoundCode    string
		ReportedAt   time.Time
	}
	if err := query.Page().apply(stmt.Order("i.reported_at DESC, i.id")).Scan(&rows).Error; err != nil {
		return nil, err
	}

	incidents := make([]IncidentResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		shipmentID, err := kernel.OptionalUUIDFromBytes(row.ShipmentID)
		if err != nil {
			return nil, err
		}
		roundID, err := kernel.OptionalUUIDFromBytes(row.RoundID)
		if err != nil {
			return nil, err
		}

		incidents = append(incidents, IncidentResponse{
			ID:           id,
			Type:         row.Type,
			Description:  row.Description,
			Status:       row.Status,
			Resolution:   row.Resolution,
			ResolvedAt:   utcPtr(row.ResolvedAt),
			ShipmentID:   shipmentID,
			TrackingCode: row.TrackingCode,
			RoundID:      roundID,
			RoundCode:    row.RoundCode,
			ReportedAt:   row.ReportedAt.UTC(),
		})
	}
	return incidents, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
