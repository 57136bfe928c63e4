package queries

import (
	"context"
	"time"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns an *errs.ObjectNotFoundError for an unknown tracking code.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []shipmentRow
	err := selectShipments(db).
		Where("s.tracking_code = ?", query.TrackingCode().String()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return ShipmentResponse{}, err
	}
	if len(rows) == 0 {
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment", query.TrackingCode().String())
	}

	response, err := rows[0].toResponse()
	if err != nil {
		return ShipmentResponse{}, err
	}

	var events []struct {
		Location   string
		Status     string
		Comment    string
		OccurredAt time.Time
	}
	err = db.Table("tracking_events").
		Select("location, status, comment, occurred_at").
		Where("shipment_id = ?", rows[0].ID).
		Order("occurred_at DESC, id DESC").
		Scan(&events).Error
	if err != nil {
		return ShipmentResponse{}, err
	}

	response.History = make([]TrackingEventResponse, 0, len(events))
	for _, e := range events {
		response.History = append(response.History, TrackingEventResponse{
			Location:   e.Location,
			Status:     e.Status,
			Comment:    e.Comment,
			OccurredAt: e.OccurredAt.UTC(),
		})
	}

	return response, nil
}
