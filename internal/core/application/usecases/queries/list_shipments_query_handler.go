package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := selectShipments(h.db.WithContext(ctx))
	if query.Status() != nil {
		stmt = stmt.Where("s.status = ?", query.Status().String())
	}
	if query.ClientID() != nil {
		stmt = stmt.Where("s.client_id = ?", query.ClientID().Bytes())
	}

	var rows []shipmentRow
	if err := query.Page().apply(stmt.Order("s.created_at DESC, s.tracking_code")).Scan(&rows).Error; err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, response)
	}
	return shipments, nil
}
