package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRoundQueryHandler struct {
	db *gorm.DB
}

func NewGetRoundQueryHandler(db *gorm.DB) GetRoundQueryHandler {
	return GetRoundQueryHandler{db: db}
}

func (h GetRoundQueryHandler) Handle(ctx context.Context, query GetRoundQuery) (RoundResponse, error) {
	if err := query.Validate(); err != nil {
		return RoundResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []roundRow
	if err := selectRounds(db).Where("r.code = ?", query.Code().String()).Limit(1).Scan(&rows).Error; err != nil {
		return RoundResponse{}, err
	}
	if len(rows) == 0 {
		return RoundResponse{}, errs.NewObjectNotFoundError("round", query.Code().String())
	}

	response, err := rows[0].toResponse()
	if err != nil {
		return RoundResponse{}, err
	}

	var members []struct {
		Position       int
		ShipmentID     uuid.UUID
		TrackingCode   string
		ShipmentStatus string
		AddedAt        time.Time
	}
	err = db.Table("round_shipments AS rs").
		Select("rs.position, rs.shipment_id, s.tracking_code, s.status AS shipment_status, rs.added_at").
		Joins("JOIN shipments s ON s.id = rs.shipment_id").
		Where("rs.round_id = ?", rows[0].ID).
		Order("rs.position").
		Scan(&members).Error
	if err != nil {
		return RoundResponse{}, err
	}

	response.Members = make([]RoundMemberResponse, 0, len(members))
	for _, m := range members {
		shipmentID, idErr := kernel.UUIDFromBytes(m.ShipmentID[:])
		if idErr != nil {
			return RoundResponse{}, idErr
		}
		response.Members = append(response.Members, RoundMemberResponse{
			Position:       m.Position,
			ShipmentID:     shipmentID,
			TrackingCode:   m.TrackingCode,
			ShipmentStatus: m.ShipmentStatus,
			AddedAt:        m.AddedAt.UTC(),
		})
	}

	return response, nil
}
