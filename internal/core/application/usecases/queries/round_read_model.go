package queries

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoundResponse is a round with its crew. Members is only filled by
// GetRoundQuery, in delivery order.
type RoundResponse struct {
	ID                  kernel.UUID
	Code                string
	Date                time.Time
	DriverID            *kernel.UUID
	DriverName          string
	VehicleID           *kernel.UUID
	VehicleRegistration string
	Status              string
	Comment             string
	ShipmentCount       int
	CreatedAt           time.Time
	Members             []RoundMemberResponse
}

type RoundMemberResponse struct {
	Position       int
	ShipmentID     kernel.UUID
	TrackingCode   string
	ShipmentStatus string
	AddedAt        time.Time
}

type roundRow struct {
	ID                  uuid.UUID
	Code                string
	Date                time.Time
	DriverID            *uuid.UUID
	DriverName          string
	VehicleID           *uuid.UUID
	VehicleRegistration string
	Status              string
	Comment             string
	ShipmentCount       int
	CreatedAt           time.Time
}

func selectRounds(db *gorm.DB) *gorm.DB {
	return db.Table("rounds AS r").
		Select(`r.id, r.code, r.date, r.driver_id, COALESCE(d.name, '') AS driver_name,
			r.vehicle_id, COALESCE(v.registration, '') AS vehicle_registration, r.status, r.comment,
			(SELECT COUNT(*) FROM round_shipments rs WHERE rs.round_id = r.id) AS shipment_count, r.created_at`).
		Joins("LEFT JOIN drivers d ON d.id = r.driver_id").
		Joins("LEFT JOIN vehicles v ON v.id = r.vehicle_id")
}

func (r roundRow) toResponse() (RoundResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return RoundResponse{}, err
	}
	driverID, err := kernel.OptionalUUIDFromBytes(r.DriverID)
	if err != nil {
		return RoundResponse{}, err
	}
	vehicleID, err := kernel.OptionalUUIDFromBytes(r.VehicleID)
	if err != nil {
		return RoundResponse{}, err
	}

	return RoundResponse{
		ID:                  id,
		Code:                r.Code,
		Date:                dateOf(r.Date),
		DriverID:            driverID,
		DriverName:          r.DriverName,
		VehicleID:           vehicleID,
		VehicleRegistration: r.VehicleRegistration,
		Status:              r.Status,
		Comment:             r.Comment,
		ShipmentCount:       r.ShipmentCount,
		CreatedAt:           r.CreatedAt.UTC(),
	}, nil
}
