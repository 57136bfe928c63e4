package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListFleetQueryHandler struct {
	db *gorm.DB
}

func NewListFleetQueryHandler(db *gorm.DB) ListFleetQueryHandler {
	return ListFleetQueryHandler{db: db}
}

func (h ListFleetQueryHandler) Handle(ctx context.Context, query ListFleetQuery) (FleetResponse, error) {
	if err := query.Validate(); err != nil {
		return FleetResponse{}, err
	}

	db := h.db.WithContext(ctx)

	drivers := db.Table("drivers").Select("id, name, license_number, available").Order("name, license_number")
	if query.OnlyAvailable() {
		drivers = drivers.Where("available = ?", true)
	}
	var driverRows []struct {
		ID            uuid.UUID
		Name          string
		LicenseNumber string
		Available     bool
	}
	if err := drivers.Scan(&driverRows).Error; err != nil {
		return FleetResponse{}, err
	}

	var vehicleRows []struct {
		ID           uuid.UUID
		Registration string
		Kind         string
		Capacity     decimal.Decimal
	}
	err := db.Table("vehicles").Select("id, registration, kind, capacity").Order("registration").Scan(&vehicleRows).Error
	if err != nil {
		return FleetResponse{}, err
	}

	response := FleetResponse{
		Drivers:  make([]DriverResponse, 0, len(driverRows)),
		Vehicles: make([]VehicleResponse, 0, len(vehicleRows)),
	}
	for _, d := range driverRows {
		id, idErr := kernel.UUIDFromBytes(d.ID[:])
		if idErr != nil {
			return FleetResponse{}, idErr
		}
		response.Drivers = append(response.Drivers, DriverResponse{
			ID:            id,
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			Available:     d.Available,
		})
	}
	for _, v := range vehicleRows {
		id, idErr := kernel.UUIDFromBytes(v.ID[:])
		if idErr != nil {
			return FleetResponse{}, idErr
		}
		response.Vehicles = append(response.Vehicles, VehicleResponse{
			ID:           id,
			Registration: v.Registration,
			Kind:         v.Kind,
			Capacity:     v.Capacity,
		})
	}

	return response, nil
}
