// Package fleetrepo persists drivers and vehicles.
package fleetrepo

import (
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:255;not null"`
	LicenseNumber string    `gorm:"size:64;not null;uniqueIndex"`
	Available     bool      `gorm:"not null;default:true"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type VehicleDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Registration string          `gorm:"size:32;not null;uniqueIndex"`
	Kind         string          `gorm:"size:64;not null"`
	Capacity     decimal.Decimal `gorm:"type:numeric(12,3);not null"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func driverFromDomain(d *fleet.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		Name:          d.Name(),
		LicenseNumber: d.LicenseNumber(),
		Available:     d.Available(),
	}
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return fleet.RestoreDriver(id, dto.Name, dto.LicenseNumber, dto.Available), nil
}

func vehicleFromDomain(v *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           v.ID().Bytes(),
		Registration: v.Registration(),
		Kind:         v.Kind(),
		Capacity:     v.Capacity(),
	}
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return fleet.RestoreVehicle(id, dto.Registration, dto.Kind, dto.Capacity), nil
}
