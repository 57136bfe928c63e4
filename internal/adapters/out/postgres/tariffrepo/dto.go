// Package tariffrepo persists destinations and service tiers, the two price
// references of a shipment.
package tariffrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DestinationDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	City     string          `gorm:"size:128;not null;uniqueIndex:idx_destinations_city_country"`
	Country  string          `gorm:"size:128;not null;uniqueIndex:idx_destinations_city_country"`
	BaseRate decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (DestinationDTO) TableName() string {
	return "destinations"
}

type ServiceTierDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"size:128;not null;uniqueIndex"`
	WeightRate decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	VolumeRate decimal.Decimal `gorm:"type:numeric(12,4);not null"`
}

func (ServiceTierDTO) TableName() string {
	return "service_tiers"
}

func destinationFromDomain(d *tariff.Destination) DestinationDTO {
	return DestinationDTO{
		ID:       d.ID().Bytes(),
		City:     d.City(),
		Country:  d.Country(),
		BaseRate: d.BaseRate(),
	}
}

func destinationToDomain(dto DestinationDTO) (*tariff.Destination, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return tariff.RestoreDestination(id, dto.City, dto.Country, dto.BaseRate), nil
}

func serviceTierFromDomain(s *tariff.ServiceTier) ServiceTierDTO {
	return ServiceTierDTO{
		ID:         s.ID().Bytes(),
		Name:       s.Name(),
		WeightRate: s.WeightRate(),
		VolumeRate: s.VolumeRate(),
	}
}

func serviceTierToDomain(dto ServiceTierDTO) (*tariff.ServiceTier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return tariff.RestoreServiceTier(id, dto.Name, dto.WeightRate, dto.VolumeRate), nil
}
