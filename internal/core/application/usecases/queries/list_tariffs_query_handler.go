package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListTariffsQueryHandler struct {
	db *gorm.DB
}

func NewListTariffsQueryHandler(db *gorm.DB) ListTariffsQueryHandler {
	return ListTariffsQueryHandler{db: db}
}

func (h ListTariffsQueryHandler) Handle(ctx context.Context, query ListTariffsQuery) (TariffsResponse, error) {
	if err := query.Validate(); err != nil {
		return TariffsResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var destinations []struct {
		ID       uuid.UUID
		City     string
		Country  string
		BaseRate decimal.Decimal
	}
	err := db.Table("destinations").Select("id, city, country, base_rate").Order("country, city").Scan(&destinations).Error
	if err != nil {
		return TariffsResponse{}, err
	}

	var tiers []struct {
		ID         uuid.UUID
		Name       string
		WeightRate decimal.Decimal
		VolumeRate decimal.Decimal
	}
	if err = db.Table("service_tiers").Select("id, name, weight_rate, volume_rate").Order("name").Scan(&tiers).Error; err != nil {
		return TariffsResponse{}, err
	}

	response := TariffsResponse{
		Destinations: make([]DestinationResponse, 0, len(destinations)),
		ServiceTiers: make([]ServiceTierResponse, 0, len(tiers)),
	}
	for _, d := range destinations {
		id, idErr := kernel.UUIDFromBytes(d.ID[:])
		if idErr != nil {
			return TariffsResponse{}, idErr
		}
		response.Destinations = append(response.Destinations, DestinationResponse{
			ID:       id,
			City:     d.City,
			Country:  d.Country,
			BaseRate: d.BaseRate.Round(2),
		})
	}
	for _, t := range tiers {
		id, idErr := kernel.UUIDFromBytes(t.ID[:])
		if idErr != nil {
			return TariffsResponse{}, idErr
		}
		response.ServiceTiers = append(response.ServiceTiers, ServiceTierResponse{
			ID:         id,
			Name:       t.Name,
			WeightRate: t.WeightRate,
			VolumeRate: t.VolumeRate,
		})
	}

	return response, nil
}
