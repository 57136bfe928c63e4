package queries

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShipmentResponse is a shipment with the names of what it references.
// History is only filled by GetShipmentQuery, newest event first.
type ShipmentResponse struct {
	ID                 kernel.UUID
	TrackingCode       string
	ClientID           kernel.UUID
	ClientName         string
	DestinationID      kernel.UUID
	DestinationCity    string
	DestinationCountry string
	ServiceTierID      kernel.UUID
	ServiceTierName    string
	Weight             decimal.Decimal
	Volume             decimal.Decimal
	Description        string
	TotalAmount        decimal.Decimal
	Status             string
	CreatedAt          time.Time
	History            []TrackingEventResponse
}

type TrackingEventResponse struct {
	Location   string
	Status     string
	Comment    string
	OccurredAt time.Time
}

type shipmentRow struct {
	ID                 uuid.UUID
	TrackingCode       string
	ClientID           uuid.UUID
	ClientName         string
	DestinationID      uuid.UUID
	DestinationCity    string
	DestinationCountry string
	ServiceTierID      uuid.UUID
	ServiceTierName    string
	Weight             decimal.Decimal
	Volume             decimal.Decimal
	Description        string
	TotalAmount        decimal.Decimal
	Status             string
	CreatedAt          time.Time
}

func selectShipments(db *gorm.DB) *gorm.DB {
	return db.Table("shipments AS s").
		Select(`s.id, s.tracking_code, s.client_id, COALESCE(c.name, '') AS client_name,
			s.destination_id, COALESCE(d.city, '') AS destination_city, COALESCE(d.country, '') AS destination_country,
			s.service_tier_id, COALESCE(t.name, '') AS service_tier_name,
			s.weight, s.volume, s.description, s.total_amount, s.status, s.created_at`).
		Joins("LEFT JOIN clients c ON c.id = s.client_id").
		Joins("LEFT JOIN destinations d ON d.id = s.destination_id").
		Joins("LEFT JOIN service_tiers t ON t.id = s.service_tier_id")
}

func (r shipmentRow) toResponse() (ShipmentResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	clientID, err := kernel.UUIDFromBytes(r.ClientID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	destinationID, err := kernel.UUIDFromBytes(r.DestinationID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	tierID, err := kernel.UUIDFromBytes(r.ServiceTierID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}

	return ShipmentResponse{
		ID:                 id,
		TrackingCode:       r.TrackingCode,
		ClientID:           clientID,
		ClientName:         r.ClientName,
		DestinationID:      destinationID,
		DestinationCity:    r.DestinationCity,
		DestinationCountry: r.DestinationCountry,
		ServiceTierID:      tierID,
		ServiceTierName:    r.ServiceTierName,
		Weight:             r.Weight,
		Volume:             r.Volume,
		Description:        r.Description,
		TotalAmount:        r.TotalAmount.Round(2),
		Status:             r.Status,
		CreatedAt:          r.CreatedAt.UTC(),
	}, nil
}
