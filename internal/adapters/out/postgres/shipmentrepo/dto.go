// Package shipmentrepo persists shipments and their append-only tracking
// history.
package shipmentrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO is the shipments row. TotalAmount is written once on insert and
// carried unchanged by every update.
type ShipmentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingCode  string          `gorm:"size:16;not null;uniqueIndex"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DestinationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceTierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:text;not null;default:''"`
	Weight        decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Volume        decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status        string          `gorm:"size:32;not null;index"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Location   string    `gorm:"size:255;not null"`
	Status     string    `gorm:"size:32;not null"`
	Comment    string    `gorm:"type:text;not null;default:''"`
	OccurredAt time.Time `gorm:"not null;index"`
}

func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, []TrackingEventDTO) {
	dto := ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		TrackingCode:  aggregate.TrackingCode().String(),
		ClientID:      aggregate.ClientID().Bytes(),
		DestinationID: aggregate.DestinationID().Bytes(),
		ServiceTierID: aggregate.ServiceTierID().Bytes(),
		Description:   aggregate.Description(),
		Weight:        aggregate.Weight(),
		Volume:        aggregate.Volume(),
		TotalAmount:   aggregate.TotalAmount(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	events := make([]TrackingEventDTO, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		events = append(events, TrackingEventDTO{
			ID:         event.ID().Bytes(),
			ShipmentID: dto.ID,
			Location:   event.Location(),
			Status:     event.Status().String(),
			Comment:    event.Comment(),
			OccurredAt: event.OccurredAt(),
		})
	}

	return dto, events
}

func toDomain(dto ShipmentDTO, eventDTOs []TrackingEventDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}
	serviceTierID, err := kernel.UUIDFromBytes(dto.ServiceTierID[:])
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(eventDTOs))
	for _, e := range eventDTOs {
		eventID, idErr := kernel.UUIDFromBytes(e.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		eventStatus, statusErr := shipment.ParseStatus(e.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		events = append(events, shipment.RestoreTrackingEvent(eventID, e.Location, eventStatus, e.Comment, e.OccurredAt))
	}

	return shipment.RestoreShipment(id, code, clientID, destinationID, serviceTierID, dto.Weight, dto.Volume,
		dto.Description, dto.TotalAmount, status, dto.CreatedAt, events), nil
}
