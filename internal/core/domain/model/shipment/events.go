package shipment

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

const (
	EventCreated       = "shipment.created"
	EventStatusChanged = "shipment.status_changed"
)

type CreatedEvent struct {
	kernel.BaseEvent
	TrackingCode string `json:"tracking_code"`
	ClientID     string `json:"client_id"`
	TotalAmount  string `json:"total_amount"`
}

type StatusChangedEvent struct {
	kernel.BaseEvent
	TrackingCode string `json:"tracking_code"`
	From         string `json:"from"`
	To           string `json:"to"`
	Location     string `json:"location"`
	Comment      string `json:"comment,omitempty"`
}

func newCreatedEvent(s *Shipment) CreatedEvent {
	return CreatedEvent{
		BaseEvent:    kernel.NewBaseEvent(EventCreated, s.id, s.createdAt),
		TrackingCode: s.trackingCode.String(),
		ClientID:     s.clientID.String(),
		TotalAmount:  s.totalAmount.StringFixed(2),
	}
}

func newStatusChangedEvent(s *Shipment, from Status, event TrackingEvent, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:    kernel.NewBaseEvent(EventStatusChanged, s.id, at),
		TrackingCode: s.trackingCode.String(),
		From:         from.String(),
		To:           event.Status().String(),
		Location:     event.Location(),
		Comment:      event.Comment(),
	}
}
