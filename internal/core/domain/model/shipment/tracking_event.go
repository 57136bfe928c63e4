package shipment

import (
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// TrackingEvent is an immutable record of where a shipment was and in which
// status, at a server timestamp.
type TrackingEvent struct {
	id         kernel.UUID
	location   string
	status     Status
	comment    string
	occurredAt time.Time
}

func NewTrackingEvent(location string, status Status, comment string, occurredAt time.Time) (TrackingEvent, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("location")
	}
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}

	return TrackingEvent{
		id:         kernel.NewUUID(),
		location:   location,
		status:     status,
		comment:    strings.TrimSpace(comment),
		occurredAt: occurredAt.UTC(),
	}, nil
}

func RestoreTrackingEvent(id kernel.UUID, location string, status Status, comment string, occurredAt time.Time) TrackingEvent {
	return TrackingEvent{
		id:         id,
		location:   location,
		status:     status,
		comment:    comment,
		occurredAt: occurredAt.UTC(),
	}
}

func (e TrackingEvent) ID() kernel.UUID       { return e.id }
func (e TrackingEvent) Location() string      { return e.location }
func (e TrackingEvent) Status() Status        { return e.status }
func (e TrackingEvent) Comment() string       { return e.comment }
func (e TrackingEvent) OccurredAt() time.Time { return e.occurredAt }
