package shipment

import (
	"errors"
	"slices"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const trackingCodeLength = 10

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// NewTrackingCode returns a random tracking code candidate.
func NewTrackingCode() kernel.Code {
	return kernel.GenerateCode("", trackingCodeLength)
}

// Shipment is a parcel moving from the carrier to a destination on behalf of a
// client. Its total amount is frozen at creation; its tracking history only
// grows.
type Shipment struct {
	kernel.EventRecorder

	id            kernel.UUID
	trackingCode  kernel.Code
	clientID      kernel.UUID
	destinationID kernel.UUID
	serviceTierID kernel.UUID
	description   string
	weight        decimal.Decimal
	volume        decimal.Decimal
	totalAmount   decimal.Decimal
	status        Status
	createdAt     time.Time
	events        []TrackingEvent

	guard guard.ConstructorGuard
}

// NewShipment registers a shipment in the IN_TRANSIT state. totalAmount must be
// the price computed for this shipment; it is never recomputed afterwards.
func NewShipment(
	id kernel.UUID,
	trackingCode kernel.Code,
	clientID kernel.UUID,
	destinationID kernel.UUID,
	serviceTierID kernel.UUID,
	weight decimal.Decimal,
	volume decimal.Decimal,
	description string,
	totalAmount decimal.Decimal,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:      InTransit,
		description: strings.TrimSpace(description),
		createdAt:   createdAt.UTC().Truncate(time.Microsecond),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&s.id, id),
		trackingCode.Validate(),
		setUUID(&s.clientID, clientID),
		setUUID(&s.destinationID, destinationID),
		setUUID(&s.serviceTierID, serviceTierID),
		kernel.ValidateNonNegative("weight", weight),
		kernel.ValidateNonNegative("volume", volume),
		kernel.ValidateMoney("total_amount", totalAmount),
		kernel.ValidateScale("weight", weight, kernel.MeasureScale),
		kernel.ValidateScale("volume", volume, kernel.MeasureScale),
	); err != nil {
		return nil, err
	}

	s.trackingCode = trackingCode
	s.weight = weight
	s.volume = volume
	s.totalAmount = totalAmount

	s.Record(newCreatedEvent(s))
	return s, nil
}

// RestoreShipment rebuilds a shipment from storage. events may come in any
// order; they are kept chronologically.
func RestoreShipment(
	id kernel.UUID,
	trackingCode kernel.Code,
	clientID kernel.UUID,
	destinationID kernel.UUID,
	serviceTierID kernel.UUID,
	weight decimal.Decimal,
	volume decimal.Decimal,
	description string,
	totalAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
	events []TrackingEvent,
) *Shipment {
	ordered := slices.Clone(events)
	slices.SortStableFunc(ordered, func(a, b TrackingEvent) int {
		return a.occurredAt.Compare(b.occurredAt)
	})

	return &Shipment{
		id:            id,
		trackingCode:  trackingCode,
		clientID:      clientID,
		destinationID: destinationID,
		serviceTierID: serviceTierID,
		description:   description,
		weight:        weight,
		volume:        volume,
		totalAmount:   totalAmount,
		status:        status,
		createdAt:     createdAt.UTC(),
		events:        ordered,
		guard:         guard.NewConstructorGuard(),
	}
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID              { return s.id }
func (s *Shipment) TrackingCode() kernel.Code    { return s.trackingCode }
func (s *Shipment) ClientID() kernel.UUID        { return s.clientID }
func (s *Shipment) DestinationID() kernel.UUID   { return s.destinationID }
func (s *Shipment) ServiceTierID() kernel.UUID   { return s.serviceTierID }
func (s *Shipment) Description() string          { return s.description }
func (s *Shipment) Weight() decimal.Decimal      { return s.weight }
func (s *Shipment) Volume() decimal.Decimal      { return s.volume }
func (s *Shipment) TotalAmount() decimal.Decimal { return s.totalAmount }
func (s *Shipment) Status() Status               { return s.status }
func (s *Shipment) CreatedAt() time.Time         { return s.createdAt }
func (s *Shipment) Events() []TrackingEvent      { return slices.Clone(s.events) }

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// BelongsTo reports whether the shipment is owned by clientID.
func (s *Shipment) BelongsTo(clientID kernel.UUID) bool {
	return s.clientID.IsEqual(clientID)
}

// TrackingHistory returns the events newest first.
func (s *Shipment) TrackingHistory() []TrackingEvent {
	history := slices.Clone(s.events)
	slices.Reverse(history)
	return history
}

// ChangeStatus moves the shipment to status and appends the matching tracking
// event. Event timestamps strictly increase: an at that is not after the last
// event is bumped to one microsecond past it.
func (s *Shipment) ChangeStatus(to Status, location, comment string, at time.Time) (TrackingEvent, error) {
	if err := s.status.ValidateTransition(to); err != nil {
		return TrackingEvent{}, err
	}

	at = at.UTC().Truncate(time.Microsecond)
	if n := len(s.events); n > 0 && !at.After(s.events[n-1].occurredAt) {
		at = s.events[n-1].occurredAt.Add(time.Microsecond)
	}

	event, err := NewTrackingEvent(location, to, comment, at)
	if err != nil {
		return TrackingEvent{}, err
	}

	from := s.status
	s.status = to
	s.events = append(s.events, event)
	s.Record(newStatusChangedEvent(s, from, event, at))
	return event, nil
}

func setUUID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
