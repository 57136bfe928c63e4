package round

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

// Membership places a shipment at a position in a round's delivery sequence.
type Membership struct {
	shipmentID kernel.UUID
	position   int
	addedAt    time.Time
}

func RestoreMembership(shipmentID kernel.UUID, position int, addedAt time.Time) Membership {
	return Membership{shipmentID: shipmentID, position: position, addedAt: addedAt.UTC()}
}

func (m Membership) ShipmentID() kernel.UUID { return m.shipmentID }
func (m Membership) Position() int           { return m.position }
func (m Membership) AddedAt() time.Time      { return m.addedAt }
