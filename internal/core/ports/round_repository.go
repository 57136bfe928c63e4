package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
)

// RoundRepository persists delivery rounds and their ordered memberships.
type RoundRepository interface {
	Add(ctx context.Context, aggregate *round.Round) error

	// Update persists status, crew and comment, inserts new memberships and
	// removes the ones no longer present. Positions of kept memberships are
	// never renumbered.
	Update(ctx context.Context, aggregate *round.Round) error

	GetByCode(ctx context.Context, code kernel.Code) (*round.Round, error)
	GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*round.Round, error)

	// FindActiveByShipment returns the non-cancelled round the shipment
	// belongs to, or an *errs.ObjectNotFoundError when there is none.
	FindActiveByShipment(ctx context.Context, shipmentID kernel.UUID) (*round.Round, error)

	// Delete removes the round and its memberships. Shipments are kept.
	Delete(ctx context.Context, id kernel.UUID) error
}
