package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates together with their
// tracking events.
type ShipmentRepository interface {
	// Add inserts the shipment and its events. A tracking code that is already
	// taken yields an *errs.ConflictError so the caller can retry with a fresh
	// code.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the status and appends events not yet stored. Stored
	// events are never rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	GetByTrackingCode(ctx context.Context, code kernel.Code) (*shipment.Shipment, error)

	// GetByTrackingCodeForUpdate loads the shipment and locks its row.
	GetByTrackingCodeForUpdate(ctx context.Context, code kernel.Code) (*shipment.Shipment, error)
}
