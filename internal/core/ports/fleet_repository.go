package ports

import (
	"context"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
)

// DriverRepository persists drivers. Deleting a driver clears the driver
// reference on every round that named it; the rounds themselves remain.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *fleet.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// VehicleRepository persists vehicles under the same set-null policy as
// drivers.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *fleet.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
