package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
)

// DestinationRepository persists destinations. Delete fails with a conflict
// while any shipment references the destination.
type DestinationRepository interface {
	Add(ctx context.Context, aggregate *tariff.Destination) error
	Update(ctx context.Context, aggregate *tariff.Destination) error
	Get(ctx context.Context, id kernel.UUID) (*tariff.Destination, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// ServiceTierRepository persists service tiers with the same protection rule
// as destinations.
type ServiceTierRepository interface {
	Add(ctx context.Context, aggregate *tariff.ServiceTier) error
	Update(ctx context.Context, aggregate *tariff.ServiceTier) error
	Get(ctx context.Context, id kernel.UUID) (*tariff.ServiceTier, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
