package ports

import (
	"context"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
)

type IncidentRepository interface {
	Add(ctx context.Context, aggregate *cases.Incident) error
	Update(ctx context.Context, aggregate *cases.Incident) error
	Get(ctx context.Context, id kernel.UUID) (*cases.Incident, error)
	// GetForUpdate locks the incident row so status changes serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*cases.Incident, error)
}

type ClaimRepository interface {
	Add(ctx context.Context, aggregate *cases.Claim) error
	Update(ctx context.Context, aggregate *cases.Claim) error
	GetByCode(ctx context.Context, code kernel.Code) (*cases.Claim, error)
	GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*cases.Claim, error)
}
