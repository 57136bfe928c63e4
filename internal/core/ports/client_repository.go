package ports

import (
	"context"

	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/kernel"
)

// ClientRepository persists client aggregates.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists contact details and the running balance.
	Update(ctx context.Context, aggregate *client.Client) error

	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetForUpdate loads the client and locks its row. Payment recording
	// takes this lock after the invoice lock, never before.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
