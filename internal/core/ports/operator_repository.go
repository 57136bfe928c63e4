package ports

import (
	"context"

	"freight/internal/core/domain/model/operator"
)

type OperatorRepository interface {
	Add(ctx context.Context, aggregate *operator.Operator) error

	// GetByEmail matches the normalized address.
	GetByEmail(ctx context.Context, email string) (*operator.Operator, error)
}
