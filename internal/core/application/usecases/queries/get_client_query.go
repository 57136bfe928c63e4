package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetClientQueryIsNotConstructed = errors.New("GetClientQuery must be created via NewGetClientQuery constructor")

type GetClientQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetClientQuery(id kernel.UUID) (GetClientQuery, error) {
	if err := id.Validate(); err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

func (q GetClientQuery) ID() kernel.UUID { return q.id }
