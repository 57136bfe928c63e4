package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrGetStatusDistributionQueryIsNotConstructed = errors.New(
	"GetStatusDistributionQuery must be created via NewGetStatusDistributionQuery constructor",
)

type GetStatusDistributionQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusDistributionQuery() GetStatusDistributionQuery {
	return GetStatusDistributionQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatusDistributionQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusDistributionQueryIsNotConstructed)
}

type StatusCount struct {
	Status string
	Count  int64
}
