package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetRoundQueryIsNotConstructed = errors.New("GetRoundQuery must be created via NewGetRoundQuery constructor")

// GetRoundQuery loads a round with its members ordered by position.
type GetRoundQuery struct {
	code kernel.Code

	guard guard.ConstructorGuard
}

func NewGetRoundQuery(code kernel.Code) (GetRoundQuery, error) {
	if err := code.Validate(); err != nil {
		return GetRoundQuery{}, err
	}
	return GetRoundQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRoundQuery) Validate() error {
	return q.guard.Validate(ErrGetRoundQueryIsNotConstructed)
}

func (q GetRoundQuery) Code() kernel.Code { return q.code }
