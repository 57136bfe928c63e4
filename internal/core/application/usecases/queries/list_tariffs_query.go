package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListTariffsQueryIsNotConstructed = errors.New(
	"ListTariffsQuery must be created via NewListTariffsQuery constructor",
)

// ListTariffsQuery returns every destination and service tier. Both tables
// are small reference data, so there is no paging.
type ListTariffsQuery struct {
	guard guard.ConstructorGuard
}

func NewListTariffsQuery() ListTariffsQuery {
	return ListTariffsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTariffsQuery) Validate() error {
	return q.guard.Validate(ErrListTariffsQueryIsNotConstructed)
}

type TariffsResponse struct {
	Destinations []DestinationResponse
	ServiceTiers []ServiceTierResponse
}

type DestinationResponse struct {
	ID       kernel.UUID
	City     string
	Country  string
	BaseRate decimal.Decimal
}

type ServiceTierResponse struct {
	ID         kernel.UUID
	Name       string
	WeightRate decimal.Decimal
	VolumeRate decimal.Decimal
}
