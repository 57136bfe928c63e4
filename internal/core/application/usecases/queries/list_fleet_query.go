package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListFleetQueryIsNotConstructed = errors.New("ListFleetQuery must be created via NewListFleetQuery constructor")

// ListFleetQuery returns drivers and vehicles. With onlyAvailable set,
// drivers marked unavailable are left out.
type ListFleetQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewListFleetQuery(onlyAvailable bool) ListFleetQuery {
	return ListFleetQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

func (q ListFleetQuery) Validate() error {
	return q.guard.Validate(ErrListFleetQueryIsNotConstructed)
}

func (q ListFleetQuery) OnlyAvailable() bool { return q.onlyAvailable }

type FleetResponse struct {
	Drivers  []DriverResponse
	Vehicles []VehicleResponse
}

type DriverResponse struct {
	ID            kernel.UUID
	Name          string
	LicenseNumber string
	Available     bool
}

type VehicleResponse struct {
	ID           kernel.UUID
	Registration string
	Kind         string
	Capacity     decimal.Decimal
}
