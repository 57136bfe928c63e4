package fleet

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is identified operationally by its registration plate, which is
// unique across the fleet.
type Vehicle struct {
	id           kernel.UUID
	registration string
	kind         string
	capacity     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewVehicle(id kernel.UUID, registration, kind string, capacity decimal.Decimal) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	v.id = id

	v.registration = strings.ToUpper(strings.TrimSpace(registration))
	v.kind = strings.TrimSpace(kind)
	if err := errors.Join(
		requireText("registration", v.registration),
		requireText("kind", v.kind),
		kernel.ValidateNonNegative("capacity", capacity),
		kernel.ValidateScale("capacity", capacity, kernel.MeasureScale),
	); err != nil {
		return nil, err
	}
	v.capacity = capacity

	return v, nil
}

func RestoreVehicle(id kernel.UUID, registration, kind string, capacity decimal.Decimal) *Vehicle {
	return &Vehicle{
		id:           id,
		registration: registration,
		kind:         kind,
		capacity:     capacity,
		guard:        guard.NewConstructorGuard(),
	}
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.UUID           { return v.id }
func (v *Vehicle) Registration() string      { return v.registration }
func (v *Vehicle) Kind() string              { return v.kind }
func (v *Vehicle) Capacity() decimal.Decimal { return v.capacity }
