package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrDeleteReferenceCommandIsNotConstructed = errors.New(
	"DeleteReferenceCommand must be created via NewDeleteReferenceCommand constructor",
)

// ReferenceKind names the reference data a DeleteReferenceCommand removes.
type ReferenceKind int

const (
	UnknownReference ReferenceKind = iota
	DestinationReference
	ServiceTierReference
	DriverReference
	VehicleReference
)

func (k ReferenceKind) String() string {
	switch k {
	case DestinationReference:
		return "destination"
	case ServiceTierReference:
		return "service_tier"
	case DriverReference:
		return "driver"
	case VehicleReference:
		return "vehicle"
	default:
		return "unknown"
	}
}

// DeleteReferenceCommand removes a destination, service tier, driver or
// vehicle. Tariffs referenced by shipments are protected; rounds lose their
// crew reference when a driver or vehicle goes away.
type DeleteReferenceCommand struct {
	kind ReferenceKind
	id   kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReferenceCommand(kind ReferenceKind, id kernel.UUID) (DeleteReferenceCommand, error) {
	if kind < DestinationReference || kind > VehicleReference {
		return DeleteReferenceCommand{}, errs.NewValueIsOutOfRangeError("kind", int(kind),
			int(DestinationReference), int(VehicleReference))
	}
	if err := id.Validate(); err != nil {
		return DeleteReferenceCommand{}, err
	}

	return DeleteReferenceCommand{
		kind:  kind,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteReferenceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReferenceCommandIsNotConstructed)
}

func (c DeleteReferenceCommand) Kind() ReferenceKind { return c.kind }
func (c DeleteReferenceCommand) ID() kernel.UUID     { return c.id }
