package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery loads one shipment by tracking code with its full
// tracking history.
//
// Example:
//
//	query, err := NewGetShipmentQuery(code)
//	if err != nil {
//	    return err
//	}
//	shipment, err := handler.Handle(ctx, query)
//	// shipment.History[0] is the latest event
type GetShipmentQuery struct {
	trackingCode kernel.Code

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(trackingCode kernel.Code) (GetShipmentQuery, error) {
	if err := trackingCode.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{trackingCode: trackingCode, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) TrackingCode() kernel.Code { return q.trackingCode }
