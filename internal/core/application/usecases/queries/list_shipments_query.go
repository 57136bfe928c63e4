package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists shipments newest first, optionally narrowed to one
// status and/or one client.
type ListShipmentsQuery struct {
	status   *shipment.Status
	clientID *kernel.UUID
	page     Page

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(status *shipment.Status, clientID *kernel.UUID, page Page) (ListShipmentsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}

	return ListShipmentsQuery{
		status:   status,
		clientID: clientID,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Status() *shipment.Status { return q.status }
func (q ListShipmentsQuery) ClientID() *kernel.UUID   { return q.clientID }
func (q ListShipmentsQuery) Page() Page               { return q.page }
