package queries

import (
	"errors"

	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// ListInvoicesQuery lists invoices by issue date, latest first.
type ListInvoicesQuery struct {
	status   *invoice.Status
	clientID *kernel.UUID
	page     Page

	guard guard.ConstructorGuard
}

func NewListInvoicesQuery(status *invoice.Status, clientID *kernel.UUID, page Page) (ListInvoicesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListInvoicesQuery{}, err
		}
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return ListInvoicesQuery{}, err
		}
	}

	return ListInvoicesQuery{
		status:   status,
		clientID: clientID,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

func (q ListInvoicesQuery) Status() *invoice.Status { return q.status }
func (q ListInvoicesQuery) ClientID() *kernel.UUID  { return q.clientID }
func (q ListInvoicesQuery) Page() Page              { return q.page }
