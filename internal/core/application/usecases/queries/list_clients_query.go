package queries

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery lists clients by name. A non-empty search matches any part
// of the name, case-insensitively.
type ListClientsQuery struct {
	search string
	page   Page

	guard guard.ConstructorGuard
}

func NewListClientsQuery(search string, page Page) ListClientsQuery {
	return ListClientsQuery{
		search: strings.TrimSpace(search),
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

func (q ListClientsQuery) Search() string { return q.search }
func (q ListClientsQuery) Page() Page     { return q.page }

// ClientResponse includes activity counters next to the contact data.
type ClientResponse struct {
	ID            kernel.UUID
	Name          string
	Address       string
	Phone         string
	Balance       decimal.Decimal
	ShipmentCount int
	InvoiceCount  int
}
