package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListClaimsQueryIsNotConstructed = errors.New(
	"ListClaimsQuery must be created via NewListClaimsQuery constructor",
)

// ClaimFilter narrows ListClaimsQuery. Nil fields do not filter.
type ClaimFilter struct {
	Status     *cases.ClaimStatus
	Type       *cases.ClaimType
	ShipmentID *kernel.UUID
	ClientID   *kernel.UUID
}

// ListClaimsQuery lists claims, most recently filed first.
type ListClaimsQuery struct {
	filter ClaimFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListClaimsQuery(filter ClaimFilter, page Page) (ListClaimsQuery, error) {
	var err error
	if filter.Status != nil {
		err = errors.Join(err, filter.Status.Validate())
	}
	if filter.Type != nil {
		err = errors.Join(err, filter.Type.Validate())
	}
	if filter.ShipmentID != nil {
		err = errors.Join(err, filter.ShipmentID.Validate())
	}
	if filter.ClientID != nil {
		err = errors.Join(err, filter.ClientID.Validate())
	}
	if err != nil {
		return ListClaimsQuery{}, err
	}

	return ListClaimsQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListClaimsQuery) Validate() error {
	return q.guard.Validate(ErrListClaimsQueryIsNotConstructed)
}

func (q ListClaimsQuery) Filter() ClaimFilter { return q.filter }
func (q ListClaimsQuery) Page() Page          { return q.page }

type ClaimResponse struct {
	ID           kernel.UUID
	Code         string
	ClientID     kernel.UUID
	ClientName   string
	Type         string
	Description  string
	Status       string
	Response     string
	ResolvedAt   *time.Time
	ShipmentID   *kernel.UUID
	TrackingCode string
	InvoiceID    *kernel.UUID
	InvoiceCode  string
	FiledAt      time.Time
}
