package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/pkg/guard"
)

var ErrListRoundsQueryIsNotConstructed = errors.New(
	"ListRoundsQuery must be created via NewListRoundsQuery constructor",
)

// ListRoundsQuery lists rounds by date, latest first. Every filter is optional.
type ListRoundsQuery struct {
	status   *round.Status
	driverID *kernel.UUID
	date     *time.Time
	page     Page

	guard guard.ConstructorGuard
}

func NewListRoundsQuery(status *round.Status, driverID *kernel.UUID, date *time.Time, page Page) (ListRoundsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListRoundsQuery{}, err
		}
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return ListRoundsQuery{}, err
		}
	}
	if date != nil {
		y, m, d := date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		date = &day
	}

	return ListRoundsQuery{
		status:   status,
		driverID: driverID,
		date:     date,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListRoundsQuery) Validate() error {
	return q.guard.Validate(ErrListRoundsQueryIsNotConstructed)
}

func (q ListRoundsQuery) Status() *round.Status  { return q.status }
func (q ListRoundsQuery) DriverID() *kernel.UUID { return q.driverID }
func (q ListRoundsQuery) Date() *time.Time       { return q.date }
func (q ListRoundsQuery) Page() Page             { return q.page }
